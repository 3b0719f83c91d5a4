package diff

import (
	"testing"
)

func TestValueDiff(t *testing.T) {
	lines := ValueDiff("hello world", "hello there")
	if len(lines) == 0 {
		t.Fatal("expected diff lines")
	}

	var removed, added bool
	for _, l := range lines {
		switch l.Type {
		case LineRemoved:
			removed = true
		case LineAdded:
			added = true
		}
	}
	if !removed || !added {
		t.Errorf("expected both removed and added segments, got %+v", lines)
	}
}

func TestValueDiffIdentical(t *testing.T) {
	lines := ValueDiff("same", "same")
	for _, l := range lines {
		if l.Type != LineContext {
			t.Errorf("identical values must produce only context lines, got %+v", lines)
		}
	}
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{float64(42), "42"},
		{42.5, "42.5"},
		{int64(7), "7"},
	}

	for _, tt := range tests {
		if got := renderValue(tt.value); got != tt.expected {
			t.Errorf("renderValue(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
