// Package diff renders pending AI proposals as line diffs for UI display.
package diff

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one rendered diff line.
type Line struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Line types.
const (
	LineContext = "context"
	LineAdded   = "added"
	LineRemoved = "removed"
)

// ValueDiff diffs the textual rendering of a cell value against its proposed
// replacement. Scalar values are rendered the way the snapshot JSON renders
// them.
func ValueDiff(before, after interface{}) []Line {
	return textDiff(renderValue(before), renderValue(after))
}

func textDiff(before, after string) []Line {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var lines []Line
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			lines = append(lines, Line{Type: LineContext, Text: d.Text})
		case diffmatchpatch.DiffDelete:
			lines = append(lines, Line{Type: LineRemoved, Text: d.Text})
		case diffmatchpatch.DiffInsert:
			lines = append(lines, Line{Type: LineAdded, Text: d.Text})
		}
	}
	return lines
}

func renderValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		// Trim the ".0" JSON round-tripping adds to integral floats.
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%g", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
