// Package history maintains the linear undo/redo stack of document snapshots.
package history

import (
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

// History is a branch-discarding undo stack. Entry 0 is the initial state and
// the index addresses the current document. Pushing while undone truncates
// the redo branch. A depth limit drops the oldest entries.
//
// History owns its snapshots exclusively: entries are only ever produced by
// the reducer (which never mutates shared state) and handed out by value.
type History struct {
	entries []models.Document
	index   int
	limit   int
}

// New creates a history seeded with the initial document. A non-positive
// limit means unbounded.
func New(initial models.Document, limit int) *History {
	return &History{
		entries: []models.Document{initial},
		index:   0,
		limit:   limit,
	}
}

// Current returns the document at the history index.
func (h *History) Current() models.Document {
	return h.entries[h.index]
}

// Push records a new current document, discarding any redo branch. When the
// depth limit is exceeded the oldest entry is dropped.
func (h *History) Push(doc models.Document) {
	h.entries = append(h.entries[:h.index+1], doc)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.index = len(h.entries) - 1
}

// CanUndo reports whether a prior snapshot exists.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether an undone snapshot exists ahead of the index.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Undo steps back one snapshot. It returns the new current document and
// false when there is nothing to undo.
func (h *History) Undo() (models.Document, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.index--
	return h.Current(), true
}

// Redo steps forward one snapshot. It returns the new current document and
// false when there is nothing to redo.
func (h *History) Redo() (models.Document, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.index++
	return h.Current(), true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}
