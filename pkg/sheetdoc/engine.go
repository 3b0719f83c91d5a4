// Package sheetdoc implements the spreadsheet document state engine: an
// action-driven in-memory model of a multi-sheet spreadsheet with linear
// undo/redo history and an AI-suggested-edit overlay protocol.
//
// All mutation goes through Engine.Dispatch; consumers receive document
// copies and never share mutable state with the engine.
package sheetdoc

import (
	"sort"
	"sync"

	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/coord"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/diff"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/history"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/reducer"
)

// Engine owns a document and its history. Dispatches are serialized
// internally, so concurrent producers (local edits, AI batches) may share
// one engine without further coordination.
type Engine struct {
	mu      sync.Mutex
	current models.Document
	hist    *history.History
	opts    Options
}

// New creates an engine holding a fresh document with one empty sheet.
func New(opts Options) *Engine {
	return NewFromDocument(reducer.NewDocument(), opts)
}

// NewFromDocument creates an engine seeded with an existing document
// snapshot, e.g. one rehydrated from persistence. The snapshot is cloned.
func NewFromDocument(doc models.Document, opts Options) *Engine {
	initial := doc.Clone()
	return &Engine{
		current: initial,
		hist:    history.New(initial, opts.HistoryLimit),
		opts:    opts,
	}
}

// Dispatch applies one action and records the result as the new current
// document. Rejected actions leave both the document and the history
// unchanged and report why via the returned error. The internal restore
// action is applied but never recorded.
func (e *Engine) Dispatch(action reducer.Action) (models.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dispatchLocked(action)
}

func (e *Engine) dispatchLocked(action reducer.Action) (models.Document, error) {
	next, err := reducer.Apply(e.current, action)
	if err != nil {
		return e.current, err
	}
	e.current = next
	if _, restore := action.(reducer.SetState); !restore {
		e.hist.Push(next)
	}
	return next, nil
}

// Undo steps back one snapshot. The restored document is routed through the
// reducer's restore action so it is never recorded as a new transition.
func (e *Engine) Undo() (models.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	doc, ok := e.hist.Undo()
	if !ok {
		return e.current, ErrNothingToUndo
	}
	return e.dispatchLocked(reducer.SetState{Document: doc})
}

// Redo steps forward one snapshot.
func (e *Engine) Redo() (models.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	doc, ok := e.hist.Redo()
	if !ok {
		return e.current, ErrNothingToRedo
	}
	return e.dispatchLocked(reducer.SetState{Document: doc})
}

// CanUndo reports whether a prior snapshot exists.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanUndo()
}

// CanRedo reports whether an undone snapshot exists.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanRedo()
}

// Document returns a deep copy of the current document.
func (e *Engine) Document() models.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current.Clone()
}

// ActiveSheet returns a snapshot of the sheet targeted by single-sheet
// actions.
func (e *Engine) ActiveSheet() models.Sheet {
	return e.Document().ActiveSheet()
}

// Proposal describes one pending AI-suggested edit on the active sheet,
// including a rendered diff of the change for UI display.
type Proposal struct {
	CellID        string      `json:"cellId"`
	CurrentValue  interface{} `json:"currentValue"`
	ProposedValue interface{} `json:"proposedValue"`
	Timestamp     int64       `json:"timestamp,omitempty"`
	Diff          []diff.Line `json:"diff,omitempty"`
}

// PendingProposals lists the unresolved proposals of the active sheet in
// grid order (by row, then column).
func (e *Engine) PendingProposals() []Proposal {
	sheet := e.ActiveSheet()
	var proposals []Proposal
	for id, cell := range sheet.Cells {
		if !cell.HasAIUpdate {
			continue
		}
		proposals = append(proposals, Proposal{
			CellID:        id,
			CurrentValue:  cell.Value,
			ProposedValue: cell.AIValue,
			Timestamp:     cell.AIUpdateTimestamp,
			Diff:          diff.ValueDiff(cell.Value, cell.AIValue),
		})
	}
	sort.Slice(proposals, func(i, j int) bool {
		ri, erri := coord.Parse(proposals[i].CellID)
		rj, errj := coord.Parse(proposals[j].CellID)
		if erri != nil || errj != nil {
			return proposals[i].CellID < proposals[j].CellID
		}
		if ri.Row != rj.Row {
			return ri.Row < rj.Row
		}
		return ri.ColNum < rj.ColNum
	})
	return proposals
}
