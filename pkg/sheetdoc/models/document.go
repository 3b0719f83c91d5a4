package models

import (
	"github.com/tiendc/go-deepcopy"
)

// Document is the full application state: all sheets, charts, and mode flags.
// It is mutated only through reducer actions.
type Document struct {
	// Sheets is the ordered sheet list. It is never empty.
	Sheets []Sheet `json:"sheets"`
	// ActiveSheetID addresses the sheet targeted by single-sheet actions.
	// It always resolves to a member of Sheets.
	ActiveSheetID string `json:"activeSheetId"`
	// Charts is the chart list, independent of sheets.
	Charts []Chart `json:"charts"`
	// IsAIMode is a UI-mode flag, opaque to the engine.
	IsAIMode bool `json:"isAIMode"`
	// IsDarkMode is a UI-mode flag, opaque to the engine.
	IsDarkMode bool `json:"isDarkMode"`
	// HasAIUpdates is true iff any cell in any sheet has a pending AI proposal.
	HasAIUpdates bool `json:"hasAIUpdates"`
	// OriginalSheets is the full sheet backup taken when the first AI proposal
	// of a session is created, enabling total rollback. Nil outside a session.
	OriginalSheets []Sheet `json:"originalSheets,omitempty"`
}

// ActiveSheet returns the sheet addressed by ActiveSheetID, falling back to
// the first sheet when the id does not resolve. An empty sheet list is an
// invariant violation; the zero sheet is returned in that case.
func (d Document) ActiveSheet() Sheet {
	for _, s := range d.Sheets {
		if s.ID == d.ActiveSheetID {
			return s
		}
	}
	if len(d.Sheets) > 0 {
		return d.Sheets[0]
	}
	return Sheet{}
}

// SheetIndex returns the index of the sheet with the given id, or -1.
func (d Document) SheetIndex(id string) int {
	for i, s := range d.Sheets {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// ChartIndex returns the index of the chart with the given id, or -1.
func (d Document) ChartIndex(id string) int {
	for i, c := range d.Charts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// HasPendingUpdates reports whether any cell across all sheets has an
// unresolved AI proposal.
func (d Document) HasPendingUpdates() bool {
	for _, s := range d.Sheets {
		if s.HasPendingUpdates() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document sharing no mutable state with
// the receiver.
func (d Document) Clone() Document {
	var out Document
	if err := deepcopy.Copy(&out, d); err != nil {
		// Copy only fails on type mismatch, which cannot happen here.
		panic(err)
	}
	return out
}

// CloneSheets returns a deep copy of a sheet list.
func CloneSheets(sheets []Sheet) []Sheet {
	if sheets == nil {
		return nil
	}
	var out []Sheet
	if err := deepcopy.Copy(&out, sheets); err != nil {
		panic(err)
	}
	return out
}
