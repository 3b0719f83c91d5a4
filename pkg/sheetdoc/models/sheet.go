package models

// Sheet represents a named, bounded grid of sparsely stored cells.
type Sheet struct {
	// ID uniquely identifies the sheet within a document.
	ID string `json:"id"`
	// Name is the user-visible sheet name.
	Name string `json:"name"`
	// Cells maps cell coordinates (e.g. "A1") to cells. An absent key is an
	// empty cell. Entries are created lazily on first write and never removed;
	// clearing a cell sets its value to the empty string.
	Cells map[string]Cell `json:"cells"`
	// RowCount is the number of addressable rows.
	RowCount int `json:"rowCount"`
	// ColCount is the number of addressable columns.
	ColCount int `json:"colCount"`
}

// SheetPatch is a partial sheet used for out-of-band rehydration. Nil fields
// leave the corresponding sheet field untouched.
type SheetPatch struct {
	Cells    map[string]Cell `json:"cells,omitempty"`
	RowCount *int            `json:"rowCount,omitempty"`
	ColCount *int            `json:"colCount,omitempty"`
	Name     *string         `json:"name,omitempty"`
}

// Cell returns the cell at the given coordinate and whether it exists.
func (s Sheet) Cell(cellID string) (Cell, bool) {
	c, ok := s.Cells[cellID]
	return c, ok
}

// HasPendingUpdates reports whether any cell of the sheet has an unresolved
// AI proposal.
func (s Sheet) HasPendingUpdates() bool {
	for _, c := range s.Cells {
		if c.HasAIUpdate {
			return true
		}
	}
	return false
}

// PendingCellIDs returns the coordinates of all cells with an unresolved AI
// proposal, in unspecified order.
func (s Sheet) PendingCellIDs() []string {
	var ids []string
	for id, c := range s.Cells {
		if c.HasAIUpdate {
			ids = append(ids, id)
		}
	}
	return ids
}
