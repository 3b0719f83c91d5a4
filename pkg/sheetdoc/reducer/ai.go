package reducer

import (
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/coord"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

// applyCreateAIUpdates marks a batch of suggested edits as pending overlays
// on the active sheet. The first pending proposal anywhere in the document
// snapshots the sheets into OriginalSheets for later total rollback.
func applyCreateAIUpdates(doc models.Document, a CreateAIUpdates) (models.Document, error) {
	if len(a.Updates) == 0 {
		return doc, nil
	}
	for _, u := range a.Updates {
		if _, err := coord.Parse(u.CellID); err != nil {
			return doc, reject(a, u.CellID, ErrBadCoordinate)
		}
	}

	firstInSession := !doc.HasPendingUpdates()
	var backup []models.Sheet
	if firstInSession {
		backup = models.CloneSheets(doc.Sheets)
	}

	doc, sheet := mutableActiveSheet(doc)
	for _, u := range a.Updates {
		cell, ok := sheet.Cells[u.CellID]
		if !ok {
			cell = models.Cell{Value: u.OriginalValue}
		}
		// OriginalValue is recorded once per cell and kept until resolved,
		// so stacked proposals on one cell still roll back to the value the
		// session started from.
		if !cell.HasAIUpdate && cell.OriginalValue == nil {
			cell.OriginalValue = cell.Value
		}
		cell.AIValue = u.AIValue
		cell.HasAIUpdate = true
		cell.AIUpdateTimestamp = u.Timestamp
		sheet.Cells[u.CellID] = cell
	}
	if firstInSession {
		doc.OriginalSheets = backup
	}
	doc.HasAIUpdates = true
	return doc, nil
}

// applyResolveCell resolves one pending proposal on the active sheet.
func applyResolveCell(doc models.Document, action Action, cellID string, accept bool) (models.Document, error) {
	current := doc.ActiveSheet()
	cell, ok := current.Cells[cellID]
	if !ok {
		return doc, reject(action, cellID, ErrCellNotFound)
	}
	if !cell.HasAIUpdate {
		return doc, reject(action, cellID, ErrNoPendingUpdate)
	}
	doc, sheet := mutableActiveSheet(doc)
	sheet.Cells[cellID] = cell.Resolved(accept)
	return settleAggregate(doc, false), nil
}

// applyResolveAll resolves every pending proposal on the active sheet and
// ends the AI session: the rollback backup is discarded even if other sheets
// still hold pending proposals.
func applyResolveAll(doc models.Document, accept bool) models.Document {
	doc, sheet := mutableActiveSheet(doc)
	for id, cell := range sheet.Cells {
		if cell.HasAIUpdate {
			sheet.Cells[id] = cell.Resolved(accept)
		}
	}
	return settleAggregate(doc, true)
}

// applyResolveScoped resolves the pending proposals of the active sheet whose
// parsed coordinate satisfies match. Comparison is structural: the coordinate
// is parsed into (column, row) first, so column "B" never matches "BB" and
// row 1 never matches row 21.
func applyResolveScoped(doc models.Document, match func(coord.Ref) bool, accept bool) models.Document {
	doc, sheet := mutableActiveSheet(doc)
	for id, cell := range sheet.Cells {
		if !cell.HasAIUpdate {
			continue
		}
		ref, err := coord.Parse(id)
		if err != nil {
			continue
		}
		if match(ref) {
			sheet.Cells[id] = cell.Resolved(accept)
		}
	}
	return settleAggregate(doc, false)
}

func matchColumn(column string) func(coord.Ref) bool {
	return func(ref coord.Ref) bool { return ref.Col == column }
}

func matchRow(row int) func(coord.Ref) bool {
	return func(ref coord.Ref) bool { return ref.Row == row }
}

// applyRestoreOriginalState replaces the sheets with the AI-session backup,
// discarding every pending proposal in one step.
func applyRestoreOriginalState(doc models.Document, action Action) (models.Document, error) {
	if doc.OriginalSheets == nil {
		return doc, reject(action, "", ErrNoBackup)
	}
	doc.Sheets = models.CloneSheets(doc.OriginalSheets)
	doc.OriginalSheets = nil
	doc.HasAIUpdates = false
	if doc.SheetIndex(doc.ActiveSheetID) < 0 {
		doc.ActiveSheetID = doc.Sheets[0].ID
	}
	return doc, nil
}

// settleAggregate recomputes the document-level pending flag across all
// sheets and drops the session backup once the session is over.
func settleAggregate(doc models.Document, endSession bool) models.Document {
	doc.HasAIUpdates = doc.HasPendingUpdates()
	if endSession || !doc.HasAIUpdates {
		doc.OriginalSheets = nil
	}
	return doc
}
