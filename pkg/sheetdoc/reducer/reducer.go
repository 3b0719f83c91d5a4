package reducer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/coord"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

// Apply computes the document that results from one action. It is total and
// pure: the input document is never mutated, and a rejected action returns
// the input document unchanged together with a *Rejected error.
//
// Transitions copy only what they touch (the sheets slice and the mutated
// sheet's cell map), so successive documents structurally share untouched
// sheets. Callers that need full isolation use models.Document.Clone.
func Apply(doc models.Document, action Action) (models.Document, error) {
	switch a := action.(type) {
	case AddSheet:
		return applyAddSheet(doc), nil
	case AddSheetFromRows:
		return applyAddSheetFromRows(doc, a), nil
	case RemoveSheet:
		return applyRemoveSheet(doc, a)
	case SetActiveSheet:
		return applySetActiveSheet(doc, a)
	case UpdateExistingSheet:
		return applyUpdateExistingSheet(doc, a)
	case UpdateCell:
		return applyBulkUpdate(doc, action, []CellWrite{{CellID: a.CellID, Value: a.Value}})
	case BulkUpdateCells:
		return applyBulkUpdate(doc, action, a.Writes)
	case LoadRows:
		return applyLoadRows(doc, a), nil
	case FormatCells:
		return applyFormatCells(doc, a)
	case AddMoreRows:
		return applyAddMoreRows(doc), nil
	case AddChart:
		return applyAddChart(doc, a), nil
	case UpdateChart:
		return applyUpdateChart(doc, a)
	case RemoveChart:
		return applyRemoveChart(doc, a)
	case ToggleAIMode:
		doc.IsAIMode = !doc.IsAIMode
		return doc, nil
	case ToggleTheme:
		doc.IsDarkMode = !doc.IsDarkMode
		return doc, nil
	case CreateAIUpdates:
		return applyCreateAIUpdates(doc, a)
	case AcceptAIUpdate:
		return applyResolveCell(doc, action, a.CellID, true)
	case RejectAIUpdate:
		return applyResolveCell(doc, action, a.CellID, false)
	case AcceptAllAIUpdates:
		return applyResolveAll(doc, true), nil
	case RejectAllAIUpdates:
		return applyResolveAll(doc, false), nil
	case AcceptColumnAIUpdates:
		return applyResolveScoped(doc, matchColumn(a.Column), true), nil
	case RejectColumnAIUpdates:
		return applyResolveScoped(doc, matchColumn(a.Column), false), nil
	case AcceptRowAIUpdates:
		return applyResolveScoped(doc, matchRow(a.Row), true), nil
	case RejectRowAIUpdates:
		return applyResolveScoped(doc, matchRow(a.Row), false), nil
	case RestoreOriginalState:
		return applyRestoreOriginalState(doc, action)
	case SetState:
		return a.Document.Clone(), nil
	default:
		return doc, reject(action, "", ErrUnknownAction)
	}
}

// NewSheet returns an empty sheet with a fresh id and default grid bounds.
func NewSheet(name string) models.Sheet {
	return models.Sheet{
		ID:       newID("sheet"),
		Name:     name,
		Cells:    make(map[string]models.Cell),
		RowCount: coord.DefaultRowCount,
		ColCount: coord.DefaultColCount,
	}
}

// NewDocument returns a document holding one empty sheet named "Sheet 1".
func NewDocument() models.Document {
	sheet := NewSheet("Sheet 1")
	return models.Document{
		Sheets:        []models.Sheet{sheet},
		ActiveSheetID: sheet.ID,
	}
}

func applyAddSheet(doc models.Document) models.Document {
	sheet := NewSheet(fmt.Sprintf("Sheet %d", len(doc.Sheets)+1))
	doc.Sheets = append(copySheets(doc.Sheets), sheet)
	doc.ActiveSheetID = sheet.ID
	return doc
}

func applyAddSheetFromRows(doc models.Document, a AddSheetFromRows) models.Document {
	name := a.Name
	if name == "" {
		name = fmt.Sprintf("Sheet %d", len(doc.Sheets)+1)
	}
	sheet := NewSheet(name)
	if len(a.Rows) > sheet.RowCount {
		sheet.RowCount = len(a.Rows)
	}
	if len(a.Rows) > 0 && len(a.Rows[0]) > sheet.ColCount {
		sheet.ColCount = len(a.Rows[0])
	}
	fillCells(sheet.Cells, a.Rows, nil)
	doc.Sheets = append(copySheets(doc.Sheets), sheet)
	doc.ActiveSheetID = sheet.ID
	return doc
}

func applyRemoveSheet(doc models.Document, a RemoveSheet) (models.Document, error) {
	idx := doc.SheetIndex(a.SheetID)
	if idx < 0 {
		return doc, reject(a, a.SheetID, ErrSheetNotFound)
	}
	if len(doc.Sheets) == 1 {
		return doc, reject(a, a.SheetID, ErrLastSheet)
	}
	sheets := make([]models.Sheet, 0, len(doc.Sheets)-1)
	sheets = append(sheets, doc.Sheets[:idx]...)
	sheets = append(sheets, doc.Sheets[idx+1:]...)
	doc.Sheets = sheets
	if doc.ActiveSheetID == a.SheetID {
		doc.ActiveSheetID = sheets[0].ID
	}
	return doc, nil
}

func applySetActiveSheet(doc models.Document, a SetActiveSheet) (models.Document, error) {
	if doc.SheetIndex(a.SheetID) < 0 {
		return doc, reject(a, a.SheetID, ErrSheetNotFound)
	}
	doc.ActiveSheetID = a.SheetID
	return doc, nil
}

func applyUpdateExistingSheet(doc models.Document, a UpdateExistingSheet) (models.Document, error) {
	idx := doc.SheetIndex(a.SheetID)
	if idx < 0 {
		return doc, reject(a, a.SheetID, ErrSheetNotFound)
	}
	doc.Sheets = copySheets(doc.Sheets)
	sheet := &doc.Sheets[idx]
	if a.Patch.Cells != nil {
		cells := make(map[string]models.Cell, len(a.Patch.Cells))
		for id, c := range a.Patch.Cells {
			cells[id] = c
		}
		sheet.Cells = cells
	}
	if a.Patch.RowCount != nil {
		sheet.RowCount = *a.Patch.RowCount
	}
	if a.Patch.ColCount != nil {
		sheet.ColCount = *a.Patch.ColCount
	}
	if a.Patch.Name != nil {
		sheet.Name = *a.Patch.Name
	}
	if a.Patch.Cells != nil {
		// Replacing the cell map can drop pending AI values, so the
		// document-level aggregate has to be recomputed.
		doc = settleAggregate(doc, false)
	}
	return doc, nil
}

func applyBulkUpdate(doc models.Document, action Action, writes []CellWrite) (models.Document, error) {
	// Validate every coordinate before touching anything so the batch is
	// all-or-nothing.
	for _, w := range writes {
		if _, err := coord.Parse(w.CellID); err != nil {
			return doc, reject(action, w.CellID, ErrBadCoordinate)
		}
	}
	doc, sheet := mutableActiveSheet(doc)
	for _, w := range writes {
		if existing, ok := sheet.Cells[w.CellID]; ok {
			sheet.Cells[w.CellID] = existing.Write(w.Value)
		} else {
			sheet.Cells[w.CellID] = models.Cell{Value: w.Value}
		}
	}
	return doc, nil
}

func applyLoadRows(doc models.Document, a LoadRows) models.Document {
	previous := doc.ActiveSheet().Cells
	doc, sheet := mutableActiveSheet(doc)
	cells := make(map[string]models.Cell)
	fillCells(cells, a.Rows, previous)
	sheet.Cells = cells
	if len(a.Rows) > sheet.RowCount {
		sheet.RowCount = len(a.Rows)
	}
	if len(a.Rows) > 0 && len(a.Rows[0]) > sheet.ColCount {
		sheet.ColCount = len(a.Rows[0])
	}
	// Cells outside the loaded grid are discarded, pending values included.
	return settleAggregate(doc, false)
}

func applyFormatCells(doc models.Document, a FormatCells) (models.Document, error) {
	for _, id := range a.CellIDs {
		if _, err := coord.Parse(id); err != nil {
			return doc, reject(a, id, ErrBadCoordinate)
		}
	}
	doc, sheet := mutableActiveSheet(doc)
	for _, id := range a.CellIDs {
		cell, ok := sheet.Cells[id]
		if !ok {
			cell = models.Cell{Value: ""}
		}
		cell.Style = a.Style.Merge(cell.Style)
		sheet.Cells[id] = cell
	}
	return doc, nil
}

func applyAddMoreRows(doc models.Document) models.Document {
	doc, sheet := mutableActiveSheet(doc)
	sheet.RowCount = coord.GrowRows(sheet.RowCount)
	return doc
}

func applyAddChart(doc models.Document, a AddChart) models.Document {
	chart := a.Chart
	chart.ID = newID("chart")
	charts := make([]models.Chart, 0, len(doc.Charts)+1)
	charts = append(charts, doc.Charts...)
	doc.Charts = append(charts, chart)
	return doc
}

func applyUpdateChart(doc models.Document, a UpdateChart) (models.Document, error) {
	idx := doc.ChartIndex(a.ChartID)
	if idx < 0 {
		return doc, reject(a, a.ChartID, ErrChartNotFound)
	}
	charts := make([]models.Chart, len(doc.Charts))
	copy(charts, doc.Charts)
	charts[idx] = a.Patch.Merge(charts[idx])
	doc.Charts = charts
	return doc, nil
}

func applyRemoveChart(doc models.Document, a RemoveChart) (models.Document, error) {
	idx := doc.ChartIndex(a.ChartID)
	if idx < 0 {
		return doc, reject(a, a.ChartID, ErrChartNotFound)
	}
	charts := make([]models.Chart, 0, len(doc.Charts)-1)
	charts = append(charts, doc.Charts[:idx]...)
	charts = append(charts, doc.Charts[idx+1:]...)
	doc.Charts = charts
	return doc, nil
}

// fillCells populates a cell map positionally from 2D rows, skipping empty
// values (an absent key is an empty cell). When previous is non-nil, cells
// whose coordinate already existed keep their AI-overlay fields.
func fillCells(cells map[string]models.Cell, rows [][]string, previous map[string]models.Cell) {
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cellID, err := coord.CellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			cell := models.Cell{Value: value}
			if prev, ok := previous[cellID]; ok {
				cell.OriginalValue = prev.OriginalValue
				cell.AIValue = prev.AIValue
				cell.HasAIUpdate = prev.HasAIUpdate
				cell.AIUpdateTimestamp = prev.AIUpdateTimestamp
			}
			cells[cellID] = cell
		}
	}
}

// mutableActiveSheet returns the document with its sheets slice and the
// active sheet's cell map copied, plus a pointer into the fresh slice.
func mutableActiveSheet(doc models.Document) (models.Document, *models.Sheet) {
	idx := doc.SheetIndex(doc.ActiveSheetID)
	if idx < 0 {
		idx = 0
	}
	doc.Sheets = copySheets(doc.Sheets)
	sheet := &doc.Sheets[idx]
	cells := make(map[string]models.Cell, len(sheet.Cells))
	for id, c := range sheet.Cells {
		cells[id] = c
	}
	sheet.Cells = cells
	return doc, sheet
}

func copySheets(sheets []models.Sheet) []models.Sheet {
	out := make([]models.Sheet, len(sheets))
	copy(out, sheets)
	return out
}

func newID(prefix string) string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)
	return prefix + "_" + hex.EncodeToString(bytes)
}
