package reducer

import (
	"errors"
	"testing"

	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/coord"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

func mustApply(t *testing.T, doc models.Document, action Action) models.Document {
	t.Helper()
	next, err := Apply(doc, action)
	if err != nil {
		t.Fatalf("Apply(%s) unexpected error: %v", action.Type(), err)
	}
	return next
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if len(doc.Sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(doc.Sheets))
	}
	sheet := doc.Sheets[0]
	if sheet.Name != "Sheet 1" {
		t.Errorf("expected name 'Sheet 1', got %q", sheet.Name)
	}
	if sheet.RowCount != coord.DefaultRowCount || sheet.ColCount != coord.DefaultColCount {
		t.Errorf("expected %dx%d grid, got %dx%d",
			coord.DefaultRowCount, coord.DefaultColCount, sheet.RowCount, sheet.ColCount)
	}
	if doc.ActiveSheetID != sheet.ID {
		t.Errorf("active sheet id %q does not match sheet id %q", doc.ActiveSheetID, sheet.ID)
	}
}

func TestAddSheet(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, AddSheet{})

	if len(doc.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(doc.Sheets))
	}
	added := doc.Sheets[1]
	if added.Name != "Sheet 2" {
		t.Errorf("expected name 'Sheet 2', got %q", added.Name)
	}
	if doc.ActiveSheetID != added.ID {
		t.Errorf("expected new sheet to be active")
	}
	if added.ID == doc.Sheets[0].ID {
		t.Errorf("sheet ids must be unique")
	}
}

func TestAddSheetFromRows(t *testing.T) {
	doc := NewDocument()
	rows := [][]string{
		{"Name", "Amount"},
		{"Alice", "10"},
		{"Bob", ""},
	}
	doc = mustApply(t, doc, AddSheetFromRows{Rows: rows, Name: "import"})

	sheet := doc.ActiveSheet()
	if sheet.Name != "import" {
		t.Errorf("expected name 'import', got %q", sheet.Name)
	}
	if sheet.RowCount != coord.DefaultRowCount {
		t.Errorf("expected rowCount %d, got %d", coord.DefaultRowCount, sheet.RowCount)
	}
	if sheet.ColCount != coord.DefaultColCount {
		t.Errorf("expected colCount %d, got %d", coord.DefaultColCount, sheet.ColCount)
	}
	if sheet.Cells["A1"].Value != "Name" || sheet.Cells["B2"].Value != "10" {
		t.Errorf("cells not populated positionally: %+v", sheet.Cells)
	}
	if _, ok := sheet.Cells["B3"]; ok {
		t.Errorf("empty values must not create cells")
	}
}

func TestAddSheetFromRowsGrowsBounds(t *testing.T) {
	wide := make([]string, 30)
	for i := range wide {
		wide[i] = "x"
	}
	rows := make([][]string, 1200)
	for i := range rows {
		rows[i] = wide
	}
	doc := mustApply(t, NewDocument(), AddSheetFromRows{Rows: rows})

	sheet := doc.ActiveSheet()
	if sheet.RowCount != 1200 {
		t.Errorf("expected rowCount 1200, got %d", sheet.RowCount)
	}
	if sheet.ColCount != 30 {
		t.Errorf("expected colCount 30, got %d", sheet.ColCount)
	}
	// Cell AD1 is column 30; the coordinate scheme must go past Z.
	if sheet.Cells["AD1"].Value != "x" {
		t.Errorf("expected multi-letter column cell AD1, cells: %d", len(sheet.Cells))
	}
}

func TestRemoveSheet(t *testing.T) {
	doc := NewDocument()
	first := doc.Sheets[0].ID
	doc = mustApply(t, doc, AddSheet{})
	second := doc.Sheets[1].ID

	doc, err := Apply(doc, RemoveSheet{SheetID: second})
	if err != nil {
		t.Fatalf("RemoveSheet error: %v", err)
	}
	if len(doc.Sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(doc.Sheets))
	}
	if doc.ActiveSheetID != first {
		t.Errorf("expected active to fall back to first sheet")
	}
}

func TestRemoveLastSheetRejected(t *testing.T) {
	doc := NewDocument()
	next, err := Apply(doc, RemoveSheet{SheetID: doc.Sheets[0].ID})
	if !errors.Is(err, ErrLastSheet) {
		t.Fatalf("expected ErrLastSheet, got %v", err)
	}
	if len(next.Sheets) != 1 {
		t.Errorf("document must be unchanged, got %d sheets", len(next.Sheets))
	}
}

func TestRemoveMissingSheetRejected(t *testing.T) {
	doc := NewDocument()
	_, err := Apply(doc, RemoveSheet{SheetID: "sheet_missing"})
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("expected ErrSheetNotFound, got %v", err)
	}
	var rejected *Rejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected *Rejected, got %T", err)
	}
	if rejected.Action != TypeRemoveSheet {
		t.Errorf("expected action %q, got %q", TypeRemoveSheet, rejected.Action)
	}
}

func TestSetActiveSheet(t *testing.T) {
	doc := NewDocument()
	first := doc.Sheets[0].ID
	doc = mustApply(t, doc, AddSheet{})

	doc = mustApply(t, doc, SetActiveSheet{SheetID: first})
	if doc.ActiveSheetID != first {
		t.Errorf("expected active %q, got %q", first, doc.ActiveSheetID)
	}

	if _, err := Apply(doc, SetActiveSheet{SheetID: "nope"}); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestUpdateExistingSheet(t *testing.T) {
	doc := NewDocument()
	id := doc.Sheets[0].ID
	name := "restored"
	rowCount := 5000
	cells := map[string]models.Cell{"A1": {Value: "x"}}

	doc = mustApply(t, doc, UpdateExistingSheet{
		SheetID: id,
		Patch:   models.SheetPatch{Name: &name, RowCount: &rowCount, Cells: cells},
	})

	sheet := doc.Sheets[0]
	if sheet.Name != "restored" || sheet.RowCount != 5000 {
		t.Errorf("patch not applied: %+v", sheet)
	}
	if sheet.ColCount != coord.DefaultColCount {
		t.Errorf("unpatched field must be untouched, got colCount %d", sheet.ColCount)
	}
	if sheet.Cells["A1"].Value != "x" {
		t.Errorf("cells not replaced")
	}
}

func TestUpdateCell(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, UpdateCell{CellID: "B2", Value: 42})

	cell, ok := doc.ActiveSheet().Cells["B2"]
	if !ok || cell.Value != 42 {
		t.Fatalf("expected B2 == 42, got %+v (ok=%v)", cell, ok)
	}

	// Overwriting keeps style and overlay fields.
	bold := true
	doc = mustApply(t, doc, FormatCells{CellIDs: []string{"B2"}, Style: models.StylePatch{Bold: &bold}})
	doc = mustApply(t, doc, UpdateCell{CellID: "B2", Value: "changed"})
	cell = doc.ActiveSheet().Cells["B2"]
	if cell.Value != "changed" {
		t.Errorf("expected value 'changed', got %v", cell.Value)
	}
	if cell.Style == nil || !cell.Style.Bold {
		t.Errorf("style must survive a value write")
	}
}

func TestUpdateCellBadCoordinate(t *testing.T) {
	doc := NewDocument()
	_, err := Apply(doc, UpdateCell{CellID: "not-a-cell", Value: 1})
	if !errors.Is(err, ErrBadCoordinate) {
		t.Fatalf("expected ErrBadCoordinate, got %v", err)
	}
}

func TestBulkUpdateCellsAtomic(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, BulkUpdateCells{Writes: []CellWrite{
		{CellID: "A1", Value: "a"},
		{CellID: "B1", Value: "b"},
	}})
	sheet := doc.ActiveSheet()
	if sheet.Cells["A1"].Value != "a" || sheet.Cells["B1"].Value != "b" {
		t.Errorf("bulk writes not applied: %+v", sheet.Cells)
	}

	// One bad coordinate rejects the whole batch.
	next, err := Apply(doc, BulkUpdateCells{Writes: []CellWrite{
		{CellID: "C1", Value: "c"},
		{CellID: "??", Value: "d"},
	}})
	if !errors.Is(err, ErrBadCoordinate) {
		t.Fatalf("expected ErrBadCoordinate, got %v", err)
	}
	if _, ok := next.ActiveSheet().Cells["C1"]; ok {
		t.Errorf("rejected batch must not apply partially")
	}
}

func TestLoadRowsReplacesCells(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, UpdateCell{CellID: "Z9", Value: "old"})
	doc = mustApply(t, doc, LoadRows{Rows: [][]string{{"h1", "h2"}, {"v1", "v2"}}})

	sheet := doc.ActiveSheet()
	if _, ok := sheet.Cells["Z9"]; ok {
		t.Errorf("load must replace all cells")
	}
	if sheet.Cells["A1"].Value != "h1" || sheet.Cells["B2"].Value != "v2" {
		t.Errorf("loaded cells wrong: %+v", sheet.Cells)
	}
}

func TestFormatCellsCreatesAndMerges(t *testing.T) {
	doc := NewDocument()
	bold := true
	doc = mustApply(t, doc, FormatCells{CellIDs: []string{"A1", "A2"}, Style: models.StylePatch{Bold: &bold}})

	sheet := doc.ActiveSheet()
	for _, id := range []string{"A1", "A2"} {
		cell, ok := sheet.Cells[id]
		if !ok {
			t.Fatalf("cell %s must be created", id)
		}
		if cell.Value != "" {
			t.Errorf("created cell %s must be empty, got %v", id, cell.Value)
		}
		if cell.Style == nil || !cell.Style.Bold {
			t.Errorf("cell %s missing bold style", id)
		}
	}

	// A second patch must not clear bold.
	italic := true
	doc = mustApply(t, doc, FormatCells{CellIDs: []string{"A1"}, Style: models.StylePatch{Italic: &italic}})
	style := doc.ActiveSheet().Cells["A1"].Style
	if !style.Bold || !style.Italic {
		t.Errorf("style merge must be monotone, got %+v", style)
	}
}

func TestAddMoreRows(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, AddMoreRows{})
	if got := doc.ActiveSheet().RowCount; got != 2000 {
		t.Errorf("expected 2000 rows, got %d", got)
	}

	nearCap := coord.MaxRowCount - 500
	doc = mustApply(t, doc, UpdateExistingSheet{
		SheetID: doc.ActiveSheetID,
		Patch:   models.SheetPatch{RowCount: &nearCap},
	})
	doc = mustApply(t, doc, AddMoreRows{})
	if got := doc.ActiveSheet().RowCount; got != coord.MaxRowCount {
		t.Errorf("expected cap %d, got %d", coord.MaxRowCount, got)
	}
	doc = mustApply(t, doc, AddMoreRows{})
	if got := doc.ActiveSheet().RowCount; got != coord.MaxRowCount {
		t.Errorf("growth at cap must be idempotent, got %d", got)
	}
}

func TestChartCRUD(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, AddChart{Chart: models.Chart{
		Type:  models.ChartTypeBar,
		Title: "Revenue",
		Data:  []models.SeriesPoint{{Name: "Q1", Value: 10}},
	}})
	if len(doc.Charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(doc.Charts))
	}
	id := doc.Charts[0].ID
	if id == "" {
		t.Fatalf("chart id must be generated")
	}

	title := "Revenue 2026"
	minimized := true
	doc = mustApply(t, doc, UpdateChart{ChartID: id, Patch: models.ChartPatch{Title: &title, Minimized: &minimized}})
	chart := doc.Charts[0]
	if chart.Title != "Revenue 2026" || !chart.Minimized {
		t.Errorf("patch not merged: %+v", chart)
	}
	if chart.Type != models.ChartTypeBar {
		t.Errorf("unpatched field must be untouched, got %q", chart.Type)
	}

	if _, err := Apply(doc, UpdateChart{ChartID: "chart_missing"}); !errors.Is(err, ErrChartNotFound) {
		t.Errorf("expected ErrChartNotFound, got %v", err)
	}

	doc = mustApply(t, doc, RemoveChart{ChartID: id})
	if len(doc.Charts) != 0 {
		t.Errorf("expected 0 charts, got %d", len(doc.Charts))
	}
}

func TestToggles(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, ToggleAIMode{})
	doc = mustApply(t, doc, ToggleTheme{})
	if !doc.IsAIMode || !doc.IsDarkMode {
		t.Errorf("expected both flags set, got %+v", doc)
	}
	doc = mustApply(t, doc, ToggleAIMode{})
	if doc.IsAIMode {
		t.Errorf("toggle must flip back")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	doc := NewDocument()
	doc = mustApply(t, doc, UpdateCell{CellID: "A1", Value: "before"})

	_ = mustApply(t, doc, UpdateCell{CellID: "A1", Value: "after"})
	_ = mustApply(t, doc, AddSheet{})
	_ = mustApply(t, doc, AddMoreRows{})

	sheet := doc.ActiveSheet()
	if sheet.Cells["A1"].Value != "before" {
		t.Errorf("input document was mutated: %v", sheet.Cells["A1"].Value)
	}
	if len(doc.Sheets) != 1 {
		t.Errorf("input sheet list was mutated: %d sheets", len(doc.Sheets))
	}
	if sheet.RowCount != coord.DefaultRowCount {
		t.Errorf("input row count was mutated: %d", sheet.RowCount)
	}
}

func TestUnknownActionRejected(t *testing.T) {
	doc := NewDocument()
	_, err := Apply(doc, unknownAction{})
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("expected ErrUnknownAction, got %v", err)
	}
}

type unknownAction struct{}

func (unknownAction) Type() string { return "unknown" }
