// Package coord parses and formats spreadsheet cell coordinates.
//
// A coordinate is "<column-letters><row-number>" with 1-based rows, e.g. "A1"
// or "AB12". Column names are full base-26 (multi-letter), so scoped
// operations can compare columns and rows structurally instead of by string
// prefix or suffix.
package coord

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Grid size defaults and bounds.
const (
	// DefaultRowCount is the initial row extent of a new sheet.
	DefaultRowCount = 1000
	// DefaultColCount is the initial column extent of a new sheet.
	DefaultColCount = 26
	// RowGrowthStep is the number of rows added by one grow request.
	RowGrowthStep = 1000
	// MaxRowCount is the hard ceiling on a sheet's row extent.
	MaxRowCount = 100000
)

// Ref is a parsed cell coordinate.
type Ref struct {
	// Col is the column name ("A", "BB", ...).
	Col string
	// ColNum is the 1-based column number.
	ColNum int
	// Row is the 1-based row number.
	Row int
}

// Parse splits a cell coordinate into its column and row components.
func Parse(cellID string) (Ref, error) {
	colNum, row, err := excelize.CellNameToCoordinates(cellID)
	if err != nil {
		return Ref{}, fmt.Errorf("parse cell id %q: %w", cellID, err)
	}
	col, err := excelize.ColumnNumberToName(colNum)
	if err != nil {
		return Ref{}, fmt.Errorf("parse cell id %q: %w", cellID, err)
	}
	return Ref{Col: col, ColNum: colNum, Row: row}, nil
}

// CellName formats a coordinate from a 1-based column and row number.
func CellName(colNum, row int) (string, error) {
	return excelize.CoordinatesToCellName(colNum, row)
}

// ColumnName returns the name of a 1-based column number ("A" for 1).
func ColumnName(colNum int) (string, error) {
	return excelize.ColumnNumberToName(colNum)
}

// ColumnNumber returns the 1-based number of a column name.
func ColumnNumber(col string) (int, error) {
	return excelize.ColumnNameToNumber(col)
}

// GrowRows returns rowCount increased by one growth step, clamped to
// MaxRowCount. Idempotent at the cap.
func GrowRows(rowCount int) int {
	grown := rowCount + RowGrowthStep
	if grown > MaxRowCount {
		return MaxRowCount
	}
	return grown
}
