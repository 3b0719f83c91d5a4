// Package ingest is the file-ingestion collaborator of the state engine: it
// turns CSV and XLSX files into the 2D row arrays consumed by the row-loading
// actions. The engine itself never reads files.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/coord"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/reducer"
)

// ReadCSV reads all CSV records from r. Records may have varying lengths;
// no coercion is applied to the values.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// ReadXLSX reads the rows of one sheet of an xlsx file. An empty sheetName
// selects the first sheet.
func ReadXLSX(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheetName == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, fmt.Errorf("no sheets in %s", path)
		}
		sheetName = list[0]
	}
	return f.GetRows(sheetName)
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// NumericWrites returns the cell writes that coerce numeric-looking row values
// to the scalar types the cell model stores. Values that stay strings produce
// no write; row loading already stored them verbatim.
func NumericWrites(rows [][]string) []reducer.CellWrite {
	var writes []reducer.CellWrite
	for r, row := range rows {
		for c, raw := range row {
			if raw == "" {
				continue
			}
			parsed := ParseValue(raw)
			if _, still := parsed.(string); still {
				continue
			}
			id, err := coord.CellName(c+1, r+1)
			if err != nil {
				continue
			}
			writes = append(writes, reducer.CellWrite{CellID: id, Value: parsed})
		}
	}
	return writes
}
