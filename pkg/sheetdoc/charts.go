package sheetdoc

import (
	"fmt"
	"strconv"

	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/coord"
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

// MaterializeSeries builds chart series data from two columns of a sheet:
// labels are read from labelCol and numeric values from valueCol. Row 1 is
// treated as the conventional header and skipped. Rows whose value cell is
// empty or non-numeric are skipped.
func MaterializeSeries(sheet models.Sheet, labelCol, valueCol string) ([]models.SeriesPoint, error) {
	if _, err := coord.ColumnNumber(labelCol); err != nil {
		return nil, fmt.Errorf("label column %q: %w", labelCol, err)
	}
	if _, err := coord.ColumnNumber(valueCol); err != nil {
		return nil, fmt.Errorf("value column %q: %w", valueCol, err)
	}

	var points []models.SeriesPoint
	for row := 2; row <= sheet.RowCount; row++ {
		valueCell, ok := sheet.Cells[fmt.Sprintf("%s%d", valueCol, row)]
		if !ok {
			continue
		}
		value, ok := numericValue(valueCell.Value)
		if !ok {
			continue
		}
		name := ""
		if labelCell, ok := sheet.Cells[fmt.Sprintf("%s%d", labelCol, row)]; ok {
			name = fmt.Sprintf("%v", labelCell.Value)
		}
		points = append(points, models.SeriesPoint{Name: name, Value: value})
	}
	return points, nil
}

func numericValue(v interface{}) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		f, err := strconv.ParseFloat(value, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
