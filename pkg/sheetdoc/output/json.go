// Package output serializes document snapshots to JSON for persistence
// collaborators and the CLI.
package output

import (
	"encoding/json"

	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

// ToJSON serializes a full document snapshot.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// SheetToJSON serializes a single sheet snapshot.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheet, "", "  ")
	}
	return json.Marshal(sheet)
}

// FromJSON deserializes a document snapshot previously produced by ToJSON.
func FromJSON(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
