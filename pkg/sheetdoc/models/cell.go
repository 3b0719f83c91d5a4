// Package models defines the data structures of the spreadsheet document state.
package models

// Cell represents one addressable slot of a sheet grid.
// A cell holds a scalar value (string or number), optional style attributes,
// and the AI-overlay fields used while a suggested replacement is pending.
type Cell struct {
	// Value is the persisted, visible value (string, int64, or float64).
	Value interface{} `json:"value"`
	// Style holds optional formatting attributes.
	Style *CellStyle `json:"style,omitempty"`
	// OriginalValue is the value the cell had before its first pending AI
	// proposal. Only meaningful while an overlay is pending.
	OriginalValue interface{} `json:"originalValue,omitempty"`
	// AIValue is the proposed replacement value, if any.
	AIValue interface{} `json:"aiValue,omitempty"`
	// HasAIUpdate is true iff AIValue is present and unresolved.
	HasAIUpdate bool `json:"hasAIUpdate,omitempty"`
	// AIUpdateTimestamp is the collaborator-supplied proposal timestamp
	// (milliseconds), zero when no proposal is pending.
	AIUpdateTimestamp int64 `json:"aiUpdateTimestamp,omitempty"`
}

// CellStyle holds formatting attributes of a cell. Every attribute is
// independently settable; merging a patch never clears unspecified keys.
type CellStyle struct {
	Bold            bool   `json:"bold,omitempty"`
	Italic          bool   `json:"italic,omitempty"`
	Underline       bool   `json:"underline,omitempty"`
	TextAlign       string `json:"textAlign,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontSize        int    `json:"fontSize,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
}

// StylePatch is a partial CellStyle. Nil fields are left untouched when the
// patch is merged into an existing style.
type StylePatch struct {
	Bold            *bool   `json:"bold,omitempty"`
	Italic          *bool   `json:"italic,omitempty"`
	Underline       *bool   `json:"underline,omitempty"`
	TextAlign       *string `json:"textAlign,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	FontSize        *int    `json:"fontSize,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`
}

// Merge returns a copy of base with the non-nil patch fields applied.
// A nil base starts from the zero style.
func (p StylePatch) Merge(base *CellStyle) *CellStyle {
	merged := CellStyle{}
	if base != nil {
		merged = *base
	}
	if p.Bold != nil {
		merged.Bold = *p.Bold
	}
	if p.Italic != nil {
		merged.Italic = *p.Italic
	}
	if p.Underline != nil {
		merged.Underline = *p.Underline
	}
	if p.TextAlign != nil {
		merged.TextAlign = *p.TextAlign
	}
	if p.TextColor != nil {
		merged.TextColor = *p.TextColor
	}
	if p.BackgroundColor != nil {
		merged.BackgroundColor = *p.BackgroundColor
	}
	if p.FontSize != nil {
		merged.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		merged.FontFamily = *p.FontFamily
	}
	return &merged
}

// Write returns a copy of the cell with Value replaced. Style and the
// AI-overlay fields are preserved.
func (c Cell) Write(value interface{}) Cell {
	c.Value = value
	return c
}

// Resolved returns a copy of the cell with the AI-overlay fields cleared.
// When accept is true the proposed value becomes the cell value.
func (c Cell) Resolved(accept bool) Cell {
	if accept {
		c.Value = c.AIValue
	}
	c.OriginalValue = nil
	c.AIValue = nil
	c.HasAIUpdate = false
	c.AIUpdateTimestamp = 0
	return c
}

// AIUpdate is the input DTO of one AI-suggested cell edit, produced by an
// external assistant collaborator and consumed as a batch.
type AIUpdate struct {
	// CellID is the target coordinate (e.g. "B2") on the active sheet.
	CellID string `json:"cellId"`
	// OriginalValue is the value the collaborator observed before suggesting.
	OriginalValue interface{} `json:"originalValue"`
	// AIValue is the suggested replacement value.
	AIValue interface{} `json:"aiValue"`
	// Timestamp is the proposal time in milliseconds.
	Timestamp int64 `json:"timestamp"`
	// Reasoning is free text for UI display; the engine never interprets it.
	Reasoning string `json:"reasoning,omitempty"`
}
