package models

// Chart type names accepted by the engine. The list mirrors what the
// presentation layer can draw; the engine treats the value as opaque.
const (
	ChartTypeBar  = "bar"
	ChartTypeLine = "line"
	ChartTypePie  = "pie"
	ChartTypeArea = "area"
)

// SeriesPoint is one materialized data point of a chart series.
type SeriesPoint struct {
	// Name is the point label (usually a row header value).
	Name string `json:"name"`
	// Value is the numeric value of the point.
	Value float64 `json:"value"`
}

// Chart represents chart metadata and its materialized data. Charts live on
// the document, independent of any sheet.
type Chart struct {
	// ID uniquely identifies the chart within a document.
	ID string `json:"id"`
	// Type is the chart type (bar, line, pie, area).
	Type string `json:"type"`
	// Title is the chart title.
	Title string `json:"title"`
	// Data is the materialized series.
	Data []SeriesPoint `json:"data"`
	// Minimized is true when the chart is collapsed in the UI.
	Minimized bool `json:"minimized,omitempty"`
	// L is the left offset in pixels (presentation-owned).
	L int `json:"l,omitempty"`
	// T is the top offset in pixels (presentation-owned).
	T int `json:"t,omitempty"`
	// W is the chart width in pixels (presentation-owned).
	W int `json:"w,omitempty"`
	// H is the chart height in pixels (presentation-owned).
	H int `json:"h,omitempty"`
}

// ChartPatch is a partial chart update. Nil fields leave the corresponding
// chart field untouched.
type ChartPatch struct {
	Type      *string       `json:"type,omitempty"`
	Title     *string       `json:"title,omitempty"`
	Data      []SeriesPoint `json:"data,omitempty"`
	Minimized *bool         `json:"minimized,omitempty"`
	L         *int          `json:"l,omitempty"`
	T         *int          `json:"t,omitempty"`
	W         *int          `json:"w,omitempty"`
	H         *int          `json:"h,omitempty"`
}

// Merge returns a copy of the chart with the non-nil patch fields applied.
func (p ChartPatch) Merge(c Chart) Chart {
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Data != nil {
		c.Data = p.Data
	}
	if p.Minimized != nil {
		c.Minimized = *p.Minimized
	}
	if p.L != nil {
		c.L = *p.L
	}
	if p.T != nil {
		c.T = *p.T
	}
	if p.W != nil {
		c.W = *p.W
	}
	if p.H != nil {
		c.H = *p.H
	}
	return c
}
