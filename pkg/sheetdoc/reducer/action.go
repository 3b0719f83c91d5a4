// Package reducer implements the action vocabulary and the pure transition
// function of the spreadsheet document state.
package reducer

import (
	"github.com/takara2/sheetdoc-go/pkg/sheetdoc/models"
)

// Action is an immutable description of one requested state transition.
// The concrete types below form the whole mutation surface of the engine.
type Action interface {
	// Type returns the wire name of the action, used by the JSON codec.
	Type() string
}

// Action wire names.
const (
	TypeAddSheet              = "addSheet"
	TypeAddSheetFromRows      = "addSheetFromRows"
	TypeRemoveSheet           = "removeSheet"
	TypeSetActiveSheet        = "setActiveSheet"
	TypeUpdateExistingSheet   = "updateExistingSheet"
	TypeUpdateCell            = "updateCell"
	TypeBulkUpdateCells       = "bulkUpdateCells"
	TypeLoadRows              = "loadRows"
	TypeFormatCells           = "formatCells"
	TypeAddMoreRows           = "addMoreRows"
	TypeAddChart              = "addChart"
	TypeUpdateChart           = "updateChart"
	TypeRemoveChart           = "removeChart"
	TypeToggleAIMode          = "toggleAIMode"
	TypeToggleTheme           = "toggleTheme"
	TypeCreateAIUpdates       = "createAIUpdates"
	TypeAcceptAIUpdate        = "acceptAIUpdate"
	TypeRejectAIUpdate        = "rejectAIUpdate"
	TypeAcceptAllAIUpdates    = "acceptAllAIUpdates"
	TypeRejectAllAIUpdates    = "rejectAllAIUpdates"
	TypeAcceptColumnAIUpdates = "acceptColumnAIUpdates"
	TypeRejectColumnAIUpdates = "rejectColumnAIUpdates"
	TypeAcceptRowAIUpdates    = "acceptRowAIUpdates"
	TypeRejectRowAIUpdates    = "rejectRowAIUpdates"
	TypeRestoreOriginalState  = "restoreOriginalState"
	TypeSetState              = "setState"
)

// AddSheet appends an empty sheet named "Sheet {n+1}" and makes it active.
type AddSheet struct{}

func (AddSheet) Type() string { return TypeAddSheet }

// AddSheetFromRows builds a sheet from already-parsed CSV/XLSX rows,
// populates its cells positionally, and makes it active.
type AddSheetFromRows struct {
	Rows [][]string `json:"rows"`
	// Name overrides the generated sheet name when non-empty.
	Name string `json:"name,omitempty"`
}

func (AddSheetFromRows) Type() string { return TypeAddSheetFromRows }

// RemoveSheet deletes a sheet by id. Removing the last sheet is rejected.
type RemoveSheet struct {
	SheetID string `json:"sheetId"`
}

func (RemoveSheet) Type() string { return TypeRemoveSheet }

// SetActiveSheet switches focus to a sheet without mutating content.
type SetActiveSheet struct {
	SheetID string `json:"sheetId"`
}

func (SetActiveSheet) Type() string { return TypeSetActiveSheet }

// UpdateExistingSheet replaces only the supplied fields of one sheet in
// place, used by out-of-band rehydration.
type UpdateExistingSheet struct {
	SheetID string            `json:"sheetId"`
	Patch   models.SheetPatch `json:"patch"`
}

func (UpdateExistingSheet) Type() string { return TypeUpdateExistingSheet }

// CellWrite is one cell assignment of a bulk update.
type CellWrite struct {
	CellID string      `json:"cellId"`
	Value  interface{} `json:"value"`
}

// UpdateCell creates or updates a single cell of the active sheet,
// preserving style and AI-overlay fields.
type UpdateCell struct {
	CellID string      `json:"cellId"`
	Value  interface{} `json:"value"`
}

func (UpdateCell) Type() string { return TypeUpdateCell }

// BulkUpdateCells applies UpdateCell semantics to many cells in one
// transition.
type BulkUpdateCells struct {
	Writes []CellWrite `json:"writes"`
}

func (BulkUpdateCells) Type() string { return TypeBulkUpdateCells }

// LoadRows replaces all cells of the active sheet from a 2D array. Cells
// that already existed keep their AI-overlay fields.
type LoadRows struct {
	Rows [][]string `json:"rows"`
}

func (LoadRows) Type() string { return TypeLoadRows }

// FormatCells merges a style patch into each named cell of the active
// sheet, creating missing cells with an empty value.
type FormatCells struct {
	CellIDs []string          `json:"cellIds"`
	Style   models.StylePatch `json:"style"`
}

func (FormatCells) Type() string { return TypeFormatCells }

// AddMoreRows grows the active sheet's row extent by one step, clamped at
// the row ceiling.
type AddMoreRows struct{}

func (AddMoreRows) Type() string { return TypeAddMoreRows }

// AddChart appends a chart with a freshly generated id.
type AddChart struct {
	Chart models.Chart `json:"chart"`
}

func (AddChart) Type() string { return TypeAddChart }

// UpdateChart shallow-merges a patch into a chart by id.
type UpdateChart struct {
	ChartID string            `json:"chartId"`
	Patch   models.ChartPatch `json:"patch"`
}

func (UpdateChart) Type() string { return TypeUpdateChart }

// RemoveChart deletes a chart by id.
type RemoveChart struct {
	ChartID string `json:"chartId"`
}

func (RemoveChart) Type() string { return TypeRemoveChart }

// ToggleAIMode flips the AI-mode UI flag.
type ToggleAIMode struct{}

func (ToggleAIMode) Type() string { return TypeToggleAIMode }

// ToggleTheme flips the dark-mode UI flag.
type ToggleTheme struct{}

func (ToggleTheme) Type() string { return TypeToggleTheme }

// CreateAIUpdates applies a batch of AI-suggested edits to the active sheet
// as pending overlays.
type CreateAIUpdates struct {
	Updates []models.AIUpdate `json:"updates"`
}

func (CreateAIUpdates) Type() string { return TypeCreateAIUpdates }

// AcceptAIUpdate resolves one pending proposal on the active sheet, taking
// the suggested value.
type AcceptAIUpdate struct {
	CellID string `json:"cellId"`
}

func (AcceptAIUpdate) Type() string { return TypeAcceptAIUpdate }

// RejectAIUpdate resolves one pending proposal on the active sheet, keeping
// the current value.
type RejectAIUpdate struct {
	CellID string `json:"cellId"`
}

func (RejectAIUpdate) Type() string { return TypeRejectAIUpdate }

// AcceptAllAIUpdates accepts every pending proposal on the active sheet.
type AcceptAllAIUpdates struct{}

func (AcceptAllAIUpdates) Type() string { return TypeAcceptAllAIUpdates }

// RejectAllAIUpdates rejects every pending proposal on the active sheet.
type RejectAllAIUpdates struct{}

func (RejectAllAIUpdates) Type() string { return TypeRejectAllAIUpdates }

// AcceptColumnAIUpdates accepts pending proposals whose parsed column equals
// Column exactly.
type AcceptColumnAIUpdates struct {
	Column string `json:"column"`
}

func (AcceptColumnAIUpdates) Type() string { return TypeAcceptColumnAIUpdates }

// RejectColumnAIUpdates rejects pending proposals whose parsed column equals
// Column exactly.
type RejectColumnAIUpdates struct {
	Column string `json:"column"`
}

func (RejectColumnAIUpdates) Type() string { return TypeRejectColumnAIUpdates }

// AcceptRowAIUpdates accepts pending proposals whose parsed row equals Row.
type AcceptRowAIUpdates struct {
	Row int `json:"row"`
}

func (AcceptRowAIUpdates) Type() string { return TypeAcceptRowAIUpdates }

// RejectRowAIUpdates rejects pending proposals whose parsed row equals Row.
type RejectRowAIUpdates struct {
	Row int `json:"row"`
}

func (RejectRowAIUpdates) Type() string { return TypeRejectRowAIUpdates }

// RestoreOriginalState replaces all sheets with the AI-session backup and
// discards every pending proposal.
type RestoreOriginalState struct{}

func (RestoreOriginalState) Type() string { return TypeRestoreOriginalState }

// SetState replaces the whole document wholesale. Internal: the history
// manager uses it for undo/redo and never records it.
type SetState struct {
	Document models.Document `json:"document"`
}

func (SetState) Type() string { return TypeSetState }
