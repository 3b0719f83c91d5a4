package reducer

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the action targeted a sheet id that does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrCellNotFound indicates the action targeted a cell with no pending state to act on.
var ErrCellNotFound = errors.New("cell not found")

// ErrChartNotFound indicates the action targeted a chart id that does not exist.
var ErrChartNotFound = errors.New("chart not found")

// ErrLastSheet indicates an attempt to remove the only remaining sheet.
var ErrLastSheet = errors.New("cannot remove the last sheet")

// ErrNoPendingUpdate indicates the targeted cell has no unresolved AI proposal.
var ErrNoPendingUpdate = errors.New("no pending AI update")

// ErrNoBackup indicates there is no AI-session backup to restore.
var ErrNoBackup = errors.New("no original state backup")

// ErrBadCoordinate indicates a cell id that does not parse as a coordinate.
var ErrBadCoordinate = errors.New("invalid cell coordinate")

// ErrUnknownAction indicates an action type the reducer does not recognize.
var ErrUnknownAction = errors.New("unknown action")

// Rejected reports why an action left the document unchanged. Apply is total:
// a rejected action returns the input document together with this error, so
// callers can distinguish "nothing to do" from "request was invalid".
type Rejected struct {
	Action string
	Target string
	Err    error
}

func (e *Rejected) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s rejected: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("%s rejected for %q: %v", e.Action, e.Target, e.Err)
}

func (e *Rejected) Unwrap() error {
	return e.Err
}

func reject(action Action, target string, err error) *Rejected {
	return &Rejected{Action: action.Type(), Target: target, Err: err}
}
