package sheetdoc

import "errors"

// ErrNothingToUndo indicates the history index is already at the initial state.
var ErrNothingToUndo = errors.New("nothing to undo")

// ErrNothingToRedo indicates there is no undone snapshot ahead of the index.
var ErrNothingToRedo = errors.New("nothing to redo")
