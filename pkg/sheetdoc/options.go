package sheetdoc

// Options configures engine behavior.
type Options struct {
	// HistoryLimit is the maximum number of undo snapshots kept.
	// Non-positive means unbounded.
	HistoryLimit int
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{
		HistoryLimit: 100,
	}
}
