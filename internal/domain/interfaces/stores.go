package interfaces

import domaintypes "tally/internal/domain/types"

// CounterStore owns the ordered in-memory collection of counters and its file image.
type CounterStore interface {
	// Add appends a counter and returns its reference.
	Add(name domaintypes.CounterName, value int64) (domaintypes.CounterRef, error)
	Increment(ref domaintypes.CounterRef) (domaintypes.CounterView, error)
	Decrement(ref domaintypes.CounterRef) (domaintypes.CounterView, error)

	Get(ref domaintypes.CounterRef) (domaintypes.CounterView, bool)
	// Find returns the first counter, in order, with the given name.
	Find(name domaintypes.CounterName) (domaintypes.CounterView, bool)
	Counters() []domaintypes.CounterView

	// Save rewrites the whole collection to path.
	Save(path string) error
	// Dirty reports whether the collection changed since the last successful save.
	Dirty() bool
}
