package interfaces

import domaintypes "tally/internal/domain/types"

// CounterService applies a mutation and persists the collection in one call.
type CounterService interface {
	Add(name domaintypes.CounterName, value int64) (domaintypes.CounterView, error)
	AddEntry(input string) (domaintypes.CounterView, error)
	Increment(ref domaintypes.CounterRef) (domaintypes.CounterView, error)
	Decrement(ref domaintypes.CounterRef) (domaintypes.CounterView, error)

	Get(ref domaintypes.CounterRef) (domaintypes.CounterView, bool)
	Find(name domaintypes.CounterName) (domaintypes.CounterView, bool)
	List() []domaintypes.CounterView

	// Flush persists the collection if it has unsaved changes.
	Flush() error
}
