package types

// CounterRef identifies one live counter inside a store for the lifetime of the process.
// Refs are assigned when a counter is loaded or added and are never persisted.
type CounterRef string

// String returns the string form of the reference.
func (r CounterRef) String() string { return string(r) }

// CounterName is the user-facing label of a counter. Names are not unique.
type CounterName string

// String returns the string form of the name.
func (n CounterName) String() string { return string(n) }
