package domain

import (
	interfaces "tally/internal/domain/interfaces"
	types "tally/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CounterRef  = types.CounterRef
	CounterName = types.CounterName
	Counter     = types.Counter
	CounterView = types.CounterView
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CounterStore   = interfaces.CounterStore
	CounterService = interfaces.CounterService
)

// NewCounter re-exports types.NewCounter.
func NewCounter(name CounterName) Counter { return types.NewCounter(name) }
