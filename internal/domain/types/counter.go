package types

import "math"

// Counter is a named signed integer value.
//
// Arithmetic saturates at the int64 bounds instead of wrapping.
type Counter struct {
	Name  CounterName `json:"name"`
	Value int64       `json:"value"`
}

// NewCounter returns a counter named name with a zero value.
//
// The name is not validated here; callers check it before construction.
func NewCounter(name CounterName) Counter {
	return Counter{Name: name}
}

// Increment adds one to the value, stopping at math.MaxInt64.
func (c *Counter) Increment() {
	if c.Value < math.MaxInt64 {
		c.Value++
	}
}

// Decrement subtracts one from the value, stopping at math.MinInt64.
func (c *Counter) Decrement() {
	if c.Value > math.MinInt64 {
		c.Value--
	}
}

// CounterView is a read-only snapshot of a stored counter handed to UI callers.
type CounterView struct {
	Ref   CounterRef  `json:"-"`
	Name  CounterName `json:"name"`
	Value int64       `json:"value"`
}
