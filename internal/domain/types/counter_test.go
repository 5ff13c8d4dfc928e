package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"tally/internal/domain/types"
)

func TestCounter_NewStartsAtZero(t *testing.T) {
	c := types.NewCounter("Coffee")
	assert.Equal(t, types.CounterName("Coffee"), c.Name)
	assert.Equal(t, int64(0), c.Value)
}

func TestCounter_IncrementDecrement(t *testing.T) {
	c := types.NewCounter("X")
	c.Increment()
	c.Increment()
	c.Increment()
	c.Decrement()
	assert.Equal(t, int64(2), c.Value)

	c.Decrement()
	c.Decrement()
	c.Decrement()
	assert.Equal(t, int64(-1), c.Value)
}

func TestCounter_Saturates(t *testing.T) {
	hi := types.Counter{Name: "hi", Value: math.MaxInt64}
	hi.Increment()
	assert.Equal(t, int64(math.MaxInt64), hi.Value)

	lo := types.Counter{Name: "lo", Value: math.MinInt64}
	lo.Decrement()
	assert.Equal(t, int64(math.MinInt64), lo.Value)
}
