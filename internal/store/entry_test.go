package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
	"tally/internal/store"
)

func TestParseEntry(t *testing.T) {
	name, v, err := store.ParseEntry("Coffee|3")
	require.NoError(t, err)
	assert.Equal(t, domain.CounterName("Coffee"), name)
	assert.Equal(t, int64(3), v)

	for _, in := range []string{"", "   ", "Coffee", "|3", "  |3", "a|b|c", "Coffee|three"} {
		_, _, err := store.ParseEntry(in)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "input %q", in)
	}
}
