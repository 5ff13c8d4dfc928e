package store

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"tally/internal/domain"
)

// refGenerator hands out monotonically increasing ULID references.
// It is not safe for concurrent use; the store serialises access.
type refGenerator struct {
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

func newRefGenerator(now func() time.Time) *refGenerator {
	t := now()
	return &refGenerator{
		now:     now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0), // #nosec G404 -- refs are not secrets
	}
}

func (g *refGenerator) next() domain.CounterRef {
	return domain.CounterRef(ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String())
}
