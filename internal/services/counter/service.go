package counter

import (
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"tally/internal/domain"
	"tally/internal/store"
)

const (
	defaultSaveAttempts = 3
	defaultSaveDelay    = 50 * time.Millisecond
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *zerolog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSaveRetry sets how many times a save is attempted and the pause between attempts.
func WithSaveRetry(attempts uint, delay time.Duration) Option {
	return func(s *Service) {
		if attempts < 1 {
			attempts = 1
		}
		s.attempts = attempts
		s.delay = delay
	}
}

// Service pairs each counter mutation with a save of the whole collection.
type Service struct {
	store    domain.CounterStore
	path     string
	log      *zerolog.Logger
	attempts uint
	delay    time.Duration
}

// New returns a counter service writing store to path after every mutation.
func New(s domain.CounterStore, path string, opts ...Option) *Service {
	nop := zerolog.Nop()
	svc := &Service{
		store:    s,
		path:     path,
		log:      &nop,
		attempts: defaultSaveAttempts,
		delay:    defaultSaveDelay,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Add appends a counter and saves.
func (s *Service) Add(name domain.CounterName, value int64) (domain.CounterView, error) {
	ref, err := s.store.Add(name, value)
	if err != nil {
		return domain.CounterView{}, err
	}
	v, _ := s.store.Get(ref)
	s.log.Info().Str("name", name.String()).Int64("value", value).Msg("counter added")
	return v, s.persist()
}

// AddEntry adds a counter from "Name|Value" prompt input and saves.
func (s *Service) AddEntry(input string) (domain.CounterView, error) {
	name, value, err := store.ParseEntry(input)
	if err != nil {
		return domain.CounterView{}, err
	}
	return s.Add(name, value)
}

// Increment adds one to the referenced counter and saves.
func (s *Service) Increment(ref domain.CounterRef) (domain.CounterView, error) {
	v, err := s.store.Increment(ref)
	if err != nil {
		return domain.CounterView{}, err
	}
	return v, s.persist()
}

// Decrement subtracts one from the referenced counter and saves.
func (s *Service) Decrement(ref domain.CounterRef) (domain.CounterView, error) {
	v, err := s.store.Decrement(ref)
	if err != nil {
		return domain.CounterView{}, err
	}
	return v, s.persist()
}

// Get returns the referenced counter.
func (s *Service) Get(ref domain.CounterRef) (domain.CounterView, bool) {
	return s.store.Get(ref)
}

// Find returns the first counter named name.
func (s *Service) Find(name domain.CounterName) (domain.CounterView, bool) {
	return s.store.Find(name)
}

// List returns every counter in display order.
func (s *Service) List() []domain.CounterView {
	return s.store.Counters()
}

// Flush saves the collection if it has unsaved changes.
func (s *Service) Flush() error {
	if !s.store.Dirty() {
		return nil
	}
	return s.persist()
}

func (s *Service) persist() error {
	err := retry.Do(
		func() error { return s.store.Save(s.path) },
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warn().Err(err).Uint("attempt", n+1).Str("path", s.path).Msg("retrying counters save")
		}),
	)
	if err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("counters not saved; changes kept in memory")
		return errors.WithMessage(err, "counter changed but not saved")
	}
	return nil
}

// Compile-time assertion that Service implements domain.CounterService.
var _ domain.CounterService = (*Service)(nil)
