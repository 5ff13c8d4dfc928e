package store

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"tally/internal/domain"
	"tally/internal/util/memzero"
)

// Option configures a CounterFileStore.
type Option func(*CounterFileStore)

// WithLogger sets the logger used to report skipped records and saves.
func WithLogger(log *zerolog.Logger) Option {
	return func(s *CounterFileStore) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPassphrase seals the counters file with a key derived from passphrase.
// An empty passphrase keeps the plain text layout.
func WithPassphrase(passphrase string) Option {
	return func(s *CounterFileStore) { s.passphrase = passphrase }
}

// WithClock overrides the time source used for counter references.
func WithClock(now func() time.Time) Option {
	return func(s *CounterFileStore) { s.now = now }
}

// CounterFileStore keeps an ordered collection of counters and writes it to a
// single file. Insertion order is display order and file order.
type CounterFileStore struct {
	path       string
	passphrase string
	log        *zerolog.Logger
	now        func() time.Time

	mu       sync.Mutex
	order    []domain.CounterRef
	counters map[domain.CounterRef]*domain.Counter
	refs     *refGenerator
	dirty    bool
}

// New returns an empty store associated with path. Nothing is read or written.
func New(path string, opts ...Option) *CounterFileStore {
	nop := zerolog.Nop()
	s := &CounterFileStore{
		path:     path,
		log:      &nop,
		now:      time.Now,
		counters: make(map[domain.CounterRef]*domain.Counter),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refs = newRefGenerator(s.now)
	return s
}

// Load reads the counters file at path. A missing file yields an empty store.
// Malformed records are logged and skipped; an unreadable file is an *domain.IOError.
func Load(path string, opts ...Option) (*CounterFileStore, error) {
	s := New(path, opts...)

	data, ok, err := readFile(path)
	if err != nil {
		return nil, &domain.IOError{Op: "load", Path: path, Err: errors.Wrap(err, "read counters file")}
	}
	if !ok {
		s.log.Debug().Str("path", path).Msg("no counters file yet")
		return s, nil
	}

	switch sealed := looksSealed(data); {
	case sealed && s.passphrase == "":
		return nil, &domain.IOError{Op: "load", Path: path, Err: domain.ErrPassphraseRequired}
	case sealed:
		doc, err := open(s.passphrase, data)
		if err != nil {
			return nil, &domain.IOError{Op: "load", Path: path, Err: errors.Wrap(err, "open sealed counters file")}
		}
		defer memzero.Zero(doc)
		data = doc
	case s.passphrase != "" && len(data) > 0:
		s.log.Info().Str("path", path).Msg("counters file is not sealed yet; next save seals it")
		s.dirty = true
	}

	counters, skips, format := decodeRecords(data)
	for _, sk := range skips {
		s.log.Warn().Str("path", path).Int("line", sk.line).Str("reason", sk.reason).Msg("skipped malformed counter record")
	}
	for i := range counters {
		s.appendLocked(counters[i])
	}
	if format == formatPairs {
		s.log.Info().Str("path", path).Msg("read legacy two-line counters file; next save rewrites it")
		s.dirty = true
	}
	s.log.Debug().Str("path", path).Int("count", len(counters)).Str("format", format.String()).Msg("loaded counters")
	return s, nil
}

// Path returns the file the store was created for.
func (s *CounterFileStore) Path() string { return s.path }

// Add appends a counter with the given name and value. Duplicate names are kept.
func (s *CounterFileStore) Add(name domain.CounterName, value int64) (domain.CounterRef, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := s.appendLocked(domain.Counter{Name: name, Value: value})
	s.dirty = true
	return ref, nil
}

// AddText is Add for raw user input; value must parse as a base 10 integer.
func (s *CounterFileStore) AddText(name, value string) (domain.CounterRef, error) {
	if err := ValidateName(domain.CounterName(name)); err != nil {
		return "", err
	}
	v, err := ParseValue(value)
	if err != nil {
		return "", err
	}
	return s.Add(domain.CounterName(name), v)
}

// Increment adds one to the referenced counter.
func (s *CounterFileStore) Increment(ref domain.CounterRef) (domain.CounterView, error) {
	return s.mutate(ref, (*domain.Counter).Increment)
}

// Decrement subtracts one from the referenced counter.
func (s *CounterFileStore) Decrement(ref domain.CounterRef) (domain.CounterView, error) {
	return s.mutate(ref, (*domain.Counter).Decrement)
}

func (s *CounterFileStore) mutate(ref domain.CounterRef, fn func(*domain.Counter)) (domain.CounterView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[ref]
	if !ok {
		return domain.CounterView{}, errors.Wrapf(domain.ErrNotFound, "ref %s", ref)
	}
	fn(c)
	s.dirty = true
	return view(ref, c), nil
}

// Get returns a snapshot of the referenced counter.
func (s *CounterFileStore) Get(ref domain.CounterRef) (domain.CounterView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[ref]
	if !ok {
		return domain.CounterView{}, false
	}
	return view(ref, c), true
}

// Find returns the first counter, in order, named name.
func (s *CounterFileStore) Find(name domain.CounterName) (domain.CounterView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ref := range s.order {
		if c := s.counters[ref]; c.Name == name {
			return view(ref, c), true
		}
	}
	return domain.CounterView{}, false
}

// At returns the counter at zero-based position i.
func (s *CounterFileStore) At(i int) (domain.CounterView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.order) {
		return domain.CounterView{}, false
	}
	ref := s.order[i]
	return view(ref, s.counters[ref]), true
}

// Counters returns snapshots of all counters in order.
func (s *CounterFileStore) Counters() []domain.CounterView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CounterView, 0, len(s.order))
	for _, ref := range s.order {
		out = append(out, view(ref, s.counters[ref]))
	}
	return out
}

// Len returns the number of counters.
func (s *CounterFileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Dirty reports whether there are changes not yet written by Save.
func (s *CounterFileStore) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Save replaces the file at path with the complete current collection.
// On failure the previous file is left untouched and the store stays dirty.
func (s *CounterFileStore) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Counter, 0, len(s.order))
	for _, ref := range s.order {
		snapshot = append(snapshot, *s.counters[ref])
	}
	data := encodeRecords(snapshot)

	if s.passphrase != "" {
		sealed, err := seal(s.passphrase, data)
		if err != nil {
			return &domain.IOError{Op: "save", Path: path, Err: errors.Wrap(err, "seal counters file")}
		}
		data = sealed
	}

	if err := writeFile(path, data, fileMode); err != nil {
		return &domain.IOError{Op: "save", Path: path, Err: errors.Wrap(err, "write counters file")}
	}
	s.dirty = false
	s.log.Debug().Str("path", path).Int("count", len(snapshot)).Msg("saved counters")
	return nil
}

func (s *CounterFileStore) appendLocked(c domain.Counter) domain.CounterRef {
	ref := s.refs.next()
	s.order = append(s.order, ref)
	s.counters[ref] = &c
	return ref
}

func view(ref domain.CounterRef, c *domain.Counter) domain.CounterView {
	return domain.CounterView{Ref: ref, Name: c.Name, Value: c.Value}
}

// Compile-time assertion that CounterFileStore implements domain.CounterStore.
var _ domain.CounterStore = (*CounterFileStore)(nil)
