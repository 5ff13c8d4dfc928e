package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"tally/internal/domain"
	countersvc "tally/internal/services/counter"
	"tally/internal/store"
)

// Wire bundles the store, service and logger for the CLI.
type Wire struct {
	Store    domain.CounterStore
	Counters domain.CounterService
	Log      *zerolog.Logger
	Path     string
}

// NewWire loads the counters file and constructs the dependency graph from cfg.
// Log output goes to w; nil means stderr.
func NewWire(cfg Config, w io.Writer) (*Wire, error) {
	log := NewLogger(cfg.LogLevel, w)
	path := cfg.CountersPath()

	counterStore, err := store.Load(path,
		store.WithLogger(log),
		store.WithPassphrase(cfg.Passphrase),
	)
	if err != nil {
		return nil, err
	}

	svc := countersvc.New(counterStore, path,
		countersvc.WithLogger(log),
		countersvc.WithSaveRetry(cfg.SaveAttempts, cfg.SaveDelay),
	)

	return &Wire{
		Store:    counterStore,
		Counters: svc,
		Log:      log,
		Path:     path,
	}, nil
}

// NewLogger returns a console logger at level; unknown levels fall back to warn.
func NewLogger(level string, w io.Writer) *zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
	return &log
}
