package app

import "tally/internal/domain"

// App is the handle commands use to reach the counter service.
type App struct {
	Counters domain.CounterService
	Path     string
}

// New returns an App over an already wired service.
func New(counters domain.CounterService, path string) *App {
	return &App{Counters: counters, Path: path}
}

// FromWire builds an App from a Wire.
func FromWire(w *Wire) *App { return New(w.Counters, w.Path) }
