package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a counter name or value is rejected.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a reference does not identify a live counter.
	ErrNotFound = errors.New("counter not found")
	// ErrWrongPassphrase is returned when a sealed counters file cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted counters file")
	// ErrPassphraseRequired is returned when a sealed counters file is loaded without a passphrase.
	ErrPassphraseRequired = errors.New("counters file is sealed; passphrase required")
)

// IOError reports a failure to read or write the counters file.
// A file that does not exist is never reported as an IOError on load.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error { return e.Err }
