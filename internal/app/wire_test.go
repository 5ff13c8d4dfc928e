package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/app"
)

func TestNewWire_LoadsAndPersists(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "counters.txt")
	require.NoError(t, os.WriteFile(path, []byte("Coffee|3\nbroken\n"), 0o600))

	var logs bytes.Buffer
	w, err := app.NewWire(app.Config{Home: home, File: "counters.txt", LogLevel: "warn", SaveAttempts: 1}, &logs)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path)
	assert.Contains(t, logs.String(), "skipped malformed counter record")

	list := w.Counters.List()
	require.Len(t, list, 1)
	_, err = w.Counters.Increment(list[0].Ref)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Coffee|4\n", string(b))
}
