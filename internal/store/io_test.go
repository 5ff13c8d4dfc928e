package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_ReplacesAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "counters.txt")

	require.NoError(t, writeFile(path, []byte("a|1\n"), fileMode))
	require.NoError(t, writeFile(path, []byte("b|2\n"), fileMode))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b|2\n", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestReadFile_Missing(t *testing.T) {
	b, ok, err := readFile(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
}
