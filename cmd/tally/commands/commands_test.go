package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
)

func run(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TALLY_SAVE_ATTEMPTS", "1")
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_AddIncDecList(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "add", "Coffee", "3")
	require.NoError(t, err)
	assert.Equal(t, "Coffee: 3\n", out)

	_, err = run(t, home, "add", "Tea|0")
	require.NoError(t, err)

	out, err = run(t, home, "inc", "Coffee")
	require.NoError(t, err)
	assert.Equal(t, "Coffee: 4\n", out)

	out, err = run(t, home, "dec", "Tea")
	require.NoError(t, err)
	assert.Equal(t, "Tea: -1\n", out)

	out, err = run(t, home, "list")
	require.NoError(t, err)
	assert.Equal(t, "1. Coffee: 4\n2. Tea: -1\n", out)

	b, err := os.ReadFile(filepath.Join(home, "counters.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Coffee|4\nTea|-1\n", string(b))
}

func TestCLI_ListJSON(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "add", "A", "1")
	require.NoError(t, err)

	out, err := run(t, home, "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"A","value":1}]`, out)
}

func TestCLI_DuplicatesByPosition(t *testing.T) {
	home := t.TempDir()
	_, err := run(t, home, "add", "Dup", "1")
	require.NoError(t, err)
	_, err = run(t, home, "add", "Dup", "10")
	require.NoError(t, err)

	out, err := run(t, home, "inc", "--at", "2")
	require.NoError(t, err)
	assert.Equal(t, "Dup: 11\n", out)

	_, err = run(t, home, "inc", "--at", "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCLI_Errors(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "add", "  ", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = run(t, home, "add", "Coffee", "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = run(t, home, "inc", "Missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := run(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no counters yet")
}

func TestCLI_AddNegativeValue(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "add", "X", "-5")
	require.NoError(t, err)
	assert.Equal(t, "X: -5\n", out)

	b, err := os.ReadFile(filepath.Join(home, "counters.txt"))
	require.NoError(t, err)
	assert.Equal(t, "X|-5\n", string(b))
}
