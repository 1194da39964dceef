package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiter-joe/Computing-in-CEE/bisect"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// TestCLI_Bisect solves the stock √2 problem from an expression flag.
func TestCLI_Bisect(t *testing.T) {
	out, err := execute(t, "bisect", "--func", "pow(x, 2) - 2", "--a", "0", "--b", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "root = 1.414")
}

// TestCLI_Bisect_InvalidBracket surfaces the solver's sentinel as a
// command failure: the expression compiles fine, and the error must be
// the bracket rejection itself, not some earlier parse fault.
func TestCLI_Bisect_InvalidBracket(t *testing.T) {
	_, err := execute(t, "bisect", "--func", "pow(x, 2) + 1", "--a", "-1", "--b", "1")
	assert.ErrorIs(t, err, bisect.ErrInvalidBracket)
}

// TestCLI_Secant solves cos(x) = x from two guesses.
func TestCLI_Secant(t *testing.T) {
	out, err := execute(t, "secant", "--func", "cos(x) - x", "--x0", "0", "--x1", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "root = 0.739")
}

// TestCLI_Linsolve reads a YAML system and solves it: the 2×2 system
// 2x+y=5, x-y=1 has the exact solution (2, 1).
func TestCLI_Linsolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	yml := "a:\n  - [2, 1]\n  - [1, -1]\nb: [5, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	out, err := execute(t, "linsolve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "x[0] = 2")
	assert.Contains(t, out, "x[1] = 1")
}

// TestCLI_Linsolve_MissingFile fails cleanly on a bad path.
func TestCLI_Linsolve_MissingFile(t *testing.T) {
	_, err := execute(t, "linsolve", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
