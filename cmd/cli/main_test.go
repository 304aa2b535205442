package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDescriptor = `
name = "r.viewshed.points"

module {
  description = "Computes viewshed at vector points."
  keywords    = ["raster", "viewshed"]
}

option "elevation" {
  type        = "text"
  description = "Name of input elevation raster map"
  key_hint    = "name"
}

option "max_distance" {
  type    = "double"
  default = -1
}

flag "c" {
  description = "Consider the curvature of the earth"
}
`

// writeTestDescriptor creates a descriptor file in a temp dir and returns
// its path.
func writeTestDescriptor(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewshed.hcl")
	require.NoError(t, os.WriteFile(path, []byte(testDescriptor), 0600))
	return path
}

func TestRun_ResolvesToShellAssignments(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeTestDescriptor(t)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{path, "--", "elevation=dem", "-c"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "GIS_OPT_ELEVATION='dem'")
	assert.Contains(t, out.String(), "GIS_OPT_MAX_DISTANCE='-1'")
	assert.Contains(t, out.String(), "GIS_FLAG_C=1")
	assert.Contains(t, out.String(), "GIS_FLAG_OVERWRITE=0")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ScriptValidationFailure(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeTestDescriptor(t)
	out := &bytes.Buffer{}

	// --- Act ---
	// elevation is required; supplying only the flag must fail.
	err := run(out, &bytes.Buffer{}, []string{path, "--", "-c"})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "elevation")
}

func TestRun_BrokenDescriptor(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`option "input" {`), 0600))

	// --- Act ---
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load descriptor")
}
