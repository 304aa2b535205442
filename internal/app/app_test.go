package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescriptor = `
name = "r.viewshed.points"

module {
  description = "Computes viewshed at vector points."
}

option "elevation" {
  key_hint = "name"
}

option "max_distance" {
  type    = "double"
  default = -1
}

option "layers" {
  type     = "integer"
  multiple = true
  required = false
}

flag "c" {
  description = "Consider the curvature of the earth"
}
`

// newTestApp writes the sample descriptor to disk and builds an App around
// it with the given script args.
func newTestApp(t *testing.T, format string, scriptArgs ...string) (*App, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewshed.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleDescriptor), 0600))

	cfg, err := NewConfig(Config{
		DescriptorPath: path,
		Format:         format,
		LogFormat:      "text",
		LogLevel:       "error",
		ScriptArgs:     scriptArgs,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a, err := New(out, &bytes.Buffer{}, cfg)
	require.NoError(t, err)
	return a, out
}

func TestNewConfig_RequiresDescriptorPath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})

	require.Error(t, err)
}

func TestNew_DescriptorDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tool.hcl"), []byte(sampleDescriptor), 0600))
	cfg, err := NewConfig(Config{DescriptorPath: dir, Format: "shell", LogLevel: "error"})
	require.NoError(t, err)

	a, err := New(&bytes.Buffer{}, &bytes.Buffer{}, cfg)

	require.NoError(t, err)
	assert.Equal(t, "r.viewshed.points", a.Interface().Name())
}

func TestRun_ShellEmission(t *testing.T) {
	t.Parallel()
	a, out := newTestApp(t, "shell", "elevation=dem", "layers=1,2", "-c", "--overwrite")

	err := a.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "GIS_OPT_ELEVATION='dem'\n"+
		"GIS_OPT_MAX_DISTANCE='-1'\n"+
		"GIS_OPT_LAYERS='1,2'\n"+
		"GIS_FLAG_C=1\n"+
		"GIS_FLAG_OVERWRITE=1\n", out.String())
}

func TestRun_ShellQuoting(t *testing.T) {
	t.Parallel()
	a, out := newTestApp(t, "shell", "elevation=dem's;rm")

	err := a.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), `GIS_OPT_ELEVATION='dem'\''s;rm'`)
}

func TestRun_JSONEmission(t *testing.T) {
	t.Parallel()
	a, out := newTestApp(t, "json", "elevation=dem", "layers=1,2", "-c")

	err := a.Run(context.Background())

	require.NoError(t, err)
	var doc struct {
		Module    string          `json:"module"`
		Options   map[string]any  `json:"options"`
		Flags     map[string]bool `json:"flags"`
		Overwrite bool            `json:"overwrite"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "r.viewshed.points", doc.Module)
	assert.Equal(t, "dem", doc.Options["elevation"])
	assert.Equal(t, -1.0, doc.Options["max_distance"])
	assert.Equal(t, []any{1.0, 2.0}, doc.Options["layers"])
	assert.True(t, doc.Flags["c"])
	assert.False(t, doc.Overwrite)
}

func TestRun_HelpEmitsUsageOnly(t *testing.T) {
	t.Parallel()
	a, out := newTestApp(t, "shell", "--help")

	err := a.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.NotContains(t, out.String(), "GIS_OPT_")
}

func TestRun_ValidationFailure(t *testing.T) {
	t.Parallel()
	a, _ := newTestApp(t, "shell", "max_distance=abc", "elevation=dem")

	err := a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_distance")
	assert.Contains(t, err.Error(), "abc")
}
