package main

import (
	"bytes"
	"testing"

	"github.com/vk/gisparse/descriptor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// No platform command runs on the help path, so this works without a
	// GIS installation.
	out := &bytes.Buffer{}

	err := run(out, []string{"--help"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "elevation=name")
}

func TestRun_MissingRequired(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"-c"})

	var missing *descriptor.MissingRequiredOptionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "elevation", missing.Key)
}

func TestCountVisible(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1240", countVisible("0 55802\n1 1240"))
	assert.Equal(t, "0", countVisible("0 55802"))
}
