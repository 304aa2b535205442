package descriptor

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RequiredAndDefaultResolved(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	res, err := iface.Parse([]string{"elevation=dem", "-c"})

	require.NoError(t, err)
	require.False(t, res.HelpShown())
	assert.Equal(t, "dem", res.String("elevation"))
	assert.Equal(t, -1.0, res.Double("max_distance"))
	assert.True(t, res.Flag('c'))
	assert.False(t, res.Overwrite())
}

func TestParse_MissingRequiredOption(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"-c"})

	var missing *MissingRequiredOptionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "elevation", missing.Key)
}

func TestParse_TypeCoercionFailure(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"elevation=dem", "max_distance=abc"})

	var coercion *TypeCoercionError
	require.ErrorAs(t, err, &coercion)
	assert.Equal(t, "max_distance", coercion.Key)
	assert.Equal(t, "abc", coercion.Literal)
}

func TestParse_IntegerRejectsFraction(t *testing.T) {
	t.Parallel()
	iface := New("test")
	iface.SetOutput(io.Discard)
	require.NoError(t, iface.DeclareOption(OptionSpec{Key: "layers", Type: TypeInteger}))

	_, err := iface.Parse([]string{"layers=2.5"})

	var coercion *TypeCoercionError
	require.ErrorAs(t, err, &coercion)
	assert.Equal(t, "2.5", coercion.Literal)
}

func TestParse_UnknownOption(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"elevation=dem", "bogus=1"})

	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bogus", unknown.Token)
}

func TestParse_BareTokenRejected(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"elevation=dem", "stray"})

	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "stray", unknown.Token)
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"elevation=dem", "-cz"})

	var unknown *UnknownFlagError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte('z'), unknown.Key)
}

func TestParse_CombinedFlagToken(t *testing.T) {
	t.Parallel()
	iface := New("test")
	iface.SetOutput(io.Discard)
	require.NoError(t, iface.DeclareFlag("x", "first"))
	require.NoError(t, iface.DeclareFlag("y", "second"))
	require.NoError(t, iface.DeclareFlag("z", "third"))

	res, err := iface.Parse([]string{"-xy"})

	require.NoError(t, err)
	assert.True(t, res.Flag('x'))
	assert.True(t, res.Flag('y'))
	assert.False(t, res.Flag('z'))
}

func TestParse_DuplicateOption(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"elevation=dem", "elevation=dem2"})

	var dup *DuplicateOptionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "elevation", dup.Key)
}

func TestParse_MultipleOption(t *testing.T) {
	t.Parallel()
	iface := New("test")
	iface.SetOutput(io.Discard)
	require.NoError(t, iface.DeclareOption(OptionSpec{Key: "points", Multiple: true}))
	require.NoError(t, iface.DeclareOption(OptionSpec{Key: "levels", Type: TypeInteger, Multiple: true}))

	res, err := iface.Parse([]string{"points=a,b", "points=c", "levels=1,2,3"})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Strings("points"))
	assert.Equal(t, []int{1, 2, 3}, res.Ints("levels"))
	assert.Equal(t, "a,b,c", res.String("points"))
}

func TestParse_MultipleElementCoercionFailure(t *testing.T) {
	t.Parallel()
	iface := New("test")
	iface.SetOutput(io.Discard)
	require.NoError(t, iface.DeclareOption(OptionSpec{Key: "levels", Type: TypeInteger, Multiple: true}))

	_, err := iface.Parse([]string{"levels=1,two,3"})

	var coercion *TypeCoercionError
	require.ErrorAs(t, err, &coercion)
	assert.Equal(t, "levels", coercion.Key)
	assert.Equal(t, "two", coercion.Literal)
}

func TestParse_BuiltinSwitches(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	res, err := iface.Parse([]string{"elevation=dem", "--overwrite", "--verbose"})

	require.NoError(t, err)
	assert.True(t, res.Overwrite())
	assert.True(t, res.Verbose())
	assert.False(t, res.Quiet())
}

func TestParse_UnknownLongSwitch(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)

	_, err := iface.Parse([]string{"--frobnicate"})

	var unknown *UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "--frobnicate", unknown.Token)
}

func TestParse_HelpRequested(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)
	out := &bytes.Buffer{}
	iface.SetOutput(out)

	res, err := iface.Parse([]string{"--help"})

	require.NoError(t, err)
	require.True(t, res.HelpShown())
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "elevation=name")
}

func TestParse_EmptyArgvWithRequiredOptionShowsUsage(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)
	out := &bytes.Buffer{}
	iface.SetOutput(out)

	res, err := iface.Parse(nil)

	require.NoError(t, err)
	require.True(t, res.HelpShown())
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_OptionalWithoutDefaultStaysAbsent(t *testing.T) {
	t.Parallel()
	iface := New("test")
	iface.SetOutput(io.Discard)
	optional := false
	require.NoError(t, iface.DeclareOption(OptionSpec{Key: "mask", Required: &optional}))

	res, err := iface.Parse(nil)

	require.NoError(t, err)
	assert.False(t, res.Has("mask"))
	assert.Equal(t, "", res.String("mask"))
}

func TestResolved_TypeMisusePanics(t *testing.T) {
	t.Parallel()
	iface := newTestInterface(t)
	res, err := iface.Parse([]string{"elevation=dem"})
	require.NoError(t, err)

	assert.Panics(t, func() { res.Int("elevation") })
	assert.Panics(t, func() { res.String("never_declared") })
}
