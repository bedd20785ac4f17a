package colors_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/katalvlaran/lvkit/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWrap checks the exact escape sequences for the whole palette.
func TestWrap(t *testing.T) {
	cases := []struct {
		c    colors.Color
		code string
	}{
		{colors.Black, "30"}, {colors.Red, "31"}, {colors.Green, "32"}, {colors.Yellow, "33"},
		{colors.Blue, "34"}, {colors.Magenta, "35"}, {colors.Cyan, "36"}, {colors.White, "37"},
	}
	for _, tc := range cases {
		assert.Equal(t, "\x1b["+tc.code+"mHello, world!\x1b[0m", tc.c.Wrap("Hello, world!"))
	}
}

// TestStrip round-trips Wrap.
func TestStrip(t *testing.T) {
	s := colors.Red.Wrap("a") + "b" + colors.Blue.Wrap("c")
	assert.Equal(t, "abc", colors.Strip(s))
	assert.Equal(t, "plain", colors.Strip("plain"))
}

// TestParse resolves names and rejects unknown ones.
func TestParse(t *testing.T) {
	c, err := colors.Parse(" Magenta ")
	require.NoError(t, err)
	assert.Equal(t, colors.Magenta, c)
	assert.Equal(t, "magenta", c.String())

	_, err = colors.Parse("purple")
	assert.ErrorIs(t, err, colors.ErrUnknownColor)
	assert.Equal(t, "Color(99)", colors.Color(99).String())
}

// TestEnabled is false for non-file writers and under NO_COLOR.
func TestEnabled(t *testing.T) {
	assert.False(t, colors.Enabled(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, colors.Enabled(f), "regular files are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, colors.Enabled(os.Stdout))
}

// TestPainter follows the three modes.
func TestPainter(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, colors.Green.Wrap("ok"), colors.NewPainter(&buf, colors.Always).Paint(colors.Green, "ok"))
	assert.Equal(t, "ok", colors.NewPainter(&buf, colors.Never).Paint(colors.Green, "ok"))
	assert.False(t, colors.NewPainter(&buf, colors.Auto).On())
}

// TestParseMode accepts the documented values.
func TestParseMode(t *testing.T) {
	for in, want := range map[string]colors.Mode{"": colors.Auto, "AUTO": colors.Auto, "always": colors.Always, "never": colors.Never} {
		got, err := colors.ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := colors.ParseMode("sometimes")
	assert.ErrorIs(t, err, colors.ErrUnknownMode)
}
