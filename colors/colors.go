// Package colors wraps strings in ANSI SGR foreground color sequences and
// detects whether a writer is a color-capable terminal.
//
// The sequences are fixed: ESC[3Nm + text + ESC[0m, N = 0..7.
package colors

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color is an ANSI foreground color code (30–37).
type Color int

// Palette, in SGR order.
const (
	Black Color = 30 + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const reset = "\x1b[0m"

var names = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

var sgrExpr = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Wrap returns s enclosed in c's escape sequence and a reset.
func (c Color) Wrap(s string) string {
	return fmt.Sprintf("\x1b[%dm%s%s", int(c), s, reset)
}

// String returns the palette name, or "Color(N)" outside it.
func (c Color) String() string {
	for name, v := range names {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Parse looks up a color by case-insensitive name.
func Parse(name string) (Color, error) {
	c, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("Parse(%q): %w", name, ErrUnknownColor)
	}
	return c, nil
}

// Strip removes SGR escape sequences from s.
func Strip(s string) string {
	return sgrExpr.ReplaceAllString(s, "")
}

// Enabled reports whether w is a terminal that should receive color: an
// *os.File attached to a TTY (or Cygwin/MSYS pty) with NO_COLOR unset.
func Enabled(w io.Writer) bool {
	if _, off := os.LookupEnv("NO_COLOR"); off {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
