package colors

import (
	"fmt"
	"io"
	"strings"
)

// Mode selects when a Painter emits escape sequences.
type Mode int

const (
	// Auto colors only when the writer is a terminal (see Enabled).
	Auto Mode = iota
	// Always colors unconditionally.
	Always
	// Never leaves text untouched.
	Never
)

// ParseMode parses "auto", "always" or "never" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// Painter colors text for one writer, decided once at construction.
type Painter struct {
	on bool
}

// NewPainter resolves mode against w.
func NewPainter(w io.Writer, mode Mode) Painter {
	switch mode {
	case Always:
		return Painter{on: true}
	case Never:
		return Painter{}
	default:
		return Painter{on: Enabled(w)}
	}
}

// On reports whether the painter emits escape sequences.
func (p Painter) On() bool { return p.on }

// Paint wraps s in c when the painter is on.
func (p Painter) Paint(c Color, s string) string {
	if !p.on {
		return s
	}
	return c.Wrap(s)
}
