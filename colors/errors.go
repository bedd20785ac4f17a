package colors

import "errors"

var (
	// ErrUnknownColor is returned by Parse for names outside the palette.
	ErrUnknownColor = errors.New("colors: unknown color")

	// ErrUnknownMode is returned by ParseMode for values other than
	// auto, always and never.
	ErrUnknownMode = errors.New("colors: unknown mode, want auto|always|never")
)
