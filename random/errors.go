package random

import "errors"

var (
	// ErrInvalidRange indicates Range was called with min > max.
	ErrInvalidRange = errors.New("random: min must not exceed max")

	// ErrDrawOutOfRange indicates an injected DrawFunc returned a value
	// outside [0, 1) (or NaN).
	ErrDrawOutOfRange = errors.New("random: draw value outside [0,1)")
)
