package random

import (
	"fmt"
	"math"
)

// Range returns an integer uniformly distributed over [lo, hi] inclusive,
// computed as floor(draw()*(hi-lo+1)) + lo.
//
// If draw is nil the process Default generator is used. Returns
// ErrInvalidRange when lo > hi and ErrDrawOutOfRange when draw yields a
// value outside [0, 1).
//
// Complexity: O(1).
func Range(lo, hi int, draw DrawFunc) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("Range(%d, %d): %w", lo, hi, ErrInvalidRange)
	}
	if draw == nil {
		draw = Float64
	}

	x := draw()
	if !(x >= 0 && x < 1) {
		return 0, fmt.Errorf("Range: draw returned %v: %w", x, ErrDrawOutOfRange)
	}

	// hi-lo+1 can exceed the int range, so the offset is computed in uint64
	// and added with wraparound. x*span < 2^64 because x < 1 and span <= 2^64.
	span := float64(hi) - float64(lo) + 1
	off := uint64(math.Floor(x * span))
	if d := uint64(hi) - uint64(lo); off > d {
		// float64 rounding of span may overshoot hi by a few ULPs.
		off = d
	}
	return int(uint64(lo) + off), nil
}
