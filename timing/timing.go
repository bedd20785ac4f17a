// Package timing measures elapsed wall time with the monotonic clock and
// reports it in milliseconds truncated to microsecond precision.
package timing

import (
	"time"

	"github.com/katalvlaran/lvkit/numeric"
)

// Mark is an opaque start point returned by Now.
type Mark struct {
	t time.Time
}

// Now captures a start point.
func Now() Mark {
	return Mark{t: time.Now()}
}

// Since returns the time elapsed since m.
func Since(m Mark) time.Duration {
	return time.Since(m.t)
}

// MS returns the milliseconds elapsed since m, truncated to 3 decimals.
func MS(m Mark) float64 {
	return Milliseconds(Since(m))
}

// Milliseconds converts d to fractional milliseconds truncated to 3 decimals.
func Milliseconds(d time.Duration) float64 {
	return numeric.Truncate(float64(d.Nanoseconds())/1e6, 3)
}
