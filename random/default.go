package random

import "sync"

var (
	defaultOnce sync.Once
	defaultGen  *Locked
)

// Locked wraps a Generator with a mutex so it can be shared.
type Locked struct {
	mu  sync.Mutex
	gen *Generator
}

// NewLocked returns a goroutine-safe wrapper around g.
func NewLocked(g *Generator) *Locked {
	return &Locked{gen: g}
}

// Float64 draws from the wrapped generator under the lock.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Float64()
}

// Uint64 draws from the wrapped generator under the lock.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Uint64()
}

// Default returns the process-wide generator. It is seeded from the clock
// the first time it is requested, so its stream is not reproducible; code
// that needs determinism must build its own Generator and pass its Draw.
func Default() *Locked {
	defaultOnce.Do(func() {
		defaultGen = NewLocked(NewClockSeeded())
	})
	return defaultGen
}

// Float64 draws from the Default generator. It is the DrawFunc used whenever
// an API receives a nil draw.
func Float64() float64 {
	return Default().Float64()
}
