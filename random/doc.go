// Package random provides a small, deterministic, non-cryptographic
// pseudorandom number generator and an inclusive integer range sampler.
//
// What
//
//   - Generator: a 128-bit state ([4]uint32) bit-mixing generator producing
//     float64 values in [0, 1). Same seed and warm-up ⇒ identical stream on
//     every platform.
//   - Range: floor(draw()*(max-min+1)) + min over an injected DrawFunc.
//   - Seed / ClockSeed: clock-derived seeds for unseeded instances.
//   - Default / Float64: a process-wide, clock-seeded, lock-guarded instance.
//
// Determinism
//
//	The state update is defined over uint32 wraparound arithmetic and true
//	32-bit rotations. Construction primes the state by discarding the first
//	DefaultWarmup outputs (configurable with WithWarmup).
//
// Concurrency
//
//	A *Generator is NOT goroutine-safe; give each goroutine its own instance
//	or serialize access. Only the Default instance is locked internally.
//
// Usage:
//
//	g := random.New(42)
//	x := g.Float64()                        // [0,1)
//	d6, err := random.Range(1, 6, g.Draw()) // 1..6 inclusive
//
// Complexity: every draw is O(1) time and O(1) space.
package random
