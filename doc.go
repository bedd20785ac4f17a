// Package lvkit is a small toolbox of everyday helpers: a deterministic
// PRNG, a revolving (bounded FIFO) queue, and plain utilities for slices,
// maps, numbers, strings, terminal colors and timing.
//
// What is in the box?
//
//	random/     seeded bit-mixing PRNG, inclusive Range sampler, clock seeds,
//	            a lock-guarded process Default generator
//	queue/      Revolving[T]: fixed capacity, oldest element evicted first
//	array/      Make, Copy, IsEmpty, Pick, Shuffle, Tail, Product
//	clone/      deep copies of []any / map[string]any trees
//	object/     Has, HasAll, Assign, IsNil, IsMap, Freeze
//	numeric/    IsNumber, IsInteger, IsFloat, IsNaN, Truncate
//	str/        IsString, IsURL
//	colors/     ANSI foreground colors, terminal detection, Strip
//	timing/     monotonic marks and elapsed milliseconds
//	cmd/lvkit/  a CLI over the packages above
//
// Determinism
//
//	Nothing random hides behind a global: every helper that consumes
//	randomness takes a random.DrawFunc. Pass g.Draw() from random.New(seed)
//	to freeze outcomes; pass nil to use random.Default (clock-seeded).
//
// Quick example:
//
//	g := random.New(42)
//	roll, _ := random.Range(1, 6, g.Draw())
//	q, _ := queue.New(3, []int{1, 2, 3})
//	q.Push(roll) // [2 3 roll]
//
//	go get github.com/katalvlaran/lvkit
package lvkit
