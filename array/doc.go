// Package array provides small generic helpers over slices: construction,
// shallow copies, random picks and shuffles, Cartesian products and tails.
//
// Randomized helpers (Pick, Shuffle) take a random.DrawFunc; pass nil to use
// the process-wide random.Default generator, or g.Draw() from a seeded
// random.Generator for reproducible results.
//
// None of the helpers mutate their input slices.
package array
