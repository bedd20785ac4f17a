package array

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvkit/random"
)

// Make returns a slice of length n with every element set to fill.
// Returns ErrNegativeLength when n < 0.
func Make[T any](n int, fill T) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("Make(%d): %w", n, ErrNegativeLength)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fill
	}
	return out, nil
}

// Copy returns a shallow copy of s. The result is never nil.
func Copy[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// IsEmpty reports whether s has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// Pick returns a uniformly chosen element of s.
// Returns ErrEmptySlice for an empty s, or the random.Range error when draw
// misbehaves.
func Pick[T any](s []T, draw random.DrawFunc) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptySlice
	}
	i, err := random.Range(0, len(s)-1, draw)
	if err != nil {
		return zero, fmt.Errorf("Pick: %w", err)
	}
	return s[i], nil
}

// Shuffle returns a Fisher–Yates shuffled copy of s. Each step swaps the
// last unshuffled slot with index floor(draw()*remaining).
//
// Complexity: O(n) time, O(n) space.
func Shuffle[T any](s []T, draw random.DrawFunc) ([]T, error) {
	if draw == nil {
		draw = random.Float64
	}
	out := Copy(s)
	for n := len(out); n > 0; n-- {
		x := draw()
		if !(x >= 0 && x < 1) {
			return nil, fmt.Errorf("Shuffle: draw returned %v: %w", x, random.ErrDrawOutOfRange)
		}
		j := int(math.Floor(x * float64(n)))
		out[n-1], out[j] = out[j], out[n-1]
	}
	return out, nil
}

// Tail returns a copy of the last n elements of s, or of all of s when it
// is shorter than n. n <= 0 yields an empty slice.
func Tail[T any](s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return Copy(s)
}

// Product returns the Cartesian product of first and rest in row-major
// order: the last list varies fastest. With no rest, every element of first
// becomes a one-element tuple. Any empty input yields an empty product.
//
// Complexity: O(Π len(list)) tuples.
func Product[T any](first []T, rest ...[]T) [][]T {
	out := make([][]T, 0, len(first))
	for _, v := range first {
		out = append(out, []T{v})
	}
	for _, list := range rest {
		next := make([][]T, 0, len(out)*len(list))
		for _, prefix := range out {
			for _, v := range list {
				tuple := make([]T, len(prefix)+1)
				copy(tuple, prefix)
				tuple[len(prefix)] = v
				next = append(next, tuple)
			}
		}
		out = next
	}
	return out
}
