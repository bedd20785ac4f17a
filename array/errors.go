package array

import "errors"

var (
	// ErrNegativeLength indicates Make was asked for a negative length.
	ErrNegativeLength = errors.New("array: length must be 0 or greater")

	// ErrEmptySlice indicates Pick received no elements to choose from.
	ErrEmptySlice = errors.New("array: slice is empty")
)
