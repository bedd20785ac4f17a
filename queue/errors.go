package queue

import "errors"

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("queue: capacity must be a positive integer")
