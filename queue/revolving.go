// SPDX-License-Identifier: MIT
// Package: lvkit/queue
//
// revolving.go: bounded FIFO with front eviction over a lazily grown ring.
//
// Contract:
//   • capacity is fixed at construction and is > 0.
//   • len(buf) <= capacity at all times; buf grows by append until it
//     holds capacity elements and only then starts to wrap.
//   • While len(buf) < capacity, head == 0.
//   • Reads copy; the caller never holds a reference into buf.

package queue

import "fmt"

// Revolving is a bounded FIFO. The zero value is not usable; call New.
type Revolving[T any] struct {
	buf      []T // oldest element at buf[head] once full
	head     int
	capacity int
}

// New builds a Revolving with the given capacity, seeded with the trailing
// capacity elements of initial (which may be nil). initial is copied.
// Storage is allocated on demand, so capacity may be arbitrarily large.
//
// Returns ErrInvalidCapacity when capacity <= 0.
// Complexity: O(min(len(initial), capacity)).
func New[T any](capacity int, initial []T) (*Revolving[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidCapacity)
	}

	start := 0
	if len(initial) > capacity {
		start = len(initial) - capacity
	}

	q := &Revolving[T]{capacity: capacity}
	if n := len(initial) - start; n > 0 {
		q.buf = make([]T, n)
		copy(q.buf, initial[start:])
	}

	return q, nil
}

// Contents returns a shallow copy of the elements, oldest first.
// Complexity: O(Len()).
func (q *Revolving[T]) Contents() []T {
	out := make([]T, len(q.buf))
	n := copy(out, q.buf[q.head:])
	copy(out[n:], q.buf[:q.head])
	return out
}

// Push appends v, dropping the oldest element when the queue is full.
// Complexity: amortized O(1).
func (q *Revolving[T]) Push(v T) *Revolving[T] {
	if len(q.buf) < q.capacity {
		q.buf = append(q.buf, v)
		return q
	}
	// Full: overwrite the oldest slot and advance head.
	q.buf[q.head] = v
	q.head = (q.head + 1) % q.capacity
	return q
}

// Empty discards every element. Capacity is unchanged.
// Complexity: O(Len()) to release references held by buf.
func (q *Revolving[T]) Empty() *Revolving[T] {
	clear(q.buf)
	q.buf = q.buf[:0]
	q.head = 0
	return q
}

// Capacity returns the fixed capacity given to New.
func (q *Revolving[T]) Capacity() int { return q.capacity }

// Len returns the number of stored elements.
func (q *Revolving[T]) Len() int { return len(q.buf) }
