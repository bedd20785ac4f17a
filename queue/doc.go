// Package queue provides Revolving, a fixed-capacity FIFO that silently
// evicts its oldest elements once capacity is exceeded.
//
// What
//
//   - New(capacity, initial) keeps only the trailing capacity elements of
//     initial and never aliases the caller's slice.
//   - Push appends and evicts from the front; Empty clears. Both return the
//     queue so calls chain: q.Push(1).Push(2).
//   - Contents returns a copy, oldest first.
//
// Invariant
//
//	Len() <= Capacity() after every operation; Capacity never changes.
//
// Concurrency
//
//	A Revolving has a single owner. Serialize Push/Empty externally when
//	sharing an instance between goroutines.
//
// Complexity
//
//   - Push:     amortized O(1) (storage grows up to capacity, then wraps)
//   - Contents: O(capacity) (copy)
//   - Empty:    O(Len())
package queue
