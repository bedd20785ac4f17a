package object

import "maps"

// Frozen is a read-only snapshot of a map. It exposes no mutators, and it
// holds its own copy, so later writes to the source are not observed.
type Frozen[K comparable, V any] struct {
	m map[K]V
}

// Freeze snapshots m.
func Freeze[K comparable, V any](m map[K]V) Frozen[K, V] {
	return Frozen[K, V]{m: maps.Clone(m)}
}

// Get returns the value stored at k and whether it was present.
func (f Frozen[K, V]) Get(k K) (V, bool) {
	v, ok := f.m[k]
	return v, ok
}

// Has reports whether k is present.
func (f Frozen[K, V]) Has(k K) bool {
	_, ok := f.m[k]
	return ok
}

// Len returns the number of entries.
func (f Frozen[K, V]) Len() int { return len(f.m) }

// Keys returns the keys in unspecified order.
func (f Frozen[K, V]) Keys() []K {
	out := make([]K, 0, len(f.m))
	for k := range f.m {
		out = append(out, k)
	}
	return out
}

// Map returns a fresh mutable copy of the snapshot.
func (f Frozen[K, V]) Map() map[K]V {
	out := make(map[K]V, len(f.m))
	maps.Copy(out, f.m)
	return out
}
