// Package object provides helpers over Go maps and dynamic values: key
// presence checks, ordered assignment, nil detection and read-only snapshots.
package object

import (
	"maps"
	"reflect"
)

// New returns an empty, non-nil map.
func New[K comparable, V any]() map[K]V {
	return make(map[K]V)
}

// Has reports whether m contains key k.
func Has[K comparable, V any](m map[K]V, k K) bool {
	_, ok := m[k]
	return ok
}

// HasAll reports whether m contains every key in keys. An empty keys list
// is trivially satisfied.
func HasAll[K comparable, V any](m map[K]V, keys ...K) bool {
	for _, k := range keys {
		if !Has(m, k) {
			return false
		}
	}
	return true
}

// Assign copies every entry of srcs into dst in order (later sources win)
// and returns dst. dst is mutated; a nil dst is allocated.
func Assign[K comparable, V any](dst map[K]V, srcs ...map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V)
	}
	for _, src := range srcs {
		maps.Copy(dst, src)
	}
	return dst
}

// IsNil reports whether v is an untyped nil or a nil pointer, map, slice,
// channel, func or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsMap reports whether v holds a (possibly nil) map of any type.
func IsMap(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}
