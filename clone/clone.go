// Package clone deep-copies the generic containers produced by decoders such
// as encoding/json: []any and map[string]any, nested to any depth. Leaf values
// (numbers, strings, pointers, structs) are copied by assignment.
package clone

// Value returns a deep copy of v when it is a []any or map[string]any and v
// itself otherwise.
func Value(v any) any {
	switch t := v.(type) {
	case []any:
		return Slice(t)
	case map[string]any:
		return Map(t)
	default:
		return v
	}
}

// Slice deep-copies s. A nil s stays nil.
func Slice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, el := range s {
		out[i] = Value(el)
	}
	return out
}

// Map deep-copies m. A nil m stays nil.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, el := range m {
		out[k] = Value(el)
	}
	return out
}
