// Package numeric classifies dynamic values as numbers and truncates floats
// to a fixed number of decimal places.
//
// Only Go integer and floating-point kinds count as numbers; strings, bools
// and containers never do, even when they would convert.
package numeric

import (
	"math"
	"reflect"
)

// IsNumber reports whether v holds an integer or float kind that is not NaN.
func IsNumber(v any) bool {
	f, ok := asFloat(v)
	return ok && !math.IsNaN(f)
}

// IsInteger reports whether v holds an integer kind, or a finite float with
// no fractional part (1.0 counts).
func IsInteger(v any) bool {
	if isIntKind(v) {
		return true
	}
	f, ok := asFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
}

// IsFloat reports whether v is a number that is not an integer.
func IsFloat(v any) bool {
	return IsNumber(v) && !IsInteger(v)
}

// IsNaN reports whether v is a float holding NaN.
func IsNaN(v any) bool {
	if isIntKind(v) {
		return false
	}
	f, ok := asFloat(v)
	return ok && math.IsNaN(f)
}

// Truncate cuts x to places decimal places toward zero: trunc(x·10^p)/10^p.
func Truncate(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Trunc(x*pow) / pow
}

func isIntKind(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

func asFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
