package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvkit/numeric"
	"github.com/stretchr/testify/assert"
)

// TestIsFloat separates fractional values from everything else.
func TestIsFloat(t *testing.T) {
	for _, v := range []any{1.1, 1.2, 0.01, -1.001, -0.0003, float32(2.5)} {
		assert.True(t, numeric.IsFloat(v), "%v", v)
	}
	for _, v := range []any{1.0, 1, nil, true, "1.1", []int{}, map[string]int{}, math.NaN()} {
		assert.False(t, numeric.IsFloat(v), "%v", v)
	}
}

// TestIsInteger treats whole floats as integers.
func TestIsInteger(t *testing.T) {
	for _, v := range []any{-1, 0, 1, 1.0, uint8(7), int64(-9)} {
		assert.True(t, numeric.IsInteger(v), "%v", v)
	}
	for _, v := range []any{1.1, nil, true, "1", []int{}, math.Inf(1), math.NaN()} {
		assert.False(t, numeric.IsInteger(v), "%v", v)
	}
}

// TestIsNaN only matches float NaN.
func TestIsNaN(t *testing.T) {
	assert.True(t, numeric.IsNaN(math.NaN()))
	assert.True(t, numeric.IsNaN(float32(math.NaN())))
	assert.False(t, numeric.IsNaN(1))
	assert.False(t, numeric.IsNaN("NaN"))
	assert.False(t, numeric.IsNaN(nil))
}

// TestIsNumber excludes NaN and non-numeric kinds.
func TestIsNumber(t *testing.T) {
	for _, v := range []any{1, 1.4, -3, uint(2), math.Inf(-1)} {
		assert.True(t, numeric.IsNumber(v), "%v", v)
	}
	for _, v := range []any{"Hello, world!", nil, true, math.NaN()} {
		assert.False(t, numeric.IsNumber(v), "%v", v)
	}
}

// TestTruncate follows the documented examples.
func TestTruncate(t *testing.T) {
	assert.Equal(t, 1.1, numeric.Truncate(1.12345, 1))
	assert.Equal(t, 1.12, numeric.Truncate(1.12345, 2))
	assert.Equal(t, 1.123, numeric.Truncate(1.12345, 3))
	assert.Equal(t, -1.1, numeric.Truncate(-1.19, 1))
	assert.Equal(t, 3.0, numeric.Truncate(3.99, 0))
}
