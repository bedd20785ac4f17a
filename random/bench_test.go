package random_test

import (
	"testing"

	"github.com/katalvlaran/lvkit/random"
)

// BenchmarkGenerator_Float64 measures a single step.
func BenchmarkGenerator_Float64(b *testing.B) {
	g := random.New(1)
	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += g.Float64()
	}
	_ = sink
}

// BenchmarkRange measures sampling through a DrawFunc.
func BenchmarkRange(b *testing.B) {
	draw := random.New(1).Draw()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := random.Range(1, 100, draw); err != nil {
			b.Fatal(err)
		}
	}
}
