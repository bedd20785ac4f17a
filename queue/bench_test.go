package queue_test

import (
	"testing"

	"github.com/katalvlaran/lvkit/queue"
)

// BenchmarkPush_Full measures eviction on a saturated queue.
func BenchmarkPush_Full(b *testing.B) {
	q, err := queue.New[int](1024, make([]int, 1024))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
}
