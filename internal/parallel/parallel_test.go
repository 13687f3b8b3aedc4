package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForVisitsEveryIndexOnce(t *testing.T) {
	cfg := DefaultConfig()

	const n = 100000
	seen := make([]int32, n)
	For(n, cfg, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, count := range seen {
		if count != 1 {
			t.Fatalf("index %d visited %d times", i, count)
		}
	}
}

func TestForChunksCoversRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	var total int64
	ForChunks(100, cfg, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})
	if total != 100 {
		t.Errorf("chunks covered %d elements, want 100", total)
	}
}

func TestSequentialFallback(t *testing.T) {
	cfg := Config{Enabled: false}

	// Order must be preserved when running sequentially.
	var order []int
	For(5, cfg, func(i int) {
		order = append(order, i)
	})
	for i, v := range order {
		if v != i {
			t.Fatalf("sequential order broken: %v", order)
		}
	}
}

func TestZeroElements(t *testing.T) {
	cfg := DefaultConfig()
	called := false
	For(0, cfg, func(_ int) { called = true })
	if called {
		t.Error("callback invoked for empty range")
	}
}
