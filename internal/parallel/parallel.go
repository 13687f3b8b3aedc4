// Package parallel provides chunked parallel execution for element-wise
// tensor loops.
//
// Detection batches are wide (tens of thousands of anchors per image), so
// the CPU backend splits its element loops across workers once they are
// large enough to amortize the goroutine overhead.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution.
type Config struct {
	Enabled      bool // whether parallel execution is enabled
	NumWorkers   int  // number of worker goroutines
	MinChunkSize int  // minimum items per goroutine
}

// DefaultConfig returns defaults based on the CPU count. Parallelism only
// kicks in above 4096 elements; below that the sequential loop wins.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

// ForChunks executes f over disjoint [start, end) ranges covering [0, n),
// in parallel when worthwhile. f must be safe to run concurrently on
// disjoint ranges.
func ForChunks(n int, cfg Config, f func(start, end int)) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n), in parallel when worthwhile.
func For(n int, cfg Config, f func(i int)) {
	ForChunks(n, cfg, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	})
}
