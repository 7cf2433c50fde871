// Package parallel runs independent execution units on host goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls how execution units are spread over goroutines.
type Config struct {
	Enabled    bool // Whether units may run concurrently.
	NumWorkers int  // Maximum number of worker goroutines.
	ChunkSize  int  // Units claimed by a worker at a time; also the sequential cutoff.
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		ChunkSize:  256,
	}
}

// For executes f(i) for every i in [0, n). Units share no state through
// For itself and may run in any order. Execution is sequential when
// parallelism is disabled or n does not exceed one chunk.
func For(n int, f func(i int), cfg Config) {
	chunk := max(cfg.ChunkSize, 1)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n <= chunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	workers := min(cfg.NumWorkers, (n+chunk-1)/chunk)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				start := int(next.Add(int64(chunk))) - chunk
				if start >= n {
					return
				}
				end := min(start+chunk, n)
				for i := start; i < end; i++ {
					f(i)
				}
			}
		}()
	}
	wg.Wait()
}

// ForGrid executes f(block, thread) for every block in [0, blocks) and
// thread in [0, threads).
func ForGrid(blocks, threads int, f func(block, thread int), cfg Config) {
	if threads <= 0 {
		return
	}
	For(blocks*threads, func(k int) {
		f(k/threads, k%threads)
	}, cfg)
}
