package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4
	cfg.ChunkSize = 16

	n := 1000
	seen := make([]atomic.Int32, n)
	For(n, func(i int) {
		seen[i].Add(1)
	}, cfg)

	for i := range seen {
		assert.Equal(t, int32(1), seen[i].Load(), "unit %d", i)
	}
}

func TestForGrid(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, ChunkSize: 5}

	blocks, threads := 4, 8
	var results [4][8]atomic.Bool
	ForGrid(blocks, threads, func(b, th int) {
		results[b][th].Store(true)
	}, cfg)

	for b := 0; b < blocks; b++ {
		for th := 0; th < threads; th++ {
			assert.True(t, results[b][th].Load(), "missing unit [%d][%d]", b, th)
		}
	}
}

func TestForGridEmpty(t *testing.T) {
	calls := 0
	ForGrid(3, 0, func(_, _ int) { calls++ }, DefaultConfig())
	ForGrid(0, 3, func(_, _ int) { calls++ }, DefaultConfig())
	assert.Zero(t, calls)
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	order := make([]int, 0, 100)
	For(100, func(i int) {
		order = append(order, i)
	}, cfg)

	assert.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// A single chunk of work runs sequentially on the caller.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.ChunkSize - 1
	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
