package launch

import (
	"math/bits"

	"github.com/born-ml/cubits/internal/parallel"
	"github.com/born-ml/cubits/internal/shape"
)

// Config describes how a kernel is launched over n elements.
type Config struct {
	BlockSize int             // Threads per block; rounded up to a power of two.
	Parallel  parallel.Config // Host execution of the threads.
}

// DefaultConfig returns 256-thread blocks run on every CPU.
func DefaultConfig() Config {
	return Config{
		BlockSize: 256,
		Parallel:  parallel.DefaultConfig(),
	}
}

// Geometry is the grid chosen for a launch.
type Geometry struct {
	Blocks  int // Number of blocks
	Threads int // Threads per block
}

// Total returns the number of threads in the grid, which is n rounded up
// to a whole number of blocks.
func (g Geometry) Total() int {
	return g.Blocks * g.Threads
}

// Plan picks the grid for n elements. Blocks never hold more threads than
// the next power of two above n. Sizing is done in int, so every n a
// kernel can index is covered.
func Plan(n int, cfg Config) Geometry {
	if n <= 0 {
		return Geometry{}
	}
	threads := ceilPow2(max(cfg.BlockSize, 1))
	if n < threads {
		threads = ceilPow2(n)
	}
	return Geometry{Blocks: (n-1)/threads + 1, Threads: threads}
}

// ceilPow2 is CeilPow2 for positive ints.
func ceilPow2(x int) int {
	return 1 << bits.Len64(uint64(x-1)) //nolint:gosec // G115: x >= 1
}

// Run executes kernel once for every thread id in [0, n) using the grid
// from Plan. Padding threads past n do not call kernel. Run returns when
// every thread has finished.
func Run(n int, kernel func(tid shape.Ix), cfg Config) Geometry {
	g := Plan(n, cfg)
	parallel.ForGrid(g.Blocks, g.Threads, func(block, thread int) {
		if tid := block*g.Threads + thread; tid < n {
			kernel(tid)
		}
	}, cfg.Parallel)
	return g
}
