package webgpu

import (
	"math/bits"

	"github.com/born-ml/cubits/internal/launch"
)

// paddedSize rounds n up to the 4-byte granularity of buffer copies.
// Empty regions still get one word.
func paddedSize(n int) uint64 {
	return uint64(max(n, 4)+3) &^ 3 //nolint:gosec // G115: n is a byte length
}

// classOf returns the allocation size serving a request of size bytes.
func classOf(size uint64) uint64 {
	if size <= 1<<31 {
		return uint64(launch.CeilPow2(uint32(size))) //nolint:gosec // G115: checked above
	}
	return 1 << bits.Len64(size-1)
}
