// Package launch provides the integer rounding helpers used to size kernel
// grids and a host emulation of a one-dimensional kernel launch.
package launch

import "math/bits"

// IsPow2 reports whether x is a power of two. IsPow2(0) is true.
func IsPow2(x uint32) bool {
	return x&(x-1) == 0
}

// CeilPow2 returns the smallest power of two >= x. Powers of two (and 0)
// are returned unchanged; results above 1<<31 wrap to 0.
func CeilPow2(x uint32) uint32 {
	if IsPow2(x) {
		return x
	}
	return 1 << bits.Len32(x-1)
}

// FloorPow2 returns the largest power of two <= x, or 0 for x == 0.
func FloorPow2(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return 1 << (bits.Len32(x) - 1)
}

// Multiple returns how many multiples of f are needed to cover x, that is
// x/f rounded up.
func Multiple(x, f uint32) uint32 {
	return (x + (f - 1)) / f
}

// Ceiling rounds x up to the nearest multiple of f.
func Ceiling(x, f uint32) uint32 {
	return Multiple(x, f) * f
}
