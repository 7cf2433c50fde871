package shape

import "github.com/born-ml/cubits/internal/debug"

// Rank returns the fixed rank of the shape's type.
func Rank[D Dim](sh D) int {
	return sh.Rank()
}

// Size returns the number of elements of the shape: the product of all
// extents, or the extent itself at rank 1. It is 0 when any extent is 0.
func Size[D Dim](sh D) Ix {
	a, n := sh.Axes(), sh.Rank()
	size := Ix(1)
	for k := 0; k < n; k++ {
		size *= a[k]
	}
	return size
}

// ToIndex converts a coordinate to its row-major linear offset within sh.
//
// The fold is toIndex(outer(sh), outer(ix))*sh.A0 + ix.A0 with the rank-1
// coordinate as base case. Bounds are not checked: an out-of-range
// coordinate yields the value of the same formula. The ignore sentinel
// must be tested by the caller before linearising.
func ToIndex[D Dim](sh, ix D) Ix {
	if debug.Enabled {
		debug.Assert(!Ignore(ix), "!Ignore(ix)")
	}
	s, c, n := sh.Axes(), ix.Axes(), sh.Rank()
	i := c[n-1]
	for k := n - 2; k >= 0; k-- {
		i = i*s[k] + c[k]
	}
	return i
}

// FromIndex is the inverse of ToIndex: A0 is i mod sh.A0 and the outer
// axes come from i div sh.A0, down to the outermost axis which takes the
// remaining quotient unchanged. Division truncates toward zero, which is
// floor division for every non-negative offset.
//
// An inner extent of 0 leaves no valid offset and panics with Go's
// integer divide-by-zero error.
func FromIndex[D Dim](sh D, i Ix) D {
	s, n := sh.Axes(), sh.Rank()
	var c Axes
	for k := 0; k < n-1; k++ {
		c[k] = i % s[k]
		i /= s[k]
	}
	c[n-1] = i
	return FromAxes[D](c)
}

// Ignore reports whether every axis of ix is -1, the sentinel for
// "no corresponding element" in scatter-style kernels.
func Ignore[D Dim](ix D) bool {
	a, n := ix.Axes(), ix.Rank()
	for k := 0; k < n; k++ {
		if a[k] != -1 {
			return false
		}
	}
	return true
}

// IgnoreOf returns the ignore sentinel of type D.
func IgnoreOf[D Dim]() D {
	return FromAxes[D](Axes{-1, -1, -1, -1, -1})
}

// InBounds reports whether 0 <= ix.k < sh.k on every axis.
func InBounds[D Dim](sh, ix D) bool {
	s, c, n := sh.Axes(), ix.Axes(), sh.Rank()
	for k := 0; k < n; k++ {
		if c[k] < 0 || c[k] >= s[k] {
			return false
		}
	}
	return true
}

// Strides returns the row-major strides of sh as a value of the same rank:
// A0 is 1 and each outer stride is the product of all inner extents.
// ToIndex(sh, ix) equals the dot product of ix and Strides(sh).
func Strides[D Dim](sh D) D {
	s, n := sh.Axes(), sh.Rank()
	var st Axes
	st[0] = 1
	for k := 1; k < n; k++ {
		st[k] = st[k-1] * s[k-1]
	}
	return FromAxes[D](st)
}

// ForEach calls f for every coordinate of sh in linear (row-major) order.
func ForEach[D Dim](sh D, f func(ix D)) {
	size := Size(sh)
	if size <= 0 {
		return
	}
	s, n := sh.Axes(), sh.Rank()
	var c Axes
	for i := Ix(0); i < size; i++ {
		f(FromAxes[D](c))
		for k := 0; k < n; k++ {
			c[k]++
			if c[k] < s[k] {
				break
			}
			c[k] = 0
		}
	}
}
