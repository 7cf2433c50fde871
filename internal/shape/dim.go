// Package shape provides rank 1..5 shapes and coordinates and the row-major
// mapping between a coordinate and a linear offset into flat storage.
//
// A shape and a coordinate share one type per rank. Axes are named A4..A0,
// where A0 is the innermost (fastest-varying) axis. Rank 1 is a bare scalar.
package shape

import "fmt"

// Ix is the scalar index type used for extents, coordinate axes and linear
// offsets. It is Go's int, 64 bits wide on every supported platform.
// Arithmetic on Ix is not overflow checked.
type Ix = int

// MaxRank is the highest supported rank.
const MaxRank = 5

// DIM1 is a rank-1 shape or coordinate.
type DIM1 Ix

// DIM2 is a rank-2 shape or coordinate.
type DIM2 struct{ A1, A0 Ix }

// DIM3 is a rank-3 shape or coordinate.
type DIM3 struct{ A2, A1, A0 Ix }

// DIM4 is a rank-4 shape or coordinate.
type DIM4 struct{ A3, A2, A1, A0 Ix }

// DIM5 is a rank-5 shape or coordinate.
type DIM5 struct{ A4, A3, A2, A1, A0 Ix }

// Axes holds the axes of a shape or coordinate, innermost first:
// Axes[0] is A0. Entries at positions >= rank are zero.
type Axes [MaxRank]Ix

// Dim is satisfied by every shape/coordinate type.
type Dim interface {
	DIM1 | DIM2 | DIM3 | DIM4 | DIM5

	// Rank returns the fixed rank of the type.
	Rank() int

	// Axes returns the axes innermost first.
	Axes() Axes
}

// Make1 builds a rank-1 shape or coordinate.
func Make1(a0 Ix) DIM1 { return DIM1(a0) }

// Make2 builds a rank-2 shape or coordinate. The last argument is innermost.
func Make2(a1, a0 Ix) DIM2 { return DIM2{A1: a1, A0: a0} }

// Make3 builds a rank-3 shape or coordinate. The last argument is innermost.
func Make3(a2, a1, a0 Ix) DIM3 { return DIM3{A2: a2, A1: a1, A0: a0} }

// Make4 builds a rank-4 shape or coordinate. The last argument is innermost.
func Make4(a3, a2, a1, a0 Ix) DIM4 { return DIM4{A3: a3, A2: a2, A1: a1, A0: a0} }

// Make5 builds a rank-5 shape or coordinate. The last argument is innermost.
func Make5(a4, a3, a2, a1, a0 Ix) DIM5 {
	return DIM5{A4: a4, A3: a3, A2: a2, A1: a1, A0: a0}
}

// Make builds a shape or coordinate of type D from its extents, listed with
// the innermost axis last. Panics if len(extents) differs from D's rank.
func Make[D Dim](extents ...Ix) D {
	var d D
	n := d.Rank()
	if len(extents) != n {
		panic(fmt.Sprintf("shape: %d extents for rank %d", len(extents), n))
	}
	var a Axes
	for k := 0; k < n; k++ {
		a[k] = extents[n-1-k]
	}
	return FromAxes[D](a)
}

// FromAxes builds a value of type D from axes listed innermost first.
// Entries beyond D's rank are ignored.
func FromAxes[D Dim](a Axes) D {
	var d D
	switch p := any(&d).(type) {
	case *DIM1:
		*p = DIM1(a[0])
	case *DIM2:
		*p = DIM2{A1: a[1], A0: a[0]}
	case *DIM3:
		*p = DIM3{A2: a[2], A1: a[1], A0: a[0]}
	case *DIM4:
		*p = DIM4{A3: a[3], A2: a[2], A1: a[1], A0: a[0]}
	case *DIM5:
		*p = DIM5{A4: a[4], A3: a[3], A2: a[2], A1: a[1], A0: a[0]}
	}
	return d
}

// Rank returns 1.
func (DIM1) Rank() int { return 1 }

// Rank returns 2.
func (DIM2) Rank() int { return 2 }

// Rank returns 3.
func (DIM3) Rank() int { return 3 }

// Rank returns 4.
func (DIM4) Rank() int { return 4 }

// Rank returns 5.
func (DIM5) Rank() int { return 5 }

// Axes returns the axes innermost first.
func (d DIM1) Axes() Axes { return Axes{Ix(d)} }

// Axes returns the axes innermost first.
func (d DIM2) Axes() Axes { return Axes{d.A0, d.A1} }

// Axes returns the axes innermost first.
func (d DIM3) Axes() Axes { return Axes{d.A0, d.A1, d.A2} }

// Axes returns the axes innermost first.
func (d DIM4) Axes() Axes { return Axes{d.A0, d.A1, d.A2, d.A3} }

// Axes returns the axes innermost first.
func (d DIM5) Axes() Axes { return Axes{d.A0, d.A1, d.A2, d.A3, d.A4} }

func (d DIM2) String() string { return fmt.Sprintf("(%d, %d)", d.A1, d.A0) }

func (d DIM3) String() string { return fmt.Sprintf("(%d, %d, %d)", d.A2, d.A1, d.A0) }

func (d DIM4) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", d.A3, d.A2, d.A1, d.A0)
}

func (d DIM5) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d, %d)", d.A4, d.A3, d.A2, d.A1, d.A0)
}
