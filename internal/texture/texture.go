// Package texture provides read-only accessor handles over device regions,
// one handle type per element kind, with a rank-independent Fetch.
//
// Kinds up to 32 bits wide (and float32) are read with a single load. The
// 64-bit kinds are stored as two adjacent 32-bit lanes, low lane first;
// their Fetch performs one two-lane read and reassembles the value.
//
// Fetch never checks more than the region length: an index outside
// [0, Len()) yields the zero value, like a texture fetch outside its
// bound range.
package texture

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/born-ml/cubits/internal/device"
	"github.com/born-ml/cubits/internal/shape"
)

// Binding errors.
var (
	ErrKindMismatch      = errors.New("region kind does not match accessor kind")
	ErrNoDoublePrecision = errors.New("double precision access is disabled")
)

// Native is a constraint for the kinds read with a single load.
type Native interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32 | ~float32
}

// Fetcher is implemented by every accessor handle.
type Fetcher[T any] interface {
	// Fetch returns the element at linear index i.
	Fetch(i shape.Ix) T

	// Len returns the number of bound elements.
	Len() int
}

// Tex is an accessor for a kind read with a single load.
type Tex[T Native] struct {
	region *device.Region
	data   []T
}

// Accessor handles for the single-load kinds.
type (
	TexWord8  = Tex[uint8]
	TexWord16 = Tex[uint16]
	TexWord32 = Tex[uint32]
	TexInt8   = Tex[int8]
	TexInt16  = Tex[int16]
	TexInt32  = Tex[int32]
	TexFloat  = Tex[float32]
	TexChar   = Tex[device.Char]

	// TexWord and TexInt are the platform-word accessors.
	TexWord = TexWord32
	TexInt  = TexInt32
)

// Bind binds a single-load accessor to r, taking a reference on it.
func Bind[T Native](r *device.Region) (Tex[T], error) {
	if err := bindRegion(r, device.KindOf[T]()); err != nil {
		return Tex[T]{}, err
	}
	return Tex[T]{region: r, data: view[T](r.Bytes(), r.Len())}, nil
}

// Fetch returns the element at linear index i.
func (t Tex[T]) Fetch(i shape.Ix) T {
	if uint(i) < uint(len(t.data)) {
		return t.data[i]
	}
	var zero T
	return zero
}

// Len returns the number of bound elements.
func (t Tex[T]) Len() int {
	return len(t.data)
}

// Unbind releases the accessor's reference on its region. The handle must
// not be used afterwards.
func (t Tex[T]) Unbind() error {
	return unbindRegion(t.region)
}

func bindRegion(r *device.Region, kind device.Kind) error {
	if r.Kind() != kind {
		return fmt.Errorf("%w: region holds %s, accessor reads %s", ErrKindMismatch, r.Kind(), kind)
	}
	if err := r.Bind(); err != nil {
		return fmt.Errorf("texture: bind %s: %w", kind, err)
	}
	return nil
}

func unbindRegion(r *device.Region) error {
	if r == nil {
		return nil
	}
	return r.Release()
}

// view reinterprets raw storage as n elements of T. Regions only hold
// storage aligned for their kind, so the loads are aligned.
func view[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length fixed by the region
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}
