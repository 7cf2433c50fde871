package device

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Region errors.
var (
	ErrReleased = errors.New("region already released")
	ErrSize     = errors.New("byte length is not a whole number of elements")
	ErrAlign    = errors.New("storage is not aligned to the element load size")
)

// Region is a read-only block of densely packed elements of one kind.
//
// Elements narrower than 64 bits are stored in host byte order. The
// 64-bit kinds are stored as two adjacent 32-bit lanes per element, low
// lane first.
//
// A region is reference counted: it starts with one reference owned by
// its creator, each bound accessor holds another, and the storage is
// freed (or unmapped) when the last reference is released.
type Region struct {
	data  []byte
	kind  Kind
	count int
	refs  atomic.Int32
	mu    sync.Mutex       // Serialises freeing the storage
	unmap func([]byte) error // Non-nil for file mappings
}

func newRegion(kind Kind, data []byte, unmap func([]byte) error) (*Region, error) {
	if len(data)%kind.Size() != 0 {
		return nil, fmt.Errorf("%w: %d bytes of %s", ErrSize, len(data), kind)
	}
	if len(data) > 0 && uintptr(unsafe.Pointer(unsafe.SliceData(data)))%uintptr(kind.Align()) != 0 {
		return nil, fmt.Errorf("%w: %s needs %d-byte alignment", ErrAlign, kind, kind.Align())
	}
	r := &Region{
		data:  data,
		kind:  kind,
		count: len(data) / kind.Size(),
		unmap: unmap,
	}
	r.refs.Store(1)
	return r, nil
}

// FromBytes wraps b as a region of the given kind without copying.
// The caller must not modify b afterwards. b must start on a multiple of
// kind.Align(), so a sub-slice such as b[1:] of word data fails with
// ErrAlign.
func FromBytes(kind Kind, b []byte) (*Region, error) {
	return newRegion(kind, b, nil)
}

// CopyBytes copies b into new aligned storage and wraps it as a region.
func CopyBytes(kind Kind, b []byte) (*Region, error) {
	buf := alignedBytes(len(b))
	copy(buf, b)
	return newRegion(kind, buf, nil)
}

// Upload copies host data into a new region.
func Upload[T Elem](data []T) *Region {
	kind := KindOf[T]()
	buf := alignedBytes(len(data) * kind.Size())
	if kind.Wide() {
		lanes := unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(buf))), 2*len(data))
		for i, v := range data {
			lanes[2*i], lanes[2*i+1] = SplitLanes(bits64(v))
		}
	} else if len(data) > 0 {
		//nolint:gosec // unsafe.Slice for a raw copy of the host representation
		src := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(buf))
		copy(buf, src)
	}
	r, err := newRegion(kind, buf, nil)
	if err != nil {
		panic(err) // size and alignment hold by construction
	}
	return r
}

// UploadLanes builds a region of a 64-bit kind from raw lanes, two per
// element with the low lane first.
func UploadLanes(kind Kind, lanes []uint32) (*Region, error) {
	if !kind.Wide() {
		return nil, fmt.Errorf("device: %s is not a two-lane kind", kind)
	}
	if len(lanes)%2 != 0 {
		return nil, fmt.Errorf("%w: %d lanes of %s", ErrSize, len(lanes), kind)
	}
	buf := alignedBytes(4 * len(lanes))
	copy(unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(buf))), len(lanes)), lanes)
	return newRegion(kind, buf, nil)
}

// alignedBytes allocates n bytes starting on an 8-byte boundary.
func alignedBytes(n int) []byte {
	if n == 0 {
		return []byte{}
	}
	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}

// SplitLanes splits a 64-bit pattern into its low and high 32-bit lanes.
func SplitLanes(v uint64) (lo, hi uint32) {
	return uint32(v), uint32(v >> 32)
}

func bits64[T Elem](v T) uint64 {
	switch x := any(v).(type) {
	case uint64:
		return x
	case int64:
		return uint64(x)
	case float64:
		return math.Float64bits(x)
	default:
		panic("not a 64-bit element type")
	}
}

// Kind returns the element kind.
func (r *Region) Kind() Kind {
	return r.kind
}

// Len returns the number of elements.
func (r *Region) Len() int {
	return r.count
}

// ByteSize returns the storage size in bytes.
func (r *Region) ByteSize() int {
	return r.count * r.kind.Size()
}

// Bytes returns the raw storage. It must be treated as read-only and is
// valid only while the region holds a reference.
func (r *Region) Bytes() []byte {
	return r.data
}

// Bind takes a reference for an accessor about to read the region.
func (r *Region) Bind() error {
	for {
		n := r.refs.Load()
		if n <= 0 {
			return ErrReleased
		}
		if r.refs.CompareAndSwap(n, n+1) {
			return nil
		}
	}
}

// Release drops one reference, freeing the storage when none remain.
func (r *Region) Release() error {
	n := r.refs.Add(-1)
	switch {
	case n > 0:
		return nil
	case n < 0:
		r.refs.Store(0)
		return ErrReleased
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	data := r.data
	r.data = nil
	if r.unmap != nil && data != nil {
		if err := r.unmap(data); err != nil {
			return fmt.Errorf("unmap failed: %w", err)
		}
	}
	return nil
}

// IsUnique returns true if only the creator's reference remains.
func (r *Region) IsUnique() bool {
	return r.refs.Load() == 1
}

// Refs returns the current reference count.
func (r *Region) Refs() int {
	return int(r.refs.Load())
}
