package texture

import (
	"math"

	"github.com/born-ml/cubits/internal/device"
	"github.com/born-ml/cubits/internal/shape"
)

// Wide is a constraint for the kinds stored as two 32-bit lanes.
type Wide interface {
	~uint64 | ~int64 | ~float64
}

// Lanes is one raw two-lane read.
type Lanes struct {
	Lo, Hi uint32
}

// laneStore is a bound region of a two-lane kind.
type laneStore struct {
	region *device.Region
	lanes  []uint32
}

func bindLanes(r *device.Region, kind device.Kind) (laneStore, error) {
	if err := bindRegion(r, kind); err != nil {
		return laneStore{}, err
	}
	return laneStore{region: r, lanes: view[uint32](r.Bytes(), 2*r.Len())}, nil
}

// fetch is the raw two-lane read of element i.
func (s laneStore) fetch(i shape.Ix) Lanes {
	if uint(i) < uint(len(s.lanes)/2) {
		j := 2 * i
		return Lanes{Lo: s.lanes[j], Hi: s.lanes[j+1]}
	}
	return Lanes{}
}

func (s laneStore) len() int {
	return len(s.lanes) / 2
}

// reassemble reads element i with the raw lane fetch and combines the two
// lanes with rule.
func reassemble[T Wide](fetch func(shape.Ix) Lanes, rule func(Lanes) T, i shape.Ix) T {
	return rule(fetch(i))
}

// Word64Bits places Hi in the upper and Lo in the lower 32 bits.
func Word64Bits(l Lanes) uint64 {
	return uint64(l.Hi)<<32 | uint64(l.Lo)
}

// Int64Bits reinterprets the two lanes as a two's complement int64.
func Int64Bits(l Lanes) int64 {
	return int64(Word64Bits(l)) //nolint:gosec // G115: bit reinterpretation
}

// HiLoToDouble builds a float64 from its high and low IEEE-754 words.
func HiLoToDouble(l Lanes) float64 {
	return math.Float64frombits(Word64Bits(l))
}

// TexWord64 is the accessor for unsigned 64-bit elements.
type TexWord64 struct{ s laneStore }

// TexInt64 is the accessor for signed 64-bit elements.
type TexInt64 struct{ s laneStore }

// TexDouble is the accessor for float64 elements. It is only available when
// double precision is enabled in Config.
type TexDouble struct{ s laneStore }

// BindWord64 binds an unsigned 64-bit accessor to r.
func BindWord64(r *device.Region) (TexWord64, error) {
	s, err := bindLanes(r, device.Word64)
	return TexWord64{s}, err
}

// BindInt64 binds a signed 64-bit accessor to r.
func BindInt64(r *device.Region) (TexInt64, error) {
	s, err := bindLanes(r, device.Int64)
	return TexInt64{s}, err
}

// BindDouble binds a float64 accessor to r. It fails with
// ErrNoDoublePrecision when cfg disables double precision.
func BindDouble(r *device.Region, cfg Config) (TexDouble, error) {
	if !cfg.DoublePrecision {
		return TexDouble{}, ErrNoDoublePrecision
	}
	s, err := bindLanes(r, device.Double)
	return TexDouble{s}, err
}

// Fetch returns the element at linear index i.
func (t TexWord64) Fetch(i shape.Ix) uint64 { return reassemble(t.s.fetch, Word64Bits, i) }

// Fetch returns the element at linear index i.
func (t TexInt64) Fetch(i shape.Ix) int64 { return reassemble(t.s.fetch, Int64Bits, i) }

// Fetch returns the element at linear index i.
func (t TexDouble) Fetch(i shape.Ix) float64 { return reassemble(t.s.fetch, HiLoToDouble, i) }

// FetchLanes returns the raw lanes of element i.
func (t TexWord64) FetchLanes(i shape.Ix) Lanes { return t.s.fetch(i) }

// FetchLanes returns the raw lanes of element i.
func (t TexInt64) FetchLanes(i shape.Ix) Lanes { return t.s.fetch(i) }

// FetchLanes returns the raw lanes of element i.
func (t TexDouble) FetchLanes(i shape.Ix) Lanes { return t.s.fetch(i) }

// Len returns the number of bound elements.
func (t TexWord64) Len() int { return t.s.len() }

// Len returns the number of bound elements.
func (t TexInt64) Len() int { return t.s.len() }

// Len returns the number of bound elements.
func (t TexDouble) Len() int { return t.s.len() }

// Unbind releases the accessor's reference on its region.
func (t TexWord64) Unbind() error { return unbindRegion(t.s.region) }

// Unbind releases the accessor's reference on its region.
func (t TexInt64) Unbind() error { return unbindRegion(t.s.region) }

// Unbind releases the accessor's reference on its region.
func (t TexDouble) Unbind() error { return unbindRegion(t.s.region) }
