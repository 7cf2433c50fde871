package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindSize(t *testing.T) {
	tests := []struct {
		kind  Kind
		size  int
		lanes int
	}{
		{Word8, 1, 1},
		{Word16, 2, 1},
		{Word32, 4, 1},
		{Word64, 8, 2},
		{Int8, 1, 1},
		{Int16, 2, 1},
		{Int32, 4, 1},
		{Int64, 8, 2},
		{Float, 4, 1},
		{Double, 8, 2},
		{CharKind, 1, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.kind.Size(), "%s.Size()", tt.kind)
		assert.Equal(t, tt.lanes, tt.kind.Lanes(), "%s.Lanes()", tt.kind)
	}
}

func TestKindAlign(t *testing.T) {
	assert.Equal(t, 1, Word8.Align())
	assert.Equal(t, 2, Int16.Align())
	assert.Equal(t, 4, Float.Align())
	assert.Equal(t, 4, Word64.Align())
	assert.Equal(t, 4, Double.Align())
}

func TestKindUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Kind(99).Size() })
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKindSigned(t *testing.T) {
	for _, k := range Kinds() {
		want := k == Int8 || k == Int16 || k == Int32 || k == Int64
		assert.Equal(t, want, k.Signed(), k.String())
	}
}

func TestWordAliases(t *testing.T) {
	assert.Equal(t, Word32, Word)
	assert.Equal(t, Int32, Int)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("float16")
	assert.False(t, ok)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Word8, KindOf[uint8]())
	assert.Equal(t, Word16, KindOf[uint16]())
	assert.Equal(t, Word32, KindOf[uint32]())
	assert.Equal(t, Word64, KindOf[uint64]())
	assert.Equal(t, Int8, KindOf[int8]())
	assert.Equal(t, Int16, KindOf[int16]())
	assert.Equal(t, Int32, KindOf[int32]())
	assert.Equal(t, Int64, KindOf[int64]())
	assert.Equal(t, Float, KindOf[float32]())
	assert.Equal(t, Double, KindOf[float64]())
	assert.Equal(t, CharKind, KindOf[Char]())
}
