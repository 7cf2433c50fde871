package codegen

import (
	"strings"
	"testing"

	"github.com/born-ml/cubits/internal/device"
	"github.com/born-ml/cubits/internal/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIndexHelpers(t *testing.T) {
	src, err := Generate(Options{MaxRank: 3})
	require.NoError(t, err)

	assert.Contains(t, src, "fn toIndex1(sh: i32, ix: i32) -> i32 {\n    return ix;\n}")
	assert.Contains(t, src, "struct DIM2 {\n    a1: i32,\n    a0: i32,\n}")
	assert.Contains(t, src, "return ix.a1 * sh.a0 + ix.a0;")
	assert.Contains(t, src, "return (ix.a2 * sh.a1 + ix.a1) * sh.a0 + ix.a0;")
	assert.Contains(t, src, "return sh.a2 * sh.a1 * sh.a0;")
	assert.Contains(t, src, "r.a0 = n % sh.a0;\n    n = n / sh.a0;\n    r.a1 = n % sh.a1;\n    n = n / sh.a1;\n    r.a2 = n;")
	assert.Contains(t, src, "return ix.a2 == -1 && ix.a1 == -1 && ix.a0 == -1;")
	assert.NotContains(t, src, "DIM4")
	assert.NotContains(t, src, "var<storage")
}

func TestGenerateHelpersInDependencyOrder(t *testing.T) {
	src, err := Generate(DefaultOptions())
	require.NoError(t, err)

	for _, decl := range []string{"struct DIM2", "struct DIM3", "struct DIM4", "struct DIM5"} {
		assert.Equal(t, 1, strings.Count(src, decl), decl)
	}
	// Structs are declared before the functions that use them.
	assert.Less(t, strings.Index(src, "struct DIM5"), strings.Index(src, "fn toIndex5"))
}

func TestGenerateAccessors(t *testing.T) {
	opts := Options{Kinds: []device.Kind{device.Word8, device.Int16, device.Float, device.Int64}, Group: 1}
	src, err := Generate(opts)
	require.NoError(t, err)

	assert.Contains(t, src, "@group(1) @binding(0) var<storage, read> tex_word8: array<u32>;")
	assert.Contains(t, src, "fn fetch_word8(i: i32) -> u32 {\n    return (tex_word8[i >> 2u] >> (u32(i & 3) * 8u)) & 255u;\n}")
	assert.Contains(t, src, "@group(1) @binding(1) var<storage, read> tex_int16: array<i32>;")
	assert.Contains(t, src, "return (tex_int16[i >> 1u] << (16u - u32(i & 1) * 16u)) >> 16u;")
	assert.Contains(t, src, "@group(1) @binding(2) var<storage, read> tex_float: array<f32>;")
	assert.Contains(t, src, "@group(1) @binding(3) var<storage, read> tex_int64: array<vec2<u32> >;")
	assert.Contains(t, src, "fn fetch_int64(i: i32) -> vec2<u32> {")
}

func TestGenerateDoubleCapability(t *testing.T) {
	opts := Options{Kinds: []device.Kind{device.Float, device.Double}}

	opts.Target = texture.Config{DoublePrecision: false}
	_, err := Generate(opts)
	require.ErrorIs(t, err, ErrDoubleUnsupported)

	opts.Target = texture.DefaultConfig()
	src, err := Generate(opts)
	require.NoError(t, err)
	assert.Contains(t, src, "fn fetch_double(i: i32) -> vec2<u32>")
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	_, err := Generate(Options{MaxRank: 6})
	require.Error(t, err)

	_, err = Generate(Options{MaxRank: -1})
	require.Error(t, err)

	_, err = Generate(Options{Kinds: []device.Kind{device.Word8, device.Word8}})
	require.Error(t, err)

	_, err = Generate(Options{Kinds: []device.Kind{device.Kind(42)}})
	require.Error(t, err)
}

func TestGeneratedSourceValidates(t *testing.T) {
	src, err := Generate(DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, Validate(src), src)
}

func TestEveryKindValidates(t *testing.T) {
	for _, k := range device.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			src, err := Generate(Options{Kinds: []device.Kind{k}, Target: texture.DefaultConfig()})
			require.NoError(t, err)
			require.NoError(t, Validate(src), src)
		})
	}
}

func TestNoHexMasks(t *testing.T) {
	src, err := Generate(Options{Kinds: []device.Kind{device.Word8, device.Word16, device.CharKind}})
	require.NoError(t, err)
	assert.NotContains(t, src, "0x")
	assert.Contains(t, src, "& 65535u;")
}

func TestValidateRejectsBrokenSource(t *testing.T) {
	require.Error(t, Validate("fn broken( -> i32 {"))
}
