// Package codegen emits WGSL for the index algebra and the per-kind
// element fetch functions used by generated compute kernels.
//
// Index helpers use i32 throughout. For every rank N up to MaxRank the
// output declares (rank 1 uses a bare i32 instead of a struct):
//
//	struct DIMN { aN-1: i32, ..., a0: i32 }
//	fn sizeN(sh) -> i32
//	fn toIndexN(sh, ix) -> i32
//	fn fromIndexN(sh, i: i32) -> DIMN
//	fn ignoreN(ix) -> bool
//
// Each requested kind gets a read-only storage binding tex_<kind> and a
// fetch_<kind>(i: i32) function. WGSL has no 8/16-bit or 64-bit scalars:
// narrow kinds are unpacked from 32-bit words (sign extended for signed
// kinds) and the 64-bit kinds return their two lanes as vec2<u32>,
// low lane in x.
package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/cubits/internal/device"
	"github.com/born-ml/cubits/internal/shape"
	"github.com/born-ml/cubits/internal/texture"
)

// ErrDoubleUnsupported is returned when double-precision access is
// requested for a target without double support.
var ErrDoubleUnsupported = errors.New("codegen: double precision access is not supported by the target")

// Options selects what Generate emits.
type Options struct {
	MaxRank int            // Emit index helpers for ranks 1..MaxRank (0 for none).
	Kinds   []device.Kind  // Emit one accessor per kind, bound in order.
	Group   uint32         // Bind group of the accessor bindings.
	Target  texture.Config // Capabilities of the target device.
}

// DefaultOptions emits every rank and every kind for a target with
// double precision.
func DefaultOptions() Options {
	return Options{
		MaxRank: shape.MaxRank,
		Kinds:   device.Kinds(),
		Target:  texture.DefaultConfig(),
	}
}

// Generate returns the WGSL source selected by opts.
func Generate(opts Options) (string, error) {
	if opts.MaxRank < 0 || opts.MaxRank > shape.MaxRank {
		return "", fmt.Errorf("codegen: rank %d outside 0..%d", opts.MaxRank, shape.MaxRank)
	}
	seen := make(map[device.Kind]bool, len(opts.Kinds))
	for _, k := range opts.Kinds {
		if k == device.Double && !opts.Target.DoublePrecision {
			return "", ErrDoubleUnsupported
		}
		if seen[k] {
			return "", fmt.Errorf("codegen: kind %s requested twice", k)
		}
		seen[k] = true
	}

	var b strings.Builder
	b.WriteString("// Generated by cubits. DO NOT EDIT.\n")
	for rank := 1; rank <= opts.MaxRank; rank++ {
		writeRank(&b, rank)
	}
	for i, k := range opts.Kinds {
		if err := writeAccessor(&b, k, opts.Group, uint32(i)); err != nil { //nolint:gosec // G115: binding count is small
			return "", err
		}
	}
	return b.String(), nil
}

// axis returns the WGSL member name of axis k.
func axis(k int) string {
	return fmt.Sprintf("a%d", k)
}

// dimType returns the WGSL type of a rank-n shape or coordinate.
func dimType(n int) string {
	if n == 1 {
		return "i32"
	}
	return fmt.Sprintf("DIM%d", n)
}

func writeRank(b *strings.Builder, n int) {
	t := dimType(n)
	b.WriteString("\n")

	if n == 1 {
		fmt.Fprintf(b, "fn size1(sh: i32) -> i32 {\n    return sh;\n}\n\n")
		fmt.Fprintf(b, "fn toIndex1(sh: i32, ix: i32) -> i32 {\n    return ix;\n}\n\n")
		fmt.Fprintf(b, "fn fromIndex1(sh: i32, i: i32) -> i32 {\n    return i;\n}\n\n")
		fmt.Fprintf(b, "fn ignore1(ix: i32) -> bool {\n    return ix == -1;\n}\n")
		return
	}

	fmt.Fprintf(b, "struct %s {\n", t)
	for k := n - 1; k >= 0; k-- {
		fmt.Fprintf(b, "    %s: i32,\n", axis(k))
	}
	b.WriteString("}\n\n")

	// size: product of extents.
	terms := make([]string, 0, n)
	for k := n - 1; k >= 0; k-- {
		terms = append(terms, "sh."+axis(k))
	}
	fmt.Fprintf(b, "fn size%d(sh: %s) -> i32 {\n    return %s;\n}\n\n", n, t, strings.Join(terms, " * "))

	// toIndex: Horner form of the row-major fold.
	expr := "ix." + axis(n-1)
	for k := n - 2; k >= 0; k-- {
		if k < n-2 {
			expr = "(" + expr + ")"
		}
		expr = fmt.Sprintf("%s * sh.%s + ix.%s", expr, axis(k), axis(k))
	}
	fmt.Fprintf(b, "fn toIndex%d(sh: %s, ix: %s) -> i32 {\n    return %s;\n}\n\n", n, t, t, expr)

	// fromIndex: peel the innermost axis off with mod and div.
	fmt.Fprintf(b, "fn fromIndex%d(sh: %s, i: i32) -> %s {\n", n, t, t)
	fmt.Fprintf(b, "    var r: %s;\n    var n: i32 = i;\n", t)
	for k := 0; k < n-1; k++ {
		fmt.Fprintf(b, "    r.%s = n %% sh.%s;\n    n = n / sh.%s;\n", axis(k), axis(k), axis(k))
	}
	fmt.Fprintf(b, "    r.%s = n;\n    return r;\n}\n\n", axis(n-1))

	// ignore: every axis is -1.
	conds := make([]string, 0, n)
	for k := n - 1; k >= 0; k-- {
		conds = append(conds, fmt.Sprintf("ix.%s == -1", axis(k)))
	}
	fmt.Fprintf(b, "fn ignore%d(ix: %s) -> bool {\n    return %s;\n}\n", n, t, strings.Join(conds, " && "))
}

// accessor describes the WGSL form of one element kind.
type accessor struct {
	storage string // Element type of the storage array
	result  string // Return type of the fetch function
	body    string // Fetch expression; %[1]s is the binding name
}

func accessorFor(k device.Kind) (accessor, error) {
	switch k {
	case device.Word8, device.CharKind:
		return accessor{"u32", "u32", "(%[1]s[i >> 2u] >> (u32(i & 3) * 8u)) & 255u"}, nil
	case device.Word16:
		return accessor{"u32", "u32", "(%[1]s[i >> 1u] >> (u32(i & 1) * 16u)) & 65535u"}, nil
	case device.Word32:
		return accessor{"u32", "u32", "%[1]s[i]"}, nil
	case device.Int8:
		return accessor{"i32", "i32", "(%[1]s[i >> 2u] << (24u - u32(i & 3) * 8u)) >> 24u"}, nil
	case device.Int16:
		return accessor{"i32", "i32", "(%[1]s[i >> 1u] << (16u - u32(i & 1) * 16u)) >> 16u"}, nil
	case device.Int32:
		return accessor{"i32", "i32", "%[1]s[i]"}, nil
	case device.Float:
		return accessor{"f32", "f32", "%[1]s[i]"}, nil
	case device.Word64, device.Int64, device.Double:
		// The space keeps the closing brackets from lexing as a shift.
		return accessor{"vec2<u32> ", "vec2<u32>", "%[1]s[i]"}, nil
	default:
		return accessor{}, fmt.Errorf("codegen: unknown element kind %d", int(k))
	}
}

func writeAccessor(b *strings.Builder, k device.Kind, group, binding uint32) error {
	acc, err := accessorFor(k)
	if err != nil {
		return err
	}
	name := "tex_" + k.String()
	b.WriteString("\n")
	fmt.Fprintf(b, "@group(%d) @binding(%d) var<storage, read> %s: array<%s>;\n\n", group, binding, name, acc.storage)
	fmt.Fprintf(b, "fn fetch_%s(i: i32) -> %s {\n    return %s;\n}\n", k, acc.result, fmt.Sprintf(acc.body, name))
	return nil
}
