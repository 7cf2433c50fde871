//go:build debug

package shape

import (
	"testing"

	"github.com/born-ml/cubits/internal/debug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToIndexAssertsNotIgnore(t *testing.T) {
	sh := Make3(2, 3, 4)

	var got any
	func() {
		defer func() { got = recover() }()
		_ = ToIndex(sh, IgnoreOf[DIM3]())
	}()

	err, ok := got.(*debug.AssertionError)
	require.True(t, ok, "panic value should be *debug.AssertionError, got %T", got)
	assert.Equal(t, "!Ignore(ix)", err.Expr)
	assert.Contains(t, err.File, "shape.go")

	assert.Panics(t, func() { _ = ToIndex(Make1(5), IgnoreOf[DIM1]()) })
}

func TestToIndexAcceptsCoordinates(t *testing.T) {
	sh := Make3(2, 3, 4)
	assert.NotPanics(t, func() {
		ForEach(sh, func(ix DIM3) { _ = ToIndex(sh, ix) })
	})
	// Partially -1 coordinates are not the sentinel.
	assert.NotPanics(t, func() { _ = ToIndex(sh, Make3(-1, 0, -1)) })
}
