//go:build debug

package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertDebugPanics(t *testing.T) {
	require.True(t, Enabled)

	var got any
	func() {
		defer func() { got = recover() }()
		Assert(1+1 == 3, "1+1 == 3")
	}()

	err, ok := got.(*AssertionError)
	require.True(t, ok, "panic value should be *AssertionError, got %T", got)
	assert.Equal(t, "1+1 == 3", err.Expr)
	assert.True(t, strings.HasSuffix(err.File, "assert_on_test.go"), err.File)
	assert.Positive(t, err.Line)
	assert.Contains(t, err.Error(), "failed assertion `1+1 == 3'")
}

func TestAssertDebugPasses(t *testing.T) {
	assert.NotPanics(t, func() {
		Assert(true, "true")
	})
}
