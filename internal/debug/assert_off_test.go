//go:build !debug

package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertReleaseIsNoop(t *testing.T) {
	assert.False(t, Enabled)
	assert.NotPanics(t, func() {
		Assert(false, "1 == 2")
	})
}
