package webgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	tests := []struct{ size, class uint64 }{
		{4, 4},
		{5, 8},
		{1000, 1024},
		{4096, 4096},
		{1<<31 + 1, 1 << 32},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.class, classOf(tt.size), "classOf(%d)", tt.size)
	}
}

func TestPaddedSize(t *testing.T) {
	assert.Equal(t, uint64(4), paddedSize(0))
	assert.Equal(t, uint64(4), paddedSize(3))
	assert.Equal(t, uint64(8), paddedSize(5))
	assert.Equal(t, uint64(24), paddedSize(24))
	assert.Equal(t, uint64(1<<32+8), paddedSize(1<<32+5))
}
