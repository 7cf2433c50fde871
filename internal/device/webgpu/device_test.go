//go:build windows

package webgpu

import (
	"testing"

	"github.com/born-ml/cubits/internal/device"
	"github.com/born-ml/cubits/internal/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(t *testing.T) *Device {
	t.Helper()
	d, err := New()
	if err != nil {
		t.Skipf("WebGPU not available: %v", err)
	}
	t.Cleanup(d.Release)
	return d
}

func TestUploadSnapshotRoundTrip(t *testing.T) {
	d := newDevice(t)

	src := device.Upload([]int16{-1, 2, -3})
	buf, err := d.Upload(src)
	require.NoError(t, err)
	defer buf.Release()
	assert.Equal(t, device.Int16, buf.Kind())

	host, err := buf.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, src.Bytes(), host.Bytes())

	tex, err := texture.Bind[int16](host)
	require.NoError(t, err)
	assert.Equal(t, int16(-3), tex.Fetch(2))
}

func TestSnapshotReusesStaging(t *testing.T) {
	d := newDevice(t)

	buf, err := d.Upload(device.Upload([]float64{1, 2}))
	require.NoError(t, err)
	defer buf.Release()

	for i := 0; i < 3; i++ {
		_, err := buf.Snapshot()
		require.NoError(t, err)
	}

	st := d.Stats()
	assert.Equal(t, uint64(1), st.Allocated)
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, 1, st.Idle)
}

func TestReleasedDevice(t *testing.T) {
	d := newDevice(t)
	buf, err := d.Upload(device.Upload([]uint8{1}))
	require.NoError(t, err)
	buf.Release()

	_, err = buf.Snapshot()
	require.ErrorIs(t, err, device.ErrReleased)

	d.Release()
	_, err = d.Upload(device.Upload([]uint8{1}))
	require.ErrorIs(t, err, ErrDeviceReleased)
}
