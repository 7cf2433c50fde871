//go:build windows

package webgpu

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/born-ml/cubits/internal/device"
	"github.com/go-webgpu/webgpu/wgpu"
)

// ErrDeviceReleased is returned by operations on a released Device.
var ErrDeviceReleased = errors.New("webgpu: device released")

const (
	// storageUsage is the usage of every uploaded region.
	storageUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc
	// stagingUsage is the usage of pooled readback buffers.
	stagingUsage = wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst
)

// Device owns a WebGPU device and the storage buffers uploaded to it.
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	pool     *bufferPool
	mu       sync.Mutex
}

// New opens the default high-performance adapter.
// Returns an error if WebGPU is not available.
func New() (d *Device, err error) {
	// Recover from panic if the wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", err)
	}

	dev, err := adapter.RequestDevice(nil)
	if err != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", err)
	}

	queue := dev.GetQueue()
	if queue == nil {
		dev.Release()
		adapter.Release()
		instance.Release()
		return nil, errors.New("webgpu: failed to get queue")
	}

	return &Device{
		instance: instance,
		adapter:  adapter,
		device:   dev,
		queue:    queue,
		pool:     newBufferPool(dev),
	}, nil
}

// Buffer is a region resident in a WebGPU storage buffer.
type Buffer struct {
	dev    *Device
	buffer *wgpu.Buffer
	size   uint64 // Allocated size, a multiple of 4
	bytes  int    // Meaningful bytes
	kind   device.Kind
}

// Kind returns the element kind of the uploaded region.
func (b *Buffer) Kind() device.Kind {
	return b.kind
}

// Upload copies a region into a storage buffer.
func (d *Device) Upload(r *device.Region) (*Buffer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.device == nil {
		return nil, ErrDeviceReleased
	}

	data := r.Bytes()
	if data == nil {
		return nil, fmt.Errorf("webgpu: upload: %w", device.ErrReleased)
	}
	size := paddedSize(len(data))

	buffer := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            storageUsage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})
	mapped := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice over the mapped range of a new buffer
	copy(unsafe.Slice((*byte)(mapped), size), data)
	buffer.Unmap()

	return &Buffer{dev: d, buffer: buffer, size: size, bytes: len(data), kind: r.Kind()}, nil
}

// Snapshot reads the buffer back into a new host region.
func (b *Buffer) Snapshot() (*device.Region, error) {
	d := b.dev
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.device == nil {
		return nil, ErrDeviceReleased
	}
	if b.buffer == nil {
		return nil, fmt.Errorf("webgpu: snapshot: %w", device.ErrReleased)
	}

	staging := d.pool.acquire(b.size, stagingUsage)
	defer d.pool.release(staging, b.size, stagingUsage)

	encoder := d.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(b.buffer, 0, staging, 0, b.size)
	d.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(d.device, wgpu.MapModeRead, 0, b.size); err != nil {
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}
	mapped := staging.GetMappedRange(0, b.size)
	//nolint:gosec // unsafe.Slice over the mapped staging range
	r, err := device.CopyBytes(b.kind, unsafe.Slice((*byte)(mapped), b.size)[:b.bytes])
	staging.Unmap()
	return r, err
}

// Release frees the storage buffer.
func (b *Buffer) Release() {
	d := b.dev
	d.mu.Lock()
	defer d.mu.Unlock()
	if b.buffer == nil {
		return
	}
	b.buffer.Release()
	b.buffer = nil
}

// Stats reports buffer pool usage.
func (d *Device) Stats() PoolStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pool == nil {
		return PoolStats{}
	}
	return d.pool.stats()
}

// Release releases every WebGPU resource. Buffers still held by callers
// must not be used afterwards.
func (d *Device) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pool != nil {
		d.pool.clear()
		d.pool = nil
	}
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
	if d.adapter != nil {
		d.adapter.Release()
		d.adapter = nil
	}
	if d.instance != nil {
		d.instance.Release()
		d.instance = nil
	}
}
