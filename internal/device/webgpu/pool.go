//go:build windows

package webgpu

import "github.com/go-webgpu/webgpu/wgpu"

// maxPerClass bounds the idle buffers kept for one size class.
const maxPerClass = 16

// PoolStats reports buffer pool usage.
type PoolStats struct {
	Allocated uint64 // Buffers created by the pool
	Released  uint64 // Buffers handed back to the pool
	Hits      uint64 // Acquires served from idle buffers
	Misses    uint64 // Acquires that created a buffer
	Idle      int    // Buffers currently idle
}

type pooledBuffer struct {
	buffer *wgpu.Buffer
	usage  wgpu.BufferUsage
}

// bufferPool recycles buffers by power-of-two size class. Callers
// serialise access through Device.mu.
type bufferPool struct {
	device  *wgpu.Device
	classes map[uint64][]pooledBuffer
	st      PoolStats
}

func newBufferPool(dev *wgpu.Device) *bufferPool {
	return &bufferPool{
		device:  dev,
		classes: make(map[uint64][]pooledBuffer),
	}
}

// acquire returns an idle buffer of the right class and usage, or a new one.
func (p *bufferPool) acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	class := classOf(size)
	idle := p.classes[class]
	for i, pb := range idle {
		if pb.usage == usage {
			p.classes[class] = append(idle[:i], idle[i+1:]...)
			p.st.Hits++
			p.st.Idle--
			return pb.buffer
		}
	}

	p.st.Misses++
	p.st.Allocated++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  class,
	})
}

// release keeps the buffer for reuse, or frees it when its class is full.
func (p *bufferPool) release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.st.Released++
	class := classOf(size)
	if len(p.classes[class]) >= maxPerClass {
		buffer.Release()
		return
	}
	p.classes[class] = append(p.classes[class], pooledBuffer{buffer: buffer, usage: usage})
	p.st.Idle++
}

// clear frees every idle buffer.
func (p *bufferPool) clear() {
	for class, idle := range p.classes {
		for _, pb := range idle {
			pb.buffer.Release()
		}
		delete(p.classes, class)
	}
	p.st.Idle = 0
}

func (p *bufferPool) stats() PoolStats {
	return p.st
}
