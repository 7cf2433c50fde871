// Package webgpu places device regions in WebGPU storage buffers.
//
// A region is uploaded once into a read-only storage buffer before kernels
// run; Snapshot copies the device contents back into a host region that
// accessors can bind to. Uses go-webgpu (github.com/go-webgpu/webgpu),
// available on windows builds.
package webgpu
