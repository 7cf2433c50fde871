// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package texture is the public API of the read-only element accessors.
//
// Bind an accessor to a device region, then Fetch by linear index:
//
//	r := device.Upload([]uint8{10, 20, 30})
//	tex, _ := texture.Bind[uint8](r)
//	v := tex.Fetch(1) // 20
//
// The 64-bit kinds are stored as two 32-bit lanes and reassembled on
// fetch. Double-precision accessors require Config.DoublePrecision.
package texture

import (
	"github.com/born-ml/cubits/device"
	"github.com/born-ml/cubits/internal/texture"
)

// Binding errors.
var (
	ErrKindMismatch      = texture.ErrKindMismatch
	ErrNoDoublePrecision = texture.ErrNoDoublePrecision
)

// Config holds the target capabilities.
type Config = texture.Config

// DefaultConfig enables every kind.
func DefaultConfig() Config { return texture.DefaultConfig() }

// Native is a constraint for the single-load kinds.
type Native = texture.Native

// Fetcher is implemented by every accessor handle.
type Fetcher[T any] = texture.Fetcher[T]

// Tex is an accessor for a single-load kind.
type Tex[T Native] = texture.Tex[T]

// Accessor handles, one per element kind.
type (
	TexWord8  = texture.TexWord8
	TexWord16 = texture.TexWord16
	TexWord32 = texture.TexWord32
	TexWord64 = texture.TexWord64
	TexInt8   = texture.TexInt8
	TexInt16  = texture.TexInt16
	TexInt32  = texture.TexInt32
	TexInt64  = texture.TexInt64
	TexFloat  = texture.TexFloat
	TexDouble = texture.TexDouble
	TexChar   = texture.TexChar
	TexWord   = texture.TexWord
	TexInt    = texture.TexInt
)

// Lanes is one raw two-lane read.
type Lanes = texture.Lanes

// Bind binds a single-load accessor to r.
func Bind[T Native](r *device.Region) (Tex[T], error) { return texture.Bind[T](r) }

// BindWord64 binds an unsigned 64-bit accessor to r.
func BindWord64(r *device.Region) (TexWord64, error) { return texture.BindWord64(r) }

// BindInt64 binds a signed 64-bit accessor to r.
func BindInt64(r *device.Region) (TexInt64, error) { return texture.BindInt64(r) }

// BindDouble binds a float64 accessor to r if cfg allows it.
func BindDouble(r *device.Region, cfg Config) (TexDouble, error) {
	return texture.BindDouble(r, cfg)
}
