// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device is the public API for the storage regions accessors bind
// to: host uploads and read-only file mappings.
package device

import "github.com/born-ml/cubits/internal/device"

// Region errors.
var (
	ErrReleased = device.ErrReleased
	ErrSize     = device.ErrSize
	ErrAlign    = device.ErrAlign
)

// Region is a reference-counted read-only block of elements.
type Region = device.Region

// Kind identifies an element kind.
type Kind = device.Kind

// Char is the byte/character element type.
type Char = device.Char

// Elem is a constraint for every storable element type.
type Elem = device.Elem

// Element kinds.
const (
	Word8    = device.Word8
	Word16   = device.Word16
	Word32   = device.Word32
	Word64   = device.Word64
	Int8     = device.Int8
	Int16    = device.Int16
	Int32    = device.Int32
	Int64    = device.Int64
	Float    = device.Float
	Double   = device.Double
	CharKind = device.CharKind
	Word     = device.Word
	Int      = device.Int
)

// Upload copies host data into a new region.
func Upload[T Elem](data []T) *Region { return device.Upload(data) }

// UploadLanes builds a 64-bit region from raw lanes, low lane first.
func UploadLanes(kind Kind, lanes []uint32) (*Region, error) {
	return device.UploadLanes(kind, lanes)
}

// FromBytes wraps raw storage as a region without copying. b must be
// aligned to kind.Align().
func FromBytes(kind Kind, b []byte) (*Region, error) { return device.FromBytes(kind, b) }

// CopyBytes copies raw storage into a new aligned region.
func CopyBytes(kind Kind, b []byte) (*Region, error) { return device.CopyBytes(kind, b) }

// MapFile maps a file of raw elements read-only.
func MapFile(path string, kind Kind) (*Region, error) { return device.MapFile(path, kind) }

// KindOf returns the kind of element type T.
func KindOf[T Elem]() Kind { return device.KindOf[T]() }
