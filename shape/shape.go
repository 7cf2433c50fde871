// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape is the public API of the rank 1..5 index algebra.
//
// Shapes and coordinates share one type per rank; the last argument of a
// constructor is the innermost (fastest-varying) axis:
//
//	sh := shape.Make2(3, 4)           // 3 rows of 4
//	i := shape.ToIndex(sh, shape.Make2(2, 1)) // 9
//	ix := shape.FromIndex(sh, i)      // (2, 1)
//
// Coordinates whose every axis is -1 are the ignore sentinel and must be
// tested with Ignore before they are linearised.
package shape

import "github.com/born-ml/cubits/internal/shape"

// Ix is the scalar index type (Go int).
type Ix = shape.Ix

// MaxRank is the highest supported rank.
const MaxRank = shape.MaxRank

// Shape and coordinate types.
type (
	DIM1 = shape.DIM1
	DIM2 = shape.DIM2
	DIM3 = shape.DIM3
	DIM4 = shape.DIM4
	DIM5 = shape.DIM5
)

// Axes holds axes innermost first.
type Axes = shape.Axes

// Dim is satisfied by every shape/coordinate type.
type Dim = shape.Dim

// Make1 builds a rank-1 shape or coordinate.
func Make1(a0 Ix) DIM1 { return shape.Make1(a0) }

// Make2 builds a rank-2 shape or coordinate.
func Make2(a1, a0 Ix) DIM2 { return shape.Make2(a1, a0) }

// Make3 builds a rank-3 shape or coordinate.
func Make3(a2, a1, a0 Ix) DIM3 { return shape.Make3(a2, a1, a0) }

// Make4 builds a rank-4 shape or coordinate.
func Make4(a3, a2, a1, a0 Ix) DIM4 { return shape.Make4(a3, a2, a1, a0) }

// Make5 builds a rank-5 shape or coordinate.
func Make5(a4, a3, a2, a1, a0 Ix) DIM5 { return shape.Make5(a4, a3, a2, a1, a0) }

// Make builds a value of type D from extents listed innermost last.
func Make[D Dim](extents ...Ix) D { return shape.Make[D](extents...) }

// Rank returns the fixed rank of the shape's type.
func Rank[D Dim](sh D) int { return shape.Rank(sh) }

// Size returns the number of elements of sh.
func Size[D Dim](sh D) Ix { return shape.Size(sh) }

// ToIndex converts a coordinate to its row-major linear offset.
func ToIndex[D Dim](sh, ix D) Ix { return shape.ToIndex(sh, ix) }

// FromIndex converts a linear offset back to a coordinate.
func FromIndex[D Dim](sh D, i Ix) D { return shape.FromIndex(sh, i) }

// Ignore reports whether ix is the ignore sentinel.
func Ignore[D Dim](ix D) bool { return shape.Ignore(ix) }

// IgnoreOf returns the ignore sentinel of type D.
func IgnoreOf[D Dim]() D { return shape.IgnoreOf[D]() }

// InBounds reports whether ix lies inside sh.
func InBounds[D Dim](sh, ix D) bool { return shape.InBounds(sh, ix) }

// Strides returns the row-major strides of sh.
func Strides[D Dim](sh D) D { return shape.Strides(sh) }

// ForEach calls f for every coordinate of sh in linear order.
func ForEach[D Dim](sh D, f func(ix D)) { shape.ForEach(sh, f) }
