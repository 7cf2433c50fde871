// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package launch is the public API for grid sizing and host kernel launches.
package launch

import (
	"github.com/born-ml/cubits/internal/launch"
	"github.com/born-ml/cubits/shape"
)

// Config describes how a kernel is launched.
type Config = launch.Config

// Geometry is the grid chosen for a launch.
type Geometry = launch.Geometry

// DefaultConfig returns 256-thread blocks run on every CPU.
func DefaultConfig() Config { return launch.DefaultConfig() }

// Plan picks the grid for n elements.
func Plan(n int, cfg Config) Geometry { return launch.Plan(n, cfg) }

// Run executes kernel once per thread id in [0, n).
func Run(n int, kernel func(tid shape.Ix), cfg Config) Geometry {
	return launch.Run(n, kernel, cfg)
}

// IsPow2 reports whether x is a power of two.
func IsPow2(x uint32) bool { return launch.IsPow2(x) }

// CeilPow2 returns the smallest power of two >= x.
func CeilPow2(x uint32) uint32 { return launch.CeilPow2(x) }

// FloorPow2 returns the largest power of two <= x.
func FloorPow2(x uint32) uint32 { return launch.FloorPow2(x) }

// Multiple returns x/f rounded up.
func Multiple(x, f uint32) uint32 { return launch.Multiple(x, f) }

// Ceiling rounds x up to a multiple of f.
func Ceiling(x, f uint32) uint32 { return launch.Ceiling(x, f) }
