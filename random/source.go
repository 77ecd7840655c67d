// SPDX-License-Identifier: MIT
// Package: netgen/random
//
// source.go — the Source contract and helpers shared by generators.

package random

// Source is a stateful stream of uniform variates.
type Source interface {
	// UniformOpenClosed returns a value in the open interval (0,1).
	UniformOpenClosed() float64
	// UniformHalfOpen returns a value in the half-open interval [0,1).
	UniformHalfOpen() float64
}

// Index draws an index in [0,n) as int(n * UniformHalfOpen()).
// The truncation rule matches the reference generator, so the same draw
// stream produces the same indices. n must be positive.
func Index(src Source, n int) int {
	idx := int(float64(n) * src.UniformHalfOpen())
	// Guard against float rounding at the very top of the interval.
	if idx >= n {
		idx = n - 1
	}

	return idx
}
