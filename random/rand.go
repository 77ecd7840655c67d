// SPDX-License-Identifier: MIT
// Package: netgen/random
//
// rand.go — adapter over *math/rand.Rand.

package random

import "math/rand"

// randSource adapts a *rand.Rand to Source.
type randSource struct {
	r *rand.Rand
}

// FromRand wraps r as a Source. Panics on nil (programmer error).
func FromRand(r *rand.Rand) Source {
	if r == nil {
		panic("random: FromRand(nil)")
	}

	return randSource{r: r}
}

// UniformOpenClosed rejects exact zeros from Float64, which is [0,1).
func (s randSource) UniformOpenClosed() float64 {
	for {
		if u := s.r.Float64(); u > 0 {
			return u
		}
	}
}

func (s randSource) UniformHalfOpen() float64 {
	return s.r.Float64()
}
