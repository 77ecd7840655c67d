// SPDX-License-Identifier: MIT
// Package: netgen/random
//
// mt19937.go — Mersenne Twister source.
//
// Conversions follow the reference mt19937ar generator:
//   • genrand_real2: x / 2^32           → [0,1)
//   • genrand_real3: (x + 0.5) / 2^32   → (0,1)
// where x is the next 32-bit output. Seeding uses init_genrand semantics
// (lower 32 bits of the seed), provided by gonum's prng.MT19937.

package random

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// DefaultSeed is the canonical MT19937 default seed.
const DefaultSeed uint64 = 5489

// inv32 is 1/2^32.
const inv32 = 1.0 / 4294967296.0

// MT19937 is a Source backed by a 32-bit Mersenne Twister.
type MT19937 struct {
	mt *prng.MT19937
}

// NewMT19937 returns a Mersenne Twister source seeded with seed.
func NewMT19937(seed uint64) *MT19937 {
	src := &MT19937{mt: prng.NewMT19937()}
	src.Seed(seed)

	return src
}

// Seed re-initializes the generator state. Only the lower 32 bits are used.
func (s *MT19937) Seed(seed uint64) {
	s.mt.Seed(seed)
}

// Uint32 returns the next raw 32-bit output.
func (s *MT19937) Uint32() uint32 {
	return s.mt.Uint32()
}

// UniformOpenClosed implements Source.
func (s *MT19937) UniformOpenClosed() float64 {
	return (float64(s.mt.Uint32()) + 0.5) * inv32
}

// UniformHalfOpen implements Source.
func (s *MT19937) UniformHalfOpen() float64 {
	return float64(s.mt.Uint32()) * inv32
}
