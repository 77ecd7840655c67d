// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithSource or WithRand.

package builder

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/netgen/random"
)

// BuilderOption customizes a generator run by mutating a builderConfig
// instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithSeed creates a fresh MT19937 source seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.src = random.NewMT19937(seed)
	}
}

// WithSource installs an explicit random source. Panics on nil.
// The source's state advances as the generator draws from it.
func WithSource(src random.Source) BuilderOption {
	if src == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithRand adapts a *rand.Rand as the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	src := random.FromRand(r)
	return func(c *builderConfig) {
		c.src = src
	}
}

// WithLogger routes generator progress (DEBUG) and policy notes (WARN) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithLattice2DPolicy selects how Lattice2D treats non-square n.
// Panics on an unknown policy value.
func WithLattice2DPolicy(p Lattice2DPolicy) BuilderOption {
	if p != LatticeReject && p != LatticeTruncate {
		panic("builder: WithLattice2DPolicy(unknown)")
	}
	return func(c *builderConfig) {
		c.latticePolicy = p
	}
}

// WithSelection selects the BarabasiAlbert target lookup strategy.
// Panics on an unknown value.
func WithSelection(s Selection) BuilderOption {
	if s != SelectFenwick && s != SelectLinear {
		panic("builder: WithSelection(unknown)")
	}
	return func(c *builderConfig) {
		c.selection = s
	}
}
