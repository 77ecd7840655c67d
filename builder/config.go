// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • src           = nil               (stochastic models require a source)
//   • logger        = discard
//   • latticePolicy = LatticeReject
//   • selection     = SelectFenwick

package builder

import (
	"log/slog"

	"github.com/katalvlaran/netgen/random"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Random stream for stochastic models; nil means "no randomness".
	src random.Source
	// Progress and policy log sink.
	logger *slog.Logger

	// Lattice2D behavior for non-square n.
	latticePolicy Lattice2DPolicy
	// BarabasiAlbert target lookup strategy.
	selection Selection
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		src:           nil,
		logger:        slog.New(slog.DiscardHandler),
		latticePolicy: LatticeReject,
		selection:     SelectFenwick,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
