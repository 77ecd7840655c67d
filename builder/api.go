// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One model per run: BuildNetwork(n, gen, opts...) allocates the network
//     and applies exactly one Constructor; Generate does the same against a
//     caller-owned, empty network.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n/parameters/seed ⇒ identical networks.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
)

// Constructor populates an empty network using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before the first mutation and return sentinel errors.
//   - Consume random draws in their documented order.
//   - Leave the network symmetric and free of self-loops.
type Constructor func(net *core.Network, cfg builderConfig) error

// BuildNetwork allocates a network of n nodes, resolves the builder
// configuration from opts and applies gen. Errors are wrapped with
// "BuildNetwork: %w"; on failure no network is returned.
//
// Errors:
//   - ErrInvalidArgument / ErrTooFewVertices if n < 1.
//   - ErrConstructFailed if gen is nil.
//   - Any sentinel returned by gen.
func BuildNetwork(n int, gen Constructor, opts ...BuilderOption) (*core.Network, error) {
	if err := validateMin("BuildNetwork", "n", n, 1); err != nil {
		return nil, err
	}
	net, err := core.NewNetwork(n)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}
	if err = Generate(net, gen, opts...); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return net, nil
}

// Generate applies gen to a caller-owned network. The network must be empty;
// its order fixes n for the model.
//
// On error the network may hold a partial construction; call Teardown before
// reusing it.
func Generate(net *core.Network, gen Constructor, opts ...BuilderOption) error {
	if net == nil {
		return fmt.Errorf("Generate: nil network: %w", ErrConstructFailed)
	}
	if gen == nil {
		return fmt.Errorf("Generate: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	return gen(net, cfg)
}

// =============================================================================
// Model factories (declarations) - implemented in impl_*.go
// =============================================================================

// ErdosRenyi builds G(n,p): each unordered pair {i,j} is linked iff its
// (0,1) draw is below p. Draws: exactly n(n-1)/2, i asc then j asc.
//func ErdosRenyi(p float64) Constructor

// BarabasiAlbert grows a preferential-attachment network from an (m+1)-clique,
// attaching m distinct links per new node. Requires 1 ≤ m < n.
//func BarabasiAlbert(m int) Constructor

// WattsStrogatz builds a ring of radius r and rewires each ring link with
// probability p. Requires r ≥ 1 and 2r < n.
//func WattsStrogatz(r int, p float64) Constructor

// Reconnect deletes link (i,j) and links i to a fresh uniformly drawn node.
//func Reconnect(net *core.Network, src random.Source, i, j int) error

// Lattice1D builds the cycle 0-1-…-(n-1)-0. Requires n ≥ 3.
//func Lattice1D() Constructor

// Lattice2D builds an l×l periodic torus. Requires l ≥ 3.
//func Lattice2D() Constructor

// Complete builds K_n.
//func Complete() Constructor

// Star links hub 0 to every other node. Requires n ≥ 2.
//func Star() Constructor

// Wheel builds a ring over 1..n-1 plus spokes from hub 0. Requires n ≥ 4.
//func Wheel() Constructor

// CompleteBipartite links every node of [0,left) to every node of [left,n).
//func CompleteBipartite(left int) Constructor
