// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_lattice1d.go — implementation of Lattice1D() constructor.
//
// Contract:
//   • n ≥ MinRingNodes (else ErrTooFewVertices + ErrInvalidArgument).
//   • Emits links i—(i+1)%n for i=0..n-1; every node ends with degree 2.
//   • No randomness; cfg.src is ignored.
//
// Complexity:
//   • Time: O(n) links.
//   • Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// Lattice1D returns a Constructor that builds the n-node ring lattice.
func Lattice1D() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()
		if err := validateMin(MethodLattice1D, "n", n, MinRingNodes); err != nil {
			return err
		}
		if err := validateEmpty(MethodLattice1D, net); err != nil {
			return err
		}

		// Emit links in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addLink(MethodLattice1D, net, i, (i+1)%n); err != nil {
				return err
			}
		}

		cfg.logger.Debug("network generated", "model", MethodLattice1D, "n", n, "edges", net.EdgeCount())

		return nil
	}
}
