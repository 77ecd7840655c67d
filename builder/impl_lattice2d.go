// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_lattice2d.go — implementation of Lattice2D() constructor.
//
// Canonical model:
//   • l×l torus, l = ⌊√n⌋, row-major index idx(r,c) = r·l + c.
//   • Each cell links to its right (r, c+1 mod l) and bottom (r+1 mod l, c)
//     neighbor, so every torus node has degree exactly 4.
//
// Contract:
//   • l ≥ MinTorusSide (else ErrTooFewVertices + ErrInvalidArgument).
//   • n == l² under LatticeReject (default), else ErrNotSquare.
//   • Under LatticeTruncate the n − l² nodes idx ≥ l² stay isolated and a
//     WARN record is logged.
//   • No randomness; cfg.src is ignored.
//
// Complexity:
//   • Time: O(l²) links.
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable order: row-major (r asc, then c asc); Right then Bottom per cell.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netgen/core"
)

// Lattice2D returns a Constructor that builds a periodic square lattice.
func Lattice2D() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()
		l := isqrt(n)

		// 1) Validate side and squareness before any mutation.
		if err := validateMin(MethodLattice2D, "side", l, MinTorusSide); err != nil {
			return err
		}
		if leftover := n - l*l; leftover != 0 {
			if cfg.latticePolicy == LatticeReject {
				return fmt.Errorf("%s: n=%d (nearest square %d²=%d): %w",
					MethodLattice2D, n, l, l*l, ErrNotSquare)
			}
			cfg.logger.Warn("non-square order truncated; leftover nodes stay isolated",
				"model", MethodLattice2D, "n", n, "side", l, "leftover", leftover)
		}
		if err := validateEmpty(MethodLattice2D, net); err != nil {
			return err
		}

		// 2) Emit links: for each (r,c), connect Right and Bottom with wraparound.
		var r, c int
		for r = 0; r < l; r++ {
			for c = 0; c < l; c++ {
				u := r*l + c
				if err := addLink(MethodLattice2D, net, u, r*l+(c+1)%l); err != nil {
					return err
				}
				if err := addLink(MethodLattice2D, net, u, ((r+1)%l)*l+c); err != nil {
					return err
				}
			}
		}

		cfg.logger.Debug("network generated",
			"model", MethodLattice2D, "n", n, "side", l, "edges", net.EdgeCount())

		return nil
	}
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting any float rounding.
func isqrt(n int) int {
	l := int(math.Sqrt(float64(n)))
	for l*l > n {
		l--
	}
	for (l+1)*(l+1) <= n {
		l++
	}

	return l
}
