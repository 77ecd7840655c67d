// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_star.go - implementation of Star() constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Node 0 is the hub; nodes 1..n-1 are leaves.
//   - Emits spokes 0–i in increasing leaf order.
//
// Complexity:
//   - Time: O(n) links. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// Star returns a Constructor that builds a star: hub 0 linked to every
// other node. Leaves have degree 1, the hub degree n-1.
func Star() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := validateEmpty(MethodStar, net); err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err := addLink(MethodStar, net, 0, i); err != nil {
				return err
			}
		}
		cfg.logger.Debug("network generated", "model", MethodStar, "n", n, "edges", net.EdgeCount())

		return nil
	}
}
