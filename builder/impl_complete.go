// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_complete.go — implementation of Complete() constructor.
//
// Contract:
//   • Any n ≥ 1 (n=1 yields a single isolated node).
//   • Emits each unordered pair {i,j}, i<j, in stable lexicographic order.
//   • The same clique routine seeds BarabasiAlbert.
//
// Complexity:
//   • Time: O(n²) links.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// Complete returns a Constructor that builds the complete network K_n.
func Complete() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if err := validateEmpty(MethodComplete, net); err != nil {
			return err
		}
		if err := addClique(MethodComplete, net, net.Order()); err != nil {
			return err
		}
		cfg.logger.Debug("network generated",
			"model", MethodComplete, "n", net.Order(), "edges", net.EdgeCount())

		return nil
	}
}
