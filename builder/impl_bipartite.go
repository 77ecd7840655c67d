// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(left) constructor.
//
// Contract:
//   • Left part is nodes [0,left), right part is [left,n).
//   • left ≥ 1 and n-left ≥ 1 (else ErrTooFewVertices).
//   • Emits every cross pair (i,j) with i asc over the left part, inner j asc
//     over the right part.
//
// Complexity:
//   • Time: O(left·(n-left)) links. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// CompleteBipartite returns a Constructor for K_{left, n-left}.
func CompleteBipartite(left int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()

		// Early validation: both parts must be non-empty.
		if err := validateMin(MethodCompleteBipartite, "left", left, MinPartitionSize); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "right", n-left, MinPartitionSize); err != nil {
			return err
		}
		if err := validateEmpty(MethodCompleteBipartite, net); err != nil {
			return err
		}

		var i, j int
		for i = 0; i < left; i++ {
			for j = left; j < n; j++ {
				if err := addLink(MethodCompleteBipartite, net, i, j); err != nil {
					return err
				}
			}
		}
		cfg.logger.Debug("network generated",
			"model", MethodCompleteBipartite, "left", left, "right", n-left, "edges", net.EdgeCount())

		return nil
	}
}
