// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_watts_strogatz.go — implementation of WattsStrogatz(r, p) constructor.
//
// Canonical model:
//   • Ring phase: for i asc, j ∈ [0,r): link i—(i+j+1) mod n. Mean degree 2r.
//   • Rewire phase: same (i, j) order; draw UniformOpenClosed() and, iff the
//     draw is below p, Reconnect(i, (i+j+1) mod n).
//
// Contract:
//   • r ≥ MinRadius and 2r < n (else ErrInvalidArgument); this keeps ring
//     links distinct.
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.src must be non-nil (else ErrNeedRandSource).
//   • Network must be empty (else ErrNetworkNotEmpty).
//   • Rewiring preserves the source node's degree and the total link count.
//
// Complexity:
//   • Time: O(n·r) ring + O(n·r) trials; each rewire expects O(n/(n-d)) redraws.
//
// Determinism:
//   • One trial draw per ring link, plus Reconnect's index draws inline.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
)

// WattsStrogatz returns a Constructor that builds a small-world network.
func WattsStrogatz(r int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()

		// 1) Validate parameters early.
		if err := validateMin(MethodWattsStrogatz, "r", r, MinRadius); err != nil {
			return err
		}
		if 2*r >= n {
			return fmt.Errorf("%s: r=%d requires n > 2r, got n=%d: %w",
				MethodWattsStrogatz, r, n, ErrInvalidArgument)
		}
		if err := validateProbability(MethodWattsStrogatz, p); err != nil {
			return err
		}
		if err := validateSource(MethodWattsStrogatz, cfg); err != nil {
			return err
		}
		if err := validateEmpty(MethodWattsStrogatz, net); err != nil {
			return err
		}

		// 2) Ring phase.
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < r; j++ {
				if err := addLink(MethodWattsStrogatz, net, i, (i+j+1)%n); err != nil {
					return err
				}
			}
		}

		// 3) Rewire phase over the same pairs in the same order.
		src := cfg.src
		rewired := 0
		for i = 0; i < n; i++ {
			for j = 0; j < r; j++ {
				if src.UniformOpenClosed() < p {
					if err := Reconnect(net, src, i, (i+j+1)%n); err != nil {
						return fmt.Errorf("%s: %w", MethodWattsStrogatz, err)
					}
					rewired++
				}
			}
		}

		cfg.logger.Debug("network generated",
			"model", MethodWattsStrogatz, "n", n, "r", r, "p", p,
			"edges", net.EdgeCount(), "rewired", rewired)

		return nil
	}
}
