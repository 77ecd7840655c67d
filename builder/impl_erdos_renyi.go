// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_erdos_renyi.go - implementation of ErdosRenyi(p) constructor.
//
// Canonical model:
//   - G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//   - The pair is linked iff its UniformOpenClosed() draw is strictly below p.
//
// Contract:
//   - n ≥ 1 (network order).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.src must be non-nil (else ErrNeedRandSource). Draws are consumed even
//     for p ∈ {0,1} so that the stream position depends on n only.
//   - Network must be empty (else ErrNetworkNotEmpty).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j > i); exactly n(n-1)/2 draws.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// ErdosRenyi returns a Constructor that samples G(n,p) over the network's
// n nodes.
func ErdosRenyi(p float64) Constructor {
	// The returned closure captures p; Generate supplies (net, cfg).
	return func(net *core.Network, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateProbability(MethodErdosRenyi, p); err != nil {
			return err
		}
		if err := validateSource(MethodErdosRenyi, cfg); err != nil {
			return err
		}
		if err := validateEmpty(MethodErdosRenyi, net); err != nil {
			return err
		}

		n := net.Order()
		src := cfg.src // local alias (nil already rejected)

		// 2) Bernoulli trial per unordered pair in a fixed order.
		var i, j int
		for i = 0; i < n; i++ { // stable i asc
			for j = i + 1; j < n; j++ { // j strictly greater than i
				if src.UniformOpenClosed() < p {
					if err := addLink(MethodErdosRenyi, net, i, j); err != nil {
						return err
					}
				}
			}
		}

		cfg.logger.Debug("network generated",
			"model", MethodErdosRenyi, "n", n, "p", p, "edges", net.EdgeCount())

		return nil
	}
}
