// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_barabasi_albert.go — implementation of BarabasiAlbert(m) constructor.
//
// Canonical model:
//   • Seed: complete network on nodes 0..m; the ledger records degree m for
//     each seed node and a pool of m(m+1).
//   • Growth: for i = m+1..n-1, attach m distinct links one at a time:
//       draw total·UniformOpenClosed(), resolve to the first node whose
//       cumulative degree covers the draw, reject (and redraw) if already a
//       neighbor of i, otherwise link, bump both degrees and grow the pool by 1.
//     After node i's m links, the pool grows by m.
//
// Contract:
//   • MinAttachment ≤ m < n (else ErrInvalidArgument).
//   • cfg.src must be non-nil (else ErrNeedRandSource).
//   • Network must be empty (else ErrNetworkNotEmpty).
//   • Every node i > m ends with degree ≥ m.
//
// Complexity:
//   • Time: O(m²) seed + expected O(n·m·log n) growth (Fenwick) or O(n²·m)
//     with SelectLinear; rejections add redraws.
//   • Space: O(n) for the ledger.
//
// Determinism:
//   • Draws are consumed one per candidate, including rejected ones.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/random"
)

// BarabasiAlbert returns a Constructor that grows a preferential-attachment
// network with m links per new node.
func BarabasiAlbert(m int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()

		// 1) Parameter validation (fail fast; zero side-effects on invalid input).
		if err := validateMin(MethodBarabasiAlbert, "m", m, MinAttachment); err != nil {
			return err
		}
		if m >= n {
			return fmt.Errorf("%s: m=%d must be < n=%d: %w", MethodBarabasiAlbert, m, n, ErrInvalidArgument)
		}
		if err := validateSource(MethodBarabasiAlbert, cfg); err != nil {
			return err
		}
		if err := validateEmpty(MethodBarabasiAlbert, net); err != nil {
			return err
		}

		// 2) Seed clique over nodes 0..m.
		ledger, err := seedPreferential(net, m, cfg.selection)
		if err != nil {
			return err
		}

		// 3) Growth phase.
		rejected := 0
		for i := m + 1; i < n; i++ {
			r, err := ledger.attach(net, cfg.src, i, m)
			if err != nil {
				return err
			}
			rejected += r
		}

		cfg.logger.Debug("network generated",
			"model", MethodBarabasiAlbert, "n", n, "m", m,
			"edges", net.EdgeCount(), "rejected", rejected, "selection", cfg.selection.String())

		return nil
	}
}

// seedPreferential links the clique over nodes 0..m and returns a ledger
// recording degree m per seed node and a pool of m(m+1).
func seedPreferential(net *core.Network, m int, sel Selection) (*degreeLedger, error) {
	if err := addClique(MethodBarabasiAlbert, net, m+1); err != nil {
		return nil, err
	}
	ledger := newDegreeLedger(net.Order(), sel)
	for k := 0; k <= m; k++ {
		ledger.bump(k, m)
		ledger.grow(m)
	}

	return ledger, nil
}

// attach links node i to m distinct degree-weighted targets and then adds
// i's share m to the pool. Returns the number of rejected candidates.
func (l *degreeLedger) attach(net *core.Network, src random.Source, i, m int) (int, error) {
	rejected := 0
	for attached := 0; attached < m; {
		k := l.pick(float64(l.total) * src.UniformOpenClosed())
		if k < 0 {
			// Unreachable while the pool invariant holds.
			return rejected, fmt.Errorf("%s: node %d: draw beyond pool %d: %w",
				MethodBarabasiAlbert, i, l.total, ErrConstructFailed)
		}
		if net.IsSelfOrNeighbor(i, k) {
			rejected++
			continue
		}
		if err := addLink(MethodBarabasiAlbert, net, i, k); err != nil {
			return rejected, err
		}
		l.bump(i, 1)
		l.bump(k, 1)
		l.grow(1)
		attached++
	}
	l.grow(m)

	return rejected, nil
}
