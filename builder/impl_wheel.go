// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// impl_wheel.go — implementation of Wheel() constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a ring over nodes 1..n-1 plus hub 0 linked to all of them.
//   • Therefore n ≥ 4 (the rim must be a valid ring: n-1 ≥ MinRingNodes).
//
// Contract:
//   • n ≥ MinWheelNodes (else ErrTooFewVertices).
//   • Emits the rim first (1–2, 2–3, …, (n-1)–1), then spokes 0–i in index order.
//
// Complexity:
//   • Time: O(n) links. Space: O(1) extra.

package builder

import (
	"github.com/katalvlaran/netgen/core"
)

// Wheel returns a Constructor that builds the wheel Wₙ with hub 0.
func Wheel() Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		n := net.Order()
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := validateEmpty(MethodWheel, net); err != nil {
			return err
		}

		// 1) Rim: ring over 1..n-1.
		rim := n - 1
		for k := 0; k < rim; k++ {
			if err := addLink(MethodWheel, net, 1+k, 1+(k+1)%rim); err != nil {
				return err
			}
		}

		// 2) Spokes.
		for i := 1; i < n; i++ {
			if err := addLink(MethodWheel, net, 0, i); err != nil {
				return err
			}
		}
		cfg.logger.Debug("network generated", "model", MethodWheel, "n", n, "edges", net.EdgeCount())

		return nil
	}
}
