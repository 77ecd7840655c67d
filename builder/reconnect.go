// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// reconnect.go — the rewiring helper shared by WattsStrogatz.
//
// Rule (asymmetric, not a swap):
//   1) delete link (i,j) (no-op if absent);
//   2) draw t = ⌊n·UniformHalfOpen()⌋ until t is neither i nor a neighbor of i;
//   3) link (i,t).
// Node i keeps its degree; j loses one link; t gains one. t may equal j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
	"github.com/katalvlaran/netgen/random"
)

// Reconnect rewires the link (i,j) to (i,t) for a uniformly drawn t.
//
// Errors:
//   - ErrConstructFailed: nil network.
//   - ErrNeedRandSource: nil source.
//   - ErrInvalidArgument: i or j out of range, or i == j.
//
// After the deletion j is never a neighbor of i, so at least one admissible
// target exists and the redraw loop terminates with probability 1.
//
// Complexity: O(log d) per draw; expected n/(n-1-deg(i)) draws.
func Reconnect(net *core.Network, src random.Source, i, j int) error {
	if net == nil {
		return fmt.Errorf("%s: nil network: %w", MethodReconnect, ErrConstructFailed)
	}
	if src == nil {
		return fmt.Errorf("%s: %w", MethodReconnect, ErrNeedRandSource)
	}
	n := net.Order()
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return fmt.Errorf("%s(%d,%d): n=%d: %w", MethodReconnect, i, j, n, ErrInvalidArgument)
	}

	if err := net.DeleteLink(i, j); err != nil {
		return fmt.Errorf("%s: %w", MethodReconnect, err)
	}

	t := random.Index(src, n)
	for net.IsSelfOrNeighbor(i, t) {
		t = random.Index(src, n)
	}

	return addLink(MethodReconnect, net, i, t)
}
