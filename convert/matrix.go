// SPDX-License-Identifier: MIT
// Package: netgen/convert
//
// matrix.go — dense adjacency matrix view.

package convert

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netgen/core"
)

// ToAdjacency returns the n×n symmetric 0/1 adjacency matrix of net.
// Row sums equal node degrees; the diagonal is zero.
//
// Complexity: O(n²) memory, O(n + |E|) fill. Intended for small networks
// (spectral checks, exports), not the default 10⁴-node runs.
func ToAdjacency(net *core.Network) *mat.SymDense {
	n := net.Order()
	a := mat.NewSymDense(n, nil)
	net.ForEachLink(func(i, j int) bool {
		a.SetSym(i, j, 1)
		return true
	})

	return a
}
