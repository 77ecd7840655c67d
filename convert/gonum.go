// SPDX-License-Identifier: MIT
// Package: netgen/convert
//
// gonum.go — export to gonum/graph/simple.

package convert

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netgen/core"
)

// ToUndirected returns a gonum undirected graph holding every node index of
// net (isolated nodes included) and one edge per link.
//
// Complexity: O(n + |E|).
func ToUndirected(net *core.Network) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < net.Order(); i++ {
		g.AddNode(simple.Node(i))
	}
	net.ForEachLink(func(i, j int) bool {
		g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
		return true
	})

	return g
}
