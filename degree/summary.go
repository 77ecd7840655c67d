// SPDX-License-Identifier: MIT
// Package: netgen/degree
//
// summary.go — degree statistics of a network.

package degree

import (
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netgen/convert"
	"github.com/katalvlaran/netgen/core"
)

// Summary describes the degree sequence of a network.
type Summary struct {
	Nodes int
	Edges int
	// AverageDegree is core.Network.AverageDegree: stored entries / n.
	AverageDegree float64
	Min, Max      int
	// Variance is the unbiased sample variance of the degrees (0 for n=1).
	Variance float64
	// Isolated counts degree-0 nodes.
	Isolated int
	// Components is the number of connected components.
	Components int
}

// Summarize computes the Summary of net.
// Complexity: O(n + |E|).
func Summarize(net *core.Network) Summary {
	degs := net.Degrees()
	xs := make([]float64, len(degs))
	s := Summary{
		Nodes:         net.Order(),
		Edges:         net.EdgeCount(),
		AverageDegree: net.AverageDegree(),
		Min:           degs[0],
		Max:           degs[0],
	}
	for i, d := range degs {
		xs[i] = float64(d)
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
		if d == 0 {
			s.Isolated++
		}
	}
	if len(xs) > 1 {
		s.Variance = stat.Variance(xs, nil)
	}
	s.Components = len(topo.ConnectedComponents(convert.ToUndirected(net)))

	return s
}

// Histogram returns h where h[d] is the number of nodes with degree d;
// len(h) is max degree + 1.
func Histogram(net *core.Network) []int {
	degs := net.Degrees()
	top := 0
	for _, d := range degs {
		top = max(top, d)
	}
	h := make([]int, top+1)
	for _, d := range degs {
		h[d]++
	}

	return h
}
