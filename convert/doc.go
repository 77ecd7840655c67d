// Package convert bridges generated networks to the gonum ecosystem.
//
// ToUndirected copies a core.Network into a gonum simple.UndirectedGraph with
// node IDs equal to network indices, so gonum's topo, path and network
// packages can be run on a generated model without re-implementing them here.
// ToAdjacency returns the dense symmetric adjacency matrix for gonum/mat.
package convert
