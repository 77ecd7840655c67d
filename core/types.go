// SPDX-License-Identifier: MIT
// File: types.go
// Role: Network type, sentinel errors and the NewNetwork constructor.
//
// Errors:
//
//	ErrInvalidSize     - network order n < 1.
//	ErrNodeOutOfRange  - node index outside [0, n).
//	ErrSelfLoop        - link or entry from a node to itself.
//	ErrAsymmetric      - Validate found j ∈ N(i) without i ∈ N(j).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for adjacency store operations.
var (
	// ErrInvalidSize indicates a network was requested with fewer than one node.
	ErrInvalidSize = errors.New("core: network order must be ≥ 1")

	// ErrNodeOutOfRange indicates a node index outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an attempt to link a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates a one-sided neighbor entry.
	ErrAsymmetric = errors.New("core: asymmetric adjacency")
)

// Network is the adjacency store: n node records, each with a sorted set of
// neighbor indices. The zero value is not usable; call NewNetwork.
type Network struct {
	mu sync.RWMutex // guards adj

	// adj[i] holds the neighbors of node i in ascending order.
	adj [][]int
}

// NewNetwork allocates a network of n empty node records.
// Complexity: O(n).
func NewNetwork(n int) (*Network, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	return &Network{adj: make([][]int, n)}, nil
}

// Order returns the number of node records n.
func (net *Network) Order() int {
	// adj is never resized after NewNetwork; no lock needed for len.
	return len(net.adj)
}
