// File: methods_queries.go
// Role: Read-only queries over the adjacency store.
// Determinism:
//   - Neighbors() returns ascending indices (sets are kept sorted).
//   - Validate() scans nodes in ascending order and reports the first violation.
// Concurrency:
//   - All queries hold the read lock.

package core

import "fmt"

// IsSelfOrNeighbor reports whether j == i or j is already a neighbor of i.
// Generators use it to exclude candidates during random target selection.
// An out-of-range i has no neighbors.
//
// Complexity: O(log d).
func (net *Network) IsSelfOrNeighbor(i, j int) bool {
	if i == j {
		return true
	}
	if !net.inRange(i) {
		return false
	}
	net.mu.RLock()
	defer net.mu.RUnlock()

	return net.has(i, j)
}

// HasLink reports whether j ∈ N(i). Out-of-range indices report false.
func (net *Network) HasLink(i, j int) bool {
	if !net.inRange(i) || !net.inRange(j) {
		return false
	}
	net.mu.RLock()
	defer net.mu.RUnlock()

	return net.has(i, j)
}

// Degree returns |N(i)|, or 0 for an out-of-range index.
func (net *Network) Degree(i int) int {
	if !net.inRange(i) {
		return 0
	}
	net.mu.RLock()
	defer net.mu.RUnlock()

	return len(net.adj[i])
}

// Neighbors returns a copy of N(i) in ascending order, or nil for an
// out-of-range index.
func (net *Network) Neighbors(i int) []int {
	if !net.inRange(i) {
		return nil
	}
	net.mu.RLock()
	defer net.mu.RUnlock()

	out := make([]int, len(net.adj[i]))
	copy(out, net.adj[i])

	return out
}

// Degrees returns the degree of every node, indexed by node.
func (net *Network) Degrees() []int {
	net.mu.RLock()
	defer net.mu.RUnlock()

	out := make([]int, len(net.adj))
	for i, nbrs := range net.adj {
		out[i] = len(nbrs)
	}

	return out
}

// EntryCount returns the total number of stored neighbor entries (2|E| for
// a symmetric network).
func (net *Network) EntryCount() int {
	net.mu.RLock()
	defer net.mu.RUnlock()

	total := 0
	for _, nbrs := range net.adj {
		total += len(nbrs)
	}

	return total
}

// EdgeCount returns |E| = EntryCount()/2.
func (net *Network) EdgeCount() int {
	return net.EntryCount() / 2
}

// AverageDegree returns the stored entry count divided by n.
//
// The divisor is n, not 2n: each undirected link contributes two entries, so
// the result equals the mean node degree 2|E|/n.
//
// Complexity: O(n).
func (net *Network) AverageDegree() float64 {
	return float64(net.EntryCount()) / float64(net.Order())
}

// Validate audits the symmetry and no-self-loop invariants.
// Returns nil for a well-formed network, otherwise the first violation
// wrapped with the offending pair (ErrSelfLoop or ErrAsymmetric).
//
// Complexity: O(Σ d log d).
func (net *Network) Validate() error {
	net.mu.RLock()
	defer net.mu.RUnlock()

	for i, nbrs := range net.adj {
		for _, j := range nbrs {
			if j == i {
				return fmt.Errorf("Validate: node %d: %w", i, ErrSelfLoop)
			}
			if !net.inRange(j) || !net.has(j, i) {
				return fmt.Errorf("Validate: %d→%d has no mirror: %w", i, j, ErrAsymmetric)
			}
		}
	}

	return nil
}

// ForEachLink calls fn once per undirected link (i, j) with i < j, in
// ascending (i, j) order. Iteration stops early when fn returns false.
// fn must not mutate the network.
func (net *Network) ForEachLink(fn func(i, j int) bool) {
	net.mu.RLock()
	defer net.mu.RUnlock()

	for i, nbrs := range net.adj {
		for _, j := range nbrs {
			if j <= i {
				continue
			}
			if !fn(i, j) {
				return
			}
		}
	}
}
