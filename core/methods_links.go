// File: methods_links.go
// Role: Adjacency mutators: AddEntry/DeleteEntry (one side) and
//       AddLink/DeleteLink (both sides), plus the unlocked set helpers.
// Determinism:
//   - Neighbor sets stay sorted ascending after every mutation.
// Concurrency:
//   - Every exported mutator holds the write lock for its whole effect,
//     so a symmetric link is applied or removed atomically.

package core

import (
	"fmt"
	"slices"
)

// AddEntry inserts neighbor into owner's set. One-sided: symmetry is the
// caller's responsibility. Inserting an existing entry is a no-op.
//
// Errors:
//   - ErrNodeOutOfRange: owner or neighbor outside [0, n).
//   - ErrSelfLoop: owner == neighbor.
//
// Complexity: O(log d + d) for the sorted insert.
func (net *Network) AddEntry(owner, neighbor int) error {
	if err := net.checkPair("AddEntry", owner, neighbor); err != nil {
		return err
	}
	net.mu.Lock()
	defer net.mu.Unlock()

	net.insert(owner, neighbor)

	return nil
}

// AddLink connects i and j in both directions.
//
// Errors:
//   - ErrNodeOutOfRange: i or j outside [0, n).
//   - ErrSelfLoop: i == j.
//
// Complexity: O(log d + d) per side.
func (net *Network) AddLink(i, j int) error {
	if err := net.checkPair("AddLink", i, j); err != nil {
		return err
	}
	net.mu.Lock()
	defer net.mu.Unlock()

	net.insert(i, j)
	net.insert(j, i)

	return nil
}

// DeleteEntry removes neighbor from owner's set. Absent entries are a silent
// no-op. Only the range is validated.
// Complexity: O(log d + d).
func (net *Network) DeleteEntry(owner, neighbor int) error {
	if err := net.checkRange("DeleteEntry", owner, neighbor); err != nil {
		return err
	}
	net.mu.Lock()
	defer net.mu.Unlock()

	net.remove(owner, neighbor)

	return nil
}

// DeleteLink removes the link between i and j on both sides.
// A missing link is a silent no-op.
func (net *Network) DeleteLink(i, j int) error {
	if err := net.checkRange("DeleteLink", i, j); err != nil {
		return err
	}
	net.mu.Lock()
	defer net.mu.Unlock()

	net.remove(i, j)
	net.remove(j, i)

	return nil
}

// Teardown empties every neighbor set. The node records themselves remain,
// so calling Teardown again is a no-op.
// Complexity: O(n).
func (net *Network) Teardown() {
	net.mu.Lock()
	defer net.mu.Unlock()

	for i := range net.adj {
		net.adj[i] = nil
	}
}

// insert adds v to adj[u] keeping order. Caller holds the write lock.
func (net *Network) insert(u, v int) {
	pos, found := slices.BinarySearch(net.adj[u], v)
	if found {
		return
	}
	net.adj[u] = slices.Insert(net.adj[u], pos, v)
}

// remove deletes v from adj[u] if present. Caller holds the write lock.
func (net *Network) remove(u, v int) {
	pos, found := slices.BinarySearch(net.adj[u], v)
	if !found {
		return
	}
	net.adj[u] = slices.Delete(net.adj[u], pos, pos+1)
}

// has reports v ∈ adj[u]. Caller holds at least the read lock.
func (net *Network) has(u, v int) bool {
	_, found := slices.BinarySearch(net.adj[u], v)

	return found
}

// inRange reports whether i is a valid node index.
func (net *Network) inRange(i int) bool {
	return i >= 0 && i < len(net.adj)
}

func (net *Network) checkRange(method string, i, j int) error {
	if !net.inRange(i) || !net.inRange(j) {
		return fmt.Errorf("%s(%d,%d): n=%d: %w", method, i, j, len(net.adj), ErrNodeOutOfRange)
	}

	return nil
}

func (net *Network) checkPair(method string, i, j int) error {
	if err := net.checkRange(method, i, j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%s(%d,%d): %w", method, i, j, ErrSelfLoop)
	}

	return nil
}
