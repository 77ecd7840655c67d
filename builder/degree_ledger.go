// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// degree_ledger.go — degree bookkeeping for preferential attachment.
//
// The ledger tracks a degree counter per node and the attachment pool size
// (total). Targets are drawn as total·u, u ∈ (0,1), and resolved to the first
// node k whose cumulative degree Σ_{x≤k} degree[x] is ≥ the draw.
//
// Pool invariant (checked by tests):
//   • Between nodes:        total == Σ degree.
//   • While node i attaches: total == Σ_{k<i} degree[k].
// Each accepted link adds 1 to total and 1 to both endpoints; the new node's
// share (m) joins the pool only after its m links are placed, so node i can
// never draw itself.
//
// Exactness: draws are float64 and degrees are integers below 2^53, so
// every subtraction performed by either lookup is exact. The Fenwick descent
// and the linear scan therefore agree bit-for-bit on any draw.

package builder

import "math/bits"

// degreeLedger holds per-node degree counters, a Fenwick tree over them and
// the pool size.
type degreeLedger struct {
	degree []int
	tree   []int // 1-based Fenwick tree over degree
	top    int   // highest power of two ≤ len(degree)
	total  int   // attachment pool size
	linear bool  // resolve picks by linear scan instead of the tree
}

// newDegreeLedger allocates a zeroed ledger for n nodes.
func newDegreeLedger(n int, sel Selection) *degreeLedger {
	top := 0
	if n > 0 {
		top = 1 << (bits.Len(uint(n)) - 1)
	}

	return &degreeLedger{
		degree: make([]int, n),
		tree:   make([]int, n+1),
		top:    top,
		linear: sel == SelectLinear,
	}
}

// bump adds delta to degree[k].
// Complexity: O(log n).
func (l *degreeLedger) bump(k, delta int) {
	l.degree[k] += delta
	for x := k + 1; x < len(l.tree); x += x & -x {
		l.tree[x] += delta
	}
}

// grow adds delta to the pool size.
func (l *degreeLedger) grow(delta int) {
	l.total += delta
}

// prefix returns Σ_{x<k} degree[x].
func (l *degreeLedger) prefix(k int) int {
	s := 0
	for x := k; x > 0; x -= x & -x {
		s += l.tree[x]
	}

	return s
}

// pick returns the first node whose cumulative degree covers draw, or -1 if
// draw exceeds the sum of all degrees.
func (l *degreeLedger) pick(draw float64) int {
	if l.linear {
		return l.pickLinear(draw)
	}

	return l.pickFenwick(draw)
}

// pickLinear subtracts degrees from node 0 upward until the remainder is ≤ 0.
// Complexity: O(n).
func (l *degreeLedger) pickLinear(draw float64) int {
	k := -1
	for draw > 0 {
		k++
		if k == len(l.degree) {
			return -1
		}
		draw -= float64(l.degree[k])
	}

	return k
}

// pickFenwick descends the tree to find the largest prefix strictly below
// draw; the node right after it is the answer.
// Complexity: O(log n).
func (l *degreeLedger) pickFenwick(draw float64) int {
	if draw <= 0 {
		// Matches the linear scan, which never enters its loop.
		return -1
	}
	pos := 0
	for step := l.top; step > 0; step >>= 1 {
		next := pos + step
		if next < len(l.tree) && float64(l.tree[next]) < draw {
			pos = next
			draw -= float64(l.tree[next])
		}
	}
	if pos >= len(l.degree) {
		return -1
	}

	return pos
}
