// Package core provides the adjacency store shared by every network
// generator: a fixed-size array of node records indexed 0..n-1, each owning
// the set of its neighbor indices.
//
// The Network N = (V,E) is always undirected and simple:
//
//   - Symmetry: j ∈ N(i) ⇔ i ∈ N(j). AddLink and DeleteLink update both sides
//     under a single write lock, so no half-applied link is ever observable.
//   - No self-loops: AddEntry/AddLink reject i == j with ErrSelfLoop.
//   - No duplicates: neighbor sets have set semantics; re-adding an entry is
//     a no-op.
//
// Storage:
//
//	adj[i] is a sorted []int of neighbor indices.
//	Membership is O(log d) via binary search; insertion/removal is O(d).
//	Neighbors(i) therefore returns indices in ascending order.
//
// Primitive vs. symmetric mutators:
//
//	AddEntry / DeleteEntry   one side only (owner's set); exposed for tools
//	                         that need raw access, may break symmetry.
//	AddLink  / DeleteLink    both sides; the only mutators generators use.
//
// Deleting an absent entry or link is a silent no-op, not an error.
//
// Queries:
//
//	IsSelfOrNeighbor(i,j) exclusion predicate for random target selection
//	Degree(i), Neighbors(i), HasLink(i,j)
//	AverageDegree()       stored directed entries / n (i.e. 2|E|/n)
//	EntryCount(), EdgeCount(), Order()
//	Validate()            symmetry + no-self-loop audit
//	Teardown()            empties every set; idempotent
//
// Concurrency:
//
//	All methods are guarded by a sync.RWMutex: mutators take the write lock,
//	queries the read lock. Generation itself is expected to be driven by one
//	goroutine; the lock only makes post-generation sharing safe.
package core
