// Package builder defines the enumerated policies that steer generator
// behavior on edge cases: the Lattice2D treatment of non-square orders and the
// preferential-attachment selection strategy.
package builder

import "fmt"

//-----------------------------------------------------------------------------
// Lattice2D policy
//-----------------------------------------------------------------------------

// Lattice2DPolicy decides what Lattice2D does when n is not a perfect square.
type Lattice2DPolicy int

const (
	// LatticeReject fails with ErrNotSquare. Default.
	LatticeReject Lattice2DPolicy = iota

	// LatticeTruncate builds the l×l torus for l = ⌊√n⌋ and leaves the
	// n − l² remaining nodes isolated.
	LatticeTruncate
)

// String implements fmt.Stringer.
func (p Lattice2DPolicy) String() string {
	switch p {
	case LatticeReject:
		return "reject"
	case LatticeTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("Lattice2DPolicy(%d)", int(p))
	}
}

// ParseLattice2DPolicy maps "reject"/"truncate" to a policy.
func ParseLattice2DPolicy(s string) (Lattice2DPolicy, error) {
	switch s {
	case "reject", "":
		return LatticeReject, nil
	case "truncate":
		return LatticeTruncate, nil
	default:
		return LatticeReject, fmt.Errorf("lattice policy %q: %w", s, ErrInvalidArgument)
	}
}

//-----------------------------------------------------------------------------
// Preferential selection
//-----------------------------------------------------------------------------

// Selection picks the data structure used to find the degree-weighted target
// in BarabasiAlbert. Both return the first node whose cumulative degree
// covers the draw, so they produce identical networks for the same stream.
type Selection int

const (
	// SelectFenwick uses a binary indexed tree: O(log n) per draw. Default.
	SelectFenwick Selection = iota

	// SelectLinear scans degrees from node 0 upward: O(n) per draw.
	SelectLinear
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case SelectFenwick:
		return "fenwick"
	case SelectLinear:
		return "linear"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}
