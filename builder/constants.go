// Package builder defines shared constants used by network generators,
// ensuring consistent error context and validation across models.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors and log records with the model name.
//-----------------------------------------------------------------------------

const (
	// MethodErdosRenyi is the canonical name for the ErdosRenyi constructor.
	MethodErdosRenyi = "ErdosRenyi"
	// MethodBarabasiAlbert is the canonical name for the BarabasiAlbert constructor.
	MethodBarabasiAlbert = "BarabasiAlbert"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
	// MethodReconnect is the canonical name for the Reconnect helper.
	MethodReconnect = "Reconnect"
	// MethodLattice1D is the canonical name for the Lattice1D constructor.
	MethodLattice1D = "Lattice1D"
	// MethodLattice2D is the canonical name for the Lattice2D constructor.
	MethodLattice2D = "Lattice2D"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinRingNodes is the smallest order for Lattice1D. Fewer nodes would need a
// self-loop (n=1) or a doubled link (n=2).
const MinRingNodes = 3

// MinTorusSide is the smallest side l of a Lattice2D torus. For l ≤ 2 the
// right and wrap-around neighbors coincide.
const MinTorusSide = 3

// MinAttachment is the smallest BarabasiAlbert attachment count m.
const MinAttachment = 1

// MinRadius is the smallest WattsStrogatz ring radius r.
const MinRadius = 1

// MinStarNodes is the smallest Star order: a hub and one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest Wheel order: hub plus a rim of MinRingNodes.
const MinWheelNodes = MinRingNodes + 1

// MinPartitionSize is the smallest part of a CompleteBipartite network.
const MinPartitionSize = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for p.
const MaxProbability = 1.0
