// Package builder generates synthetic networks on top of netgen/core.
//
// Every model is exposed as a Constructor: a closure that validates its
// parameters and then populates a pre-allocated, empty core.Network using the
// random.Source resolved from BuilderOptions. BuildNetwork allocates the
// network and runs one constructor; Generate runs one constructor against a
// caller-owned network.
//
// Models:
//
//   - ErdosRenyi(p):        G(n,p); one (0,1) draw per unordered pair, i asc then j asc.
//   - BarabasiAlbert(m):    (m+1)-clique seed, then preferential attachment of m
//     distinct links per new node, weighted by current degree.
//   - WattsStrogatz(r, p):  ring of radius r, then each ring link (i, i+j+1)
//     is rewired with probability p via Reconnect.
//   - Lattice1D():          cycle 0-1-…-(n-1)-0.
//   - Lattice2D():          l×l periodic torus (4-regular), l = ⌊√n⌋.
//   - Complete():           K_n.
//   - Star(), Wheel():      hub 0 with leaves 1..n-1; Wheel also rings the leaves.
//   - CompleteBipartite(l): K_{l, n-l} over parts [0,l) and [l,n).
//
// Configuration primitives:
//
//   - BuilderOption:   functional option mutating builderConfig before use.
//   - WithSeed:        MT19937 source seeded with the given value (reproducible).
//   - WithSource:      any random.Source (e.g. random.Replay in tests).
//   - WithRand:        adapter over *math/rand.Rand.
//   - WithLogger:      *slog.Logger for DEBUG progress and WARN policy notes.
//   - WithLattice2DPolicy: reject (default) or truncate non-square n.
//   - WithSelection:   Fenwick (default) or linear-scan preferential selection.
//
// Guarantees:
//
//   - Determinism: same n, parameters, seed ⇒ identical network.
//   - Generated networks are simple and symmetric (core.Network.Validate passes).
//   - Parameter violations return sentinel errors (ErrInvalidArgument and
//     friends) before any mutation; constructors never panic.
//   - Option constructors panic on nil arguments (programmer error).
package builder
