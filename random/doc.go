// Package random defines the random-source contract consumed by the network
// generators in netgen/builder, together with the reference
// implementations.
//
// A Source exposes exactly two primitives:
//
//	UniformOpenClosed() ∈ (0,1)  used for probability tests and weighted picks
//	UniformHalfOpen()   ∈ [0,1)  used for index selection by truncation
//
// Sources are explicit, stateful handles. Nothing in this package keeps a
// process-wide generator; callers seed one Source and thread it through every
// generator call, which makes runs reproducible for a fixed seed and call order.
//
// Implementations:
//
//	MT19937  Mersenne Twister (gonum mathext/prng) with the classic real2/real3
//	         conversions, bit-compatible with the reference C generator.
//	FromRand adapter over a *math/rand.Rand.
//	Replay   scripted draws, used to pin generator behavior in tests.
//
// A Source is not safe for concurrent use.
package random
