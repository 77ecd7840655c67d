// SPDX-License-Identifier: MIT
// Package: netgen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach context as "<Method>: <detail>: %w".
//   • Size and probability violations also carry ErrInvalidArgument.
//   • Algorithms never panic; option constructors (WithX) may.

package builder

import "errors"

// ErrInvalidArgument indicates a model parameter (n, m, r, p, node index)
// violates the model's preconditions.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrTooFewVertices indicates the network order is below the model minimum
// (e.g. a ring needs at least 3 nodes). Always paired with ErrInvalidArgument.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1] or NaN.
// Always paired with ErrInvalidArgument.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic model was run without a source
// (set WithSeed, WithSource or WithRand).
var ErrNeedRandSource = errors.New("builder: random source is required")

// ErrNotSquare indicates Lattice2D was asked for a non-square n under the
// reject policy.
var ErrNotSquare = errors.New("builder: node count is not a perfect square")

// ErrNetworkNotEmpty indicates a generator was handed a network that already
// holds links.
var ErrNetworkNotEmpty = errors.New("builder: network is not empty")

// ErrConstructFailed indicates the construction could not proceed without
// breaking invariants (nil constructor, exhausted candidate pool, ...).
var ErrConstructFailed = errors.New("builder: construction failed")
