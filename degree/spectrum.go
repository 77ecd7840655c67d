// SPDX-License-Identifier: MIT
// Package: netgen/degree
//
// spectrum.go — largest adjacency eigenvalue.

package degree

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netgen/convert"
	"github.com/katalvlaran/netgen/core"
)

// MaxSpectralNodes bounds SpectralRadius: the dense n×n matrix and the O(n³)
// eigendecomposition stop being practical above it.
const MaxSpectralNodes = 2000

var (
	// ErrTooLarge indicates the network exceeds MaxSpectralNodes.
	ErrTooLarge = errors.New("degree: network too large for a dense spectrum")

	// ErrNoConvergence indicates the symmetric eigensolver failed.
	ErrNoConvergence = errors.New("degree: eigendecomposition did not converge")
)

// SpectralRadius returns the largest eigenvalue of the adjacency matrix.
// It lies between the average and the maximum degree, and equals k for a
// k-regular network.
func SpectralRadius(net *core.Network) (float64, error) {
	if n := net.Order(); n > MaxSpectralNodes {
		return 0, fmt.Errorf("n=%d > %d: %w", n, MaxSpectralNodes, ErrTooLarge)
	}

	var eig mat.EigenSym
	if !eig.Factorize(convert.ToAdjacency(net), false) {
		return 0, ErrNoConvergence
	}
	vals := eig.Values(nil) // ascending

	return vals[len(vals)-1], nil
}
