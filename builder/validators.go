// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each helper returns a sentinel-wrapped error with the method prefix when
// its precondition is violated.
package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
)

// validateMin ensures got ≥ min. Violations carry both ErrTooFewVertices and
// ErrInvalidArgument.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w: %w",
			method, name, got, min, ErrTooFewVertices, ErrInvalidArgument)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected as well. Violations carry both
// ErrInvalidProbability and ErrInvalidArgument.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability, ErrInvalidArgument)
	}

	return nil
}

// validateSource ensures the resolved config carries a random source.
func validateSource(method string, cfg builderConfig) error {
	if cfg.src == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// validateEmpty ensures the target network holds no links yet.
func validateEmpty(method string, net *core.Network) error {
	if entries := net.EntryCount(); entries != 0 {
		return fmt.Errorf("%s: %d neighbor entries present: %w", method, entries, ErrNetworkNotEmpty)
	}

	return nil
}
