// Package builder provides internal helper functions used by Constructor
// implementations to build common sub-structures.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap core errors with the method name.
package builder

import (
	"fmt"

	"github.com/katalvlaran/netgen/core"
)

// addLink connects i and j, wrapping any core error with method context.
func addLink(method string, net *core.Network, i, j int) error {
	if err := net.AddLink(i, j); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// addClique connects every unordered pair among nodes 0..k-1 in ascending
// (i, j) order.
//
// Complexity: O(k²) links.
func addClique(method string, net *core.Network, k int) error {
	var i, j int
	for i = 0; i < k; i++ {
		// inner loop over subsequent nodes to avoid duplicates
		for j = i + 1; j < k; j++ {
			if err := addLink(method, net, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
