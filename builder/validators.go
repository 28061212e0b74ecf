// SPDX-License-Identifier: MIT

// Validation helpers that enforce parameter contracts in constructors.
// Each returns an error wrapping the given sentinel with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// validateMin ensures that got ≥ min.
// Returns "<Method>: <name>=<got> < min=<min>: <sentinel>" otherwise.
//
// Complexity: O(1).
func validateMin(method, name string, got, min int, sentinel error) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, sentinel)
	}

	return nil
}

// validateFits ensures that a fixture over vertices 0..need-1 fits into g.
//
// Complexity: O(1).
func validateFits(method string, g *core.Graph, need int) error {
	if need > g.Order() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, need, g.Order(), ErrTooFewVertices)
	}

	return nil
}
