// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices) and n ≤ g.Order().
//   • Emits each pair i<j exactly once, in lexicographic order.
//   • Degrees are n-1: K_n is Eulerian iff n is odd.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/euler/core"

// Complete returns a Constructor that builds the complete simple graph K_n
// on vertices 0..n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateFits(MethodComplete, g, n); err != nil {
			return err
		}

		return addCompleteEdges(MethodComplete, g, span(0, n))
	}
}
