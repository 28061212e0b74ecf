// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Canonical model:
//   • Left part is 0..n1-1, right part is n1..n1+n2-1.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices); n1+n2 ≤ g.Order().
//   • Emits edges l-r for l ascending, then r ascending.
//   • Left degrees are n2 and right degrees are n1: K_{n1,n2} is Eulerian
//     iff both sizes are even.
//
// Complexity: O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				MethodCompleteBipartite, MinPartition, n1, n2, ErrTooFewVertices)
		}
		if err := validateFits(MethodCompleteBipartite, g, n1+n2); err != nil {
			return err
		}

		for l := 0; l < n1; l++ {
			for r := n1; r < n1+n2; r++ {
				if err := addEdge(MethodCompleteBipartite, g, l, r); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
