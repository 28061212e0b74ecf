// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices) and n ≤ g.Order().
//   • Emits edges i-(i+1) for i=0..n-2.
//   • Endpoints 0 and n-1 have odd degree: a path is never Eulerian.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/euler/core"

// Path returns a Constructor that builds the simple path P_n on vertices
// 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateFits(MethodPath, g, n); err != nil {
			return err
		}

		for i := 0; i+1 < n; i++ {
			if err := addEdge(MethodPath, g, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
