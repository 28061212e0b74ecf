// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices) and n ≤ g.Order().
//   • Center is vertex 0 (CenterVertex); leaves are 1..n-1.
//   • Emits edges 0-i for i=1..n-1 in ascending order.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/euler/core"

// Star returns a Constructor that builds the star K_{1,n-1} centered at 0.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateFits(MethodStar, g, n); err != nil {
			return err
		}

		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(MethodStar, g, CenterVertex, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
