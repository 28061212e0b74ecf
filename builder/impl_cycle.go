// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices) and n ≤ g.Order().
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//   • Every vertex of the cycle ends with degree 2, so C_n is Eulerian.
//
// Complexity:
//   • Time: O(n) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/euler/core"

// Cycle returns a Constructor that builds the simple cycle C_n on vertices
// 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateFits(MethodCycle, g, n); err != nil {
			return err
		}

		// ascending i; i==n-1 closes the ring back to 0
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
