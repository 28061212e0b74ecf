// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   • W_n = rim cycle on 1..n-1 plus hub 0 (CenterVertex) joined to every rim vertex.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices) and n ≤ g.Order().
//   • Emits rim edges i-(i+1) for i=1..n-2, then (n-1)-1, then spokes 0-i.
//   • Rim vertices have degree 3, so a wheel is never Eulerian.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/euler/core"

// Wheel returns a Constructor that builds the wheel W_n with hub 0.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateFits(MethodWheel, g, n); err != nil {
			return err
		}

		// rim
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := addEdge(MethodWheel, g, i, next); err != nil {
				return err
			}
		}
		// spokes
		for i := 1; i < n; i++ {
			if err := addEdge(MethodWheel, g, CenterVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
