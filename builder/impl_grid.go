// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood; cell (r,c) is vertex r*cols+c.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices); rows*cols ≤ g.Order().
//   • For each cell in row-major order emit Right then Bottom if present.
//   • Non-corner boundary cells have degree 3 and line ends degree 1, so
//     the 2×2 square is the only Eulerian grid with edges.
//
// Complexity: O(rows·cols) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/euler/core"

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim, ErrTooFewVertices); err != nil {
			return err
		}
		if err := validateFits(MethodGrid, g, rows*cols); err != nil {
			return err
		}

		var r, c, v int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				v = r*cols + c
				if c+1 < cols {
					if err := addEdge(MethodGrid, g, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(MethodGrid, g, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
