// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_random_edges.go - RandomEdges(m): uniform random multigraph.
//
// Contract:
//   • m ≥ 1 (else ErrTooFewEdges); g.Order() ≥ 1 (else ErrTooFewVertices).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • For each of the m edges draws u = Intn(n), then v = Intn(n), and adds
//     u-v. Self-loops and parallel edges are kept.
//
// Determinism:
//   • Exactly 2m draws in a fixed order; a seeded source reproduces the
//     same edge list.
//
// Complexity: O(m) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// RandomEdges returns a Constructor that adds m uniformly random edges.
func RandomEdges(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomEdges, "m", m, MinRandomEdges, ErrTooFewEdges); err != nil {
			return err
		}
		n := g.Order()
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", MethodRandomEdges, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomEdges, ErrNeedRandSource)
		}

		var u, v int
		for i := 0; i < m; i++ {
			u = cfg.rng.Intn(n)
			v = cfg.rng.Intn(n)
			if err := addEdge(MethodRandomEdges, g, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
