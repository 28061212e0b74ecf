// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_edgelist.go - EdgeList(edges) constructor.
//
// Contract:
//   • Adds edges in slice order; loops and parallels are kept as given.
//   • Any endpoint outside [0, g.Order()) fails with ErrConstructFailed
//     wrapping core.ErrVertexOutOfRange.
//
// Complexity: O(len(edges)).

package builder

import "github.com/katalvlaran/euler/core"

// EdgeList returns a Constructor that adds every edge of edges to g.
func EdgeList(edges []core.Edge) Constructor {
	// copy so later caller mutations do not leak into a deferred build
	list := append([]core.Edge(nil), edges...)

	return func(g *core.Graph, _ builderConfig) error {
		for _, e := range list {
			if err := addEdge(MethodEdgeList, g, e.U, e.V); err != nil {
				return err
			}
		}

		return nil
	}
}
