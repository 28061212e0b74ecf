// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"slices"

	"github.com/katalvlaran/euler/core"
)

// Components returns the connected components that contain at least one
// edge. Isolated vertices (degree 0) belong to no component. Each component
// is sorted ascending and components are ordered by their lowest vertex.
//
// Complexity: O(V + E + Σ c·log c) for component sizes c.
func Components(ctx context.Context, g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	opts := DefaultOptions()
	if ctx != nil {
		opts.Ctx = ctx
	}
	w := newWalker(g.AdjacencyList(), opts)

	var comps [][]int
	for v := range w.adj {
		if len(w.adj[v]) == 0 || w.res.Visited[v] {
			continue
		}
		from := len(w.res.Preorder)
		if err := w.walk(v); err != nil {
			return nil, err
		}
		comp := append([]int(nil), w.res.Preorder[from:]...)
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
