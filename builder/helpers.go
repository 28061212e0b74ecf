// SPDX-License-Identifier: MIT

// Edge emission helpers shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// addEdge adds u-v and wraps a core failure with the method name and
// ErrConstructFailed, keeping the core sentinel reachable via errors.Is.
func addEdge(method string, g *core.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}

// addCompleteEdges joins every pair of ids once, in lexicographic index
// order (i<j).
func addCompleteEdges(method string, g *core.Graph, ids []int) error {
	var i, j int
	for i = 0; i < len(ids); i++ {
		for j = i + 1; j < len(ids); j++ {
			if err := addEdge(method, g, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// span returns [from, from+1, ..., from+n-1].
func span(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}

	return out
}
