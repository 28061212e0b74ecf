// SPDX-License-Identifier: MIT
// File: circuit.go
// Role: Hierholzer's algorithm over a private copy of the adjacency lists.
// Determinism:
//   - Starts at the lowest edge-bearing vertex; always consumes the earliest
//     remaining neighbor.
// Concurrency:
//   - The graph is only read (one snapshot); the working copy is local.

package eulerian

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/euler/core"
)

// FindCircuit returns an Eulerian circuit of g as a vertex sequence of length
// EdgeCount()+1 whose first and last entries coincide. Consecutive entries
// name the endpoints of each traversed edge.
//
// Returns ErrNotEulerian when the graph is disconnected or has an odd-degree
// vertex, and ErrNoEdges when there is nothing to traverse. g is not
// modified.
//
// Example: the 4-cycle 0-1-2-3-0 built in that order yields [0 1 2 3 0].
func FindCircuit(g *core.Graph) ([]int, error) {
	ok, err := IsEulerian(g)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("eulerian: FindCircuit: %w", ErrNotEulerian)
	}

	local := g.AdjacencyList()
	start := -1
	for v := range local {
		if len(local[v]) > 0 {
			start = v
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("eulerian: FindCircuit: %w", ErrNoEdges)
	}

	return hierholzer(local, start), nil
}

// hierholzer consumes local destructively and returns the circuit from start
// back to start. local must be a valid Eulerian adjacency with start on an
// edge.
func hierholzer(local [][]int, start int) []int {
	half := 0
	for _, nbs := range local {
		half += len(nbs)
	}

	circuit := make([]int, 0, half/2+1)
	stack := []int{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			// dead end: emit and backtrack
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		// traverse u-v through the earliest remaining entry
		v := local[u][0]
		local[u] = local[u][1:]
		// drop the reverse entry; for a loop this is the loop's second slot
		removeFirst(local, v, u)
		stack = append(stack, v)
	}

	// vertices were emitted on backtrack, so the walk reads backwards
	slices.Reverse(circuit)

	return circuit
}

// removeFirst deletes the first occurrence of x from local[v].
func removeFirst(local [][]int, v, x int) {
	if i := slices.Index(local[v], x); i >= 0 {
		local[v] = slices.Delete(local[v], i, i+1)
	}
}
