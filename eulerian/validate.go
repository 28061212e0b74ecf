// SPDX-License-Identifier: MIT

package eulerian

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// ValidateCircuit checks that circuit is an Eulerian circuit of g:
//
//	len(circuit) == EdgeCount()+1, circuit[0] == circuit[last],
//	every entry is a vertex of g, and the consecutive pairs use each edge
//	of g exactly once (as an unordered multiset).
//
// Returns nil if valid, ErrNoEdges for a graph without edges, and an error
// wrapping ErrInvalidCircuit otherwise.
//
// Complexity: O(V + E) expected time, O(E) space.
func ValidateCircuit(g *core.Graph, circuit []int) error {
	if g == nil {
		return ErrGraphNil
	}

	edges := g.Edges()
	if len(edges) == 0 {
		return ErrNoEdges
	}
	if len(circuit) != len(edges)+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidCircuit, len(circuit), len(edges)+1)
	}
	if circuit[0] != circuit[len(circuit)-1] {
		return fmt.Errorf("%w: not closed (%d ... %d)", ErrInvalidCircuit, circuit[0], circuit[len(circuit)-1])
	}

	n := g.Order()
	for i, v := range circuit {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: position %d: vertex %d not in [0,%d)", ErrInvalidCircuit, i, v, n)
		}
	}

	// remaining multiplicity per unordered pair
	remaining := make(map[[2]int]int, len(edges))
	for _, e := range edges {
		remaining[pairKey(e.U, e.V)]++
	}

	var key [2]int
	for i := 0; i+1 < len(circuit); i++ {
		key = pairKey(circuit[i], circuit[i+1])
		if remaining[key] == 0 {
			return fmt.Errorf("%w: step %d uses edge %d-%d not available in graph",
				ErrInvalidCircuit, i, circuit[i], circuit[i+1])
		}
		remaining[key]--
	}

	return nil
}

// pairKey normalizes an undirected edge to (min, max).
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
