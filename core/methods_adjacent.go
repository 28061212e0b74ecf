// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Vertex-level queries: order, degrees, neighbor sequences, snapshots.
// Determinism:
//   - Neighbor sequences are returned in insertion order.
//   - Every returned slice is freshly allocated; callers may retain and mutate it.
// Concurrency:
//   - Read lock only.

package core

import "fmt"

// Order returns the number of vertices n fixed at construction.
// Complexity: O(1).
func (g *Graph) Order() int {
	// n is immutable, no lock required
	return g.n
}

// Degree returns the length of v's neighbor sequence, counting parallel
// edges individually and loops twice.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return 0, fmt.Errorf("core: Degree(%d): %w", v, err)
	}

	return len(g.adj[v]), nil
}

// Degrees returns the degree of every vertex, indexed by vertex.
// Complexity: O(V).
func (g *Graph) Degrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, g.n)
	for v := range g.adj {
		out[v] = len(g.adj[v])
	}

	return out
}

// Neighbors returns a copy of v's neighbor sequence in insertion order.
// Complexity: O(deg v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(v); err != nil {
		return nil, fmt.Errorf("core: Neighbors(%d): %w", v, err)
	}

	return append([]int(nil), g.adj[v]...), nil
}

// AdjacencyList returns a deep copy of all neighbor sequences, indexed by
// vertex. Destructive algorithms use it as their private working copy: no
// per-vertex slice shares a backing array with the graph or with another
// vertex.
//
// Complexity: O(V + E) time and space.
func (g *Graph) AdjacencyList() [][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneAdjacency(g.adj)
}

// FirstNonIsolated returns the lowest vertex with a non-empty neighbor
// sequence, or -1 when the graph has no edges.
// Complexity: O(V).
func (g *Graph) FirstNonIsolated() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v := range g.adj {
		if len(g.adj[v]) > 0 {
			return v
		}
	}

	return -1
}

// cloneAdjacency deep-copies adjacency sequences. Empty sequences stay nil.
func cloneAdjacency(src [][]int) [][]int {
	out := make([][]int, len(src))
	for v, nbs := range src {
		if len(nbs) == 0 {
			continue
		}
		out[v] = append(make([]int, 0, len(nbs)), nbs...)
	}

	return out
}
