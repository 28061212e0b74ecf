// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion and edge catalog queries.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbor sequences grow by append only.
// Concurrency:
//   - AddEdge under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v}.
//
// v is appended to u's neighbor sequence and u to v's. For u == v the vertex
// is appended twice to its own sequence (a loop counts 2 toward the degree).
// Out-of-range indices return an error wrapping ErrVertexOutOfRange and leave
// the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, err)
	}
	if err := g.checkVertex(v); err != nil {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, err)
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u) // for u == v this is the loop's second entry
	g.edges = append(g.edges, Edge{U: u, V: v})

	return nil
}

// AddEdges inserts edges in order under one lock. Every endpoint is checked
// first; on an out-of-range endpoint no edge is added.
//
// Complexity: O(len(edges)) amortized.
func (g *Graph) AddEdges(edges []Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, e := range edges {
		if err := g.checkVertex(e.U); err != nil {
			return fmt.Errorf("core: AddEdges[%d](%d,%d): %w", i, e.U, e.V, err)
		}
		if err := g.checkVertex(e.V); err != nil {
			return fmt.Errorf("core: AddEdges[%d](%d,%d): %w", i, e.U, e.V, err)
		}
	}
	for _, e := range edges {
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
		g.edges = append(g.edges, e)
	}

	return nil
}

// EdgeCount returns the number of edges inserted so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdges reports whether at least one edge has been inserted.
func (g *Graph) HasEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges) > 0
}

// checkVertex validates a vertex index. Caller must hold g.mu.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}
