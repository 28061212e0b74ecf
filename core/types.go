// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrGraphNil indicates a nil *Graph was passed where a graph is required.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Edge is one undirected edge as it was inserted: AddEdge(U, V).
// U == V denotes a self-loop.
type Edge struct {
	U int
	V int
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool { return e.U == e.V }

// Graph is an undirected multigraph over the vertices 0..n-1.
//
// adj[v] keeps neighbors of v in insertion order; edges keeps one entry per
// AddEdge call, also in insertion order.
type Graph struct {
	mu sync.RWMutex // guards adj and edges

	n     int     // vertex count, immutable after NewGraph
	adj   [][]int // per-vertex neighbor sequences
	edges []Edge  // insertion-ordered edge catalog
}

// NewGraph allocates a graph with n vertices and no edges.
// n must be non-negative; a negative n panics like make would.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		panic("core: NewGraph(n<0)")
	}

	return &Graph{
		n:   n,
		adj: make([][]int, n),
	}
}
