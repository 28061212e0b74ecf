// SPDX-License-Identifier: MIT

// Package core provides the undirected multigraph used by every other package
// in this module.
//
// A Graph has a fixed number of vertices, identified by the indices 0..n-1,
// and stores for each vertex an ordered sequence of neighbor indices. The
// order is the order in which edges were inserted and it is significant:
// traversals and the Eulerian circuit finder walk neighbors in exactly this
// order, which makes their output reproducible for a given input.
//
// Edge semantics:
//
//   - AddEdge(u, v) appends v to u's sequence and u to v's sequence.
//   - Parallel edges are allowed; every call adds one more entry per side.
//   - Self-loops are allowed; AddEdge(v, v) appends v twice to v's sequence,
//     so a loop contributes 2 to the degree of v.
//   - Edges are never removed. Algorithms that consume edges operate on a
//     snapshot returned by AdjacencyList.
//
// Invariant (symmetry): v appears in adj[u] exactly as many times as u
// appears in adj[v]; for u == v the entry count is twice the loop count.
//
// Core methods:
//
//	NewGraph(n int) *Graph               // O(n)
//	AddEdge(u, v int) error              // O(1) amortized
//	Degree(v int) (int, error)           // O(1)
//	Neighbors(v int) ([]int, error)      // O(deg v), fresh copy
//	Order() int / EdgeCount() int        // O(1)
//	Edges() []Edge                       // O(E), insertion order
//	AdjacencyList() [][]int              // O(V+E), deep copy
//	Clone() *Graph                       // O(V+E)
//	Display(w io.Writer) error / String() // O(V+E)
//
// Errors:
//
//	ErrVertexOutOfRange - a vertex index outside [0, Order()).
//
// Concurrency: a single sync.RWMutex guards adjacency and the edge list.
// Mutations take the write lock, queries the read lock. Snapshots returned
// to callers never share backing arrays with the graph.
package core
