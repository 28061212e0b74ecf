// SPDX-License-Identifier: MIT

// Package eulerian decides whether an undirected multigraph has an Eulerian
// circuit and constructs one with Hierholzer's algorithm.
//
// A circuit exists iff every vertex has even degree and all vertices with
// non-zero degree lie in one connected component. Isolated vertices never
// affect the answer.
//
// What:
//
//   - IsConnected: all edge-bearing vertices are mutually reachable.
//   - IsEulerian: IsConnected and every degree is even.
//   - FindCircuit: closed walk using every edge exactly once.
//   - ValidateCircuit: checks a vertex sequence against a graph.
//   - Analyze: one-shot Report with counts, odd vertices and components.
//
// Determinism:
//
//	FindCircuit starts at the lowest vertex with an edge and always follows
//	the earliest remaining neighbor, so the result is a pure function of the
//	graph's insertion history.
//
// Complexity:
//
//   - IsConnected, IsEulerian: O(V + E)
//   - FindCircuit: O(V + E·Δ) where Δ is the maximum degree (reverse-entry
//     removal scans the partner's sequence)
//   - ValidateCircuit: O(V + E)
//
// Errors:
//
//   - ErrGraphNil        nil graph
//   - ErrNotEulerian     circuit requested on an ineligible graph
//   - ErrNoEdges         circuit requested on a graph without edges
//   - ErrInvalidCircuit  ValidateCircuit rejected a sequence
package eulerian
