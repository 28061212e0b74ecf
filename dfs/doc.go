// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal and component labelling on a
// core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over all vertices
//   - Components: groups edge-bearing vertices into connected components;
//     isolated vertices are left out.
//
// Why:
//
//   - Connectivity is the first half of the Eulerian-circuit condition.
//   - Component lists let graph builders join a disconnected instance.
//
// The traversal uses an explicit stack of (vertex, next-neighbor) frames, so
// deep graphs such as a 10^6-vertex path do not grow the goroutine stack.
// Neighbors are explored in insertion order, giving the same visit order as a
// recursive DFS.
//
// Key Types:
//
//   - Option / DFSOptions: functional options for DFS behavior
//   - DFSResult: post-order, pre-order, Depth, Parent and Visited slices
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V+E) (adjacency snapshot)
//   - Components: Time O(V+E + Σ c·log c), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start index not in graph
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
