// SPDX-License-Identifier: MIT

// Package euler is a small toolkit for Eulerian circuits on undirected
// multigraphs: build a graph, check whether a closed walk through every edge
// exists, and construct one.
//
// What is in the box?
//
//	A thread-safe, deterministic library plus a command-line front end:
//		• Core primitives: integer-indexed multigraph with loops and parallel edges
//		• Traversal: iterative DFS, edge-bearing components
//		• Eulerian analysis: connectivity, parity, Hierholzer circuits, validation
//		• Builders: fixtures, random edges, parity repair, component joining
//
// Under the hood, everything is organized under these packages:
//
//	core/       - Graph, Edge, adjacency snapshots and display
//	dfs/        - depth-first search with hooks, depth limits and filters
//	eulerian/   - IsConnected, IsEulerian, FindCircuit, ValidateCircuit, Analyze
//	builder/    - BuildGraph and composable constructors
//	cmd/eulerian - CLI: random instance, solve a YAML file, batch statistics
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	the square 0-1-2-3-0 has every degree equal to 2, so it is Eulerian;
//	FindCircuit returns [0 1 2 3 0].
//
//	go install github.com/katalvlaran/euler/cmd/eulerian@latest
package euler
