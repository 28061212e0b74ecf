// SPDX-License-Identifier: MIT

// Package builder assembles core.Graph instances from composable
// constructors: deterministic fixtures, edge lists, random multigraphs, and
// post-processing passes that repair degree parity or join components.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   allocates an n-vertex graph and runs constructors in order.
//     – Constructor:  func(*core.Graph, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption:  mutates builderConfig before use.
//     – WithSeed, WithRand, WithSource: random source for stochastic steps.
//   - Fixtures (vertices 0..k-1 of the graph):
//     – EdgeList, Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Random instances:
//     – RandomEdges:  m draws of (Intn(n), Intn(n)), loops and parallels kept.
//   - Post-processing:
//     – RepairParity:       ParityNone, ParitySinglePass, ParityPairOdd.
//     – ConnectComponents:  joins edge-bearing components with double edges.
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order produce
//     identical graphs, edge for edge.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors wrap sentinels (ErrTooFewVertices, ErrTooFewEdges,
//     ErrNeedRandSource, ErrUnknownParityPolicy, ErrConstructFailed) with
//     the constructor name for context.
//
// Composition that always yields an Eulerian graph:
//
//	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(seed)},
//		builder.RandomEdges(m),
//		builder.RepairParity(builder.ParityPairOdd),
//		builder.ConnectComponents(),
//	)
package builder
