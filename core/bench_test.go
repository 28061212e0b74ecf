// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/euler/core"
)

// BenchmarkAddEdge measures edge insertion into a 1000-vertex graph,
// cycling endpoints so sequences grow evenly.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1000
	g := core.NewGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%n, (i*7+1)%n)
	}
}

// BenchmarkAdjacencyList measures the deep-copy snapshot used by the
// circuit finder as its working copy.
func BenchmarkAdjacencyList(b *testing.B) {
	const n = 1000
	g := core.NewGraph(n)
	for i := 0; i < 10*n; i++ {
		_ = g.AddEdge(i%n, (i*13+5)%n)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacencyList()
	}
}
