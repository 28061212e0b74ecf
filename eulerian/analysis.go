// SPDX-License-Identifier: MIT
// File: analysis.go
// Role: Eligibility checks: connectivity over edge-bearing vertices, degree
//       parity, and the combined diagnostic Report.
// Determinism:
//   - Pure functions of the graph; OddVertices is ascending.
// Concurrency:
//   - Each call works on a snapshot taken under the graph's read lock.

package eulerian

import (
	"context"
	"fmt"

	"github.com/katalvlaran/euler/core"
	"github.com/katalvlaran/euler/dfs"
)

// IsConnected reports whether every vertex with non-zero degree is reachable
// from every other. Isolated vertices are ignored; a graph without edges is
// vacuously connected.
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	start := g.FirstNonIsolated()
	if start < 0 {
		return true, nil
	}

	res, err := dfs.DFS(g, start)
	if err != nil {
		return false, fmt.Errorf("eulerian: IsConnected: %w", err)
	}
	for v, d := range g.Degrees() {
		if d > 0 && !res.Visited[v] {
			return false, nil
		}
	}

	return true, nil
}

// IsEulerian reports whether g has an Eulerian circuit: it must be connected
// in the IsConnected sense and every vertex degree must be even. A graph
// without edges is Eulerian.
//
// Complexity: O(V + E).
func IsEulerian(g *core.Graph) (bool, error) {
	connected, err := IsConnected(g)
	if err != nil || !connected {
		return false, err
	}

	return len(oddVertices(g.Degrees())) == 0, nil
}

// Analyze gathers the full Report for g.
// ctx cancels the component labelling on very large graphs.
//
// Complexity: O(V + E + Σ c·log c).
func Analyze(ctx context.Context, g *core.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	comps, err := dfs.Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("eulerian: Analyze: %w", err)
	}

	degs := g.Degrees()
	rep := &Report{
		Vertices:    g.Order(),
		Edges:       g.EdgeCount(),
		OddVertices: oddVertices(degs),
		Components:  len(comps),
		Connected:   len(comps) <= 1,
	}
	for _, d := range degs {
		if d == 0 {
			rep.Isolated++
		}
	}
	for _, e := range g.Edges() {
		if e.IsLoop() {
			rep.Loops++
		}
	}
	rep.Eulerian = rep.Connected && len(rep.OddVertices) == 0

	return rep, nil
}

// oddVertices lists vertices of odd degree in ascending order. The result is
// never nil so that it serializes as an empty list.
func oddVertices(degs []int) []int {
	odd := make([]int, 0)
	for v, d := range degs {
		if d%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd
}
