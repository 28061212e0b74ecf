// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for euler/core.
//
// Purpose:
//   - Provide small deterministic fixtures for core.Graph.
//   - Keep degree/multiplicity bookkeeping out of the test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euler/core"
)

// Common sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// edgePair is a compact edge literal for fixtures.
type edgePair = [2]int

// mustGraph builds an n-vertex graph from pairs, failing the test on error.
func mustGraph(t testing.TB, n int, pairs ...edgePair) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%d,%d)", p[0], p[1])
	}

	return g
}

// occurrences counts, for every vertex v, how many entries v's own neighbor
// sequence holds. It is the reference value Degree must agree with.
func occurrences(t *testing.T, g *core.Graph) []int {
	t.Helper()
	out := make([]int, g.Order())
	for v := 0; v < g.Order(); v++ {
		nbs, err := g.Neighbors(v)
		require.NoError(t, err)
		out[v] = len(nbs)
	}

	return out
}

// countOf returns the number of times x appears in s.
func countOf(s []int, x int) int {
	var c int
	for _, y := range s {
		if y == x {
			c++
		}
	}

	return c
}
