// SPDX-License-Identifier: MIT
package eulerian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euler/core"
)

// build creates a graph with n vertices and the given edges, in order.
func build(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// randomClosedWalk builds a graph from a random closed walk of the given
// length over n vertices. Every such graph is Eulerian: the walk visits
// only one component and each visit adds two to a vertex's degree.
func randomClosedWalk(t testing.TB, seed int64, n, length int) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(n)

	first := rng.Intn(n)
	prev := first
	for i := 1; i < length; i++ {
		next := rng.Intn(n)
		require.NoError(t, g.AddEdge(prev, next))
		prev = next
	}
	require.NoError(t, g.AddEdge(prev, first))

	return g
}

// degreesFromCircuit counts each vertex's degree implied by a closed walk.
func degreesFromCircuit(circuit []int, n int) []int {
	deg := make([]int, n)
	for i := 0; i+1 < len(circuit); i++ {
		deg[circuit[i]]++
		deg[circuit[i+1]]++
	}

	return deg
}
