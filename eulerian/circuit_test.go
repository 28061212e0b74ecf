// SPDX-License-Identifier: MIT
package eulerian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euler/eulerian"
)

func TestFindCircuit_NilGraph(t *testing.T) {
	_, err := eulerian.FindCircuit(nil)
	assert.ErrorIs(t, err, eulerian.ErrGraphNil)
}

func TestFindCircuit_FourCycle(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, c)
}

func TestFindCircuit_OddDegrees(t *testing.T) {
	g := build(t, 3, [2]int{0, 1})

	c, err := eulerian.FindCircuit(g)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, eulerian.ErrNotEulerian)
}

func TestFindCircuit_Disconnected(t *testing.T) {
	g := build(t, 6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3},
	)

	_, err := eulerian.FindCircuit(g)
	assert.ErrorIs(t, err, eulerian.ErrNotEulerian)
}

func TestFindCircuit_NoEdges(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		g := build(t, n)
		c, err := eulerian.FindCircuit(g)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, eulerian.ErrNoEdges, "n=%d", n)
	}
}

func TestFindCircuit_IgnoresIsolatedVertex(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, c)
}

func TestFindCircuit_StartsAtLowestEdgeVertex(t *testing.T) {
	g := build(t, 5, [2]int{3, 4}, [2]int{4, 2}, [2]int{2, 3})

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3, 2}, c)
}

func TestFindCircuit_SelfLoop(t *testing.T) {
	g := build(t, 1, [2]int{0, 0})

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, c)
}

func TestFindCircuit_LoopInsideCycle(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 0})

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2, 0}, c)
	assert.NoError(t, eulerian.ValidateCircuit(g, c))
}

func TestFindCircuit_ParallelEdges(t *testing.T) {
	g := build(t, 2, [2]int{0, 1}, [2]int{0, 1})

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, c)
}

// TestFindCircuit_FigureEight walks two triangles sharing vertex 0.
func TestFindCircuit_FigureEight(t *testing.T) {
	g := build(t, 5,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0},
	)

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 3, 4, 0}, c)
}

// TestFindCircuit_SplicesSubtour covers the case where the first walk closes
// early at the start and the remaining triangle at 1 must be spliced in.
func TestFindCircuit_SplicesSubtour(t *testing.T) {
	g := build(t, 5,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{1, 3}, [2]int{3, 4}, [2]int{4, 1},
	)

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4, 1, 2, 0}, c)
	assert.NoError(t, eulerian.ValidateCircuit(g, c))
}

func TestFindCircuit_DoesNotMutateGraph(t *testing.T) {
	g := build(t, 5,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{1, 3}, [2]int{3, 4}, [2]int{4, 1},
	)
	before := g.AdjacencyList()

	_, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.AdjacencyList())
	assert.Equal(t, 6, g.EdgeCount())
}

// TestFindCircuit_RandomClosedWalks checks the circuit's edge multiset and
// implied degrees on random Eulerian multigraphs, loops included.
func TestFindCircuit_RandomClosedWalks(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		n := 2 + int(seed%7)
		g := randomClosedWalk(t, seed, n, 5+int(seed%23))

		c, err := eulerian.FindCircuit(g)
		require.NoError(t, err, "seed=%d", seed)
		require.Len(t, c, g.EdgeCount()+1)
		assert.Equal(t, c[0], c[len(c)-1])
		assert.Equal(t, g.FirstNonIsolated(), c[0])
		assert.NoError(t, eulerian.ValidateCircuit(g, c), "seed=%d", seed)
		assert.Equal(t, g.Degrees(), degreesFromCircuit(c, n), "seed=%d", seed)
	}
}

func TestFindCircuit_Deterministic(t *testing.T) {
	g := randomClosedWalk(t, 42, 12, 200)

	first, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := eulerian.FindCircuit(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestFindCircuit_LongCycle guards against stack growth on long circuits.
func TestFindCircuit_LongCycle(t *testing.T) {
	const n = 100000
	g := build(t, n)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n))
	}

	c, err := eulerian.FindCircuit(g)
	require.NoError(t, err)
	require.Len(t, c, n+1)
	assert.Equal(t, 1, c[1])
	assert.Equal(t, n-1, c[n-1])
}
