// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euler/core"
	"github.com/katalvlaran/euler/dfs"
)

// buildDiamond creates the undirected graph
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func buildDiamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(6)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// buildPath creates the path 0-1-2-...-(n-1).
func buildPath(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewGraph(2)
	for _, start := range []int{-1, 2} {
		res, err := dfs.DFS(g, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	}
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := core.NewGraph(1)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.True(t, res.Visited[0])
	assert.Equal(t, 0, res.Depth[0])
	assert.Equal(t, -1, res.Parent[0], "start vertex should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewGraph(1)
	require.NoError(t, g.AddEdge(0, 0))

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	// Self-loop should not create additional entries
	assert.Equal(t, []int{0}, res.Order)
}

// TestDFS_InsertionOrder pins the exact visit order: neighbors are explored
// in insertion order, exactly as a recursive DFS would.
func TestDFS_InsertionOrder(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 5}, res.Preorder)
	assert.Equal(t, []int{2, 4, 5, 3, 1, 0}, res.Order)
	assert.Equal(t, []int{0, 1, 3, 2, 3, 3}, res.Depth)
	assert.Equal(t, 3, res.Parent[2])
	assert.Equal(t, 1, res.Parent[3])
}

func TestDFS_Disconnected(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1))

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Order)
	assert.False(t, res.Visited[2], "disconnected vertex should not be visited")
	assert.Equal(t, -1, res.Depth[2])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 3))

	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 3, 2}, res.Order)
	assert.Equal(t, []bool{true, true, true, true}, res.Visited)
	assert.Equal(t, -1, res.Parent[2], "second tree root has no parent")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Preorder)
	assert.Equal(t, []int{1, 2, 0}, res.Order)
	assert.False(t, res.Visited[3])

	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildDiamond(t)

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v int) bool {
		return v != 3
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, res.Order)
	assert.False(t, res.Visited[3], "filtered neighbor should not be visited")
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	g := buildDiamond(t)

	var pre, post []int
	res, err := dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v int) error { pre = append(pre, v); return nil }),
		dfs.WithOnExit(func(v int) error { post = append(post, v); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Preorder, pre)
	assert.Equal(t, res.Order, post)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := buildDiamond(t)
	halt := errors.New("halt at 3")

	res, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(v int) error {
		if v == 3 {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
	require.NotNil(t, res)
	assert.Nil(t, res.Order, "order is cleared on hook abort")
}

func TestDFS_OnExitError(t *testing.T) {
	g := buildPath(t, 3)
	halt := errors.New("halt at 2 on exit")

	_, err := dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error {
		if v == 2 {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
}

func TestDFS_ContextCanceled(t *testing.T) {
	g := buildPath(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestDFS_DeepPath runs on a long path; the explicit stack keeps this
// independent of goroutine stack depth.
func TestDFS_DeepPath(t *testing.T) {
	const n = 200000
	g := buildPath(t, n)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Order[0])
	assert.Equal(t, n-1, res.Depth[n-1])
}
