// SPDX-License-Identifier: MIT
// File: dfs.go
// Role: Depth-first search (single-source and forest) on core.Graph.
//
// The walker keeps an explicit stack of frames (vertex, next neighbor index)
// instead of recursing, so memory is bounded by O(V) heap slots whatever the
// graph shape. Neighbors are explored in insertion order, which yields the
// same discovery and finish order as the textbook recursive formulation.
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V + E) for the adjacency snapshot, O(V) for the stack and result.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside [0, g.Order()).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// frame is one level of the explicit traversal stack.
type frame struct {
	v     int // vertex being explored
	next  int // index of the next neighbor of v to look at
	depth int // tree depth of v
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj   [][]int    // adjacency snapshot
	opts  DFSOptions // traversal options
	res   *DFSResult // result collector
	stack []frame    // explicit work stack, reused across trees
}

// DFS performs depth-first search on graph g. With WithFullTraversal it
// covers every vertex in index order; otherwise it starts only from start.
// Returns DFSResult or an error if aborted by context or hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := g.Order()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: start %d of %d vertices: %w", start, n, ErrStartVertexNotFound)
	}

	w := newWalker(g.AdjacencyList(), dopts)

	// 4. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !w.res.Visited[v] {
				if err := w.walk(v); err != nil {
					return w.res, err
				}
			}
		}
	} else if err := w.walk(start); err != nil {
		return w.res, err
	}

	// 5. Expose diagnostics
	w.res.SkippedNeighbors = w.opts.SkippedNeighbors

	return w.res, nil
}

func newWalker(adj [][]int, opts DFSOptions) *dfsWalker {
	n := len(adj)
	res := &DFSResult{
		Order:    make([]int, 0, n),
		Preorder: make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
		Visited:  make([]bool, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = -1
		res.Parent[v] = -1
	}

	return &dfsWalker{adj: adj, opts: opts, res: res}
}

// walk explores the tree rooted at root.
func (w *dfsWalker) walk(root int) error {
	if err := w.discover(root, -1, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		if top.next < len(w.adj[top.v]) {
			u := w.adj[top.v][top.next]
			top.next++

			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u) {
				w.opts.SkippedNeighbors++
				continue
			}
			if w.res.Visited[u] {
				continue // also covers self-loops
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			// discover may grow the stack; top must not be used afterwards
			if err := w.discover(u, top.v, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// all neighbors explored: finish v
		v := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(v); err != nil {
				w.res.Order = nil

				return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}

// discover marks v visited, runs the pre-order hook and pushes its frame.
func (w *dfsWalker) discover(v, parent, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Preorder = append(w.res.Preorder, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	w.stack = append(w.stack, frame{v: v, depth: depth})

	return nil
}
