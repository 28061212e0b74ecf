// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and textual display.
// Determinism:
//   - Display lists vertices in increasing index, neighbors in insertion order.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Clone returns a deep copy of the graph: same order, same neighbor
// sequences, same edge catalog. Later mutations of either graph are not
// visible in the other.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		n:     g.n,
		adj:   cloneAdjacency(g.adj),
		edges: make([]Edge, len(g.edges)),
	}
	copy(clone.edges, g.edges)

	return clone
}

// Display writes one line per vertex in increasing index order:
//
//	0: 1 3
//	1: 0 2
//	2:
//
// i.e. the vertex index, a colon, then each neighbor preceded by a single
// space, in insertion order. Isolated vertices print as "v:".
//
// Complexity: O(V + E).
func (g *Graph) Display(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bw := bufio.NewWriter(w)
	var buf []byte
	for v, nbs := range g.adj {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, ':')
		for _, u := range nbs {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(u), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// String renders the same listing as Display.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Display(&sb) // strings.Builder never fails

	return sb.String()
}
