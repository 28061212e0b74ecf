// SPDX-License-Identifier: MIT

// Command eulerian generates random undirected multigraphs and reports an
// Eulerian circuit when one exists.
//
//	eulerian -e 10 -v 6 -s 42
//	eulerian solve graph.yaml
//	eulerian batch -e 10 -v 6 --trials 1000 --workers 8
//
// Invalid arguments exit with status 1. A graph without a circuit is a
// normal outcome and exits 0.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
