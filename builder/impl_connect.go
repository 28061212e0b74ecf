// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// impl_connect.go - ConnectComponents(): join edge-bearing components.
//
// Contract:
//   • Components are the edge-bearing ones from dfs.Components, ordered by
//     lowest vertex. Isolated vertices stay isolated.
//   • For consecutive components A, B adds two parallel edges between
//     min(A) and min(B). Each endpoint gains 2, so parity is unchanged and
//     an all-even graph stays all-even.
//   • No-op for graphs with zero or one component.
//
// Complexity: O(V + E) for labelling plus 2·(k-1) edges for k components.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/euler/core"
	"github.com/katalvlaran/euler/dfs"
)

// ConnectComponents returns a Constructor that links all edge-bearing
// components into one.
func ConnectComponents() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		comps, err := dfs.Components(context.Background(), g)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodConnectComponents, err)
		}

		for i := 1; i < len(comps); i++ {
			u, v := comps[i-1][0], comps[i][0]
			if err = addEdge(MethodConnectComponents, g, u, v); err != nil {
				return err
			}
			if err = addEdge(MethodConnectComponents, g, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
