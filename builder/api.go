// SPDX-License-Identifier: MIT
// Package: euler/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic on bad parameters; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/euler/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Touch only vertices that exist in g.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n vertices, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrTooFewVertices if n < 0.
//   - ErrConstructFailed for a nil constructor.
//   - Wraps constructor errors via %w; branch with errors.Is.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	g := core.NewGraph(n)

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It lets callers repair
// or connect a graph that was loaded from elsewhere (for example a file).
// Constructors work on a clone; g receives the added edges only when every
// constructor succeeds, so a failed Apply leaves g unchanged. Writers racing
// with Apply on the same graph are not serialized against it.
// Errors are wrapped with "Apply: %w".
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: %w: %w", ErrConstructFailed, core.ErrGraphNil)
	}
	work := g.Clone()
	base := work.EdgeCount()

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(work, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	// constructors only append, so the new edges are the catalog suffix
	if err := g.AddEdges(work.Edges()[base:]); err != nil {
		return fmt.Errorf("Apply: %w: %w", ErrConstructFailed, err)
	}

	return nil
}
