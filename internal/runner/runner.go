// SPDX-License-Identifier: MIT

// Package runner drives one process invocation: build or load a graph,
// analyze it, search for an Eulerian circuit, and render the result. It is
// the only layer besides cmd/ that logs; library packages stay silent.
package runner

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/euler/builder"
	"github.com/katalvlaran/euler/internal/config"
	"github.com/katalvlaran/euler/internal/metrics"
)

// Runner carries the per-process logger, run identifier and metrics.
type Runner struct {
	log   *zap.Logger
	rec   *metrics.Recorder
	runID string
}

// New tags log with a fresh run_id. rec may be nil to disable metrics.
func New(log *zap.Logger, rec *metrics.Recorder) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()

	return &Runner{
		log:   log.With(zap.String("run_id", id)),
		rec:   rec,
		runID: id,
	}
}

// RunID returns the identifier attached to every log entry of this run.
func (r *Runner) RunID() string { return r.runID }

// Params describes one random instance.
type Params struct {
	Vertices int
	Edges    int
	Seed     int64
	Repair   builder.ParityPolicy
	Connect  bool
}

// ParamsFromConfig resolves a validated Config and a concrete seed.
func ParamsFromConfig(cfg config.Config, seed int64) (Params, error) {
	policy, err := builder.ParseParityPolicy(cfg.Repair)
	if err != nil {
		return Params{}, fmt.Errorf("runner: %w", err)
	}

	return Params{
		Vertices: cfg.Vertices,
		Edges:    cfg.Edges,
		Seed:     seed,
		Repair:   policy,
		Connect:  cfg.Connect,
	}, nil
}

// constructors lists the build steps for p in application order.
func (p Params) constructors() []builder.Constructor {
	cons := []builder.Constructor{
		builder.RandomEdges(p.Edges),
		builder.RepairParity(p.Repair),
	}
	if p.Connect {
		cons = append(cons, builder.ConnectComponents())
	}

	return cons
}
