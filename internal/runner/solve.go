// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/euler/builder"
	"github.com/katalvlaran/euler/core"
	"github.com/katalvlaran/euler/eulerian"
	"github.com/katalvlaran/euler/internal/config"
)

// Outcome classifies how a circuit search ended.
type Outcome string

const (
	OutcomeCircuit     Outcome = "circuit"
	OutcomeNotEulerian Outcome = "not_eulerian"
	OutcomeNoEdges     Outcome = "no_edges"
)

// Result is everything one run reports. Graph is kept for text rendering
// and omitted from JSON in favor of Adjacency.
type Result struct {
	Seed      *int64           `json:"seed,omitempty"`
	Source    string           `json:"source,omitempty"`
	Params    *ParamsView      `json:"params,omitempty"`
	Vertices  int              `json:"vertices"`
	Edges     int              `json:"edges"`
	Adjacency [][]int          `json:"adjacency"`
	Report    *eulerian.Report `json:"report"`
	Circuit   []int            `json:"circuit,omitempty"`
	Outcome   Outcome          `json:"outcome"`

	Graph *core.Graph `json:"-"`
}

// ParamsView is the JSON form of the generation parameters.
type ParamsView struct {
	RequestedEdges int    `json:"requested_edges"`
	Repair         string `json:"repair"`
	Connect        bool   `json:"connect"`
}

// Generate builds the random instance described by p and solves it.
func (r *Runner) Generate(ctx context.Context, p Params) (*Result, error) {
	start := time.Now()
	g, err := builder.BuildGraph(p.Vertices, []builder.BuilderOption{builder.WithSeed(p.Seed)}, p.constructors()...)
	if err != nil {
		return nil, fmt.Errorf("runner: generate: %w", err)
	}
	r.log.Debug("graph generated",
		zap.Int64("seed", p.Seed),
		zap.Int("vertices", g.Order()),
		zap.Int("edges", g.EdgeCount()),
		zap.Stringer("repair", p.Repair),
	)

	res, err := r.Solve(ctx, g)
	if err != nil {
		return nil, err
	}
	seed := p.Seed
	res.Seed = &seed
	res.Params = &ParamsView{RequestedEdges: p.Edges, Repair: p.Repair.String(), Connect: p.Connect}

	if r.rec != nil {
		r.rec.Observe(string(res.Outcome), res.Edges, len(res.Report.OddVertices) > 0, time.Since(start))
	}

	return res, nil
}

// Solve analyzes g and looks for an Eulerian circuit. A missing circuit is
// an Outcome, not an error.
func (r *Runner) Solve(ctx context.Context, g *core.Graph) (*Result, error) {
	rep, err := eulerian.Analyze(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("runner: analyze: %w", err)
	}

	res := &Result{
		Vertices:  g.Order(),
		Edges:     g.EdgeCount(),
		Adjacency: g.AdjacencyList(),
		Report:    rep,
		Graph:     g,
	}

	circuit, err := eulerian.FindCircuit(g)
	switch {
	case err == nil:
		res.Outcome = OutcomeCircuit
		res.Circuit = circuit
	case errors.Is(err, eulerian.ErrNotEulerian):
		res.Outcome = OutcomeNotEulerian
	case errors.Is(err, eulerian.ErrNoEdges):
		res.Outcome = OutcomeNoEdges
	default:
		return nil, fmt.Errorf("runner: circuit: %w", err)
	}

	r.log.Info("graph solved",
		zap.String("outcome", string(res.Outcome)),
		zap.Int("vertices", rep.Vertices),
		zap.Int("edges", rep.Edges),
		zap.Int("components", rep.Components),
		zap.Ints("odd_vertices", rep.OddVertices),
	)

	return res, nil
}

// SolveFile loads a graph file, optionally repairs and connects it with the
// same builder passes as Generate, and solves it. seed only matters for
// ParitySinglePass. The run is recorded like a generated trial.
func (r *Runner) SolveFile(ctx context.Context, path string, repair builder.ParityPolicy, connect bool, seed int64) (*Result, error) {
	start := time.Now()
	gf, err := config.LoadGraphFile(path)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	edges := make([]core.Edge, len(gf.Edges))
	for i, e := range gf.Edges {
		edges[i] = core.Edge{U: e[0], V: e[1]}
	}
	cons := []builder.Constructor{
		builder.EdgeList(edges),
		builder.RepairParity(repair),
	}
	if connect {
		cons = append(cons, builder.ConnectComponents())
	}

	g, err := builder.BuildGraph(gf.Vertices, []builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	if err != nil {
		return nil, fmt.Errorf("runner: load %s: %w", path, err)
	}
	r.log.Debug("graph loaded", zap.String("path", path), zap.Int("edges", g.EdgeCount()))

	res, err := r.Solve(ctx, g)
	if err != nil {
		return nil, err
	}
	res.Source = path

	if r.rec != nil {
		r.rec.Observe(string(res.Outcome), res.Edges, len(res.Report.OddVertices) > 0, time.Since(start))
	}

	return res, nil
}
