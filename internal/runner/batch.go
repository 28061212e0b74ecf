// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidBatch indicates a non-positive trial or worker count.
var ErrInvalidBatch = errors.New("runner: invalid batch size")

// BatchSummary aggregates the outcomes of many independent trials.
type BatchSummary struct {
	BaseSeed       int64           `json:"base_seed"`
	Trials         int             `json:"trials"`
	Workers        int             `json:"workers"`
	Vertices       int             `json:"vertices"`
	Params         ParamsView      `json:"params"`
	Outcomes       map[Outcome]int `json:"outcomes"`
	OddAfterRepair int             `json:"odd_after_repair"`
	Disconnected   int             `json:"disconnected"`
	Elapsed        time.Duration   `json:"elapsed_ns"`
}

// trialSlot is written by exactly one worker.
type trialSlot struct {
	outcome      Outcome
	odd          bool
	disconnected bool
}

// Batch runs trials instances with seeds p.Seed, p.Seed+1, ... on at most
// workers goroutines. Each trial builds its own graph and random source, so
// the summary depends only on p and trials, never on scheduling. The first
// trial error cancels the rest.
func (r *Runner) Batch(ctx context.Context, p Params, trials, workers int) (*BatchSummary, error) {
	if trials < 1 || workers < 1 {
		return nil, fmt.Errorf("%w: trials=%d workers=%d", ErrInvalidBatch, trials, workers)
	}

	start := time.Now()
	slots := make([]trialSlot, trials)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < trials; i++ {
		if egCtx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			tp := p
			tp.Seed = p.Seed + int64(i)

			res, err := r.Generate(egCtx, tp)
			if err != nil {
				return fmt.Errorf("trial %d (seed %d): %w", i, tp.Seed, err)
			}
			slots[i] = trialSlot{
				outcome:      res.Outcome,
				odd:          len(res.Report.OddVertices) > 0,
				disconnected: !res.Report.Connected,
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("runner: batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("runner: batch: %w", err)
	}

	sum := &BatchSummary{
		BaseSeed: p.Seed,
		Trials:   trials,
		Workers:  workers,
		Vertices: p.Vertices,
		Params:   ParamsView{RequestedEdges: p.Edges, Repair: p.Repair.String(), Connect: p.Connect},
		Outcomes: map[Outcome]int{
			OutcomeCircuit:     0,
			OutcomeNotEulerian: 0,
			OutcomeNoEdges:     0,
		},
		Elapsed: time.Since(start),
	}
	for _, s := range slots {
		sum.Outcomes[s.outcome]++
		if s.odd {
			sum.OddAfterRepair++
		}
		if s.disconnected {
			sum.Disconnected++
		}
	}

	r.log.Info("batch finished",
		zap.Int64("base_seed", p.Seed),
		zap.Int("trials", trials),
		zap.Int("workers", workers),
		zap.Int("circuits", sum.Outcomes[OutcomeCircuit]),
		zap.Int("odd_after_repair", sum.OddAfterRepair),
		zap.Duration("elapsed", sum.Elapsed),
	)

	return sum, nil
}
