// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/euler/builder"
	"github.com/katalvlaran/euler/internal/runner"
)

func (st *cliState) runGenerate(cmd *cobra.Command, _ []string) error {
	p, err := runner.ParamsFromConfig(st.settings, st.seedUsed)
	if err != nil {
		return err
	}

	res, err := runner.New(st.logger, st.recorder).Generate(cmd.Context(), p)
	if err != nil {
		return err
	}

	return st.render(cmd, res)
}

func (st *cliState) runSolve(cmd *cobra.Command, args []string) error {
	policy, err := builder.ParseParityPolicy(st.settings.Repair)
	if err != nil {
		return err
	}
	// files are solved as given unless --repair or the config file names a policy
	if !cmd.Flags().Changed("repair") && !st.settings.RepairSet {
		policy = builder.ParityNone
	}

	r := runner.New(st.logger, st.recorder)
	solve := func(ctx context.Context) error {
		res, err := r.SolveFile(ctx, args[0], policy, st.settings.Connect, st.seedUsed)
		if err != nil {
			return err
		}

		return st.render(cmd, res)
	}
	if st.watch {
		return r.Watch(cmd.Context(), args[0], runner.DefaultDebounce, solve)
	}

	return solve(cmd.Context())
}

func (st *cliState) runBatch(cmd *cobra.Command, _ []string) error {
	p, err := runner.ParamsFromConfig(st.settings, st.seedUsed)
	if err != nil {
		return err
	}

	sum, err := runner.New(st.logger, st.recorder).Batch(cmd.Context(), p, st.settings.Batch.Trials, st.settings.Batch.Workers)
	if err != nil {
		return err
	}

	if st.settings.Output == "json" {
		return runner.WriteJSON(cmd.OutOrStdout(), sum)
	}

	return runner.WriteBatchText(cmd.OutOrStdout(), sum)
}

func (st *cliState) render(cmd *cobra.Command, res *runner.Result) error {
	if st.settings.Output == "json" {
		return runner.WriteJSON(cmd.OutOrStdout(), res)
	}

	return runner.WriteText(cmd.OutOrStdout(), res)
}
