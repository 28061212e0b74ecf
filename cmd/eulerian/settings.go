// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/euler/internal/config"
	"github.com/katalvlaran/euler/internal/logging"
	"github.com/katalvlaran/euler/internal/metrics"
)

// resolve layers defaults, the config file and changed flags, validates the
// result, and builds the logger.
func (st *cliState) resolve(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(st.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("vertices") {
		cfg.Vertices = st.vertices
	}
	if flags.Changed("edges") {
		cfg.Edges = st.edges
	}
	if flags.Changed("seed") {
		seed := st.seed
		cfg.Seed = &seed
	}
	if flags.Changed("repair") {
		cfg.Repair = st.repair
	}
	if flags.Changed("connect") {
		cfg.Connect = st.connect
	}
	if flags.Changed("output") {
		cfg.Output = st.output
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = st.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = st.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = st.metricsFile
	}
	if flags.Changed("trials") {
		cfg.Batch.Trials = st.trials
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = st.workers
	}

	// a file supplies its own vertices and edges
	if cmd.Name() == "solve" {
		err = cfg.ValidateExcept("Vertices", "Edges")
	} else {
		err = cfg.Validate()
	}
	if err != nil {
		return err
	}

	if cfg.Seed != nil {
		st.seedUsed = *cfg.Seed
	} else {
		st.seedUsed = time.Now().Unix()
	}

	st.logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	if cfg.MetricsFile != "" {
		st.recorder = metrics.New()
	}
	st.settings = cfg

	st.logger.Debug("settings resolved",
		zap.String("command", cmd.Name()),
		zap.String("config", st.configPath),
		zap.Int64("seed", st.seedUsed),
	)

	return nil
}

// finish writes metrics and flushes the logger.
func (st *cliState) finish(_ *cobra.Command, _ []string) error {
	if st.logger != nil {
		// Sync on a terminal stderr returns EINVAL on Linux
		defer func() { _ = st.logger.Sync() }()
	}
	if st.recorder == nil {
		return nil
	}
	if err := st.recorder.WriteFile(st.settings.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
