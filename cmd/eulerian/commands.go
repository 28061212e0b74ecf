// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/euler/internal/config"
	"github.com/katalvlaran/euler/internal/metrics"
)

// cliState holds flag values and the resources resolved from them for one
// command execution.
type cliState struct {
	// --- Flags ---
	configPath  string
	vertices    int
	edges       int
	seed        int64
	repair      string
	connect     bool
	output      string
	logLevel    string
	logFormat   string
	metricsFile string
	trials      int
	workers     int
	watch       bool

	// --- Resolved in PersistentPreRunE ---
	settings config.Config
	seedUsed int64
	logger   *zap.Logger
	recorder *metrics.Recorder
}

// newRootCmd wires the root command (random instance) and its subcommands.
func newRootCmd() *cobra.Command {
	st := &cliState{}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "eulerian -e EDGES -v VERTICES [-s SEED]",
		Short: "Generate a random multigraph and find an Eulerian circuit",
		Long: `eulerian draws EDGES random edges over VERTICES vertices, optionally
repairs odd degrees and joins components, then prints the adjacency lists
and an Eulerian circuit if the graph has one.`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  st.resolve,
		PersistentPostRunE: st.finish,
		RunE:               st.runGenerate,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&st.configPath, "config", "", "YAML settings file; flags override it")
	pf.IntVarP(&st.vertices, "vertices", "v", 0, "number of vertices (> 0)")
	pf.IntVarP(&st.edges, "edges", "e", 0, "number of random edges (> 0)")
	pf.Int64VarP(&st.seed, "seed", "s", 0, "random seed (default: current time)")
	pf.StringVar(&st.repair, "repair", defaults.Repair, "parity repair: none, single or pair")
	pf.BoolVar(&st.connect, "connect", defaults.Connect, "join edge-bearing components with double edges")
	pf.StringVarP(&st.output, "output", "o", defaults.Output, "output format: text or json")
	pf.StringVar(&st.logLevel, "log-level", defaults.Log.Level, "log level: debug, info, warn or error")
	pf.StringVar(&st.logFormat, "log-format", defaults.Log.Format, "log encoding: auto, console or json")
	pf.StringVar(&st.metricsFile, "metrics-file", "", "write Prometheus text metrics here after the run")

	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Find an Eulerian circuit of a graph read from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  st.runSolve,
	}
	solveCmd.Flags().BoolVar(&st.watch, "watch", false, "re-solve FILE after every save until interrupted")

	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Run many seeded trials concurrently and summarize outcomes",
		Args:  cobra.NoArgs,
		RunE:  st.runBatch,
	}
	batchCmd.Flags().IntVar(&st.trials, "trials", defaults.Batch.Trials, "number of trials (seeds seed..seed+trials-1)")
	batchCmd.Flags().IntVar(&st.workers, "workers", defaults.Batch.Workers, "concurrent workers")

	rootCmd.AddCommand(solveCmd, batchCmd)

	return rootCmd
}
