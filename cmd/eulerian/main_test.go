// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/euler/internal/config"
)

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRoot_TextOutput(t *testing.T) {
	out, err := execute(t, "-e", "12", "-v", "6", "-s", "42", "--connect")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Generated random graph with seed 42:", lines[0])
	assert.Equal(t, "", lines[7], "blank line after 6 adjacency rows")
	assert.True(t, strings.HasPrefix(lines[8], "Eulerian circuit: "), lines[8])
}

func TestRoot_SameSeedSameOutput(t *testing.T) {
	a, err := execute(t, "-e", "9", "-v", "5", "-s", "3", "--repair", "single")
	require.NoError(t, err)
	b, err := execute(t, "-e", "9", "-v", "5", "-s", "3", "--repair", "single")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoot_NoRepairMayFail(t *testing.T) {
	// a single random edge without repair has two odd endpoints unless it is a loop
	out, err := execute(t, "-e", "1", "-v", "50", "-s", "1", "--repair", "none")
	require.NoError(t, err, "a missing circuit is not an error")
	assert.True(t,
		strings.Contains(out, "The graph does not have an Eulerian circuit.") ||
			strings.Contains(out, "Eulerian circuit: "), out)
}

func TestRoot_JSONOutput(t *testing.T) {
	out, err := execute(t, "-e", "5", "-v", "4", "-s", "8", "-o", "json", "--connect")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.EqualValues(t, 8, doc["seed"])
	assert.Equal(t, "circuit", doc["outcome"])
}

func TestRoot_InvalidArguments(t *testing.T) {
	cases := [][]string{
		{"-e", "0", "-v", "3"},
		{"-e", "3", "-v", "-1"},
		{"-e", "3"},
		{"-e", "3", "-v", "3", "--repair", "twice"},
		{"-e", "3", "-v", "3", "-o", "xml"},
		{"-e", "x", "-v", "3"},
		{"-e", "3", "-v", "3", "extra"},
	}
	for _, args := range cases {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}

	_, err := execute(t, "-e", "0", "-v", "3")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_ConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 4\nedges: 6\nseed: 10\nconnect: true\n"), 0o600))

	out, err := execute(t, "--config", path, "-s", "11")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Generated random graph with seed 11:\n"), out)
}

func TestSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 4\nedges: [[0, 1], [1, 2], [2, 3], [3, 0]]\n"), 0o600))

	out, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "Graph from "+path+":\n0: 1 3\n1: 0 2\n2: 1 3\n3: 2 0\n\nEulerian circuit: 0 1 2 3 0\n", out)
}

func TestSolve_RepairOnRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "path.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 3\nedges: [[0, 1], [1, 2]]\n"), 0o600))

	out, err := execute(t, "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "The graph does not have an Eulerian circuit.")

	out, err = execute(t, "solve", path, "--repair", "pair")
	require.NoError(t, err)
	assert.Contains(t, out, "Eulerian circuit: 0 1 2 0")
}

func TestSolve_ConfigWithoutRepair(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "path.yaml")
	require.NoError(t, os.WriteFile(graphPath, []byte("vertices: 3\nedges: [[0, 1], [1, 2]]\n"), 0o600))
	cfgPath := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: text\n"), 0o600))

	out, err := execute(t, "solve", graphPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2: 1\n", "graph is solved as written")
	assert.Contains(t, out, "The graph does not have an Eulerian circuit.")

	require.NoError(t, os.WriteFile(cfgPath, []byte("repair: pair\n"), 0o600))
	out, err = execute(t, "solve", graphPath, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Eulerian circuit: 0 1 2 0")
}

func TestSolve_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "square.yaml")
	require.NoError(t, os.WriteFile(graphPath, []byte("vertices: 4\nedges: [[0, 1], [1, 2], [2, 3], [3, 0]]\n"), 0o600))
	metricsPath := filepath.Join(dir, "euler.prom")

	_, err := execute(t, "solve", graphPath, "--metrics-file", metricsPath)
	require.NoError(t, err)

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `euler_trials_total{outcome="circuit"} 1`)
}

func TestSolve_MissingFile(t *testing.T) {
	_, err := execute(t, "solve", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBatch(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "euler.prom")
	out, err := execute(t, "batch", "-e", "8", "-v", "6", "-s", "5", "--connect",
		"--trials", "20", "--workers", "4", "--metrics-file", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Batch of 20 trials from seed 5")
	assert.Contains(t, out, "  circuit:           20\n")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `euler_trials_total{outcome="circuit"} 20`)
}

func TestBatch_InvalidWorkers(t *testing.T) {
	_, err := execute(t, "batch", "-e", "8", "-v", "6", "--workers", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_WatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "g.yaml")
	_, err := execute(t, "solve", path, "--watch")
	assert.Error(t, err, "the watcher cannot attach to a missing directory")
}
