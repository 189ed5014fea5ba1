package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgraph/simulation"
)

// execute runs the root command with args and returns stdout, stderr and
// the log output.
func execute(t *testing.T, args ...string) (string, string, string, error) {
	t.Helper()
	var stdout, stderr, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), logs.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"demo", "simulate", "dot", "version"})
}

func TestVersion(t *testing.T) {
	out, _, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "spgraph version dev")
}

func TestVersionCommand(t *testing.T) {
	out, _, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "version: dev\ncommit: none\nbuilt: unknown\n", out)
}

func TestDemo(t *testing.T) {
	out, _, _, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Adjacency list graph")
	assert.Contains(t, out, "Matrix-based graph")
	assert.Equal(t, 2, strings.Count(out, "Number of edges: 18"))
	assert.Contains(t, out, "V2: [0, w9] [1, w10] [3, w11] [5, w2]")
	assert.Equal(t, 2, strings.Count(out, "0 2 5 4"))
	assert.Equal(t, 2, strings.Count(out, " 20\n"))
}

func TestDemo_Check(t *testing.T) {
	out, _, _, err := execute(t, "demo", "--check")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "invariants hold"))
}

func TestDemo_FlagsAndErrors(t *testing.T) {
	out, _, _, err := execute(t, "demo", "--backend", "matrix", "--source", "3", "--target", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Adjacency list graph")
	assert.Contains(t, out, "3 2 0")

	out, _, _, err = execute(t, "demo", "--backend", " LIST ")
	require.NoError(t, err)
	assert.Contains(t, out, "Adjacency list graph")
	assert.NotContains(t, out, "Matrix-based graph")

	out, _, _, err = execute(t, "demo", "--backend", "All")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "0 2 5 4"))

	_, _, _, err = execute(t, "demo", "--backend", "csr")
	require.ErrorIs(t, err, simulation.ErrUnknownBackend)

	_, _, _, err = execute(t, "demo", "--target", "6")
	require.Error(t, err)
}

func TestSimulate_Defaults(t *testing.T) {
	out, _, logs, err := execute(t, "simulate", "--seed", "5", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "sparse (list)")
	assert.Contains(t, out, "dense (list)")
	assert.Equal(t, 2, strings.Count(out, "reachable"))
	assert.Equal(t, 2, strings.Count(out, "verified"))
	assert.Contains(t, logs, "Simulated 2 scenarios")
	assert.Contains(t, logs, "simulation finished")
}

func TestSimulate_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
seed: 11
scenarios:
  - name: tiny
    vertices: 6
    density: 1
    min_weight: 4
    max_weight: 4
`), 0o600))

	out, _, _, err := execute(t, "simulate", "--config", path, "--backend", "matrix")
	require.NoError(t, err)
	assert.Contains(t, out, "tiny (matrix)")
	assert.Contains(t, out, "4.0000")
	assert.Contains(t, out, "15")
}

func TestSimulate_Errors(t *testing.T) {
	_, _, _, err := execute(t, "simulate", "--backend", "csr")
	require.ErrorIs(t, err, simulation.ErrUnknownBackend)

	_, _, _, err = execute(t, "simulate", "--config", "nope.ini")
	require.Error(t, err)
}

func TestDot(t *testing.T) {
	out, _, _, err := execute(t, "dot", "--vertices", "6", "--density", "1", "--seed", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph spgraph"), out)
	assert.Contains(t, out, "steelblue2", "complete graph always has a 0→5 route")
}

func TestDot_NoRouteAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.dot")
	out, stderr, _, err := execute(t, "dot", "-n", "4", "-d", "0", "-b", "matrix", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, stderr, "no path from 0 to 3")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph spgraph")
	assert.NotContains(t, string(data), "steelblue2")
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l.Debug("hidden")
	assert.Empty(t, buf.String())
	newProgress(l).done("finished")
	assert.Contains(t, buf.String(), "finished (")
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("before")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("after")
	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}
