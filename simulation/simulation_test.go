package simulation_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/simulation"
)

func TestRun_CompleteGraph(t *testing.T) {
	for _, b := range []simulation.Backend{simulation.BackendList, simulation.BackendMatrix} {
		t.Run(string(b), func(t *testing.T) {
			sc := simulation.Scenario{Name: "k10", Backend: b, Vertices: 10, Density: 1, MinWeight: 2, MaxWeight: 2}
			r, err := simulation.Run(context.Background(), sc, simulation.WithSeed(1))
			require.NoError(t, err)
			assert.Equal(t, 45, r.UndirectedEdges)
			assert.Equal(t, 9, r.Reachable)
			assert.Equal(t, 2.0, r.AveragePathLength)
			assert.Equal(t, b, r.Backend)
			assert.Equal(t, "k10", r.Scenario)
			assert.NotEqual(t, uuid.Nil, r.RunID)
		})
	}
}

func TestRun_EmptyGraph(t *testing.T) {
	sc := simulation.Scenario{Name: "empty", Vertices: 8, Density: 0, MinWeight: 1, MaxWeight: 10}
	r, err := simulation.Run(context.Background(), sc)
	require.NoError(t, err)
	assert.Zero(t, r.UndirectedEdges)
	assert.Zero(t, r.Reachable)
	assert.Zero(t, r.AveragePathLength)
	assert.Equal(t, simulation.BackendList, r.Backend, "empty backend means list")
}

func TestRun_SingleVertex(t *testing.T) {
	sc := simulation.Scenario{Name: "one", Vertices: 1, Density: 0.5, MinWeight: 1, MaxWeight: 10}
	r, err := simulation.Run(context.Background(), sc, simulation.WithSeed(3))
	require.NoError(t, err)
	assert.Zero(t, r.Reachable)
	assert.Zero(t, r.UndirectedEdges)
}

// TestRun_Reproducible checks that a seed fixes the result and that both
// backends agree on it.
func TestRun_Reproducible(t *testing.T) {
	sc := simulation.DefaultScenarios()[0]
	a, err := simulation.Run(context.Background(), sc, simulation.WithSeed(42))
	require.NoError(t, err)
	b, err := simulation.Run(context.Background(), sc, simulation.WithSeed(42))
	require.NoError(t, err)

	sc.Backend = simulation.BackendMatrix
	c, err := simulation.Run(context.Background(), sc, simulation.WithSeed(42))
	require.NoError(t, err)

	for _, r := range []simulation.Report{b, c} {
		assert.Equal(t, a.UndirectedEdges, r.UndirectedEdges)
		assert.Equal(t, a.Reachable, r.Reachable)
		assert.InDelta(t, a.AveragePathLength, r.AveragePathLength, 1e-9)
	}
	assert.NotEqual(t, a.RunID, b.RunID, "each run gets its own id")

	// Sanity for 50 vertices at density 0.2: connected, costs in weight range.
	assert.Equal(t, 49, a.Reachable)
	assert.Greater(t, a.AveragePathLength, 1.0)
	assert.Less(t, a.AveragePathLength, 10.0)
}

func TestRunAll(t *testing.T) {
	reports, err := simulation.RunAll(context.Background(), simulation.DefaultScenarios(), simulation.WithSeed(7))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "sparse", reports[0].Scenario)
	assert.Equal(t, "dense", reports[1].Scenario)
	assert.Greater(t, reports[1].UndirectedEdges, reports[0].UndirectedEdges)
}

func TestRunAll_StopsAtFirstError(t *testing.T) {
	scenarios := append(simulation.DefaultScenarios(), simulation.Scenario{Name: "bad", Vertices: 0})
	scenarios = append(scenarios, simulation.DefaultScenarios()...)
	reports, err := simulation.RunAll(context.Background(), scenarios, simulation.WithSeed(7))
	require.ErrorIs(t, err, simulation.ErrTooFewVertices)
	require.Len(t, reports, 2)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		sc   simulation.Scenario
		want error
	}{
		{"no vertices", simulation.Scenario{Vertices: 0, MaxWeight: 1}, simulation.ErrTooFewVertices},
		{"negative min", simulation.Scenario{Vertices: 5, MinWeight: -1, MaxWeight: 1}, simulation.ErrBadWeightRange},
		{"inverted range", simulation.Scenario{Vertices: 5, MinWeight: 3, MaxWeight: 2}, simulation.ErrBadWeightRange},
		{"unknown backend", simulation.Scenario{Backend: "csr", Vertices: 5, MaxWeight: 1}, simulation.ErrUnknownBackend},
		{"density", simulation.Scenario{Vertices: 5, Density: 1.2, MaxWeight: 1}, builder.ErrInvalidProbability},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := simulation.Run(context.Background(), tc.sc, simulation.WithSeed(1))
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := simulation.Run(ctx, simulation.DefaultScenarios()[0], simulation.WithSeed(1))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	sc := simulation.Scenario{Name: "islands", Vertices: 3, Density: 0, MinWeight: 1, MaxWeight: 1}
	_, err := simulation.Run(context.Background(), sc, simulation.WithLogger(l))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "graph generated")
	assert.Contains(t, out, "simulation finished")
	assert.Contains(t, out, "scenario=islands")
	assert.Contains(t, out, "no path", "unreachable targets are reported by the engine")
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]simulation.Backend{
		"list": simulation.BackendList, " Matrix ": simulation.BackendMatrix, "": simulation.BackendList,
	} {
		got, err := simulation.ParseBackend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := simulation.ParseBackend("sparse")
	require.ErrorIs(t, err, simulation.ErrUnknownBackend)
}

func TestWithRandNil(t *testing.T) {
	assert.Panics(t, func() { simulation.WithRand(nil) })
}

func TestRun_Verify(t *testing.T) {
	for _, b := range []simulation.Backend{simulation.BackendList, simulation.BackendMatrix} {
		t.Run(string(b), func(t *testing.T) {
			sc := simulation.Scenario{Name: "checked", Backend: b, Vertices: 40, Density: 0.05, MinWeight: 1, MaxWeight: 10}
			r, err := simulation.Run(context.Background(), sc, simulation.WithSeed(8), simulation.WithVerify())
			require.NoError(t, err)
			assert.True(t, r.Verified)
		})
	}

	r, err := simulation.Run(context.Background(), simulation.DefaultScenarios()[0], simulation.WithSeed(8))
	require.NoError(t, err)
	assert.False(t, r.Verified)
}
