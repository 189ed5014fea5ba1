package simulation

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/dijkstra"
	"github.com/katalvlaran/spgraph/matrix"
)

const methodRun = "Run"

// Report is the outcome of one scenario.
type Report struct {
	RunID    uuid.UUID
	Scenario string
	Backend  Backend
	Vertices int
	Density  float64

	// UndirectedEdges is EdgeCount()/2: every undirected edge is stored as
	// two directed ones.
	UndirectedEdges int

	// Reachable counts the vertices in [1,V) with a path from vertex 0.
	Reachable int

	// AveragePathLength is the mean shortest-path cost from vertex 0 over
	// the reachable vertices; zero when none is reachable.
	AveragePathLength float64

	// Verified is set when the run was cross-checked with WithVerify.
	Verified bool

	Elapsed time.Duration
}

// Run generates the scenario's random graph and measures the average
// shortest-path length from vertex 0.
//
// The context is checked before every path query; a cancelled run returns
// the context error wrapped.
func Run(ctx context.Context, sc Scenario, opts ...Option) (Report, error) {
	return run(ctx, sc, newOptions(opts...))
}

// RunAll runs every scenario in order with one shared RNG and logger and
// stops at the first error, returning the reports completed so far.
func RunAll(ctx context.Context, scenarios []Scenario, opts ...Option) ([]Report, error) {
	o := newOptions(opts...)
	reports := make([]Report, 0, len(scenarios))
	for _, sc := range scenarios {
		r, err := run(ctx, sc, o)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}

	return reports, nil
}

func run(ctx context.Context, sc Scenario, o options) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, fmt.Errorf("%s(%s): %w", methodRun, sc.Name, err)
	}
	start := time.Now()
	sc.Backend, _ = ParseBackend(string(sc.Backend))
	logger := o.logger.With("scenario", sc.Name, "backend", sc.Backend)

	g := sc.newGraph()
	if _, err := builder.RandomSymmetric(g, sc.Density,
		builder.WithRand(o.rng),
		builder.WithUniformWeight(sc.MinWeight, sc.MaxWeight),
	); err != nil {
		return Report{}, fmt.Errorf("%s(%s): %w", methodRun, sc.Name, err)
	}
	undirected := g.EdgeCount() / 2
	logger.Debug("graph generated", "vertices", sc.Vertices, "density", sc.Density, "edges", undirected)

	sp := dijkstra.New(g, dijkstra.WithLogger[float64](logger))
	var (
		sum   float64
		count int
		costs = make([]float64, sc.Vertices)
	)
	for target := 1; target < sc.Vertices; target++ {
		if err := ctx.Err(); err != nil {
			return Report{}, fmt.Errorf("%s(%s): %w", methodRun, sc.Name, err)
		}
		costs[target] = sp.PathSize(0, target)
		if costs[target] != core.NoPath[float64]() {
			sum += costs[target]
			count++
		}
	}
	if o.verify {
		if err := verify(g, costs); err != nil {
			return Report{}, fmt.Errorf("%s(%s): %w", methodRun, sc.Name, err)
		}
		logger.Debug("cross-check passed")
	}

	r := Report{
		RunID:           uuid.New(),
		Scenario:        sc.Name,
		Backend:         sc.Backend,
		Vertices:        sc.Vertices,
		Density:         sc.Density,
		UndirectedEdges: undirected,
		Reachable:       count,
		Verified:        o.verify,
		Elapsed:         time.Since(start),
	}
	if count > 0 {
		r.AveragePathLength = sum / float64(count)
	}
	logger.Info("simulation finished",
		"run", r.RunID, "edges", r.UndirectedEdges, "reachable", r.Reachable,
		"avg", r.AveragePathLength, "elapsed", r.Elapsed)

	return r, nil
}

// verifyTolerance absorbs summation-order differences between the engines.
const verifyTolerance = 1e-9

// verify compares costs[t], the PathSize results from vertex 0, with the
// Floyd–Warshall table. A NoPath result matches an unreachable target or a
// zero-cost one.
func verify(g core.Graph[struct{}, float64], costs []float64) error {
	ref := matrix.AllPairs(g)
	for t := 1; t < len(costs); t++ {
		want, ok := ref.At(0, t)
		got := costs[t]
		if got == core.NoPath[float64]() {
			if ok && want != 0 {
				return fmt.Errorf("%w: 0→%d reported unreachable, reference %g", ErrVerifyMismatch, t, want)
			}
			continue
		}
		if !ok || math.Abs(got-want) > verifyTolerance*math.Max(1, want) {
			return fmt.Errorf("%w: 0→%d cost %g, reference %g (reachable=%v)", ErrVerifyMismatch, t, got, want, ok)
		}
	}

	return nil
}
