package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/dijkstra"
	"github.com/katalvlaran/spgraph/matrix"
	"github.com/katalvlaran/spgraph/render"
	"github.com/katalvlaran/spgraph/simulation"
)

type dotOptions struct {
	backend   string
	vertices  int
	density   float64
	minWeight float64
	maxWeight float64
	seed      int64
	output    string
}

func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOptions{}

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export a random graph as Graphviz DOT with its 0→V-1 route highlighted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runDot(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "b", string(simulation.BackendList), "backend: list or matrix")
	cmd.Flags().IntVarP(&opts.vertices, "vertices", "n", 12, "number of vertices")
	cmd.Flags().Float64VarP(&opts.density, "density", "d", 0.15, "edge density in [0,1]")
	cmd.Flags().Float64Var(&opts.minWeight, "min-weight", 1, "minimum edge weight")
	cmd.Flags().Float64Var(&opts.maxWeight, "max-weight", 10, "maximum edge weight")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "RNG seed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runDot(ctx context.Context, w, errW io.Writer, opts dotOptions) error {
	logger := loggerFromContext(ctx)

	sc := simulation.Scenario{
		Backend:   simulation.Backend(opts.backend),
		Vertices:  opts.vertices,
		Density:   opts.density,
		MinWeight: opts.minWeight,
		MaxWeight: opts.maxWeight,
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	b, _ := simulation.ParseBackend(opts.backend)

	var g core.Graph[int, float64]
	if b == simulation.BackendMatrix {
		g = matrix.New[int, float64](opts.vertices)
	} else {
		g = core.NewAdjacencyList[int, float64](opts.vertices)
	}
	if _, err := builder.RandomSymmetric(g, opts.density,
		builder.WithSeed(opts.seed),
		builder.WithUniformWeight(opts.minWeight, opts.maxWeight),
	); err != nil {
		return err
	}

	last := opts.vertices - 1
	r := dijkstra.New(g, dijkstra.WithLogger[float64](logger)).Route(0, last)
	if r.Reachable {
		logger.Debug("route", "vertices", r.Vertices, "cost", r.Cost)
	} else {
		printWarning(errW, "no path from 0 to %d; nothing highlighted", last)
	}

	out, err := render.DOT(g, r.Vertices)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = io.WriteString(w, out)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(w, opts.output)

	return nil
}
