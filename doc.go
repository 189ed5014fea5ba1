// Package spgraph is a small shortest-path toolkit: one Graph contract, two
// storage backends, and Dijkstra's algorithm running unchanged on either.
//
// What is inside:
//
//	• Core contract: core.Graph over integer vertices [0, V) with labels and
//	  non-negative weights, plus core.Validate for backend authors
//	• Backends: core.AdjacencyList (sparse) and matrix.Graph (dense V×V)
//	• Shortest paths: dijkstra.New(g).Path / PathSize / Route / Tree
//	• Random graphs: builder.RandomSymmetric with seeded RNGs
//	• Experiments: simulation.Run, the Monte Carlo average path length
//	• Output: render.Text listings and render.DOT Graphviz export
//
// Layout:
//
//	core/        — Weight, Neighbor, Graph, AdjacencyList, precondition helpers
//	matrix/      — adjacency-matrix backend
//	dijkstra/    — the engine, its shortest-path Tree and Route results
//	builder/     — random symmetric graph generation and weight functions
//	simulation/  — scenarios, reports, batch runs
//	render/      — text and DOT output
//	cmd/spgraph  — the command-line front end (demo, simulate, dot)
//
// Quick example (the six-vertex reference graph, edges stored both ways):
//
//	g := core.NewAdjacencyList[string, float64](6)
//	g.AddEdge(0, 2, 9) // ...
//	sp := dijkstra.New[string, float64](g)
//	sp.Path(0, 4)     // [0 2 5 4]
//	sp.PathSize(0, 4) // 20
//
//	go install github.com/katalvlaran/spgraph/cmd/spgraph@latest
package spgraph
