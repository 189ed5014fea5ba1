// Package dijkstra provides Dijkstra's single-source shortest-path engine
// over any core.Graph backend (core.AdjacencyList, matrix.Graph, or your own).
//
// Overview:
//
//   - A query runs Initialize → Relax-loop → Reconstruct, always from
//     scratch: the engine keeps no state between queries and never mutates
//     the graph.
//   - It relies on a min-heap keyed by (distance, vertex) to always expand
//     the next-closest vertex; ties on distance go to the lower vertex id.
//   - Decrease-key is lazy: improved distances are pushed again and stale
//     heap entries are skipped when popped.
//
// API reference:
//
//	sp := dijkstra.New[L, W](g, opts...)
//
//	sp.Path(s, t)     []int     — s..t, or the degenerate {t} if t is unreachable.
//	sp.PathSize(s, t) W         — sum of EdgeValue along Path, core.NoPath() (-1) if that sum is 0.
//	sp.Route(s, t)    Route[W]  — Vertices, Cost and an explicit Reachable flag.
//	sp.Tree(s)        *Tree[W]  — the whole shortest-path tree from s.
//
// Path and PathSize reproduce a sentinel-based contract in which "no path",
// a zero-cost path and s == t all look the same to PathSize. Prefer Route
// when the difference matters.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with core.AdjacencyList, O(V² + E log V) with
//     matrix.Graph (each Neighbors call scans a full row).
//   - Space: O(V + E); the heap holds at most one entry per relaxation.
//
// Preconditions (panics, not errors):
//
//   - Edge weights are non-negative. The bundled backends reject negative
//     weights on insert; the engine re-checks what Neighbors reports.
//   - Vertex indices are in [0, V).
//   - The graph is not mutated while a query runs.
//
// Thread safety:
//
//   - Concurrent queries on one unchanging graph are safe; each query owns
//     its distances, predecessors and heap.
package dijkstra
