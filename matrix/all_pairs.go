// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) over any core.Graph,
//     used as an O(V³) reference for single-source results.
//
// Contract:
//   - Weights are non-negative (guaranteed by the bundled backends).
//   - Unreachable pairs are flagged, not encoded as +Inf, so integer W works.

package matrix

import "github.com/katalvlaran/spgraph/core"

// Distances is the all-pairs shortest-path table of one graph.
type Distances[W core.Weight] struct {
	dist    dense[W]
	reached []bool // reached[i*n+j]: j reachable from i
}

// AllPairs computes shortest-path distances between every ordered pair of
// vertices of g. The graph is read once through Neighbors.
//
// Determinism:
//   - Loop order is fixed (k → i → j); only strict improvements are written.
//
// Complexity: Time O(V³ + V·Neighbors), Space O(V²).
func AllPairs[L any, W core.Weight](g core.Graph[L, W]) *Distances[W] {
	n := g.VertexCount()
	d := &Distances[W]{
		dist:    newDense[W](n),
		reached: make([]bool, n*n),
	}

	// Initialize: diagonal 0, direct edges, everything else unreached.
	for i := 0; i < n; i++ {
		d.reached[i*n+i] = true
		for _, nb := range g.Neighbors(i) {
			if nb.Vertex == i {
				continue
			}
			idx := i*n + nb.Vertex
			if !d.reached[idx] || nb.Weight < d.dist.data[idx] {
				d.dist.data[idx] = nb.Weight
				d.reached[idx] = true
			}
		}
	}

	data, ok := d.dist.data, d.reached
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			if !ok[i*n+k] { // i cannot reach k
				continue
			}
			ik := data[i*n+k]
			baseI := i * n
			for j := 0; j < n; j++ {
				if !ok[baseK+j] {
					continue
				}
				cand := ik + data[baseK+j]
				if !ok[baseI+j] || cand < data[baseI+j] {
					data[baseI+j] = cand
					ok[baseI+j] = true
				}
			}
		}
	}

	return d
}

// VertexCount returns the order of the table.
func (d *Distances[W]) VertexCount() int { return d.dist.n }

// At returns the shortest distance from i to j and whether j is reachable.
// Panics with core.ErrVertexOutOfRange on an out-of-range index.
func (d *Distances[W]) At(i, j int) (W, bool) {
	idx := d.dist.indexOf(i, j)

	return d.dist.data[idx], d.reached[idx]
}
