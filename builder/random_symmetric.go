// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// random_symmetric.go — RandomSymmetric(g, p): a random undirected graph
// stored as pairs of opposite directed edges.
//
// Model:
//   - Iterate ordered pairs (i,j), i asc then j asc, skipping i == j.
//   - Each pair gets one Bernoulli trial with probability p.
//   - On success, unless both i→j and j→i already exist, draw one weight and
//     add i→j and j→i with it.
//
// Because (j,i) is tried again after (i,j) failed, an unordered pair ends up
// connected with probability 1-(1-p)², not p.
//
// Contract:
//   - g != nil (else ErrNilGraph).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weights are drawn as float64 and converted to W (truncated for integer W).
//   - A draw that converts to zero adds nothing: the matrix backend cannot
//     store a zero-weight edge, so no backend gets one. On an empty graph
//     the count then equals EdgeCount()/2 on every backend.
//   - Uses only Adjacent and AddEdge, so it works on any backend.
//
// Complexity:
//   - Time: O(V²) trials, each paying the backend's Adjacent/AddEdge cost.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spgraph/core"
)

// File-local constants (stable method tag and domains).
const (
	methodRandomSymmetric = "RandomSymmetric"
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSymmetric populates g with random symmetric edges of density p and
// returns the number of undirected edges (opposite pairs) it added.
// Pairs whose weight draw converts to zero are skipped.
//
// Existing edges are kept; a pair already connected in both directions is
// never redrawn. A pair connected in one direction only is completed and its
// existing weight is overwritten.
func RandomSymmetric[L any, W core.Weight](g core.Graph[L, W], p float64, opts ...BuilderOption) (int, error) {
	// 1) Validate parameters before touching g.
	if g == nil {
		return 0, fmt.Errorf("%s: %w", methodRandomSymmetric, ErrNilGraph)
	}
	if p < probMin || p > probMax {
		return 0, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSymmetric, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return 0, fmt.Errorf("%s: rng is required: %w", methodRandomSymmetric, ErrNeedRandSource)
	}

	// 2) p == 0 never fires, p == 1 always does; neither consumes the RNG
	//    for the trial itself.
	fire := func() bool {
		switch p {
		case probMin:
			return false
		case probMax:
			return true
		default:
			return cfg.rng.Float64() < p
		}
	}

	n := g.VertexCount()
	added := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if !fire() {
				continue
			}
			if g.Adjacent(i, j) && g.Adjacent(j, i) {
				continue
			}
			w := W(cfg.weightFn(cfg.rng))
			if w == 0 {
				continue
			}
			g.AddEdge(i, j, w)
			g.AddEdge(j, i, w)
			added++
		}
	}

	return added, nil
}
