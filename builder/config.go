// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// config.go — the settings RandomSymmetric reads after options are applied.
// Without options there is no RNG and every weight is DefaultEdgeWeight.

package builder

import "math/rand"

type builderConfig struct {
	// rng drives trials and weights; nil is fine only for p = 0 or p = 1.
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; a later option
// wins over an earlier one.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
