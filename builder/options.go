// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// options.go — functional options for the builder package.
//
// Option constructors panic on nil or out-of-domain arguments; the
// generator reports its own failures as errors. Randomness comes only from
// WithSeed or WithRand, never from the global source.

package builder

import "math/rand"

// BuilderOption adjusts the generator configuration.
type BuilderOption func(*builderConfig)

// WithRand makes the generator draw trials and weights from r.
// A nil r panics.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand over a fresh source seeded with seed; equal seeds
// give equal graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn replaces DefaultWeightFn. fn gets the generator's RNG
// (nil if none was set) and should use no other randomness. A nil fn panics.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)): weights in [lo, hi).
func WithUniformWeight(lo, hi float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
