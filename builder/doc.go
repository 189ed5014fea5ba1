// Package builder populates core.Graph backends with random test topologies.
//
// The package offers:
//
//   - RandomSymmetric: an undirected random graph of a given density,
//     stored as pairs of opposite directed edges with equal weights.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithRand / WithSeed: explicit RNG; nothing reads a global source.
//     – WithWeightFn, WithUniformWeight, WithConstantWeight: weight policy.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform ∼U[lo,hi).
//
// Guarantees:
//
//   - Deterministic output for a fixed seed, options and starting graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation failures are returned as errors wrapping the
//     sentinels in errors.go.
//
// The matrix backend cannot store a zero weight; pair it with a WeightFn
// whose values stay positive after conversion to W.
package builder
