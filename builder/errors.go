// SPDX-License-Identifier: MIT
// Package: spgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w; sentinels stay unformatted.
//   • Builders never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrInvalidProbability indicates that a density value is outside the
// closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic builder was asked for
// 0 < p < 1 without an RNG (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilGraph indicates that a nil core.Graph was passed to a builder.
var ErrNilGraph = errors.New("builder: graph is nil")
