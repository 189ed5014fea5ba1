package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is used for every edge when no WithWeightFn option is given.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight. rng may be nil when the generator was
// called with p = 0 or p = 1 and no random source.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn ignores rng and returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn gives every edge the weight value. Negative values panic.
// A zero value makes RandomSymmetric add no edges.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: negative weight %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws weights from the half-open interval [lo, hi), the
// range of a uniform real distribution over (lo, hi). hi itself is never
// returned unless lo == hi, in which case every draw is lo.
//
// Integer weight types truncate the draw, so UniformWeightFn(1, 10) yields
// 1..9 for int64 graphs.
//
// It panics when lo < 0 or hi < lo. Without an RNG it returns
// DefaultEdgeWeight.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: bad interval [%g, %g)", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		switch {
		case rng == nil:
			return DefaultEdgeWeight
		case hi == lo:
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
