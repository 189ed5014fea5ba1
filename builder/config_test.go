// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (deterministic behavior)
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Error("default rng: expected nil")
	}

	// 2. WithSeed yields reproducible streams
	a, b := newBuilderConfig(WithSeed(5)), newBuilderConfig(WithSeed(5))
	for i := 0; i < 10; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed(5): draw %d differs: %d vs %d", i, x, y)
		}
	}

	// 3. WithRand attaches the exact instance; later options win
	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithSeed(9), WithRand(r)); cfg.rng != r {
		t.Error("WithRand after WithSeed: expected the provided *rand.Rand")
	}
}

// TestWeightOptions verifies the default weight policy and overrides.
func TestWeightOptions(t *testing.T) {
	t.Parallel()

	if w := newBuilderConfig().weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weightFn: expected %g, got %g", DefaultEdgeWeight, w)
	}
	if w := newBuilderConfig(WithConstantWeight(4)).weightFn(nil); w != 4 {
		t.Errorf("WithConstantWeight(4): got %g", w)
	}
	cfg := newBuilderConfig(WithConstantWeight(4), WithUniformWeight(2, 2))
	if w := cfg.weightFn(rand.New(rand.NewSource(1))); w != 2 {
		t.Errorf("last option wins: expected 2, got %g", w)
	}
}
