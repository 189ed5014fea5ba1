package simulation

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures Run and RunAll.
type Option func(*options)

type options struct {
	logger *log.Logger
	rng    *rand.Rand
	verify bool
}

// WithLogger sets the logger for progress messages. Nil restores the
// default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulation: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds a fresh RNG for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithVerify cross-checks every shortest-path cost against an all-pairs
// Floyd–Warshall table. This adds O(V³) work per run.
func WithVerify() Option {
	return func(o *options) {
		o.verify = true
	}
}

func newOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
