// File: types.go
// Role: sentinel errors and functional options of the shortest-path engine.
//
// Options:
//
//	– WithLogger:        debug-log unreachable targets on a charmbracelet logger.
//	– WithMaxDistance:   vertices farther than this are treated as unreachable.
//	– WithEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if New receives a nil graph (panic: contract violation).
//	– ErrBadMaxDistance  if WithMaxDistance receives a negative value (panic).
//	– ErrBadThreshold    if WithEdgeThreshold receives a value <= 0 (panic).

package dijkstra

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/spgraph/core"
)

// Sentinel errors used as panic values by the engine and its options.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadThreshold indicates that EdgeThreshold was set to zero or a negative
	// value, which would make every edge (including zero-weight ones) impassable.
	ErrBadThreshold = errors.New("dijkstra: EdgeThreshold must be positive")
)

// noVertex marks "no predecessor" in Tree.prev.
const noVertex = -1

// Options configures the behavior of a ShortestPath engine.
//
// Logger        – optional; receives a debug line per unreachable target.
// MaxDistance   – when HasMaxDistance, vertices beyond it are not explored.
// EdgeThreshold – when HasThreshold, edges with weight >= it are skipped.
type Options[W core.Weight] struct {
	Logger         *log.Logger
	MaxDistance    W
	HasMaxDistance bool
	EdgeThreshold  W
	HasThreshold   bool
}

// Option represents a functional option for configuring the engine.
type Option[W core.Weight] func(*Options[W])

// WithLogger attaches a logger. Nil disables logging.
func WithLogger[W core.Weight](l *log.Logger) Option[W] {
	return func(o *Options[W]) {
		o.Logger = l
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed limit are reported unreachable.
// Panics with ErrBadMaxDistance if limit < 0.
func WithMaxDistance[W core.Weight](limit W) Option[W] {
	if limit < 0 {
		// Invalid configuration is a programmer error: fail early.
		panic(ErrBadMaxDistance)
	}
	return func(o *Options[W]) {
		o.MaxDistance = limit
		o.HasMaxDistance = true
	}
}

// WithEdgeThreshold defines a weight at or above which edges are
// considered non-traversable ("walls").
// Panics with ErrBadThreshold if threshold <= 0.
func WithEdgeThreshold[W core.Weight](threshold W) Option[W] {
	if threshold <= 0 {
		panic(ErrBadThreshold)
	}
	return func(o *Options[W]) {
		o.EdgeThreshold = threshold
		o.HasThreshold = true
	}
}

// DefaultOptions returns the defaults: no logger, no distance cap, every
// edge traversable.
func DefaultOptions[W core.Weight]() Options[W] {
	return Options[W]{}
}
