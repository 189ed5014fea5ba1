package simulation

import "errors"

var (
	// ErrTooFewVertices indicates a scenario with fewer than one vertex.
	ErrTooFewVertices = errors.New("simulation: at least one vertex is required")

	// ErrBadWeightRange indicates a negative minimum weight or max < min.
	ErrBadWeightRange = errors.New("simulation: invalid weight range")

	// ErrUnknownBackend indicates a backend name other than "list" or "matrix".
	ErrUnknownBackend = errors.New("simulation: unknown backend")

	// ErrVerifyMismatch indicates a Dijkstra cost that disagrees with the
	// all-pairs reference table.
	ErrVerifyMismatch = errors.New("simulation: shortest-path cross-check failed")
)
