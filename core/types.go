// File: types.go
// Role: declares Weight, Neighbor, Graph, the sentinel errors and the
// precondition helpers shared by every backend.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex index outside [0, V).
//	ErrNegativeWeight   - negative weight passed to AddEdge/SetEdgeValue.
//	ErrInvalidWeight    - NaN weight passed to AddEdge/SetEdgeValue.
//	ErrBadVertexCount   - negative vertex count passed to a constructor.
//	ErrEdgeCount        - Validate found an EdgeCount that disagrees with Neighbors.
//	ErrInconsistent     - Validate found Neighbors disagreeing with Adjacent/EdgeValue.

package core

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates a negative edge weight. Shortest-path
	// engines assume non-negative weights throughout.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrInvalidWeight indicates a NaN edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrBadVertexCount indicates a negative vertex count at construction.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrEdgeCount indicates that EdgeCount() disagrees with the number of
	// edges reported by Neighbors.
	ErrEdgeCount = errors.New("core: edge count mismatch")

	// ErrInconsistent indicates that Neighbors disagrees with Adjacent or EdgeValue.
	ErrInconsistent = errors.New("core: neighbors inconsistent with adjacency")
)

// Weight is the set of edge weight types: totally ordered, additive, with
// zero as identity. Signed so that NoPath can be represented.
//
// int8 and int16 are left out because path sums over a few legal weights
// already wrap around. The remaining integer types still overflow once a
// path cost exceeds their maximum. Keep V times the largest weight below
// that bound, or use int64/float64.
type Weight interface {
	~int | ~int32 | ~int64 | constraints.Float
}

// Neighbor is a reported outgoing edge: destination vertex and weight.
// It is a plain value; copies are independent.
type Neighbor[W Weight] struct {
	// Vertex is the destination index in [0, V).
	Vertex int

	// Weight is the cost of the edge.
	Weight W
}

// Graph is the capability set every storage backend implements.
//
// Vertices are the integers [0, VertexCount()); the count is fixed at
// construction. Edges are directed, self-loops are permitted.
// Passing an out-of-range index to any method is a contract violation and
// panics with an error wrapping ErrVertexOutOfRange.
//
// Invariant: Neighbors(x) reports exactly the y for which Adjacent(x, y)
// holds, each with Weight == EdgeValue(x, y).
type Graph[L any, W Weight] interface {
	// VertexCount returns V. O(1).
	VertexCount() int

	// EdgeCount returns E, the number of directed edges. O(1).
	EdgeCount() int

	// Adjacent reports whether the directed edge x→y exists.
	Adjacent(x, y int) bool

	// Neighbors returns every outgoing edge of x in backend-defined order.
	// The slice is a fresh copy owned by the caller.
	Neighbors(x int) []Neighbor[W]

	// AddEdge creates x→y with weight w, or overwrites the weight of an
	// existing x→y. E grows only when the edge is new.
	AddEdge(x, y int, w W)

	// DeleteEdge removes x→y if present; otherwise it is a no-op.
	DeleteEdge(x, y int)

	// NodeValue returns the label stored for x (zero L if never set).
	NodeValue(x int) L

	// SetNodeValue stores the label for x.
	SetNodeValue(x int, v L)

	// EdgeValue returns the weight of x→y, or zero if there is no such edge.
	// Zero is therefore ambiguous between "no edge" and "zero-weight edge".
	EdgeValue(x, y int) W

	// SetEdgeValue overwrites the weight of an existing edge x→y.
	SetEdgeValue(x, y int, w W)
}

// NoPath returns the cost reported for an unreachable target (-1).
func NoPath[W Weight]() W {
	return W(-1)
}

// CheckVertex panics unless 0 <= x < n.
// Each index of a pair must be checked on its own.
func CheckVertex(n, x int) {
	if x < 0 || x >= n {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, x, n))
	}
}

// CheckWeight panics on a negative or NaN weight.
func CheckWeight[W Weight](w W) {
	if math.IsNaN(float64(w)) {
		panic(fmt.Errorf("%w: NaN", ErrInvalidWeight))
	}
	if w < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeWeight, w))
	}
}

// CheckCount panics on a negative vertex count.
func CheckCount(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadVertexCount, n))
	}
}
