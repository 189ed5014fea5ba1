package core

import "fmt"

// Validate checks the structural invariants of any backend:
//
//   - the sum of len(Neighbors(x)) over all x equals EdgeCount();
//   - every reported Neighbor (y, w) satisfies Adjacent(x, y) and
//     EdgeValue(x, y) == w;
//   - no destination is reported twice for the same x.
//
// It returns an error wrapping ErrEdgeCount or ErrInconsistent.
// Complexity: O(V·deg·cost(Adjacent)), i.e. O(V²) for the matrix backend.
func Validate[L any, W Weight](g Graph[L, W]) error {
	n := g.VertexCount()
	total := 0
	seen := make(map[int]struct{})
	for x := 0; x < n; x++ {
		clear(seen)
		for _, nb := range g.Neighbors(x) {
			if _, dup := seen[nb.Vertex]; dup {
				return fmt.Errorf("%w: %d→%d reported twice", ErrInconsistent, x, nb.Vertex)
			}
			seen[nb.Vertex] = struct{}{}
			if !g.Adjacent(x, nb.Vertex) {
				return fmt.Errorf("%w: %d→%d listed but not adjacent", ErrInconsistent, x, nb.Vertex)
			}
			if got := g.EdgeValue(x, nb.Vertex); got != nb.Weight {
				return fmt.Errorf("%w: %d→%d weight %v, EdgeValue %v",
					ErrInconsistent, x, nb.Vertex, nb.Weight, got)
			}
		}
		total += len(seen)
	}
	if total != g.EdgeCount() {
		return fmt.Errorf("%w: EdgeCount()=%d, neighbors=%d", ErrEdgeCount, g.EdgeCount(), total)
	}

	return nil
}
