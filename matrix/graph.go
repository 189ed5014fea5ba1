package matrix

import (
	"sync"

	"github.com/katalvlaran/spgraph/core"
)

// Graph is the dense core.Graph backend.
//
// Description:
//
//	A V×V matrix where cell (x, y) holds the weight of edge x→y, or zero if
//	no edge exists. Because zero encodes absence, a zero-weight edge cannot
//	be stored: AddEdge(x, y, 0) on a missing edge records nothing.
//
// Time complexity:
//   - Adjacent/EdgeValue/SetEdgeValue/AddEdge/DeleteEdge: O(1)
//   - Neighbors: O(V), ascending vertex order
//
// Memory:
//   - O(V²), independent of E.
//
// A Graph must not be copied after first use.
type Graph[L any, W core.Weight] struct {
	mu sync.RWMutex // guards cells, labels and edges

	cells  dense[W] // cells.at(x, y) = weight of x→y, zero if none
	labels []L      // per-vertex values
	edges  int      // number of non-zero cells
}

// New creates an n-vertex matrix graph with every cell zero.
// Panics with core.ErrBadVertexCount if n < 0.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func New[L any, W core.Weight](n int) *Graph[L, W] {
	return &Graph[L, W]{
		cells:  newDense[W](n),
		labels: make([]L, n),
	}
}

// VertexCount returns V.
func (g *Graph[L, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells.n
}

// EdgeCount returns the number of non-zero cells.
func (g *Graph[L, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Adjacent reports whether cell (x, y) is non-zero.
//
// Time Complexity: O(1)
func (g *Graph[L, W]) Adjacent(x, y int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells.at(x, y) != 0
}

// Neighbors returns one Neighbor per non-zero cell of row x, ascending by
// destination.
//
// Time Complexity: O(V)
func (g *Graph[L, W]) Neighbors(x int) []core.Neighbor[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []core.Neighbor[W]
	for y, w := range g.cells.row(x) {
		if w != 0 {
			out = append(out, core.Neighbor[W]{Vertex: y, Weight: w})
		}
	}

	return out
}

// AddEdge stores w in cell (x, y). E grows only on a zero→non-zero
// transition, so overwriting an edge never double-counts.
//
// Time Complexity: O(1)
func (g *Graph[L, W]) AddEdge(x, y int, w W) {
	core.CheckWeight(w)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.store(x, y, w)
}

// DeleteEdge zeroes cell (x, y). E shrinks only if the cell was non-zero.
//
// Time Complexity: O(1)
func (g *Graph[L, W]) DeleteEdge(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.store(x, y, 0)
}

// NodeValue returns the label of x.
func (g *Graph[L, W]) NodeValue(x int) L {
	g.mu.RLock()
	defer g.mu.RUnlock()

	core.CheckVertex(len(g.labels), x)

	return g.labels[x]
}

// SetNodeValue stores the label of x.
func (g *Graph[L, W]) SetNodeValue(x int, v L) {
	g.mu.Lock()
	defer g.mu.Unlock()

	core.CheckVertex(len(g.labels), x)
	g.labels[x] = v
}

// EdgeValue returns cell (x, y); zero means no edge.
//
// Time Complexity: O(1)
func (g *Graph[L, W]) EdgeValue(x, y int) W {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells.at(x, y)
}

// SetEdgeValue overwrites the weight of an existing edge x→y; a missing
// edge stays missing. Writing zero removes the edge and decrements E.
//
// Time Complexity: O(1)
func (g *Graph[L, W]) SetEdgeValue(x, y int, w W) {
	core.CheckWeight(w)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cells.at(x, y) == 0 {
		return
	}
	g.store(x, y, w)
}

// store writes w into (x, y) and keeps edges equal to the non-zero cell count.
// Caller holds mu.
func (g *Graph[L, W]) store(x, y int, w W) {
	old := g.cells.set(x, y, w)
	switch {
	case old == 0 && w != 0:
		g.edges++
	case old != 0 && w == 0:
		g.edges--
	}
}

// compile-time check
var _ core.Graph[string, float64] = (*Graph[string, float64])(nil)
