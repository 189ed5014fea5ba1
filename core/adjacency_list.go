// File: adjacency_list.go
// Role: sparse Graph backend, one insertion-ordered []Neighbor per vertex.
// Concurrency:
//   - Mutations under mu write lock.
//   - Queries under mu read lock.

package core

import "sync"

// AdjacencyList is the sparse Graph backend.
//
// Each vertex owns an insertion-ordered slice of outgoing Neighbor records,
// holding at most one record per destination. Space is O(V + E).
// Best fit when E is well below V².
//
// An AdjacencyList must not be copied after first use.
type AdjacencyList[L any, W Weight] struct {
	mu sync.RWMutex // guards adj, labels and edges

	adj    [][]Neighbor[W] // adj[x] = outgoing edges of x, insertion order
	labels []L             // per-vertex values
	edges  int             // directed edge count
}

// NewAdjacencyList creates a graph with n vertices and no edges.
// Panics with ErrBadVertexCount if n < 0.
// Complexity: O(n)
func NewAdjacencyList[L any, W Weight](n int) *AdjacencyList[L, W] {
	CheckCount(n)

	return &AdjacencyList[L, W]{
		adj:    make([][]Neighbor[W], n),
		labels: make([]L, n),
	}
}

// VertexCount returns the fixed number of vertices.
// Complexity: O(1)
func (g *AdjacencyList[L, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(1)
func (g *AdjacencyList[L, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Adjacent reports whether x→y exists.
// Complexity: O(deg(x))
func (g *AdjacencyList[L, W]) Adjacent(x, y int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.find(x, y) >= 0
}

// Neighbors returns a copy of x's outgoing edges in insertion order.
// Complexity: O(deg(x))
func (g *AdjacencyList[L, W]) Neighbors(x int) []Neighbor[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	CheckVertex(len(g.adj), x)
	out := make([]Neighbor[W], len(g.adj[x]))
	copy(out, g.adj[x])

	return out
}

// AddEdge inserts x→y with weight w, or overwrites the weight in place if
// the edge already exists. The list is scanned first so a destination is
// never stored twice.
// Complexity: O(deg(x))
func (g *AdjacencyList[L, W]) AddEdge(x, y int, w W) {
	CheckWeight(w)

	g.mu.Lock()
	defer g.mu.Unlock()

	if i := g.find(x, y); i >= 0 {
		g.adj[x][i].Weight = w
		return
	}
	g.adj[x] = append(g.adj[x], Neighbor[W]{Vertex: y, Weight: w})
	g.edges++
}

// DeleteEdge removes x→y if present, keeping the order of the rest.
// Complexity: O(deg(x))
func (g *AdjacencyList[L, W]) DeleteEdge(x, y int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.find(x, y)
	if i < 0 {
		return
	}
	g.adj[x] = append(g.adj[x][:i], g.adj[x][i+1:]...)
	g.edges--
}

// NodeValue returns the label of x.
// Complexity: O(1)
func (g *AdjacencyList[L, W]) NodeValue(x int) L {
	g.mu.RLock()
	defer g.mu.RUnlock()

	CheckVertex(len(g.labels), x)

	return g.labels[x]
}

// SetNodeValue stores the label of x. Edges are untouched.
// Complexity: O(1)
func (g *AdjacencyList[L, W]) SetNodeValue(x int, v L) {
	g.mu.Lock()
	defer g.mu.Unlock()

	CheckVertex(len(g.labels), x)
	g.labels[x] = v
}

// EdgeValue returns the weight of x→y, or zero when the edge is absent.
// Complexity: O(deg(x))
func (g *AdjacencyList[L, W]) EdgeValue(x, y int) W {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i := g.find(x, y); i >= 0 {
		return g.adj[x][i].Weight
	}
	var zero W

	return zero
}

// SetEdgeValue overwrites the weight of x→y. A missing edge is left missing.
// Complexity: O(deg(x))
func (g *AdjacencyList[L, W]) SetEdgeValue(x, y int, w W) {
	CheckWeight(w)

	g.mu.Lock()
	defer g.mu.Unlock()

	if i := g.find(x, y); i >= 0 {
		g.adj[x][i].Weight = w
	}
}

// find returns the position of y in adj[x], or -1.
// Both indices are validated. Caller holds mu.
func (g *AdjacencyList[L, W]) find(x, y int) int {
	n := len(g.adj)
	CheckVertex(n, x)
	CheckVertex(n, y)
	for i, nb := range g.adj[x] {
		if nb.Vertex == y {
			return i
		}
	}

	return -1
}

// compile-time check
var _ Graph[string, float64] = (*AdjacencyList[string, float64])(nil)
