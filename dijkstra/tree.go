package dijkstra

import "github.com/katalvlaran/spgraph/core"

// Tree is the shortest-path tree of one query.
//
// For every vertex v reachable from Source, Distance(v) is the true
// shortest-path weight and Previous(v) its predecessor on one shortest path;
// the predecessor links contain no cycles. Unreachable vertices have no
// distance and no predecessor.
type Tree[W core.Weight] struct {
	source  int
	dist    []W    // best known distance; meaningful only where reached
	prev    []int  // predecessor on the best path, or noVertex
	reached []bool // false means +∞
}

// newTree returns the Initialize state: source at 0, everything else at +∞.
func newTree[W core.Weight](source, n int) *Tree[W] {
	t := &Tree[W]{
		source:  source,
		dist:    make([]W, n),
		prev:    make([]int, n),
		reached: make([]bool, n),
	}
	for i := range t.prev {
		t.prev[i] = noVertex
	}
	t.reached[source] = true

	return t
}

// Source returns the vertex the tree was grown from.
func (t *Tree[W]) Source() int { return t.source }

// Reachable reports whether v can be reached from Source.
func (t *Tree[W]) Reachable(v int) bool {
	core.CheckVertex(len(t.reached), v)

	return t.reached[v]
}

// Distance returns the shortest distance to v and whether v is reachable.
func (t *Tree[W]) Distance(v int) (W, bool) {
	core.CheckVertex(len(t.dist), v)

	return t.dist[v], t.reached[v]
}

// Previous returns v's predecessor on its shortest path, or -1 for the
// source and for unreachable vertices.
func (t *Tree[W]) Previous(v int) int {
	core.CheckVertex(len(t.prev), v)

	return t.prev[v]
}

// PathTo walks the predecessor links back from target and returns the
// vertices from Source to target. ok is false when target is unreachable.
//
// Complexity: O(path length)
func (t *Tree[W]) PathTo(target int) (path []int, ok bool) {
	core.CheckVertex(len(t.prev), target)
	if !t.reached[target] {
		return nil, false
	}
	for v := target; v != noVertex; v = t.prev[v] {
		path = append(path, v)
	}
	// Collected target→source; flip in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
