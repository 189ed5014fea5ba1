// File: dijkstra.go
// Role: the relax loop and its lazy priority queue.
//
// Notes on implementation choices:
//
//   - Vertices are integers, so per-query state lives in slices, not maps.
//   - "+∞" is represented by a reached flag, which avoids a generic infinity
//     for integer weights and any overflow near it.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Heap entries are ordered by (distance, vertex) so equal-cost choices
//     are deterministic.

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/spgraph/core"
)

// ShortestPath binds the Dijkstra engine to one graph.
//
// The engine only reads the graph and keeps no state between queries: every
// query recomputes from scratch, so several engines (or goroutines) may share
// one graph as long as nobody mutates it meanwhile.
type ShortestPath[L any, W core.Weight] struct {
	g       core.Graph[L, W]
	options Options[W]
}

// New returns an engine over g. Panics with ErrNilGraph if g is nil.
//
// Complexity: O(len(opts))
func New[L any, W core.Weight](g core.Graph[L, W], opts ...Option[W]) *ShortestPath[L, W] {
	if g == nil {
		panic(ErrNilGraph)
	}
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ShortestPath[L, W]{g: g, options: cfg}
}

// Graph returns the graph the engine reads from.
func (sp *ShortestPath[L, W]) Graph() core.Graph[L, W] { return sp.g }

// Tree runs Dijkstra from source and returns the resulting shortest-path tree.
// Panics with core.ErrVertexOutOfRange if source is out of range.
//
// Complexity:
//
//   - Time:  O((V + E) log V) plus the backend's Neighbors cost
//     (O(V²) in total for the matrix backend).
//   - Space: O(V + E) for the tree and the lazy heap.
func (sp *ShortestPath[L, W]) Tree(source int) *Tree[W] {
	n := sp.g.VertexCount()
	core.CheckVertex(n, source)

	r := &runner[L, W]{
		g:       sp.g,
		options: sp.options,
		tree:    newTree[W](source, n),
		pq:      make(nodePQ[W], 0, n),
	}
	r.init()
	r.process()

	return r.tree
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[L any, W core.Weight] struct {
	g       core.Graph[L, W] // The input graph; read-only within Dijkstra.
	options Options[W]       // Configuration options.
	tree    *Tree[W]         // Distances and predecessors being built.
	pq      nodePQ[W]        // Min-heap for the lazy priority queue.
}

// init pushes (0, source) onto the heap. newTree already set
// dist[source] = 0 and every other vertex unreached.
func (r *runner[L, W]) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem[W]{id: r.tree.source, dist: 0})
}

// process is the relax loop. It repeatedly extracts the pending vertex
// with the minimum distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner[L, W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[W])

		// A better path to item.id was found after this entry was pushed.
		if item.dist > r.tree.dist[item.id] {
			continue
		}
		if r.options.HasMaxDistance && item.dist > r.options.MaxDistance {
			break
		}
		r.relax(item.id, item.dist)
	}
}

// relax examines each edge outgoing from u, finalized at distance d, and
// improves the tentative distance of its endpoints.
func (r *runner[L, W]) relax(u int, d W) {
	t := r.tree
	for _, nb := range r.g.Neighbors(u) {
		// Non-negative weights are a precondition of the algorithm.
		if nb.Weight < 0 {
			panic(fmt.Errorf("%w: edge %d→%d weight=%v", core.ErrNegativeWeight, u, nb.Vertex, nb.Weight))
		}
		if r.options.HasThreshold && nb.Weight >= r.options.EdgeThreshold {
			continue
		}

		cand := d + nb.Weight
		if r.options.HasMaxDistance && cand > r.options.MaxDistance {
			continue
		}
		v := nb.Vertex
		// Strictly better only: equal-cost alternatives keep the first predecessor.
		if t.reached[v] && cand >= t.dist[v] {
			continue
		}

		t.dist[v] = cand
		t.prev[v] = u
		t.reached[v] = true
		heap.Push(&r.pq, nodeItem[W]{id: v, dist: cand})
	}
}

// nodeItem is a pending (distance, vertex) pair.
type nodeItem[W core.Weight] struct {
	id   int // vertex
	dist W   // tentative distance from source
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
type nodePQ[W core.Weight] []nodeItem[W]

// Len returns the number of items in the heap.
func (pq nodePQ[W]) Len() int { return len(pq) }

// Less orders by distance, then by vertex id for determinism.
func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a nodeItem. Called by heap.Push.
func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(nodeItem[W])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
