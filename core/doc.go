// Package core defines the storage-agnostic Graph contract shared by every
// spgraph backend, together with the sparse AdjacencyList implementation.
//
// A Graph G = (V, E) here is:
//
//   - a fixed set of vertices identified by the integers [0, V),
//   - a mutable set of directed, weighted edges (self-loops allowed),
//   - an optional label of type L per vertex,
//   - a weight of type W per edge, W ∈ Weight (signed integers and floats).
//
// Backends:
//
//	– core.AdjacencyList[L, W]
//	    Sparse. adj[x] is an insertion-ordered []Neighbor. Adjacent, EdgeValue,
//	    SetEdgeValue and DeleteEdge are O(deg(x)); space O(V + E).
//
//	– matrix.Graph[L, W]
//	    Dense. A V×V weight matrix where zero means "no edge". Adjacent and
//	    EdgeValue are O(1); Neighbors is O(V); space O(V²).
//
// Both satisfy Graph and must behave identically for the same edge set, with
// one documented difference: the matrix cannot store a zero-weight edge.
//
// Contract violations:
//
// Out-of-range vertex indices, negative or NaN weights and negative vertex
// counts are caller bugs, not runtime conditions. They panic with an error
// wrapping ErrVertexOutOfRange, ErrNegativeWeight, ErrInvalidWeight or
// ErrBadVertexCount so a recover() site can still use errors.Is.
//
// Thread safety:
//
// Every backend guards its storage with a sync.RWMutex, so independent
// queries may share a graph. A query running while another goroutine mutates
// the same graph observes an unspecified mix of states.
//
// Example:
//
//	g := core.NewAdjacencyList[string, float64](3)
//	g.AddEdge(0, 1, 2.5)
//	g.AddEdge(1, 2, 1)
//	fmt.Println(g.Neighbors(0)) // [{1 2.5}]
package core
