// Package matrix offers the dense, matrix-based core.Graph backend.
//
// matrix.Graph[L, W] stores a V×V weight matrix in one row-major slice.
// Zero encodes "no edge", which gives O(1) Adjacent/EdgeValue/AddEdge and an
// O(V) Neighbors scan in ascending vertex order, at O(V²) memory regardless
// of how many edges exist.
//
// Matrices are best for dense or small graphs. For sparse graphs prefer
// core.AdjacencyList.
//
// Zero-weight edges:
//
// Since zero marks an empty cell, AddEdge(x, y, 0) on a missing edge is a
// no-op and SetEdgeValue(x, y, 0) on an existing edge deletes it. This is the
// one observable difference from core.AdjacencyList, which keeps zero-weight
// edges as real edges.
package matrix
