// Package core_test provides benchmarks for the AdjacencyList backend.
package core_test

import (
	"testing"

	"github.com/katalvlaran/spgraph/core"
)

// BenchmarkAddEdge_Fresh measures appending new edges from one vertex.
func BenchmarkAddEdge_Fresh(b *testing.B) {
	const n = 1024
	g := core.NewAdjacencyList[struct{}, float64](n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Wraps around after n, turning into overwrites of a full row
		g.AddEdge(i%n, (i*7)%n, float64(i%10))
	}
}

// BenchmarkNeighbors measures copying a row of moderate degree.
func BenchmarkNeighbors(b *testing.B) {
	const n = 256
	g := core.NewAdjacencyList[struct{}, int64](n)
	for y := 0; y < n; y += 4 {
		g.AddEdge(0, y, int64(y+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(0)
	}
}
