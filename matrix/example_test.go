package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/spgraph/matrix"
)

// ExampleGraph shows the dense backend and its ascending Neighbors order.
func ExampleGraph() {
	g := matrix.New[string, float64](4)
	g.AddEdge(0, 3, 1.5)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 0) // zero means "no edge" in a matrix: ignored

	fmt.Println("edges:", g.EdgeCount())
	for _, nb := range g.Neighbors(0) {
		fmt.Printf("0→%d w=%g\n", nb.Vertex, nb.Weight)
	}

	// Output:
	// edges: 2
	// 0→1 w=2
	// 0→3 w=1.5
}
