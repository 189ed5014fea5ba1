package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spgraph/builder"
	"github.com/katalvlaran/spgraph/core"
)

// ExampleRandomSymmetric builds the complete graph K4 with unit weights:
// density 1 fires every trial, so no RNG is needed.
func ExampleRandomSymmetric() {
	g := core.NewAdjacencyList[int, float64](4)
	added, err := builder.RandomSymmetric[int, float64](g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("undirected edges:", added)
	fmt.Println("directed edges:", g.EdgeCount())
	fmt.Println("w(2,3) =", g.EdgeValue(2, 3), "w(3,2) =", g.EdgeValue(3, 2))
	// Output:
	// undirected edges: 6
	// directed edges: 12
	// w(2,3) = 1 w(3,2) = 1
}
