package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/matrix"
)

func TestAllPairs_Chain(t *testing.T) {
	g := matrix.New[string, int64](4)
	g.AddEdge(0, 1, 3)
	g.AddEdge(1, 2, 4)
	g.AddEdge(0, 2, 10)
	g.AddEdge(3, 3, 1) // self-loop never shortens the diagonal

	d := matrix.AllPairs[string, int64](g)
	require.Equal(t, 4, d.VertexCount())

	tests := []struct {
		i, j int
		want int64
		ok   bool
	}{
		{0, 0, 0, true},
		{0, 1, 3, true},
		{0, 2, 7, true},
		{2, 0, 0, false},
		{0, 3, 0, false},
		{3, 3, 0, true},
	}
	for _, tc := range tests {
		got, ok := d.At(tc.i, tc.j)
		require.Equal(t, tc.ok, ok, "%d→%d reachable", tc.i, tc.j)
		if ok {
			require.Equal(t, tc.want, got, "%d→%d", tc.i, tc.j)
		}
	}
}

// TestAllPairs_ZeroWeightList: zero-weight edges on the list backend still
// count as reachable.
func TestAllPairs_ZeroWeightList(t *testing.T) {
	g := core.NewAdjacencyList[string, float64](3)
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)

	d := matrix.AllPairs[string, float64](g)
	w, ok := d.At(0, 2)
	require.True(t, ok)
	require.Zero(t, w)
	_, ok = d.At(2, 0)
	require.False(t, ok)
}

func TestAllPairs_OutOfRange(t *testing.T) {
	d := matrix.AllPairs[string, float64](matrix.New[string, float64](2))
	require.Panics(t, func() { d.At(2, 0) })
	require.Panics(t, func() { d.At(0, -1) })
}
