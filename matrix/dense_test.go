// Package matrix contains white-box tests for the dense storage.
package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgraph/core"
)

// TestDenseLayout verifies row-major addressing and set's return value.
func TestDenseLayout(t *testing.T) {
	m := newDense[int64](3)
	require.Len(t, m.data, 9)

	require.Zero(t, m.set(1, 2, 5)) // previous value of an empty cell
	require.Equal(t, int64(5), m.data[1*3+2])
	require.Equal(t, int64(5), m.set(1, 2, 8))
	require.Equal(t, int64(8), m.at(1, 2))
	require.Equal(t, []int64{0, 0, 8}, m.row(1))
}

// TestDenseEmpty checks the degenerate 0×0 matrix.
func TestDenseEmpty(t *testing.T) {
	m := newDense[float64](0)
	require.Empty(t, m.data)
	require.Panics(t, func() { m.at(0, 0) })
}

// TestDenseBounds ensures the row and column are validated independently.
func TestDenseBounds(t *testing.T) {
	m := newDense[float64](2)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "(%d,%d) should panic with an error", rc[0], rc[1])
				require.ErrorIs(t, err, core.ErrVertexOutOfRange)
			}()
			m.at(rc[0], rc[1])
		}()
	}
}
