// SPDX-License-Identifier: MIT
// Package matrix: dense square storage for the matrix backend.
//
// dense is a row-major n×n matrix of weights stored in one flat slice for
// cache friendliness. Out-of-range indices are contract violations and panic
// with core.ErrVertexOutOfRange; the row and the column are checked on their own.

package matrix

import (
	"github.com/katalvlaran/spgraph/core"
)

// dense is a row-major n×n matrix of W values.
// data holds n*n elements; the zero value of W means "no edge".
type dense[W core.Weight] struct {
	n    int // number of rows == number of columns
	data []W // flat backing storage, length == n*n
}

// newDense allocates an n×n zero matrix.
// Stage 1 (Validate): n >= 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func newDense[W core.Weight](n int) dense[W] {
	core.CheckCount(n)

	return dense[W]{n: n, data: make([]W, n*n)}
}

// indexOf computes the flat offset of (row, col).
// Complexity: O(1).
func (m *dense[W]) indexOf(row, col int) int {
	core.CheckVertex(m.n, row)
	core.CheckVertex(m.n, col)

	return row*m.n + col
}

// at returns the element at (row, col).
func (m *dense[W]) at(row, col int) W {
	return m.data[m.indexOf(row, col)]
}

// set stores v at (row, col) and returns the previous value.
func (m *dense[W]) set(row, col int, v W) (old W) {
	idx := m.indexOf(row, col)
	old, m.data[idx] = m.data[idx], v

	return old
}

// row returns the backing slice of one row. Callers must not retain it.
func (m *dense[W]) row(r int) []W {
	core.CheckVertex(m.n, r)

	return m.data[r*m.n : (r+1)*m.n]
}
