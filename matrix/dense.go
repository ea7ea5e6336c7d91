// SPDX-License-Identifier: MIT
// Package matrix: Dense — the concrete row-major float64 matrix.
// Dense stores elements in a flat slice; (row, col) maps to row*cols+col.
// All public accessors bounds-check and return sentinels; kernels inside
// the package use the unchecked at/set fast paths after validation.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before touching the allocator.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Single allocation; the runtime zero-fills.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the strict constructor.
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// FromRows builds a Dense from a slice of equally sized rows.
// Stage 1 (Validate): non-empty input, rectangular shape.
// Stage 2 (Execute): copy row by row into flat storage.
// Returns ErrInvalidDimensions for empty input and ErrDimensionMismatch
// for ragged rows.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	// Reject empty outer or inner dimension.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	// Copy each row, rejecting ragged input.
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrDimensionMismatch
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for indices outside the matrix.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange for indices outside the matrix.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// at reads (row, col) without bounds checking. Kernel-internal fast path;
// callers must have validated the shape beforehand.
func (m *Dense) at(row, col int) float64 { return m.data[row*m.c+col] }

// set writes (row, col) without bounds checking. Kernel-internal fast path.
func (m *Dense) set(row, col int, v float64) { m.data[row*m.c+col] = v }

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
// Rows are rendered one per line with %g formatting.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
