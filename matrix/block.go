// SPDX-License-Identifier: MIT
// Package matrix: Block — a contiguous rectangular view into a Dense.
//
// Purpose:
//   - Address a sub-range of a Dense by (rowOff, colOff, rows, cols) and
//     read/write it in place, without copying.
//   - Host the two reflector kernels (ReflectLeft/ReflectRight) so that
//     Householder updates run directly over the parent's flat storage.
//
// Notes:
//   - A Block never owns memory; invalidation cannot occur because Dense
//     storage is fixed for its lifetime (no resize operation exists).
//   - Indices on Block methods are relative to the view origin.

package matrix

import "fmt"

// Block is a mutable window into a parent Dense. The zero value is not
// usable; obtain Blocks via Dense.Block.
type Block struct {
	m      *Dense // parent storage
	r0, c0 int    // origin inside the parent
	nr, nc int    // extent of the view
}

// Block returns a view of the rows [r0, r0+rows) and columns [c0, c0+cols)
// of m. The view aliases m: writes through the Block mutate m directly.
// Stage 1 (Validate): non-positive extents and out-of-parent ranges are
// rejected with ErrOutOfRange.
// Complexity: O(1); no copying.
func (m *Dense) Block(r0, c0, rows, cols int) (Block, error) {
	// Validate extent positivity first, then containment.
	if rows <= 0 || cols <= 0 {
		return Block{}, fmt.Errorf("Dense.Block(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrOutOfRange)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return Block{}, fmt.Errorf("Dense.Block(%d,%d,%d,%d): %w", r0, c0, rows, cols, ErrOutOfRange)
	}

	return Block{m: m, r0: r0, c0: c0, nr: rows, nc: cols}, nil
}

// Rows returns the number of rows covered by the view. Complexity: O(1).
func (b Block) Rows() int { return b.nr }

// Cols returns the number of columns covered by the view. Complexity: O(1).
func (b Block) Cols() int { return b.nc }

// At reads the element at view-relative (row, col).
// Complexity: O(1).
func (b Block) At(row, col int) (float64, error) {
	if row < 0 || row >= b.nr || col < 0 || col >= b.nc {
		return 0, fmt.Errorf("Block.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return b.m.at(b.r0+row, b.c0+col), nil
}

// Set writes the element at view-relative (row, col) through to the parent.
// Complexity: O(1).
func (b Block) Set(row, col int, v float64) error {
	if row < 0 || row >= b.nr || col < 0 || col >= b.nc {
		return fmt.Errorf("Block.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	b.m.set(b.r0+row, b.c0+col, v)

	return nil
}

// Col returns a copy of column j of the view as a plain slice.
// The copy is intentional: callers build reflector seed vectors from it
// while the underlying storage keeps mutating.
// Complexity: O(rows).
func (b Block) Col(col int) ([]float64, error) {
	if col < 0 || col >= b.nc {
		return nil, fmt.Errorf("Block.Col(%d): %w", col, ErrOutOfRange)
	}
	out := make([]float64, b.nr)
	for i := 0; i < b.nr; i++ {
		out[i] = b.m.at(b.r0+i, b.c0+col)
	}

	return out, nil
}

// ToDense materializes the view as an independent Dense copy.
// Complexity: O(rows*cols).
func (b Block) ToDense() *Dense {
	out := &Dense{r: b.nr, c: b.nc, data: make([]float64, b.nr*b.nc)}
	for i := 0; i < b.nr; i++ {
		for j := 0; j < b.nc; j++ {
			out.data[i*b.nc+j] = b.m.at(b.r0+i, b.c0+j)
		}
	}

	return out
}

// Trace returns the sum of the diagonal of a square view.
// Returns ErrNonSquare for rectangular views.
// Complexity: O(n).
func (b Block) Trace() (float64, error) {
	if b.nr != b.nc {
		return 0, fmt.Errorf("Block.Trace: %w", ErrNonSquare)
	}
	sum := 0.0
	for i := 0; i < b.nr; i++ {
		sum += b.m.at(b.r0+i, b.c0+i)
	}

	return sum, nil
}

// Det returns the determinant of a square view of order 1, 2 or 3 via the
// closed-form expansions. The Schur pipeline only ever takes determinants
// of its 2×2 shift corner, so larger orders return ErrNotImplemented
// rather than dragging in an LU factorization nothing exercises.
// Complexity: O(1).
func (b Block) Det() (float64, error) {
	if b.nr != b.nc {
		return 0, fmt.Errorf("Block.Det: %w", ErrNonSquare)
	}
	at := func(i, j int) float64 { return b.m.at(b.r0+i, b.c0+j) }
	switch b.nr {
	case 1:
		return at(0, 0), nil
	case 2:
		return at(0, 0)*at(1, 1) - at(0, 1)*at(1, 0), nil
	case 3:
		// Sarrus expansion, fixed term order for determinism.
		return at(0, 0)*(at(1, 1)*at(2, 2)-at(1, 2)*at(2, 1)) -
			at(0, 1)*(at(1, 0)*at(2, 2)-at(1, 2)*at(2, 0)) +
			at(0, 2)*(at(1, 0)*at(2, 1)-at(1, 1)*at(2, 0)), nil
	default:
		return 0, fmt.Errorf("Block.Det(order %d): %w", b.nr, ErrNotImplemented)
	}
}

// ReflectLeft premultiplies the view in place by the Householder transform
// P = I − 2·u·uᵀ, i.e. B ← P·B. u must be a unit vector (or the zero
// vector, in which case P degenerates to the identity and the call is an
// exact no-op) of length Rows().
//
// Implementation:
//   - Stage 1: validate len(u) == Rows() (ErrDimensionMismatch).
//   - Stage 2: per column j, accumulate s = uᵀ·B[:,j], then subtract
//     2·s·u from the column. Two passes, no allocation.
//
// Complexity: O(rows*cols) time, O(1) extra space.
func (b Block) ReflectLeft(u []float64) error {
	if len(u) != b.nr {
		return fmt.Errorf("Block.ReflectLeft(len %d, rows %d): %w", len(u), b.nr, ErrDimensionMismatch)
	}
	for j := 0; j < b.nc; j++ {
		// s = uᵀ · B[:, j]
		s := 0.0
		for i := 0; i < b.nr; i++ {
			s += u[i] * b.m.at(b.r0+i, b.c0+j)
		}
		// B[:, j] -= 2·s·u
		s *= 2.0
		for i := 0; i < b.nr; i++ {
			b.m.set(b.r0+i, b.c0+j, b.m.at(b.r0+i, b.c0+j)-s*u[i])
		}
	}

	return nil
}

// ReflectRight postmultiplies the view in place by the Householder transform
// P = I − 2·u·uᵀ, i.e. B ← B·P. u must be a unit vector (or zero) of
// length Cols(). Symmetric counterpart of ReflectLeft, row-wise.
// Complexity: O(rows*cols) time, O(1) extra space.
func (b Block) ReflectRight(u []float64) error {
	if len(u) != b.nc {
		return fmt.Errorf("Block.ReflectRight(len %d, cols %d): %w", len(u), b.nc, ErrDimensionMismatch)
	}
	for i := 0; i < b.nr; i++ {
		// s = B[i, :] · u
		s := 0.0
		for j := 0; j < b.nc; j++ {
			s += b.m.at(b.r0+i, b.c0+j) * u[j]
		}
		// B[i, :] -= 2·s·uᵀ
		s *= 2.0
		for j := 0; j < b.nc; j++ {
			b.m.set(b.r0+i, b.c0+j, b.m.at(b.r0+i, b.c0+j)-s*u[j])
		}
	}

	return nil
}
