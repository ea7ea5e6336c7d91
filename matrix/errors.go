// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf at the facade —
// callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column, or block extent)
	// is outside valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Mul where a.Cols != b.Rows, or a
	// reflector vector whose length does not match the block extent.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix (or block) was required but
	// the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotImplemented marks an intentionally unsupported operation, e.g.
	// Det on blocks larger than order 3 (the pipeline never forms one).
	ErrNotImplemented = errors.New("matrix: operation not implemented")
)
