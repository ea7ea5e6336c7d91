// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over Dense operands — elementwise
// addition and subtraction, matrix multiplication, transpose, and scalar
// scaling. All kernels perform strict fail-fast validation and return
// clear sentinel errors on nil operands or dimension mismatches.
//
// Determinism:
//   - Fixed i→k→j order in Mul (cache-friendly over row-major storage),
//     fixed i→j order elsewhere. No data-dependent branches.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// opErrorf wraps err with an operation tag, preserving the original error
// via %w so call sites still match with errors.Is. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands
// are not mutated. Internal helper shared by Add and Sub.
func addSub(tag string, a, b *Dense, sign float64) (*Dense, error) {
	// Validate operands before any allocation.
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(tag, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	// Single flat loop over the shared backing layout.
	for i := range a.data {
		out.data[i] = a.data[i] + sign*b.data[i]
	}

	return out, nil
}

// Add returns a + b as a fresh Dense. Operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(opAdd, a, b, +1) }

// Sub returns a − b as a fresh Dense. Operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(opSub, a, b, -1) }

// Mul returns the matrix product a·b as a fresh Dense.
// Stage 1 (Validate): nil operands, a.Cols == b.Rows.
// Stage 2 (Execute): i→k→j loops with a row-cached accumulator, which
// streams both operands sequentially over row-major storage.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, opErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue // skip structural zeros; result rows stay exact
			}
			for j := 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns aᵀ as a fresh Dense. The operand is not mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opTranspose, err)
	}

	out := &Dense{r: a.c, c: a.r, data: make([]float64, len(a.data))}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Scale returns k·a as a fresh Dense. The operand is not mutated.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(a *Dense, k float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opScale, err)
	}

	out := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for i := range a.data {
		out.data[i] = k * a.data[i]
	}

	return out, nil
}
