// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tags.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Returns ErrNilMatrix or ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share dimensions.
// Returns ErrNilMatrix or ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}
