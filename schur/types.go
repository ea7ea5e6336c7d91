// Package schur: options, defaults, and the result type.
package schur

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/schurkit/matrix"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultPrecision is the relative deflation tolerance: a subdiagonal
	// entry is treated as zero once it drops below
	// precision·(|T(i,i)| + |T(i−1,i−1)|).
	DefaultPrecision = 1e-12

	// DefaultMaxIterations bounds the number of QR macro-steps allowed
	// without a deflation before Decompose reports ErrNotConverged.
	// The reference algorithm iterates unboundedly; the cap is a safety
	// net sized after LAPACK's per-eigenvalue budget.
	DefaultMaxIterations = 30
)

// Options configures the QR iteration.
//
// Fields:
//   - Precision      — non-negative relative deflation tolerance. Smaller
//     values demand cleaner subdiagonal decay before a block is frozen;
//     zero admits only exact-zero subdiagonal entries.
//   - MaxIterations  — maximum consecutive macro-steps without a
//     deflation (≥ 1). The counter resets every time the active block
//     shrinks, so the total work scales with matrix size, not the cap.
//
// Example:
//
//	opts := schur.DefaultOptions()
//	opts.Precision = 1e-10
//	dec, err := schur.Decompose(a, &opts)
type Options struct {
	Precision     float64
	MaxIterations int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Precision:     DefaultPrecision,
		MaxIterations: DefaultMaxIterations,
	}
}

// Decomposition bundles the owned outputs of a successful run:
// T is the quasi-upper-triangular Schur form, Q the accumulated
// orthogonal factor, and Q·T·Qᵀ reconstructs the input.
// Iterations counts the QR macro-steps that were executed.
type Decomposition struct {
	T          *matrix.Dense
	Q          *matrix.Dense
	Iterations int
}

// Eigenvalues reads the eigenvalue multiset off the diagonal blocks of T:
// each 1×1 block contributes its real entry, each 2×2 block the pair
// m ± i·√(−disc) (or m ± √disc when the discriminant is non-negative,
// which standardization normally rules out). Order follows the diagonal.
// Complexity: O(n).
func (d *Decomposition) Eigenvalues() []complex128 {
	n := d.T.Rows()
	out := make([]complex128, 0, n)
	for i := 0; i < n; {
		if i+1 < n {
			if sub, _ := d.T.At(i+1, i); sub != 0 {
				// 2×2 block rows/cols i..i+1.
				a, _ := d.T.At(i, i)
				b, _ := d.T.At(i, i+1)
				dd, _ := d.T.At(i+1, i+1)
				m := complex((a+dd)/2, 0)
				p := (a - dd) / 2
				disc := complex(p*p+b*sub, 0)
				out = append(out, m+cmplx.Sqrt(disc), m-cmplx.Sqrt(disc))
				i += 2

				continue
			}
		}
		v, _ := d.T.At(i, i)
		out = append(out, complex(v, 0))
		i++
	}

	return out
}

// abs is a local shorthand; the engine tests magnitudes constantly.
func abs(x float64) float64 { return math.Abs(x) }
