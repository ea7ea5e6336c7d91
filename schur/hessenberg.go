// Package schur: stage one — orthogonal reduction to upper Hessenberg form.
package schur

import "github.com/katalvlaran/schurkit/matrix"

// Hessenberg reduces a to upper Hessenberg form H and returns it together
// with the accumulated orthogonal factor Q, such that Q·H·Qᵀ = a.
// The input is not mutated; both outputs are freshly allocated.
//
// The reduction is a single deterministic sweep — no iteration or
// convergence concerns: for each leading column i (0 … n−3) a reflector
// built from the column segment below the subdiagonal zeroes entries
// (i+2 … n−1, i), and is applied as a similarity transform to H and
// accumulated into Q.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n³) time, O(n) scratch.
func Hessenberg(a *matrix.Dense) (h, q *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, err
	}

	h = a.Clone()
	if q, err = matrix.NewIdentity(a.Rows()); err != nil {
		return nil, nil, err
	}
	hessenbergInPlace(h, q)

	return h, q, nil
}

// hessenbergInPlace runs the reduction sweep on t, accumulating the
// reflections into the columns of q. Both matrices are n×n with n ≥ 1;
// q is expected to hold an orthogonal matrix on entry (identity for a
// fresh run). Shapes are the caller's responsibility, so the Block and
// Reflect errors below are structurally impossible and discarded.
func hessenbergInPlace(t, q *matrix.Dense) {
	n := t.Rows()
	for i := 0; i+2 < n; i++ {
		// Seed: the column segment strictly below the diagonal of column i.
		seedBlk, _ := t.Block(i+1, i, n-i-1, 1)
		seed, _ := seedBlk.Col(0)
		refl := newReflector(seed)

		// Rows i+1… across columns i…: premultiply by P.
		left, _ := t.Block(i+1, i, n-i-1, n-i)
		_ = refl.reflectLeft(left)
		// All rows across columns i+1…: postmultiply by P.
		right, _ := t.Block(0, i+1, n, n-i-1)
		_ = refl.reflectRight(right)
		// Accumulate the same column transform into q.
		acc, _ := q.Block(0, i+1, n, n-i-1)
		_ = refl.reflectRight(acc)

		// The reflector annihilated (i+2…, i) up to roundoff; pin the
		// zeros exactly so the Hessenberg structure is bit-clean.
		for r := i + 2; r < n; r++ {
			_ = t.Set(r, i, 0)
		}
	}
}
