package schur_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schurkit/matrix"
)

// maxAbsDiff returns the largest entrywise |a−b|; shapes must agree.
func maxAbsDiff(t *testing.T, a, b *matrix.Dense) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())

	max := 0.0
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			require.NoError(t, err)
			bv, err := b.At(i, j)
			require.NoError(t, err)
			if d := math.Abs(av - bv); d > max {
				max = d
			}
		}
	}

	return max
}

// orthogonalityError returns the largest entry of |QᵀQ − I|.
func orthogonalityError(t *testing.T, q *matrix.Dense) float64 {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	prod, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(q.Rows())
	require.NoError(t, err)

	return maxAbsDiff(t, prod, id)
}

// reconstruct returns Q·T·Qᵀ.
func reconstruct(t *testing.T, q, tm *matrix.Dense) *matrix.Dense {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	tq, err := matrix.Mul(tm, qt)
	require.NoError(t, err)
	out, err := matrix.Mul(q, tq)
	require.NoError(t, err)

	return out
}

// requireHessenberg asserts exact zeros strictly below the first
// subdiagonal.
func requireHessenberg(t *testing.T, h *matrix.Dense) {
	t.Helper()
	for i := 2; i < h.Rows(); i++ {
		for j := 0; j < i-1; j++ {
			v, err := h.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "entry (%d,%d) below the subdiagonal must be exactly zero", i, j)
		}
	}
}

// requireQuasiTriangular asserts Hessenberg structure plus isolated 2×2
// blocks: no two consecutive nonzero subdiagonal entries.
func requireQuasiTriangular(t *testing.T, tm *matrix.Dense) {
	t.Helper()
	requireHessenberg(t, tm)
	for i := 2; i < tm.Rows(); i++ {
		prev, err := tm.At(i-1, i-2)
		require.NoError(t, err)
		cur, err := tm.At(i, i-1)
		require.NoError(t, err)
		require.False(t, prev != 0 && cur != 0,
			"subdiagonal entries (%d,%d) and (%d,%d) must not both be nonzero", i-1, i-2, i, i-1)
	}
}

// sortedRealEigenvalues extracts, sorts, and returns the real parts of an
// eigenvalue slice, requiring every imaginary part below tol.
func sortedRealEigenvalues(t *testing.T, eig []complex128, tol float64) []float64 {
	t.Helper()
	out := make([]float64, len(eig))
	for i, e := range eig {
		require.LessOrEqual(t, math.Abs(imag(e)), tol, "eigenvalue %v must be real", e)
		out[i] = real(e)
	}
	sort.Float64s(out)

	return out
}

// rotationProduct assembles an exactly-representable orthogonal n×n
// matrix as the product of adjacent plane rotations with a 3-4-5 angle
// (cos 0.6, sin 0.8). Deterministic and reproducible by construction.
func rotationProduct(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	const c, s = 0.6, 0.8
	g, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	for i := 0; i+1 < n; i++ {
		r, rerr := matrix.NewIdentity(n)
		require.NoError(t, rerr)
		require.NoError(t, r.Set(i, i, c))
		require.NoError(t, r.Set(i+1, i+1, c))
		require.NoError(t, r.Set(i, i+1, -s))
		require.NoError(t, r.Set(i+1, i, s))
		g, err = matrix.Mul(g, r)
		require.NoError(t, err)
	}

	return g
}

// conjugate returns G·B·Gᵀ — a similarity transform that preserves B's
// eigenvalues while densifying its pattern.
func conjugate(t *testing.T, g, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	gt, err := matrix.Transpose(g)
	require.NoError(t, err)
	bg, err := matrix.Mul(b, gt)
	require.NoError(t, err)
	a, err := matrix.Mul(g, bg)
	require.NoError(t, err)

	return a
}

// similarityFixture builds A = G·D·Gᵀ for a diagonal D, so the
// eigenvalues of A are exactly the supplied diagonal.
func similarityFixture(t *testing.T, diag []float64) *matrix.Dense {
	t.Helper()
	n := len(diag)
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, v := range diag {
		require.NoError(t, d.Set(i, i, v))
	}

	return conjugate(t, rotationProduct(t, n), d)
}
