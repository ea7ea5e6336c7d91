// Package schur computes the real Schur decomposition A = Q·T·Qᵀ of a
// square float64 matrix: Q orthogonal, T quasi-upper-triangular with 1×1
// diagonal blocks (real eigenvalues) and isolated 2×2 diagonal blocks
// (complex-conjugate pairs).
//
// 🚀 How it works
//
//	Two-stage reduction, both stages in place on a single working copy:
//
//	 1. Hessenberg reduction — a deterministic sweep of Householder
//	    reflectors zeroes everything below the first subdiagonal, while
//	    the product of reflections accumulates into Q.
//	 2. Implicit double-shift QR — each macro-step takes the trace and
//	    determinant of the trailing 2×2 corner of the active block as an
//	    implicit shift pair, seeds a bulge with a 3-element reflector
//	    built from the first column of M² − tr·M + det·I over the leading
//	    3×3 corner, chases the bulge down with 3-element reflectors, and
//	    closes with a 2-element reflector. After every macro-step the
//	    trailing subdiagonal entries are tested against
//	    |T(i,i−1)| ≤ precision·(|T(i,i)| + |T(i−1,i−1)|); entries below
//	    the threshold are zeroed and the active block shrinks by 1 or 2
//	    until at most a single diagonal entry remains.
//
// ✨ Beyond the textbook loop
//
//   - Iteration cap: at most Options.MaxIterations macro-steps may pass
//     without a deflation before Decompose gives up with ErrNotConverged.
//   - Exceptional shifts: every tenth stagnant macro-step swaps the
//     trailing-corner shift pair for one derived from subdiagonal
//     magnitudes, dislodging the rare cycling iteration.
//   - Block standardization: a finished 2×2 block whose eigenvalues turn
//     out real is split into two 1×1 blocks, so every surviving 2×2 block
//     genuinely encodes a conjugate pair.
//
// ⚙️ Usage:
//
//	a, _ := matrix.FromRows([][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 2}})
//	dec, err := schur.Decompose(a, nil) // nil → DefaultOptions()
//	if err != nil { ... }
//	fmt.Println(dec.Eigenvalues())      // [(2+0i) (0+1i) (0-1i)] up to order
//
// Numerical contract (see the package tests):
//   - Qᵀ·Q ≈ I and Q·T·Qᵀ ≈ A to roughly n·machine-epsilon.
//   - Entries strictly below the first subdiagonal of T are exactly zero.
//
// Complexity: O(n³) per stage; O(n) scratch beyond the two n×n outputs.
package schur
