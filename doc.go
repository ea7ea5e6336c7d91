// Package schurkit computes the real Schur decomposition of dense square
// matrices — the numerically stable route to eigenvalue structure without
// ever forming a characteristic polynomial.
//
// 🚀 What is schurkit?
//
//	A small, focused library that factors any real square matrix A into
//	A = Q·T·Qᵀ, where:
//		• Q is orthogonal (accumulated from Householder reflections)
//		• T is quasi-upper-triangular: 1×1 diagonal blocks carry real
//		  eigenvalues, isolated 2×2 blocks carry complex-conjugate pairs
//
// ✨ Why choose schurkit?
//
//   - Textbook pipeline, production guards – Hessenberg reduction followed
//     by implicit double-shift QR with deflation, plus iteration caps and
//     exceptional shifts for stagnating inputs
//   - In-place – both stages mutate a single working copy through block
//     views; no hidden allocations in the hot path
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	matrix/ — dense row-major float64 matrices, block views, core kernels
//	schur/  — Householder reflectors, Hessenberg reduction, the QR engine
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 2}})
//	dec, err := schur.Decompose(a, nil)
//	// dec.T is quasi-triangular, dec.Q orthogonal, Q·T·Qᵀ == a
//
// Dive into schur/doc.go for the algorithm walkthrough and the numerical
// contract (orthogonality, reconstruction, deflation thresholds).
//
//	go get github.com/katalvlaran/schurkit
package schurkit
