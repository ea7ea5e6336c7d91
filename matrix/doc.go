// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate for schurkit:
// a row-major float64 matrix, contiguous rectangular block views, and the
// small set of kernels the Schur pipeline consumes (multiplication,
// transpose, scaling, trace/determinant on small blocks, and in-place
// Householder application on views).
//
// Design:
//   - One concrete type. Dense stores elements in a flat slice for
//     performance and cache friendliness; there is deliberately no
//     polymorphic Matrix interface — the decomposition owns its storage
//     and never needs representation switching.
//   - Block is an offset+extent window into a Dense, not a copy. All
//     bulge-chasing mutation in package schur runs through Blocks, so the
//     pipeline stays in place on a single backing slice.
//   - Fail-fast validation. Public constructors and indexers return
//     sentinel errors (errors.Is-matchable); they never panic on
//     user-triggered conditions.
//   - Determinism. Fixed loop orders everywhere; no data-dependent
//     iteration, no global state.
//
// AI-Hints:
//   - Use Dense.Block to address sub-ranges instead of slicing copies;
//     Block.ReflectLeft/ReflectRight mutate the parent storage directly.
//   - Trace/Det are defined on small square blocks only (orders 1–3) —
//     exactly what implicit-shift QR needs for its shift polynomial.
package matrix
