// Package schur: stage two — the deflating implicit double-shift QR engine.
package schur

import (
	"errors"
	"math"

	"github.com/katalvlaran/schurkit/matrix"
)

var (
	// ErrNegativePrecision indicates Options.Precision < 0.
	ErrNegativePrecision = errors.New("schur: precision must be non-negative")

	// ErrBadMaxIterations indicates Options.MaxIterations < 1.
	ErrBadMaxIterations = errors.New("schur: max iterations must be >= 1")

	// ErrNotConverged indicates the QR iteration exhausted its stagnation
	// budget without deflating the active block.
	ErrNotConverged = errors.New("schur: QR iteration failed to converge")
)

// exceptionalEvery is the stagnation period after which a macro-step uses
// the ad-hoc shift pair instead of the trailing-corner trace/determinant.
const exceptionalEvery = 10

// Decompose computes the real Schur decomposition of a: an orthogonal Q
// and quasi-upper-triangular T with a = Q·T·Qᵀ. The input matrix is
// never mutated; T and Q are owned by the returned Decomposition.
//
// opts may be nil, meaning DefaultOptions(). All validation happens
// before any work: a must be non-nil and square, Precision ≥ 0,
// MaxIterations ≥ 1. Matrices of size 0×0 cannot exist and 1×1 inputs
// pass through trivially (T = a, Q = I).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare,
// ErrNegativePrecision, ErrBadMaxIterations, ErrNotConverged.
// Complexity: O(n³) for well-behaved inputs.
func Decompose(a *matrix.Dense, opts *Options) (*Decomposition, error) {
	// Fail fast, before any allocation or mutation.
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Precision < 0 {
		return nil, ErrNegativePrecision
	}
	if o.MaxIterations < 1 {
		return nil, ErrBadMaxIterations
	}

	n := a.Rows()
	t := a.Clone()
	q, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		// Degenerate passthrough: already triangular, Q = I.
		return &Decomposition{T: t, Q: q}, nil
	}

	// Stage (a): one deterministic Hessenberg sweep.
	hessenbergInPlace(t, q)

	// Stage (b): deflating QR iteration on the leading active block.
	e := engine{t: t, q: q, n: n, cur: n - 1, eps: o.Precision, maxStagnant: o.MaxIterations}
	if err = e.iterate(); err != nil {
		return nil, err
	}

	return &Decomposition{T: t, Q: q, Iterations: e.iters}, nil
}

// engine carries the QR loop state for a single Decompose call. cur is
// the index of the last row/column of the still-active leading principal
// submatrix; rows and columns beyond cur are converged and frozen.
type engine struct {
	t, q *matrix.Dense
	n    int // full problem size
	cur  int // active block covers rows/cols 0..cur

	eps         float64 // relative deflation tolerance, read-only
	maxStagnant int     // macro-step budget between deflations

	iters    int // total macro-steps executed
	stagnant int // macro-steps since the last deflation
}

// iterate drives the active block to quasi-triangular form: deflate what
// already qualifies, then alternate macro-steps with deflation checks
// until at most one diagonal entry remains active or the stagnation
// budget runs out. A terminal 2×2 block is standardized on the way out.
func (e *engine) iterate() error {
	e.deflate()
	for e.cur >= 2 {
		if e.stagnant >= e.maxStagnant {
			return ErrNotConverged
		}
		e.step()
		e.deflate()
	}
	if e.cur == 1 {
		// The surviving top-left 2×2 block is final; split it if its
		// eigenvalues are real so only conjugate pairs keep 2×2 form.
		e.splitIfReal(0)
	}

	return nil
}

// deflatable reports whether the subdiagonal entry T(i, i−1) counts as
// numerically zero relative to its two neighboring diagonal entries.
// The comparison is ≤, not <, so an exact zero always deflates even when
// both neighbors vanish (e.g. nilpotent or triangular inputs).
func (e *engine) deflatable(i int) bool {
	sub, _ := e.t.At(i, i-1)
	di, _ := e.t.At(i, i)
	dp, _ := e.t.At(i-1, i-1)

	return abs(sub) <= e.eps*(abs(di)+abs(dp))
}

// deflate shrinks the active block while its trailing subdiagonal
// entries qualify as zero: one row for a converged real eigenvalue, two
// for a converged 2×2 block (standardized on the spot). Successive
// trailing entries may all qualify at once, hence the loop.
func (e *engine) deflate() {
	for {
		if e.cur >= 1 && e.deflatable(e.cur) {
			_ = e.t.Set(e.cur, e.cur-1, 0)
			e.cur--
			e.stagnant = 0

			continue
		}
		if e.cur >= 2 && e.deflatable(e.cur-1) {
			_ = e.t.Set(e.cur-1, e.cur-2, 0)
			e.splitIfReal(e.cur - 1)
			e.cur -= 2
			e.stagnant = 0

			continue
		}

		return
	}
}

// step runs one QR macro-step on the active block: seed the bulge from
// the shift polynomial, chase it down the subdiagonal, and close it out
// with a final 2-element reflector.
func (e *engine) step() {
	tr, det := e.shiftPair()

	// Start phase: the bulge-seeding reflector from the first column of
	// M² − tr·M + det·I over the leading 3×3 corner.
	refl := newReflector(e.seedColumn(tr, det))
	e.updateT(refl, -1, 3)
	e.updateQ(refl, -1, 3)

	// Chase phase: push the bulge one position down per step.
	step := 0
	for ; step <= e.cur-3; step++ {
		colBlk, _ := e.t.Block(step+1, step, 3, 1)
		col, _ := colBlk.Col(0)
		refl = newReflector(col)
		e.updateT(refl, step, 3)
		e.updateQ(refl, step, 3)
		// Pin the freshly annihilated below-subdiagonal entries.
		_ = e.t.Set(step+2, step, 0)
		_ = e.t.Set(step+3, step, 0)
	}

	// Finish phase: a 2-element reflector removes the last bulge entry.
	colBlk, _ := e.t.Block(step+1, step, 2, 1)
	col, _ := colBlk.Col(0)
	refl = newReflector(col)
	e.updateT(refl, step, 2)
	e.updateQ(refl, step, 2)
	_ = e.t.Set(step+2, step, 0)

	e.iters++
	e.stagnant++
}

// shiftPair returns the (trace, determinant) implicit shift pair. The
// canonical pair comes from the trailing 2×2 corner of the active block;
// every exceptionalEvery-th stagnant step substitutes the LAPACK-style
// ad-hoc pair built from subdiagonal magnitudes to break cycling.
func (e *engine) shiftPair() (tr, det float64) {
	if e.stagnant > 0 && e.stagnant%exceptionalEvery == 0 {
		s1, _ := e.t.At(e.cur, e.cur-1)
		s2, _ := e.t.At(e.cur-1, e.cur-2)
		s := abs(s1) + abs(s2)

		return 1.5 * s, s * s
	}

	corner, _ := e.t.Block(e.cur-1, e.cur-1, 2, 2)
	tr, _ = corner.Trace()
	det, _ = corner.Det()

	return tr, det
}

// seedColumn evaluates the first column of M² − tr·M + det·I for the
// leading 3×3 corner M of the active block. Errors below cannot fire:
// cur ≥ 2 guarantees the corner exists and all shapes agree.
func (e *engine) seedColumn(tr, det float64) []float64 {
	cornerBlk, _ := e.t.Block(0, 0, 3, 3)
	m := cornerBlk.ToDense()

	sq, _ := matrix.Mul(m, m)
	lin, _ := matrix.Scale(m, tr)
	id, _ := matrix.NewIdentity(3)
	cst, _ := matrix.Scale(id, det)

	poly, _ := matrix.Sub(sq, lin)
	poly, _ = matrix.Add(poly, cst)

	col := make([]float64, 3)
	for i := range col {
		col[i], _ = poly.At(i, 0)
	}

	return col
}

// updateT applies refl as a similarity transform to the Schur form at
// chase position step (−1 for the start phase) with reflector order
// length. Offsets mirror the bulge geometry: rows step+1…step+length
// across all trailing columns on the left, the active rows above the
// bulge across columns step+1…step+length on the right.
func (e *engine) updateT(refl householderReflector, step, length int) {
	ms := step
	if ms < 0 {
		ms = 0
	}
	left, _ := e.t.Block(step+1, ms, length, e.n-ms)
	_ = refl.reflectLeft(left)

	depth := step + 4
	if depth > e.cur {
		depth = e.cur
	}
	right, _ := e.t.Block(0, step+1, depth+1, length)
	_ = refl.reflectRight(right)
}

// updateQ accumulates refl into the orthogonal factor: a right
// application over all rows of columns step+1…step+length.
func (e *engine) updateQ(refl householderReflector, step, length int) {
	acc, _ := e.q.Block(0, step+1, e.n, length)
	_ = refl.reflectRight(acc)
}

// splitIfReal standardizes the finished 2×2 diagonal block at rows and
// columns i, i+1. If the block's eigenvalues are real, a 2-element
// reflector built from an eigenvector rotates it to triangular form (two
// 1×1 blocks); a complex-conjugate pair is left untouched. Mirrors what
// LAPACK's dlanv2 does for real-eigenvalue blocks.
func (e *engine) splitIfReal(i int) {
	c, _ := e.t.At(i+1, i)
	if c == 0 {
		return // already split
	}
	a, _ := e.t.At(i, i)
	b, _ := e.t.At(i, i+1)
	d, _ := e.t.At(i+1, i+1)

	p := 0.5 * (a - d)
	disc := p*p + b*c
	if disc < 0 {
		return // genuine conjugate pair: canonical 2×2 block
	}

	// Eigenvector for the root on p's side of the mean, avoiding
	// cancellation in λ − d = p ± √disc.
	s := math.Sqrt(disc)
	if p < 0 {
		s = -s
	}
	refl := newReflector([]float64{p + s, c})

	// Similarity update across the full extent plus accumulation into Q.
	left, _ := e.t.Block(i, i, 2, e.n-i)
	_ = refl.reflectLeft(left)
	right, _ := e.t.Block(0, i, i+2, 2)
	_ = refl.reflectRight(right)
	acc, _ := e.q.Block(0, i, e.n, 2)
	_ = refl.reflectRight(acc)

	_ = e.t.Set(i+1, i, 0)
}
