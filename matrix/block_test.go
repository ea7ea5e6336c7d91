package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schurkit/matrix"
)

// block44 builds the 4×4 fixture 1..16 used across the view tests.
func block44(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
	require.NoError(t, err)

	return m
}

// TestBlock_Bounds rejects empty extents and views escaping the parent.
func TestBlock_Bounds(t *testing.T) {
	m := block44(t)

	_, err := m.Block(0, 0, 0, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "zero rows")
	_, err = m.Block(3, 3, 2, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "extent past the parent")
	_, err = m.Block(-1, 0, 2, 2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "negative origin")

	b, err := m.Block(1, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, 3, b.Cols())
}

// TestBlock_Aliasing confirms a Block is a window, not a copy: reads are
// offset-relative and writes land in the parent.
func TestBlock_Aliasing(t *testing.T) {
	m := block44(t)
	b, err := m.Block(1, 2, 2, 2)
	require.NoError(t, err)

	v, err := b.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "view (0,0) must be parent (1,2)")

	require.NoError(t, b.Set(1, 1, -1))
	pv, _ := m.At(2, 3)
	assert.Equal(t, -1.0, pv, "view writes must reach the parent")

	_, err = b.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "relative index past the view")
}

// TestBlock_ColAndToDense: Col copies a column, ToDense detaches the view.
func TestBlock_ColAndToDense(t *testing.T) {
	m := block44(t)
	b, err := m.Block(0, 1, 3, 2)
	require.NoError(t, err)

	col, err := b.Col(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6, 10}, col)
	_, err = b.Col(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	d := b.ToDense()
	require.NoError(t, d.Set(0, 0, 42))
	orig, _ := m.At(0, 1)
	assert.Equal(t, 2.0, orig, "ToDense must not alias the parent")
}

// TestBlock_TraceDet checks the small closed-form kernels against hand
// computation, plus the unsupported-order and non-square guards.
func TestBlock_TraceDet(t *testing.T) {
	m := block44(t)

	b2, err := m.Block(1, 1, 2, 2) // [[6,7],[10,11]]
	require.NoError(t, err)
	tr, err := b2.Trace()
	require.NoError(t, err)
	assert.Equal(t, 17.0, tr)
	det, err := b2.Det()
	require.NoError(t, err)
	assert.Equal(t, 6*11.0-7*10.0, det)

	b3, err := m.Block(0, 0, 3, 3)
	require.NoError(t, err)
	det3, err := b3.Det()
	require.NoError(t, err)
	assert.Zero(t, det3, "rows of the 1..16 fixture are linearly dependent")

	b4, err := m.Block(0, 0, 4, 4)
	require.NoError(t, err)
	_, err = b4.Det()
	assert.ErrorIs(t, err, matrix.ErrNotImplemented, "order 4 determinant is out of contract")

	rect, err := m.Block(0, 0, 2, 3)
	require.NoError(t, err)
	_, err = rect.Trace()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = rect.Det()
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestBlock_ReflectLeft applies P = I − 2·e₁·e₁ᵀ, which simply negates
// the first row of the view — easy to verify entry by entry.
func TestBlock_ReflectLeft(t *testing.T) {
	m := block44(t)
	b, err := m.Block(1, 0, 2, 4)
	require.NoError(t, err)

	require.NoError(t, b.ReflectLeft([]float64{1, 0}))
	for j, want := range []float64{-5, -6, -7, -8} {
		v, _ := m.At(1, j)
		assert.Equal(t, want, v, "row 1 must be negated")
	}
	for j, want := range []float64{9, 10, 11, 12} {
		v, _ := m.At(2, j)
		assert.Equal(t, want, v, "row 2 must be untouched")
	}

	assert.ErrorIs(t, b.ReflectLeft([]float64{1, 0, 0}), matrix.ErrDimensionMismatch)
}

// TestBlock_ReflectRight mirrors the left test on columns.
func TestBlock_ReflectRight(t *testing.T) {
	m := block44(t)
	b, err := m.Block(0, 2, 4, 2)
	require.NoError(t, err)

	require.NoError(t, b.ReflectRight([]float64{0, 1}))
	for i, want := range []float64{-4, -8, -12, -16} {
		v, _ := m.At(i, 3)
		assert.Equal(t, want, v, "column 3 must be negated")
	}
	for i, want := range []float64{3, 7, 11, 15} {
		v, _ := m.At(i, 2)
		assert.Equal(t, want, v, "column 2 must be untouched")
	}

	assert.ErrorIs(t, b.ReflectRight([]float64{1}), matrix.ErrDimensionMismatch)
}

// TestBlock_ReflectZeroVector: the zero direction encodes the identity
// transform and must leave the view bit-identical.
func TestBlock_ReflectZeroVector(t *testing.T) {
	m := block44(t)
	b, err := m.Block(0, 0, 4, 4)
	require.NoError(t, err)

	require.NoError(t, b.ReflectLeft(make([]float64, 4)))
	require.NoError(t, b.ReflectRight(make([]float64, 4)))

	want := block44(t)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, _ := m.At(i, j)
			exp, _ := want.At(i, j)
			assert.Equal(t, exp, got, "entry (%d,%d) must be unchanged", i, j)
		}
	}
}
