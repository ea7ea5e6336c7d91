// Package schur: the Householder reflector primitive.
package schur

import (
	"math"

	"github.com/katalvlaran/schurkit/matrix"
)

// householderReflector is the ephemeral rank-one orthogonal transform
// P = I − 2·u·uᵀ built from a seed column v so that P·v has zeros below
// its first entry. Reflectors are constructed, applied to a handful of
// blocks, and discarded; they are never persisted.
//
// The unit direction u is all it stores. A zero u encodes the identity
// transform, which keeps the pipeline well-defined when a seed column is
// already annihilated (exact-zero subdiagonal entries).
type householderReflector struct {
	u []float64
}

// newReflector builds the reflector for seed vector v (any length ≥ 1).
//
// Construction: u = v + sign(v₀)·‖v‖·e₁, normalized. Adding the norm on
// the side of v₀'s own sign avoids cancellation in the leading entry.
// Degenerate cases collapse to the identity:
//   - ‖v‖ == 0 (nothing to reflect), and
//   - v already of the form v₀·e₁ (tail is zero — reflecting would only
//     flip signs without zeroing anything new).
func newReflector(v []float64) householderReflector {
	u := make([]float64, len(v))

	// Accumulate ‖v‖² and the tail norm separately: the tail decides
	// degeneracy, the full norm scales the leading correction.
	tail := 0.0
	for i := 1; i < len(v); i++ {
		tail += v[i] * v[i]
	}
	if tail == 0 {
		return householderReflector{u: u} // identity, zero direction
	}
	norm := math.Sqrt(v[0]*v[0] + tail)

	copy(u, v)
	if v[0] >= 0 {
		u[0] += norm
	} else {
		u[0] -= norm
	}

	// Normalize u in place.
	uNorm := math.Sqrt(u[0]*u[0] + tail)
	for i := range u {
		u[i] /= uNorm
	}

	return householderReflector{u: u}
}

// reflectLeft premultiplies block by P in place (transforms rows).
// Defined only when block.Rows() matches the reflector order.
func (h householderReflector) reflectLeft(block matrix.Block) error {
	return block.ReflectLeft(h.u)
}

// reflectRight postmultiplies block by P in place (transforms columns).
// Defined only when block.Cols() matches the reflector order.
func (h householderReflector) reflectRight(block matrix.Block) error {
	return block.ReflectRight(h.u)
}
