// SPDX-License-Identifier: MIT

package jones

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/matrix"
)

// Vector is a Jones vector (Ex, Ey).
//
// The embedded Ellipse is derived once at construction from
// (|Ex|, |Ey|, arg(Ey) − arg(Ex)); it is never stored independently of the
// amplitudes, because every constructor goes through NewVector.
type Vector struct {
	ellipse.Ellipse
	ex, ey complex128
}

var _ ellipse.Polarization = Vector{}

// NewVector builds a Jones vector from its complex amplitudes.
func NewVector(ex, ey complex128) Vector {
	return Vector{
		Ellipse: ellipse.New(cmplx.Abs(ex), cmplx.Abs(ey), cmplx.Phase(ey)-cmplx.Phase(ex)),
		ex:      ex,
		ey:      ey,
	}
}

// Ex returns the X amplitude.
func (v Vector) Ex() complex128 { return v.ex }

// Ey returns the Y amplitude.
func (v Vector) Ey() complex128 { return v.ey }

// Components returns (Ex, Ey) as a column vector.
func (v Vector) Components() [2]complex128 {
	return [2]complex128{v.ex, v.ey}
}

// Norm returns √(|Ex|² + |Ey|²).
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Intensity())
}

// Normalize returns v rescaled to unit intensity. A zero vector is returned
// unchanged (the divisor is taken as 1). Azimuth, ellipticity, diagonal
// angle and phase are preserved.
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n == 0 {
		n = 1
	}
	d := complex(n, 0)

	return NewVector(v.ex/d, v.ey/d)
}

// Add is coherent superposition: the field amplitudes add. Two orthogonal
// circular states of equal amplitude sum to a linear state.
func (v Vector) Add(other Vector) Vector {
	return NewVector(v.ex+other.ex, v.ey+other.ey)
}

// Scale multiplies both amplitudes by s. A unit-modulus s changes only the
// unobservable global phase.
func (v Vector) Scale(s complex128) Vector {
	return NewVector(s*v.ex, s*v.ey)
}

// InnerProduct returns ⟨v|other⟩ = conj(v.Ex)·other.Ex + conj(v.Ey)·other.Ey.
// Orthogonal polarization states have a zero inner product.
func (v Vector) InnerProduct(other Vector) complex128 {
	return cmplx.Conj(v.ex)*other.ex + cmplx.Conj(v.ey)*other.ey
}

// ApproxEqual compares the complex amplitudes within eps. Vectors that
// differ by a global phase are NOT equal here; compare their ellipses
// instead when the global phase is irrelevant.
func (v Vector) ApproxEqual(other Vector, opts ...matrix.Option) bool {
	eps := matrix.Epsilon(opts...)

	return matrix.NearlyEqualComplex(v.ex, other.ex, eps) &&
		matrix.NearlyEqualComplex(v.ey, other.ey, eps)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("Jones(Ex=%g, Ey=%g)", v.ex, v.ey)
}
