// SPDX-License-Identifier: MIT

// Package coherency implements the 2×2 Hermitian coherency matrix
//
//	[[Ixx, Ixy],
//	 [Iyx, Iyy]]
//
// whose diagonal holds the intensities along X and Y and whose off-diagonal
// phase is the relative phase of Y with respect to X. With that convention
// Ixy = ⟨conj(Ex)·Ey⟩ and the embedded ellipse is
//
//	E0x = √Ixx,  E0y = √Iyy,  phase = arg(Ixy).
//
// Precondition, not checked by New: the matrix is Hermitian
// (Iyx = conj(Ixy), real non-negative diagonal). IsHermitian is available
// for callers that accept untrusted input.
package coherency

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/matrix"
)

// Matrix is a coherency matrix with its derived ellipse.
type Matrix struct {
	ellipse.Ellipse
	m matrix.C2
}

var _ ellipse.Polarization = Matrix{}

// New builds a coherency matrix from its four entries.
func New(ixx, ixy, iyx, iyy complex128) Matrix {
	return FromC2(matrix.C2{{ixx, ixy}, {iyx, iyy}})
}

// FromC2 builds a coherency matrix from a 2×2 value.
func FromC2(m matrix.C2) Matrix {
	return Matrix{
		Ellipse: ellipse.New(
			math.Sqrt(math.Max(0, real(m[0][0]))),
			math.Sqrt(math.Max(0, real(m[1][1]))),
			cmplx.Phase(m[0][1]),
		),
		m: m,
	}
}

// Ixx returns the X intensity entry.
func (c Matrix) Ixx() complex128 { return c.m[0][0] }

// Ixy returns the upper off-diagonal entry.
func (c Matrix) Ixy() complex128 { return c.m[0][1] }

// Iyx returns the lower off-diagonal entry.
func (c Matrix) Iyx() complex128 { return c.m[1][0] }

// Iyy returns the Y intensity entry.
func (c Matrix) Iyy() complex128 { return c.m[1][1] }

// Entries returns (Ixx, Ixy, Iyx, Iyy).
func (c Matrix) Entries() [4]complex128 {
	return [4]complex128{c.m[0][0], c.m[0][1], c.m[1][0], c.m[1][1]}
}

// C2 returns the entries as a 2×2 value.
func (c Matrix) C2() matrix.C2 { return c.m }

// Add is incoherent superposition: the element-wise sum.
func (c Matrix) Add(other Matrix) Matrix {
	return FromC2(c.m.Add(other.m))
}

// Trace returns Ixx + Iyy, the total intensity.
func (c Matrix) Trace() float64 {
	return real(c.m.Trace())
}

// Determinant returns Ixx·Iyy − Ixy·Iyx; zero for fully polarized light.
func (c Matrix) Determinant() float64 {
	return real(c.m.Det())
}

// DegreeOfPolarization returns √(1 − 4·det/tr²), or 0 for a zero trace.
func (c Matrix) DegreeOfPolarization() float64 {
	tr := c.Trace()
	if tr == 0 {
		return 0
	}
	p := 1 - 4*c.Determinant()/(tr*tr)

	return math.Sqrt(math.Max(0, math.Min(1, p)))
}

// IsHermitian reports Iyx ≈ conj(Ixy) and a real diagonal within eps.
func (c Matrix) IsHermitian(opts ...matrix.Option) bool {
	return c.m.AllClose(c.m.Adjoint(), opts...)
}

// ApproxEqual compares entries within eps.
func (c Matrix) ApproxEqual(other Matrix, opts ...matrix.Option) bool {
	return c.m.AllClose(other.m, opts...)
}

// String implements fmt.Stringer.
func (c Matrix) String() string {
	return fmt.Sprintf("Coherency(Ixx=%g, Ixy=%g, Iyx=%g, Iyy=%g)", c.m[0][0], c.m[0][1], c.m[1][0], c.m[1][1])
}
