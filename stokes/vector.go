// SPDX-License-Identifier: MIT

package stokes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/matrix"
)

// Vector is a Stokes vector with its derived ellipse.
type Vector struct {
	ellipse.Ellipse
	s [4]float64 // I, M, C, S
}

var _ ellipse.Polarization = Vector{}

// NewVector builds a Stokes vector. Negative radicands from slightly
// unphysical input (|M| > I by rounding) are clamped to zero.
func NewVector(i, m, c, s float64) Vector {
	return Vector{
		Ellipse: ellipse.New(
			math.Sqrt(math.Max(0, (i+m)/2)),
			math.Sqrt(math.Max(0, (i-m)/2)),
			math.Atan2(s, c),
		),
		s: [4]float64{i, m, c, s},
	}
}

// FromComponents builds a Vector from (I, M, C, S).
func FromComponents(v [4]float64) Vector {
	return NewVector(v[0], v[1], v[2], v[3])
}

// I returns the total intensity.
func (v Vector) I() float64 { return v.s[0] }

// M returns the horizontal-minus-vertical component.
func (v Vector) M() float64 { return v.s[1] }

// C returns the +45°-minus-−45° component.
func (v Vector) C() float64 { return v.s[2] }

// S returns the right-minus-left circular component.
func (v Vector) S() float64 { return v.s[3] }

// Components returns (I, M, C, S).
func (v Vector) Components() [4]float64 { return v.s }

// Normalize returns v divided by I (I = 0 is treated as 1).
func (v Vector) Normalize() Vector {
	d := v.s[0]
	if d == 0 {
		d = 1
	}

	return NewVector(v.s[0]/d, v.s[1]/d, v.s[2]/d, v.s[3]/d)
}

// Add is incoherent superposition: intensities and their differences add.
func (v Vector) Add(other Vector) Vector {
	return NewVector(
		v.s[0]+other.s[0],
		v.s[1]+other.s[1],
		v.s[2]+other.s[2],
		v.s[3]+other.s[3],
	)
}

// PolarizedIntensity returns √(M²+C²+S²).
func (v Vector) PolarizedIntensity() float64 {
	return math.Sqrt(v.s[1]*v.s[1] + v.s[2]*v.s[2] + v.s[3]*v.s[3])
}

// DegreeOfPolarization returns PolarizedIntensity/I, or 0 for I = 0.
func (v Vector) DegreeOfPolarization() float64 {
	if v.s[0] == 0 {
		return 0
	}

	return v.PolarizedIntensity() / v.s[0]
}

// IsPhysical reports I ≥ 0 and I² ≥ M²+C²+S² within eps.
func (v Vector) IsPhysical(opts ...matrix.Option) bool {
	eps := matrix.Epsilon(opts...)
	p := v.PolarizedIntensity()

	return v.s[0] >= -eps && v.s[0]*v.s[0] >= p*p-eps
}

// ApproxEqual compares the four components within eps.
func (v Vector) ApproxEqual(other Vector, opts ...matrix.Option) bool {
	eps := matrix.Epsilon(opts...)
	for k := range v.s {
		if !matrix.NearlyEqual(v.s[k], other.s[k], eps) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("Stokes(I=%g, M=%g, C=%g, S=%g)", v.s[0], v.s[1], v.s[2], v.s[3])
}
