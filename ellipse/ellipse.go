// SPDX-License-Identifier: MIT

package ellipse

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlight/matrix"
)

// Ellipse is the canonical (E0x, E0y, phase) state holder.
// The zero value is the zero-intensity state.
type Ellipse struct {
	e0x   float64 // amplitude along X, >= 0
	e0y   float64 // amplitude along Y, >= 0
	phase float64 // phase of Y relative to X, radians, not wrapped
}

// New builds an Ellipse.
//
// A negative amplitude is a field component with a π phase shift, so it is
// stored as its magnitude and the sign is folded into phase: e0y < 0 adds π,
// e0x < 0 subtracts π. New(√2/2, −√2/2, 0) is therefore the −45° linear state
// with phase π.
func New(e0x, e0y, phase float64) Ellipse {
	if e0x < 0 {
		e0x = -e0x
		phase -= math.Pi
	}
	if e0y < 0 {
		e0y = -e0y
		phase += math.Pi
	}

	return Ellipse{e0x: e0x, e0y: e0y, phase: phase}
}

// Of copies the ellipse view out of any Polarization.
func Of(p Polarization) Ellipse {
	return New(p.E0x(), p.E0y(), p.Phase())
}

// E0x returns the amplitude along the X axis.
func (e Ellipse) E0x() float64 { return e.e0x }

// E0y returns the amplitude along the Y axis.
func (e Ellipse) E0y() float64 { return e.e0y }

// Phase returns the phase of Y relative to X in radians.
func (e Ellipse) Phase() float64 { return e.phase }

// Intensity returns E0x² + E0y².
func (e Ellipse) Intensity() float64 {
	return e.e0x*e.e0x + e.e0y*e.e0y
}

// DiagonalAngle returns |atan2(E0y, E0x)| in [0, π/2].
func (e Ellipse) DiagonalAngle() float64 {
	return math.Abs(math.Atan2(e.e0y, e.e0x))
}

// ComplementDiagonalAngle returns π/2 − DiagonalAngle.
func (e Ellipse) ComplementDiagonalAngle() float64 {
	return math.Pi/2 - e.DiagonalAngle()
}

// Azimuth returns the orientation of the major axis; see azimuth.
func (e Ellipse) Azimuth() float64 {
	return azimuth(e.e0x, e.e0y, e.phase)
}

// EllipticityAngle returns the signed ellipticity angle in [−π/4, π/4];
// see ellipticityAngle.
func (e Ellipse) EllipticityAngle() float64 {
	return ellipticityAngle(e.e0x, e.e0y, e.phase)
}

// Add sums the raw (E0x, E0y, phase) coordinates of two ellipses.
//
// This is NOT a physical superposition: two beams do not add by adding
// their amplitudes and phases. Use jones.Vector.Add for coherent
// superposition and stokes.Vector.Add for incoherent superposition. Add
// exists to compose reference fixtures from simpler ones.
func (e Ellipse) Add(other Ellipse) Ellipse {
	return Ellipse{
		e0x:   e.e0x + other.e0x,
		e0y:   e.e0y + other.e0y,
		phase: e.phase + other.phase,
	}
}

// ApproxEqual compares the stored coordinates within the epsilon resolved
// from opts (matrix.DefaultEpsilon by default). Phase is compared as stored,
// without wrapping.
func (e Ellipse) ApproxEqual(other Ellipse, opts ...matrix.Option) bool {
	eps := matrix.Epsilon(opts...)

	return matrix.NearlyEqual(e.e0x, other.e0x, eps) &&
		matrix.NearlyEqual(e.e0y, other.e0y, eps) &&
		matrix.NearlyEqual(e.phase, other.phase, eps)
}

// String implements fmt.Stringer.
func (e Ellipse) String() string {
	return fmt.Sprintf("E0x=%g, E0y=%g, phase=%g", e.e0x, e.e0y, e.phase)
}
