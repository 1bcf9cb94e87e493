// SPDX-License-Identifier: MIT

package jones

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlight/matrix"
)

// ---------- Element defaults ----------

const (
	// DefaultRetardance is the phase delay of the slow axis (radians).
	DefaultRetardance = 0.0

	// DefaultTransparency is the amplitude transmission of the axis
	// perpendicular to the element axis. 0 with DefaultRetardance yields an
	// ideal linear polarizer.
	DefaultTransparency = 0.0
)

// ElementOption configures NewElement.
type ElementOption func(*elementParams)

type elementParams struct {
	retardance   float64
	transparency float64
}

// WithRetardance sets the phase delay δ of the perpendicular axis.
// Panics on a non-finite δ (programmer error).
func WithRetardance(delta float64) ElementOption {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		panic(panicRetardanceInvalid)
	}

	return func(p *elementParams) { p.retardance = delta }
}

// WithTransparency sets the amplitude transmission t of the perpendicular
// axis. t = 1 gives a lossless retarder; 0 < t < 1 a partial polarizer.
// Panics on a negative or non-finite t (programmer error).
func WithTransparency(t float64) ElementOption {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicTransparencyInvalid)
	}

	return func(p *elementParams) { p.transparency = t }
}

// DeviceFactor returns t·e^{iδ}: the complex transmission of the axis
// perpendicular to the element axis relative to the element axis itself.
func DeviceFactor(transparency, retardance float64) complex128 {
	return cmplx.Rect(transparency, retardance)
}

// NewElement synthesizes a Jones matrix from physical parameters.
//
// Description:
//
//	The element transmits the component along its axis (at `angle` from X)
//	unchanged and multiplies the perpendicular component by the device
//	factor d = t·e^{iδ}. In the lab frame:
//
//	  J = R(−θ) · diag(1, d) · R(θ)
//	    = [[cos²θ + d·sin²θ,   (1−d)·sinθ·cosθ],
//	       [(1−d)·sinθ·cosθ,   sin²θ + d·cos²θ]]
//
// Reference points:
//   - NewElement(0)       = [[1,0],[0,0]] horizontal linear polarizer.
//   - NewElement(π/2)     = [[0,0],[0,1]] vertical linear polarizer.
//   - WithTransparency(1) = lossless linear retarder with fast axis at θ.
func NewElement(angle float64, opts ...ElementOption) Matrix {
	p := elementParams{retardance: DefaultRetardance, transparency: DefaultTransparency}
	for _, set := range opts {
		set(&p)
	}

	d := DeviceFactor(p.transparency, p.retardance)
	c, s := math.Cos(angle), math.Sin(angle)
	cc, ss, cs := complex(c*c, 0), complex(s*s, 0), complex(s*c, 0)
	off := (1 - d) * cs

	return Matrix{m: matrix.C2{
		{cc + d*ss, off},
		{off, ss + d*cc},
	}}
}

// Identity is free space.
func Identity() Matrix {
	return Matrix{m: matrix.IdentityC2()}
}

// LinearPolarizer transmits the linear component along angle.
func LinearPolarizer(angle float64) Matrix {
	return NewElement(angle)
}

// Retarder is a lossless linear retarder with fast axis at angle and
// retardance delta.
func Retarder(angle, delta float64) Matrix {
	return NewElement(angle, WithTransparency(1), WithRetardance(delta))
}

// QuarterWavePlate is Retarder(angle, π/2).
func QuarterWavePlate(angle float64) Matrix {
	return Retarder(angle, math.Pi/2)
}

// HalfWavePlate is Retarder(angle, π).
func HalfWavePlate(angle float64) Matrix {
	return Retarder(angle, math.Pi)
}

// Rotator rotates the polarization ellipse by angle (optical activity,
// Faraday rotation).
func Rotator(angle float64) Matrix {
	c, s := complex(math.Cos(angle), 0), complex(math.Sin(angle), 0)

	return Matrix{m: matrix.C2{
		{c, -s},
		{s, c},
	}}
}
