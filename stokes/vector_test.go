// SPDX-License-Identifier: MIT
package stokes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlight/ellipse"
	"github.com/katalvlaran/lvlight/matrix"
	"github.com/katalvlaran/lvlight/stokes"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-7

type want struct {
	azimuth, ellipticity, phase, diagonal float64
}

var referenceVectors = []struct {
	name string
	in   stokes.Vector
	want want
}{
	{"linear horizontal", stokes.NewVector(1, 1, 0, 0), want{0, 0, 0, 0}},
	{"linear vertical", stokes.NewVector(1, -1, 0, 0), want{math.Pi / 2, 0, 0, math.Pi / 2}},
	{"linear +45", stokes.NewVector(1, 0, 1, 0), want{math.Pi / 4, 0, 0, math.Pi / 4}},
	{"linear -45", stokes.NewVector(1, 0, -1, 0), want{-math.Pi / 4, 0, math.Pi, math.Pi / 4}},
	// (0.445, 0.89, π/2) as Stokes: I = 0.990125, M = −0.594075, S = 2·0.445·0.89
	{"elliptic", stokes.NewVector(0.990125, -0.594075, 0, 0.7921), want{0, 0.463647609, math.Pi / 2, math.Atan(2)}},
	{"circular right", stokes.NewVector(1, 0, 0, 1), want{math.Pi / 4, math.Pi / 4, math.Pi / 2, math.Pi / 4}},
	{"circular left", stokes.NewVector(1, 0, 0, -1), want{math.Pi / 4, -math.Pi / 4, -math.Pi / 2, math.Pi / 4}},
}

func TestVector_ReferenceStates(t *testing.T) {
	for _, tc := range referenceVectors {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want.azimuth, tc.in.Azimuth(), tol, "azimuth")
			assert.InDelta(t, tc.want.ellipticity, tc.in.EllipticityAngle(), tol, "ellipticity angle")
			assert.InDelta(t, tc.want.phase, tc.in.Phase(), tol, "phase")
			assert.InDelta(t, tc.want.diagonal, tc.in.DiagonalAngle(), tol, "diagonal angle")
			assert.True(t, tc.in.IsPhysical(matrix.WithEpsilon(1e-6)))
			assert.InDelta(t, 1, tc.in.DegreeOfPolarization(), 1e-6, "fully polarized")
		})
	}
}

func TestVector_HorizontalMatchesEllipse(t *testing.T) {
	s := stokes.NewVector(1, 1, 0, 0)
	e := ellipse.New(1, 0, 0)
	assert.Equal(t, e.Azimuth(), s.Azimuth())
	assert.Equal(t, e.Phase(), s.Phase())
	assert.Equal(t, e.EllipticityAngle(), s.EllipticityAngle())
}

func TestVector_Normalize(t *testing.T) {
	for _, tc := range referenceVectors {
		scaled := stokes.FromComponents([4]float64{
			3 * tc.in.I(), 3 * tc.in.M(), 3 * tc.in.C(), 3 * tc.in.S(),
		})
		n := scaled.Normalize()
		assert.InDelta(t, 1, n.I(), tol, tc.name)
		assert.InDelta(t, tc.in.Azimuth(), n.Azimuth(), tol, tc.name)
		assert.InDelta(t, tc.in.EllipticityAngle(), n.EllipticityAngle(), tol, tc.name)
		assert.InDelta(t, tc.in.Phase(), n.Phase(), tol, tc.name)
		assert.InDelta(t, 3*tc.in.I(), scaled.I(), tol, "input unchanged")
	}

	zero := stokes.NewVector(0, 0, 0, 0).Normalize()
	assert.Equal(t, [4]float64{}, zero.Components())
}

func TestVector_AddIsIncoherent(t *testing.T) {
	h := stokes.NewVector(1, 1, 0, 0)
	v := stokes.NewVector(1, -1, 0, 0)
	sum := h.Add(v)
	assert.Equal(t, [4]float64{2, 0, 0, 0}, sum.Components())
	assert.Equal(t, 0.0, sum.DegreeOfPolarization())

	r := stokes.NewVector(1, 0, 0, 1)
	partial := r.Add(h)
	assert.InDelta(t, math.Sqrt2/2, partial.DegreeOfPolarization(), tol)
	assert.True(t, partial.IsPhysical())
}

func TestVector_IsPhysical(t *testing.T) {
	assert.False(t, stokes.NewVector(1, 1, 1, 0).IsPhysical())
	assert.False(t, stokes.NewVector(-1, 0, 0, 0).IsPhysical())
	assert.True(t, stokes.NewVector(2, 0.5, 0.5, 0.5).IsPhysical())
	assert.Equal(t, 0.0, stokes.NewVector(0, 0, 0, 0).DegreeOfPolarization())
}

func TestVector_ApproxEqualAndString(t *testing.T) {
	a := stokes.NewVector(1, 0, 0, 1)
	assert.True(t, a.ApproxEqual(stokes.NewVector(1, 0, 0, 1+1e-12)))
	assert.False(t, a.ApproxEqual(stokes.NewVector(1, 0, 0, -1)))
	assert.Equal(t, "Stokes(I=1, M=0, C=0, S=1)", a.String())
}
