// SPDX-License-Identifier: MIT
package jones_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlight/jones"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-7

var E = math.Sqrt2 / 2

type want struct {
	azimuth, ellipticity, phase, diagonal float64
}

var referenceVectors = []struct {
	name string
	in   jones.Vector
	want want
}{
	{"linear horizontal", jones.NewVector(1, 0), want{0, 0, 0, 0}},
	{"linear vertical", jones.NewVector(0, 1), want{math.Pi / 2, 0, 0, math.Pi / 2}},
	{"linear +45", jones.NewVector(complex(E, 0), complex(E, 0)), want{math.Pi / 4, 0, 0, math.Pi / 4}},
	{"linear -45", jones.NewVector(complex(E, 0), complex(-E, 0)), want{-math.Pi / 4, 0, math.Pi, math.Pi / 4}},
	{"elliptic", jones.NewVector(0.89*0.5, 0.89i), want{0, 0.463647609, math.Pi / 2, math.Atan(2)}},
	{"circular right", jones.NewVector(complex(E, 0), complex(0, E)), want{math.Pi / 4, math.Pi / 4, math.Pi / 2, math.Pi / 4}},
	{"circular left", jones.NewVector(complex(E, 0), complex(0, -E)), want{math.Pi / 4, -math.Pi / 4, -math.Pi / 2, math.Pi / 4}},
}

func TestVector_ReferenceStates(t *testing.T) {
	for _, tc := range referenceVectors {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want.azimuth, tc.in.Azimuth(), tol, "azimuth")
			assert.InDelta(t, tc.want.ellipticity, tc.in.EllipticityAngle(), tol, "ellipticity angle")
			assert.InDelta(t, tc.want.phase, tc.in.Phase(), tol, "phase")
			assert.InDelta(t, tc.want.diagonal, tc.in.DiagonalAngle(), tol, "diagonal angle")
		})
	}
}

func TestVector_NormalizePreservesGeometry(t *testing.T) {
	inputs := []jones.Vector{
		jones.NewVector(3, 0),
		jones.NewVector(0, 2i),
		jones.NewVector(2, 2),
		jones.NewVector(0.3-0.1i, -1.2+0.4i),
		jones.NewVector(0.445, 0.89i),
	}
	for _, tc := range referenceVectors {
		inputs = append(inputs, tc.in)
	}

	for _, in := range inputs {
		n := in.Normalize()
		assert.InDelta(t, 1, n.Intensity(), tol, "intensity of %v", n)
		assert.InDelta(t, in.Azimuth(), n.Azimuth(), tol, "azimuth of %v", in)
		assert.InDelta(t, in.EllipticityAngle(), n.EllipticityAngle(), tol, "ellipticity of %v", in)
		assert.InDelta(t, in.DiagonalAngle(), n.DiagonalAngle(), tol, "diagonal of %v", in)
		assert.InDelta(t, in.Phase(), n.Phase(), tol, "phase of %v", in)
	}
}

func TestVector_NormalizeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(4242))
	for i := 0; i < 10000; i++ {
		scale := math.Pow(10, 6*r.Float64()-3)
		in := jones.NewVector(
			complex(scale*(2*r.Float64()-1), scale*(2*r.Float64()-1)),
			complex(scale*(2*r.Float64()-1), scale*(2*r.Float64()-1)),
		)
		n := in.Normalize()

		assert.InDelta(t, 1, n.Intensity(), tol)
		assert.InDelta(t, in.Azimuth(), n.Azimuth(), tol, "azimuth")
		assert.InDelta(t, in.EllipticityAngle(), n.EllipticityAngle(), tol, "ellipticity")
		assert.InDelta(t, in.DiagonalAngle(), n.DiagonalAngle(), tol, "diagonal")
		assert.InDelta(t, in.Phase(), n.Phase(), tol, "phase")
		if t.Failed() {
			t.Fatalf("sample %d: %v -> %v", i, in, n)
		}
	}
}

func TestVector_NormalizeZero(t *testing.T) {
	z := jones.NewVector(0, 0).Normalize()
	assert.Equal(t, complex128(0), z.Ex())
	assert.Equal(t, complex128(0), z.Ey())
	assert.Equal(t, 0.0, z.Intensity())
}

func TestVector_NormalizeDoesNotMutate(t *testing.T) {
	v := jones.NewVector(3, 4)
	_ = v.Normalize()
	assert.Equal(t, 25.0, v.Intensity())
}

func TestVector_AddIsCoherent(t *testing.T) {
	right := jones.NewVector(complex(E, 0), complex(0, E))
	left := jones.NewVector(complex(E, 0), complex(0, -E))

	sum := right.Add(left)
	assert.True(t, sum.ApproxEqual(jones.NewVector(complex(math.Sqrt2, 0), 0)), "got %v", sum)
	assert.InDelta(t, 0, sum.EllipticityAngle(), tol)
	assert.InDelta(t, 2, sum.Intensity(), tol)

	// orthogonal states
	assert.InDelta(t, 0, real(right.InnerProduct(left)), tol)
	assert.InDelta(t, 0, imag(right.InnerProduct(left)), tol)
}

func TestVector_ScaleKeepsEllipse(t *testing.T) {
	v := jones.NewVector(0.6, 0.8i)
	g := v.Scale(complex(math.Cos(1), math.Sin(1)))
	assert.InDelta(t, v.E0x(), g.E0x(), tol)
	assert.InDelta(t, v.E0y(), g.E0y(), tol)
	assert.InDelta(t, v.Phase(), g.Phase(), tol)
	assert.False(t, v.ApproxEqual(g), "global phase changes the raw amplitudes")
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "Jones(Ex=(1+0i), Ey=(0+0i))", jones.NewVector(1, 0).String())
}
