// SPDX-License-Identifier: MIT

package converters

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlight/coherency"
	"github.com/katalvlaran/lvlight/jones"
	"github.com/katalvlaran/lvlight/stokes"
)

// JonesToStokes returns the Stokes vector of a Jones vector:
//
//	I = |Ex|² + |Ey|²,  M = |Ex|² − |Ey|²,
//	C = 2·Re(conj(Ex)·Ey),  S = 2·Im(conj(Ex)·Ey).
func JonesToStokes(v jones.Vector) stokes.Vector {
	ex, ey := v.Ex(), v.Ey()
	xx := real(ex)*real(ex) + imag(ex)*imag(ex)
	yy := real(ey)*real(ey) + imag(ey)*imag(ey)
	xy := cmplx.Conj(ex) * ey

	return stokes.NewVector(xx+yy, xx-yy, 2*real(xy), 2*imag(xy))
}

// StokesToJones returns a Jones vector with the same intensity split and
// relative phase as v. Ex is real and non-negative. Any unpolarized part of v
// is not representable and is folded into the amplitudes.
//
// When E0x = 0 or E0y = 0 the relative phase is undefined (C = S = 0) and
// the result has phase 0, so JonesToStokes then StokesToJones maps
// (0, i) to (0, 1).
func StokesToJones(v stokes.Vector) jones.Vector {
	ex := math.Sqrt(math.Max(0, (v.I()+v.M())/2))
	ey := math.Sqrt(math.Max(0, (v.I()-v.M())/2))

	return jones.NewVector(complex(ex, 0), cmplx.Rect(ey, math.Atan2(v.S(), v.C())))
}

// JonesToCoherency returns the outer product E†⊗E:
//
//	[[|Ex|²,         conj(Ex)·Ey],
//	 [conj(Ey)·Ex,   |Ey|²      ]]
func JonesToCoherency(v jones.Vector) coherency.Matrix {
	ex, ey := v.Ex(), v.Ey()

	return coherency.New(
		cmplx.Conj(ex)*ex,
		cmplx.Conj(ex)*ey,
		cmplx.Conj(ey)*ex,
		cmplx.Conj(ey)*ey,
	)
}

// CoherencyToStokes reads the Stokes parameters off a coherency matrix:
// I = Ixx + Iyy, M = Ixx − Iyy, C = 2·Re Ixy, S = 2·Im Ixy.
func CoherencyToStokes(c coherency.Matrix) stokes.Vector {
	ixx, iyy, ixy := real(c.Ixx()), real(c.Iyy()), c.Ixy()

	return stokes.NewVector(ixx+iyy, ixx-iyy, 2*real(ixy), 2*imag(ixy))
}

// StokesToCoherency is the inverse of CoherencyToStokes. The result is
// Hermitian by construction.
func StokesToCoherency(v stokes.Vector) coherency.Matrix {
	i, m, c, s := v.I(), v.M(), v.C(), v.S()
	ixy := complex(c/2, s/2)

	return coherency.New(complex((i+m)/2, 0), ixy, cmplx.Conj(ixy), complex((i-m)/2, 0))
}
