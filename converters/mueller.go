// SPDX-License-Identifier: MIT

package converters

import (
	"github.com/katalvlaran/lvlight/jones"
	"github.com/katalvlaran/lvlight/matrix"
	"github.com/katalvlaran/lvlight/mueller"
)

// pauli holds σ0..σ3 in Stokes order (I, M, C, S): with E = (Ex, Ey),
// the k-th Stokes parameter is E†·σk·E.
var pauli = [4]matrix.C2{
	{{1, 0}, {0, 1}},
	{{1, 0}, {0, -1}},
	{{0, 1}, {1, 0}},
	{{0, -1i}, {1i, 0}},
}

// MuellerFromJones returns the Mueller matrix equivalent to j:
//
//	M[k][l] = ½·Re tr(σk·J·σl·J†)
//
// The trace is real for Hermitian σ; the imaginary part is rounding noise.
func MuellerFromJones(j jones.Matrix) mueller.Matrix {
	jm := j.C2()
	adj := jm.Adjoint()

	var out matrix.R4
	for k := 0; k < 4; k++ {
		left := pauli[k].Mul(jm)
		for l := 0; l < 4; l++ {
			out[k][l] = 0.5 * real(left.Mul(pauli[l]).Mul(adj).Trace())
		}
	}

	return mueller.FromR4(out)
}
