// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvlight/jones"
	"github.com/katalvlaran/lvlight/mueller"
	"github.com/katalvlaran/lvlight/stokes"
)

// Operand holds exactly one of the four kinds, selected by its tag.
// The zero value is KindNone and is rejected by every operation.
type Operand struct {
	kind Kind
	jv   jones.Vector
	jm   jones.Matrix
	sv   stokes.Vector
	mm   mueller.Matrix
}

// JonesVector wraps a Jones state.
func JonesVector(v jones.Vector) Operand {
	return Operand{kind: KindJonesVector, jv: v}
}

// JonesOperator wraps a Jones element.
func JonesOperator(m jones.Matrix) Operand {
	return Operand{kind: KindJonesOperator, jm: m}
}

// StokesVector wraps a Stokes state.
func StokesVector(v stokes.Vector) Operand {
	return Operand{kind: KindStokesVector, sv: v}
}

// MuellerOperator wraps a Mueller element.
func MuellerOperator(m mueller.Matrix) Operand {
	return Operand{kind: KindMuellerOperator, mm: m}
}

// Kind returns the tag.
func (o Operand) Kind() Kind { return o.kind }

// JonesVector returns the held Jones vector and whether the tag matches.
func (o Operand) JonesVector() (jones.Vector, bool) {
	return o.jv, o.kind == KindJonesVector
}

// JonesOperator returns the held Jones matrix and whether the tag matches.
func (o Operand) JonesOperator() (jones.Matrix, bool) {
	return o.jm, o.kind == KindJonesOperator
}

// StokesVector returns the held Stokes vector and whether the tag matches.
func (o Operand) StokesVector() (stokes.Vector, bool) {
	return o.sv, o.kind == KindStokesVector
}

// MuellerOperator returns the held Mueller matrix and whether the tag matches.
func (o Operand) MuellerOperator() (mueller.Matrix, bool) {
	return o.mm, o.kind == KindMuellerOperator
}

// String renders the held value.
func (o Operand) String() string {
	switch o.kind {
	case KindJonesVector:
		return o.jv.String()
	case KindJonesOperator:
		return o.jm.String()
	case KindStokesVector:
		return o.sv.String()
	case KindMuellerOperator:
		return o.mm.String()
	default:
		return fmt.Sprintf("Operand(%s)", o.kind)
	}
}
