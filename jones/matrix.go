// SPDX-License-Identifier: MIT

package jones

import (
	"fmt"

	"github.com/katalvlaran/lvlight/matrix"
)

// Matrix is a Jones matrix: a linear optical element acting on a Vector by
// left-multiplication. The zero value is the opaque element.
type Matrix struct {
	m matrix.C2
}

// NewMatrix builds a Matrix from explicit rows.
//
// Errors:
//   - ErrShapeMismatch unless rows is exactly 2×2.
//   - matrix.ErrNaNInf for non-finite entries, unless opts include
//     matrix.WithNoValidateNaNInf.
func NewMatrix(rows [][]complex128, opts ...matrix.Option) (Matrix, error) {
	m, err := matrix.NewC2(rows, opts...)
	if err != nil {
		return Matrix{}, fmt.Errorf("jones.NewMatrix: %w", err)
	}

	return Matrix{m: m}, nil
}

// FromC2 wraps an already shaped 2×2 value.
func FromC2(m matrix.C2) Matrix {
	return Matrix{m: m}
}

// C2 returns the underlying entries (a copy).
func (j Matrix) C2() matrix.C2 { return j.m }

// Rows returns 2.
func (j Matrix) Rows() int { return 2 }

// Cols returns 2.
func (j Matrix) Cols() int { return 2 }

// At returns the entry at (row, col) or matrix.ErrOutOfRange.
func (j Matrix) At(row, col int) (complex128, error) {
	return j.m.At(row, col)
}

// Apply returns the state leaving the element when v enters it.
// The input is not modified; the result is re-derived from the raw product.
func (j Matrix) Apply(v Vector) Vector {
	out := j.m.MulVec(v.Components())

	return NewVector(out[0], out[1])
}

// Compose returns the element equivalent to `first` followed by j, i.e. the
// product j·first. Order matters: a.Compose(b) means light meets b, then a.
func (j Matrix) Compose(first Matrix) Matrix {
	return Matrix{m: j.m.Mul(first.m)}
}

// ApproxEqual compares entries within eps.
func (j Matrix) ApproxEqual(other Matrix, opts ...matrix.Option) bool {
	return j.m.AllClose(other.m, opts...)
}

// String implements fmt.Stringer.
func (j Matrix) String() string {
	return j.m.String()
}
