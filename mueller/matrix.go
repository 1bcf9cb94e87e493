// SPDX-License-Identifier: MIT

package mueller

import (
	"fmt"

	"github.com/katalvlaran/lvlight/matrix"
	"github.com/katalvlaran/lvlight/stokes"
)

// ErrShapeMismatch is returned by NewMatrix for input that is not exactly 4×4.
// Same sentinel as matrix.ErrShapeMismatch.
var ErrShapeMismatch = matrix.ErrShapeMismatch

// Matrix is a Mueller matrix. The zero value blocks all light.
type Matrix struct {
	m matrix.R4
}

// NewMatrix builds a Matrix from explicit rows.
//
// Errors:
//   - ErrShapeMismatch unless rows is exactly 4×4.
//   - matrix.ErrNaNInf for non-finite entries, unless opts include
//     matrix.WithNoValidateNaNInf.
func NewMatrix(rows [][]float64, opts ...matrix.Option) (Matrix, error) {
	m, err := matrix.NewR4(rows, opts...)
	if err != nil {
		return Matrix{}, fmt.Errorf("mueller.NewMatrix: %w", err)
	}

	return Matrix{m: m}, nil
}

// FromR4 wraps an already shaped 4×4 value.
func FromR4(m matrix.R4) Matrix {
	return Matrix{m: m}
}

// R4 returns the underlying entries (a copy).
func (mm Matrix) R4() matrix.R4 { return mm.m }

// Rows returns 4.
func (mm Matrix) Rows() int { return 4 }

// Cols returns 4.
func (mm Matrix) Cols() int { return 4 }

// At returns the entry at (row, col) or matrix.ErrOutOfRange.
func (mm Matrix) At(row, col int) (float64, error) {
	return mm.m.At(row, col)
}

// Apply returns the Stokes vector leaving the element.
func (mm Matrix) Apply(v stokes.Vector) stokes.Vector {
	return stokes.FromComponents(mm.m.MulVec(v.Components()))
}

// Compose returns the element equivalent to `first` followed by mm (mm·first).
func (mm Matrix) Compose(first Matrix) Matrix {
	return Matrix{m: mm.m.Mul(first.m)}
}

// ApproxEqual compares entries within eps.
func (mm Matrix) ApproxEqual(other Matrix, opts ...matrix.Option) bool {
	return mm.m.AllClose(other.m, opts...)
}

// String implements fmt.Stringer.
func (mm Matrix) String() string {
	return mm.m.String()
}
