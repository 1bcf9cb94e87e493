// SPDX-License-Identifier: MIT

// Package matrix - R4: fixed 4×4 real matrix (Mueller storage).
//
// Complexity quicksheet:
//   - NewR4: O(16); At: O(1); Mul: O(64); MulVec: O(16); Transpose: O(16).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// R4 is a 4×4 real matrix in row-major order: R4[i][j] is row i, column j.
type R4 [4][4]float64

var _ fmt.Stringer = R4{}

func r4Errorf(method string, err error) error {
	return fmt.Errorf("R4.%s: %w", method, err)
}

// NewR4 builds an R4 from a row slice.
// Implementation:
//   - Stage 1: validate exactly 4 rows of exactly 4 columns.
//   - Stage 2: when the NaN/Inf guard is on, reject non-finite entries.
//   - Stage 3: copy into the fixed array.
//
// Errors:
//   - ErrShapeMismatch, ErrNaNInf.
func NewR4(rows [][]float64, opts ...Option) (R4, error) {
	var out R4
	if err := validateShape(rows, 4, 4); err != nil {
		return out, r4Errorf("New", err)
	}
	o := gatherOptions(opts...)
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return R4{}, r4Errorf(fmt.Sprintf("New(%d,%d)", i, j), ErrNaNInf)
			}
			out[i][j] = rows[i][j]
		}
	}

	return out, nil
}

// IdentityR4 returns the 4×4 identity.
func IdentityR4() R4 {
	var out R4
	for i := 0; i < 4; i++ {
		out[i][i] = 1
	}

	return out
}

// Rows returns 4.
func (m R4) Rows() int { return 4 }

// Cols returns 4.
func (m R4) Cols() int { return 4 }

// At retrieves the element at (i, j) or ErrOutOfRange.
func (m R4) At(i, j int) (float64, error) {
	if err := ValidateIndex(i, j, 4, 4); err != nil {
		return 0, r4Errorf("At", err)
	}

	return m[i][j], nil
}

// Mul returns the product m·b.
func (m R4) Mul(b R4) R4 {
	var out R4
	var i, j, k int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			sum := 0.0
			for k = 0; k < 4; k++ {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns m·v for a column vector v.
func (m R4) MulVec(v [4]float64) [4]float64 {
	var out [4]float64
	var i, k int
	for i = 0; i < 4; i++ {
		for k = 0; k < 4; k++ {
			out[i] += m[i][k] * v[k]
		}
	}

	return out
}

// Add returns the element-wise sum m+b.
func (m R4) Add(b R4) R4 {
	var out R4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i][j] = m[i][j] + b[i][j]
		}
	}

	return out
}

// Scale returns s·m.
func (m R4) Scale(s float64) R4 {
	var out R4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i][j] = s * m[i][j]
		}
	}

	return out
}

// Transpose returns mᵀ.
func (m R4) Transpose() R4 {
	var out R4
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// AllClose reports whether every entry of m is within eps of b.
func (m R4) AllClose(b R4, opts ...Option) bool {
	eps := Epsilon(opts...)
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			if !NearlyEqual(m[i][j], b[i][j], eps) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer.
func (m R4) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < 4; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < 4; j++ {
			fmt.Fprintf(&sb, "%g", m[i][j])
			if j < 3 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
