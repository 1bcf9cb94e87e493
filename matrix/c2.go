// SPDX-License-Identifier: MIT

// Package matrix - C2: fixed 2×2 complex matrix (Jones storage).
//
// Purpose:
//   - Hold the four entries of a linear operator on a 2-component complex vector.
//   - Guarantee shape at construction (NewC2) so every C2 value is well-formed.
//   - Keep algebra allocation-free: C2 is an array value, products return values.
//
// Complexity quicksheet:
//   - NewC2: O(4); At: O(1); Mul: O(8); MulVec: O(4); Adjoint/Trace/Det: O(1).

package matrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// C2 is a 2×2 complex matrix in row-major order: C2[i][j] is row i, column j.
type C2 [2][2]complex128

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = C2{}

// c2Errorf wraps an error with a uniform C2 context.
func c2Errorf(method string, err error) error {
	return fmt.Errorf("C2.%s: %w", method, err)
}

// NewC2 builds a C2 from a row slice.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and the default numeric policy.
//
// Implementation:
//   - Stage 1: validate exactly 2 rows of exactly 2 columns.
//   - Stage 2: when the NaN/Inf guard is on, reject non-finite entries.
//   - Stage 3: copy into the fixed array.
//
// Errors:
//   - ErrShapeMismatch (wrong row count, ragged or nil rows).
//   - ErrNaNInf (non-finite entry under the default policy).
//
// Complexity:
//   - Time O(4), Space O(1).
func NewC2(rows [][]complex128, opts ...Option) (C2, error) {
	var out C2
	if err := validateShape(rows, 2, 2); err != nil {
		return out, c2Errorf("New", err)
	}
	o := gatherOptions(opts...)
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			if o.validateNaNInf && isNonFiniteComplex(rows[i][j]) {
				return C2{}, c2Errorf(fmt.Sprintf("New(%d,%d)", i, j), ErrNaNInf)
			}
			out[i][j] = rows[i][j]
		}
	}

	return out, nil
}

// IdentityC2 returns the 2×2 identity.
func IdentityC2() C2 {
	return C2{{1, 0}, {0, 1}}
}

// Rows returns 2.
func (m C2) Rows() int { return 2 }

// Cols returns 2.
func (m C2) Cols() int { return 2 }

// At retrieves the element at (i, j) or ErrOutOfRange.
func (m C2) At(i, j int) (complex128, error) {
	if err := ValidateIndex(i, j, 2, 2); err != nil {
		return 0, c2Errorf("At", err)
	}

	return m[i][j], nil
}

// Mul returns the product m·b. The operand on the right acts first when both
// are applied to a column vector.
func (m C2) Mul(b C2) C2 {
	var out C2
	var i, j, k int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			var sum complex128
			for k = 0; k < 2; k++ {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// MulVec returns m·v for a column vector v.
func (m C2) MulVec(v [2]complex128) [2]complex128 {
	return [2]complex128{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// Add returns the element-wise sum m+b.
func (m C2) Add(b C2) C2 {
	return C2{
		{m[0][0] + b[0][0], m[0][1] + b[0][1]},
		{m[1][0] + b[1][0], m[1][1] + b[1][1]},
	}
}

// Scale returns s·m.
func (m C2) Scale(s complex128) C2 {
	return C2{
		{s * m[0][0], s * m[0][1]},
		{s * m[1][0], s * m[1][1]},
	}
}

// Adjoint returns the conjugate transpose m†.
func (m C2) Adjoint() C2 {
	return C2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Trace returns m[0][0]+m[1][1].
func (m C2) Trace() complex128 {
	return m[0][0] + m[1][1]
}

// Det returns the determinant.
func (m C2) Det() complex128 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// AllClose reports whether every entry of m is within eps of b
// (complex modulus), eps resolved from opts.
func (m C2) AllClose(b C2, opts ...Option) bool {
	eps := Epsilon(opts...)
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			if !NearlyEqualComplex(m[i][j], b[i][j], eps) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer.
func (m C2) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < 2; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < 2; j++ {
			fmt.Fprintf(&sb, "%g", m[i][j])
			if j < 1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
