// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and finiteness checks.
//  - Return plain sentinel errors wrapped with a validator tag so call sites
//    can add their own context uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures rows is exactly r×c (no ragged rows, no nil input).
// Complexity: O(r).
func validateShape[T any](rows [][]T, r, c int) error {
	if len(rows) != r {
		return validatorErrorf(fmt.Sprintf("ValidateShape: want %d rows, got %d", r, len(rows)), ErrShapeMismatch)
	}
	for i, row := range rows {
		if len(row) != c {
			return validatorErrorf(fmt.Sprintf("ValidateShape: row %d: want %d columns, got %d", i, c, len(row)), ErrShapeMismatch)
		}
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < rows and 0 ≤ j < cols.
func ValidateIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", i, j), ErrOutOfRange)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// isNonFiniteComplex reports NaN or ±Inf in either part.
func isNonFiniteComplex(z complex128) bool {
	return cmplx.IsNaN(z) || cmplx.IsInf(z)
}

// NearlyEqual reports |a-b| ≤ eps. NaN never compares equal.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// NearlyEqualComplex reports |a-b| ≤ eps in the complex modulus.
func NearlyEqualComplex(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps
}
