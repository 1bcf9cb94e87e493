// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors and
// accessors return these sentinels wrapped with call-site context, and tests
// check them via errors.Is. Nothing in this package panics on user input;
// panics are reserved for invalid Option values (programmer error).

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it can be grepped across
// the module. Callers outside this package (jones, mueller) re-export
// ErrShapeMismatch under their own names so errors.Is keeps working no matter
// which name the caller matches against.

var (
	// ErrShapeMismatch is returned when row/column counts differ from the
	// fixed shape of the target type (2×2 for C2, 4×4 for R4), including
	// ragged rows and nil input.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry encountered while the numeric
	// policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
