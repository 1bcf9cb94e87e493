// SPDX-License-Identifier: MIT

// Package algebra dispatches the products of polarization calculus over a
// closed set of operand kinds:
//
//	– Jones vector      (jones.Vector)
//	– Jones operator    (jones.Matrix)
//	– Stokes vector     (stokes.Vector)
//	– Mueller operator  (mueller.Matrix)
//
// Operand is a tagged union over these four kinds; every function here
// switches exhaustively on the pair of tags and never reinterprets a
// vector as an operator or the other way round.
//
// Products (Mul):
//
//	– operator × vector   (same calculus) → vector
//	– operator × operator (same calculus) → operator
//	– vector × operator                   → ErrInvalidOperationOrder
//	– vector × vector                     → ErrNoOperator
//	– Jones × Stokes/Mueller              → ErrKindMismatch
//
// Chain and Propagate take elements in optical order: the first element is
// the first one the light meets, so Chain(e1, e2, e3) is e3·e2·e1.
// Lift carries a Jones operand into the Stokes/Mueller calculus.
//
// Errors (sentinel):
//
//	– ErrInvalidOperationOrder  vector on the left of an operator.
//	– ErrKindMismatch           operands from different calculi.
//	– ErrNoOperator             a product with no operator, or an empty chain.
//	– ErrEmptyOperand           the zero Operand was passed.
//	– ErrNotVector              a vector-only operation got an operator.
//	– ErrNotOperator            an operator-only operation got a vector.
//
// Example usage:
//
//	out, err := algebra.Mul(
//	    algebra.JonesOperator(jones.LinearPolarizer(0)),
//	    algebra.JonesVector(jones.NewVector(1, 1)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := out.JonesVector() // (1, 0)
package algebra

import "errors"

// Sentinel errors returned by the algebra dispatch.
var (
	// ErrInvalidOperationOrder indicates vector × operator. Optical
	// elements act on states from the left only.
	ErrInvalidOperationOrder = errors.New("algebra: vector cannot multiply an operator from the left")

	// ErrKindMismatch indicates operands of different calculi, e.g. a Jones
	// matrix and a Stokes vector.
	ErrKindMismatch = errors.New("algebra: operands belong to different calculi")

	// ErrNoOperator indicates a product of two vectors or an empty chain.
	ErrNoOperator = errors.New("algebra: no operator in product")

	// ErrEmptyOperand indicates the zero Operand.
	ErrEmptyOperand = errors.New("algebra: empty operand")

	// ErrNotVector indicates an operator where a state vector is required.
	ErrNotVector = errors.New("algebra: operand is not a vector")

	// ErrNotOperator indicates a state vector where an operator is required.
	ErrNotOperator = errors.New("algebra: operand is not an operator")
)

// Kind tags the value held by an Operand.
type Kind int

const (
	// KindNone is the zero Operand.
	KindNone Kind = iota
	// KindJonesVector holds a jones.Vector.
	KindJonesVector
	// KindJonesOperator holds a jones.Matrix.
	KindJonesOperator
	// KindStokesVector holds a stokes.Vector.
	KindStokesVector
	// KindMuellerOperator holds a mueller.Matrix.
	KindMuellerOperator
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindJonesVector:
		return "jones vector"
	case KindJonesOperator:
		return "jones operator"
	case KindStokesVector:
		return "stokes vector"
	case KindMuellerOperator:
		return "mueller operator"
	default:
		return "none"
	}
}

// IsVector reports whether k is a state vector kind.
func (k Kind) IsVector() bool {
	return k == KindJonesVector || k == KindStokesVector
}

// IsOperator reports whether k is an operator kind.
func (k Kind) IsOperator() bool {
	return k == KindJonesOperator || k == KindMuellerOperator
}

// IsJones reports whether k belongs to the Jones calculus.
func (k Kind) IsJones() bool {
	return k == KindJonesVector || k == KindJonesOperator
}
