// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvlight/converters"
)

// Mul returns left·right.
//
// Errors: ErrEmptyOperand, ErrInvalidOperationOrder, ErrNoOperator,
// ErrKindMismatch, each wrapped with the offending kinds.
func Mul(left, right Operand) (Operand, error) {
	if left.kind == KindNone || right.kind == KindNone {
		return Operand{}, mulErrorf(left, right, ErrEmptyOperand)
	}
	if left.kind.IsVector() {
		if right.kind.IsOperator() {
			return Operand{}, mulErrorf(left, right, ErrInvalidOperationOrder)
		}

		return Operand{}, mulErrorf(left, right, ErrNoOperator)
	}
	if left.kind.IsJones() != right.kind.IsJones() {
		return Operand{}, mulErrorf(left, right, ErrKindMismatch)
	}

	switch left.kind {
	case KindJonesOperator:
		switch right.kind {
		case KindJonesVector:
			return JonesVector(left.jm.Apply(right.jv)), nil
		case KindJonesOperator:
			return JonesOperator(left.jm.Compose(right.jm)), nil
		}
	case KindMuellerOperator:
		switch right.kind {
		case KindStokesVector:
			return StokesVector(left.mm.Apply(right.sv)), nil
		case KindMuellerOperator:
			return MuellerOperator(left.mm.Compose(right.mm)), nil
		}
	}

	// unreachable while Kind stays closed
	panic(fmt.Sprintf("algebra: Mul: unhandled kinds %s × %s", left.kind, right.kind))
}

func mulErrorf(left, right Operand, err error) error {
	return fmt.Errorf("algebra.Mul(%s × %s): %w", left.kind, right.kind, err)
}

// Apply returns the state leaving op when vec enters it.
func Apply(op, vec Operand) (Operand, error) {
	if op.kind == KindNone || vec.kind == KindNone {
		return Operand{}, fmt.Errorf("algebra.Apply: %w", ErrEmptyOperand)
	}
	if !vec.kind.IsVector() {
		return Operand{}, fmt.Errorf("algebra.Apply: %s: %w", vec.kind, ErrNotVector)
	}

	return Mul(op, vec)
}

// Compose returns the single element equivalent to first followed by then
// (then·first).
func Compose(then, first Operand) (Operand, error) {
	for _, o := range [2]Operand{then, first} {
		if o.kind == KindNone {
			return Operand{}, fmt.Errorf("algebra.Compose: %w", ErrEmptyOperand)
		}
		if !o.kind.IsOperator() {
			return Operand{}, fmt.Errorf("algebra.Compose: %s: %w", o.kind, ErrNotOperator)
		}
	}

	return Mul(then, first)
}

// Add superposes two states of the same representation: coherently for
// Jones vectors, incoherently for Stokes vectors.
func Add(a, b Operand) (Operand, error) {
	for _, o := range [2]Operand{a, b} {
		if o.kind == KindNone {
			return Operand{}, fmt.Errorf("algebra.Add: %w", ErrEmptyOperand)
		}
		if !o.kind.IsVector() {
			return Operand{}, fmt.Errorf("algebra.Add: %s: %w", o.kind, ErrNotVector)
		}
	}
	if a.kind != b.kind {
		return Operand{}, fmt.Errorf("algebra.Add(%s + %s): %w", a.kind, b.kind, ErrKindMismatch)
	}

	if a.kind == KindJonesVector {
		return JonesVector(a.jv.Add(b.jv)), nil
	}

	return StokesVector(a.sv.Add(b.sv)), nil
}

// Normalize returns vec scaled to unit intensity; vec itself is unchanged.
func Normalize(vec Operand) (Operand, error) {
	switch vec.kind {
	case KindJonesVector:
		return JonesVector(vec.jv.Normalize()), nil
	case KindStokesVector:
		return StokesVector(vec.sv.Normalize()), nil
	case KindNone:
		return Operand{}, fmt.Errorf("algebra.Normalize: %w", ErrEmptyOperand)
	default:
		return Operand{}, fmt.Errorf("algebra.Normalize: %s: %w", vec.kind, ErrNotVector)
	}
}

// Chain composes elements given in optical order into one operator:
// Chain(e1, e2, ..., en) = en·...·e2·e1.
//
// Errors: ErrNoOperator for an empty chain, ErrNotOperator for a vector
// element, ErrKindMismatch when calculi are mixed.
func Chain(elements ...Operand) (Operand, error) {
	if len(elements) == 0 {
		return Operand{}, fmt.Errorf("algebra.Chain: %w", ErrNoOperator)
	}
	acc := elements[0]
	if acc.kind == KindNone {
		return Operand{}, fmt.Errorf("algebra.Chain: element 0: %w", ErrEmptyOperand)
	}
	if !acc.kind.IsOperator() {
		return Operand{}, fmt.Errorf("algebra.Chain: element 0 is a %s: %w", acc.kind, ErrNotOperator)
	}

	for i, e := range elements[1:] {
		next, err := Compose(e, acc)
		if err != nil {
			return Operand{}, fmt.Errorf("algebra.Chain: element %d: %w", i+1, err)
		}
		acc = next
	}

	return acc, nil
}

// Propagate sends in through elements in optical order and returns every
// intermediate state: out[0] is in, out[k] is the state after element k.
func Propagate(in Operand, elements ...Operand) ([]Operand, error) {
	if in.kind == KindNone {
		return nil, fmt.Errorf("algebra.Propagate: %w", ErrEmptyOperand)
	}
	if !in.kind.IsVector() {
		return nil, fmt.Errorf("algebra.Propagate: input is a %s: %w", in.kind, ErrNotVector)
	}

	out := make([]Operand, 0, len(elements)+1)
	out = append(out, in)
	cur := in
	for i, e := range elements {
		next, err := Apply(e, cur)
		if err != nil {
			return nil, fmt.Errorf("algebra.Propagate: element %d: %w", i, err)
		}
		out = append(out, next)
		cur = next
	}

	return out, nil
}

// Lift maps a Jones operand to its Stokes/Mueller counterpart. Stokes
// vectors and Mueller operators are returned unchanged.
func Lift(o Operand) (Operand, error) {
	switch o.kind {
	case KindJonesVector:
		return StokesVector(converters.JonesToStokes(o.jv)), nil
	case KindJonesOperator:
		return MuellerOperator(converters.MuellerFromJones(o.jm)), nil
	case KindStokesVector, KindMuellerOperator:
		return o, nil
	default:
		return Operand{}, fmt.Errorf("algebra.Lift: %w", ErrEmptyOperand)
	}
}
