// Package coproduct implements open unions of unrelated types.
//
// A union is a chain Cop[L0, Cop[L1, ... Cop[Ln, CNil]]]. The right arm of a
// Cop is constrained to Tail, which only CNil and Cop satisfy, so a chain that
// ends in anything else does not compile:
//
//	var ok coproduct.Cop[int, coproduct.CNil]
//	var bad coproduct.Cop[int, string] // string does not satisfy coproduct.Tail
package coproduct

import (
	"fmt"

	"github.com/authcorp/kinded/functional"
)

// Tail is satisfied by the types allowed in the right arm of a Cop.
type Tail interface {
	tail()
	index() int
}

// CNil terminates a union chain. Its methods are unexported and no type in
// this package implements it; Inr rejects any CNil value, including types
// that embed CNil, so an Inr holding a CNil can never be built.
type CNil interface {
	Tail
	cnil()
}

// Cop holds exactly one of a left value of type L or a right value of type R.
// The zero Cop holds the zero L in its left arm.
type Cop[L any, R Tail] struct {
	e functional.Either[L, R]
}

// Inl builds a union populated on its left arm.
// The tail type is given explicitly and the left type is inferred:
//
//	coproduct.Inl[coproduct.CNil](42)
func Inl[R Tail, L any](l L) Cop[L, R] {
	return Cop[L, R]{e: functional.Left[L, R](l)}
}

// Inr builds a union populated on its right arm.
// It panics unless r is a Cop, which rules out every CNil value, including
// types that merely embed CNil.
func Inr[L any, R Tail](r R) Cop[L, R] {
	if _, ok := any(r).(interface{ cop() }); !ok {
		panic("coproduct: CNil is uninhabited")
	}
	return Cop[L, R]{e: functional.Right[L](r)}
}

func (Cop[L, R]) tail() {}

// cop is declared only on Cop, so embedding CNil or Tail does not provide it.
func (Cop[L, R]) cop() {}

func (c Cop[L, R]) index() int {
	if r, ok := c.e.GetRight(); ok {
		return 1 + r.index()
	}
	return 0
}

// IsLeft reports whether the left arm is populated.
func (c Cop[L, R]) IsLeft() bool { return c.e.IsLeft() }

// IsRight reports whether the right arm is populated.
func (c Cop[L, R]) IsRight() bool { return c.e.IsRight() }

// Left returns the left value and true, or the zero L and false.
func (c Cop[L, R]) Left() (L, bool) { return c.e.GetLeft() }

// Right returns the right value and true, or the zero R and false.
func (c Cop[L, R]) Right() (R, bool) { return c.e.GetRight() }

// Either exposes the union as a two-armed Either.
func (c Cop[L, R]) Either() functional.Either[L, R] { return c.e }

// Index returns the position of the populated arm along the whole chain:
// 0 for Inl, 1 for Inr(Inl(...)), and so on.
func (c Cop[L, R]) Index() int { return c.index() }

// String renders the union as Inl(v) or Inr(...).
func (c Cop[L, R]) String() string {
	if r, ok := c.e.GetRight(); ok {
		return fmt.Sprintf("Inr(%v)", r)
	}
	return fmt.Sprintf("Inl(%v)", c.e.LeftValue())
}

// GoString renders the union with values in Go syntax, e.g. Inr(Inl("toto")).
func (c Cop[L, R]) GoString() string {
	if r, ok := c.e.GetRight(); ok {
		return fmt.Sprintf("Inr(%#v)", r)
	}
	return fmt.Sprintf("Inl(%#v)", c.e.LeftValue())
}

// Fold collapses the union by applying onLeft or onRight to the populated arm.
func Fold[L any, R Tail, T any](c Cop[L, R], onLeft func(L) T, onRight func(R) T) T {
	return functional.MatchEither(c.e, onLeft, onRight)
}

// MarshalYAML implements yaml.Marshaler, rendering the populated arm as a
// single-key mapping "inl" or "inr".
func (c Cop[L, R]) MarshalYAML() (interface{}, error) {
	if r, ok := c.e.GetRight(); ok {
		return map[string]interface{}{"inr": r}, nil
	}
	return map[string]interface{}{"inl": c.e.LeftValue()}, nil
}
