package kinded

import (
	"github.com/benbjohnson/immutable"

	"github.com/authcorp/kinded/functional"
)

// Side tells which arm of a constructor union a value occupies.
type Side int

const (
	// Base is reported by slices, options and lists.
	Base Side = iota
	// Left is reported by values built with Inl.
	Left
	// Right is reported by values built with Inr.
	Right
)

// String returns the name of the side.
func (s Side) String() string {
	switch s {
	case Base:
		return "Base"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// node is the runtime form of a constructor value. Only the populated arm of
// a union is ever stored.
type node[A any] interface {
	side() Side
}

type sliceNode[A any] []A

type optionNode[A any] struct{ o functional.Option[A] }

type listNode[A any] struct{ l *immutable.List }

type inlNode[A any] struct{ n node[A] }

type inrNode[A any] struct{ n node[A] }

func (sliceNode[A]) side() Side  { return Base }
func (optionNode[A]) side() Side { return Base }
func (listNode[A]) side() Side   { return Base }
func (inlNode[A]) side() Side    { return Left }
func (inrNode[A]) side() Side    { return Right }

// Of is the constructor F applied to the element type A.
// Values are immutable; the zero Of is unset and is not accepted by Map or
// by the union constructors.
//
// The brand is part of the underlying type, so an Of cannot be converted to
// another brand: Of[CNilK, A](Slice(x)) does not compile.
type Of[F Constructor, A any] struct {
	_ [0]F
	n node[A]
}

// Slice builds a slice constructor value holding a copy of xs.
func Slice[A any](xs ...A) Of[SliceK, A] {
	out := make(sliceNode[A], len(xs))
	copy(out, xs)
	return Of[SliceK, A]{n: out}
}

// FromOption builds an option constructor value.
func FromOption[A any](o functional.Option[A]) Of[OptionK, A] {
	return Of[OptionK, A]{n: optionNode[A]{o: o}}
}

// Some builds a populated option constructor value.
func Some[A any](a A) Of[OptionK, A] {
	return FromOption(functional.Some(a))
}

// None builds an empty option constructor value.
func None[A any]() Of[OptionK, A] {
	return FromOption(functional.None[A]())
}

// List builds a persistent list constructor value.
func List[A any](xs ...A) Of[ListK, A] {
	b := immutable.NewListBuilder(immutable.NewList())
	for _, x := range xs {
		b.Append(x)
	}
	return Of[ListK, A]{n: listNode[A]{l: b.List()}}
}

// Inl injects l into the left arm of a union. The tail brand is given
// explicitly and the rest is inferred:
//
//	kinded.Inl[kinded.CNilK](kinded.Slice(1, 2))
//
// It panics if l is unset.
func Inl[R Chain, L Constructor, A any](l Of[L, A]) Of[CopK[L, R], A] {
	if l.n == nil {
		panic("kinded: cannot inject an unset value")
	}
	return Of[CopK[L, R], A]{n: inlNode[A]{n: l.n}}
}

// Inr injects r into the right arm of a union. The left brand is given
// explicitly and the rest is inferred. It panics if r is unset, which is
// always the case for Of[CNilK, A].
func Inr[L Constructor, R Chain, A any](r Of[R, A]) Of[CopK[L, R], A] {
	if r.n == nil {
		panic("kinded: cannot inject an unset value")
	}
	return Of[CopK[L, R], A]{n: inrNode[A]{n: r.n}}
}

// Valid reports whether the value was built by one of the constructors.
// Check it before Side when the value may be the zero Of.
func (fa Of[F, A]) Valid() bool { return fa.n != nil }

// Side reports which union arm the value occupies, or Base for containers.
// An unset value also reports Base; use Valid to tell it apart.
func (fa Of[F, A]) Side() Side {
	if fa.n == nil {
		return Base
	}
	return fa.n.side()
}

// ToSlice returns a copy of the elements of a slice value.
func ToSlice[A any](fa Of[SliceK, A]) []A {
	s, _ := fa.n.(sliceNode[A])
	if s == nil {
		return nil
	}
	out := make([]A, len(s))
	copy(out, s)
	return out
}

// ToOption returns the option held by an option value. An unset value
// yields None.
func ToOption[A any](fa Of[OptionK, A]) functional.Option[A] {
	if o, ok := fa.n.(optionNode[A]); ok {
		return o.o
	}
	return functional.None[A]()
}

// ToList returns the persistent list held by a list value. The list is
// immutable and safe to share.
func ToList[A any](fa Of[ListK, A]) *immutable.List {
	if l, ok := fa.n.(listNode[A]); ok {
		return l.l
	}
	return immutable.NewList()
}

// ListValues returns the elements of a list value in order.
func ListValues[A any](fa Of[ListK, A]) []A {
	l := ToList(fa)
	out := make([]A, 0, l.Len())
	itr := l.Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		out = append(out, v.(A))
	}
	return out
}

// Split exposes the populated arm of a union value.
func Split[L Constructor, R Chain, A any](fa Of[CopK[L, R], A]) functional.Either[Of[L, A], Of[R, A]] {
	switch n := fa.n.(type) {
	case inlNode[A]:
		return functional.Left[Of[L, A], Of[R, A]](Of[L, A]{n: n.n})
	case inrNode[A]:
		return functional.Right[Of[L, A]](Of[R, A]{n: n.n})
	default:
		panic(unreachable)
	}
}

// Fold applies onLeft or onRight to the populated arm of a union value.
func Fold[L Constructor, R Chain, A, T any](fa Of[CopK[L, R], A], onLeft func(Of[L, A]) T, onRight func(Of[R, A]) T) T {
	return functional.MatchEither(Split(fa), onLeft, onRight)
}
