// Package kinded maps over type constructors such as slices, options and
// unions of them, with a single Map defined once for all of them.
//
// Go has no higher-kinded type parameters, so a constructor is named by a
// brand: a zero-size type that stands for "slice of", "option of" and so on,
// independent of the element type. Of[F, A] is the brand F applied to A, and
// substituting the element type is just Of[F, A] -> Of[F, B]:
//
//	type Shape = kinded.CopK[kinded.SliceK, kinded.CopK[kinded.OptionK, kinded.CNilK]]
//
//	ck := kinded.Inl[kinded.CopK[kinded.OptionK, kinded.CNilK]](kinded.Slice("toto"))
//	out := kinded.Map(ck, func(s string) string { return s + "_tata1" })
//	// out is Of[Shape, string] rendered as Inl(["toto_tata1"])
package kinded

import "reflect"

// Constructor is implemented by the brands of single-argument type
// constructors. The set is sealed: SliceK, OptionK, ListK, CNilK and CopK.
type Constructor interface {
	String() string
	constructor()
}

// Chain is implemented by the brands allowed in the right arm of a CopK:
// CNilK or another CopK. A CopK whose tail is anything else does not compile.
type Chain interface {
	Constructor
	chain()
}

// SliceK is the brand of Go slices.
type SliceK struct{}

// OptionK is the brand of functional.Option.
type OptionK struct{}

// ListK is the brand of persistent lists backed by immutable.List.
type ListK struct{}

// CNilK closes a constructor union. No value of Of[CNilK, A] can be built.
type CNilK struct{}

// CopK is the brand of a union whose arms are the constructors L and R,
// both applied to the same element type.
type CopK[L Constructor, R Chain] struct{}

func (SliceK) constructor()     {}
func (OptionK) constructor()    {}
func (ListK) constructor()      {}
func (CNilK) constructor()      {}
func (CopK[L, R]) constructor() {}

func (CNilK) chain()      {}
func (CopK[L, R]) chain() {}

func (SliceK) String() string  { return "Slice" }
func (OptionK) String() string { return "Option" }
func (ListK) String() string   { return "List" }
func (CNilK) String() string   { return "CNilK" }

func (CopK[L, R]) String() string {
	return "CopK[" + ShapeOf[L]() + ", " + ShapeOf[R]() + "]"
}

// ShapeOf renders the constructor F, e.g. CopK[Slice, CopK[Option, CNilK]].
func ShapeOf[F Constructor]() string {
	var f F
	if any(f) == nil {
		// F is an interface type rather than a brand.
		return reflect.TypeFor[F]().String()
	}
	return f.String()
}
