package kinded

import "reflect"

// Subst is the constructor F instantiated at B. A value of Of[F, A] maps to a
// Subst[F, B]; since brands do not mention the element type, the substituted
// shape is known without inspecting F.
type Subst[F Constructor, B any] = Of[F, B]

// Shape renders the constructor of the value.
func (fa Of[F, A]) Shape() string { return ShapeOf[F]() }

// Elem returns the element type the value is instantiated at.
func (fa Of[F, A]) Elem() reflect.Type { return reflect.TypeFor[A]() }

// TypeName renders the full type, e.g. CopK[Slice, CNilK][string].
func (fa Of[F, A]) TypeName() string {
	return ShapeOf[F]() + "[" + reflect.TypeFor[A]().String() + "]"
}
