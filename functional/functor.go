// Package functional provides the container types shared by the union and
// constructor packages: Option and Either, plus helpers for functor-law tests.
package functional

// IdentityFunc is an identity function for functor law testing.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc composes two functions for functor law testing.
// The result applies f first, then g.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
