package testutil

import (
	"pgregory.net/rapid"

	"github.com/authcorp/kinded/kinded"
)

// UnionShape is the three-arm constructor union used by the property tests:
// a slice, an option or a persistent list.
type UnionShape = kinded.CopK[kinded.SliceK, kinded.CopK[kinded.OptionK, kinded.CopK[kinded.ListK, kinded.CNilK]]]

// SliceOf generates slice values with up to maxLen elements.
func SliceOf[A any](elem *rapid.Generator[A], maxLen int) *rapid.Generator[kinded.Of[kinded.SliceK, A]] {
	return rapid.Custom(func(t *rapid.T) kinded.Of[kinded.SliceK, A] {
		return kinded.Slice(rapid.SliceOfN(elem, 0, maxLen).Draw(t, "elems")...)
	})
}

// OptionOf generates populated and empty option values.
func OptionOf[A any](elem *rapid.Generator[A]) *rapid.Generator[kinded.Of[kinded.OptionK, A]] {
	return rapid.Custom(func(t *rapid.T) kinded.Of[kinded.OptionK, A] {
		if rapid.Bool().Draw(t, "present") {
			return kinded.Some(elem.Draw(t, "value"))
		}
		return kinded.None[A]()
	})
}

// ListOf generates persistent list values with up to maxLen elements.
func ListOf[A any](elem *rapid.Generator[A], maxLen int) *rapid.Generator[kinded.Of[kinded.ListK, A]] {
	return rapid.Custom(func(t *rapid.T) kinded.Of[kinded.ListK, A] {
		return kinded.List(rapid.SliceOfN(elem, 0, maxLen).Draw(t, "elems")...)
	})
}

// UnionOf generates UnionShape values populated on a random arm.
func UnionOf[A any](elem *rapid.Generator[A]) *rapid.Generator[kinded.Of[UnionShape, A]] {
	return rapid.Custom(func(t *rapid.T) kinded.Of[UnionShape, A] {
		switch rapid.IntRange(0, 2).Draw(t, "arm") {
		case 0:
			return kinded.Inl[kinded.CopK[kinded.OptionK, kinded.CopK[kinded.ListK, kinded.CNilK]]](
				SliceOf(elem, 8).Draw(t, "slice"))
		case 1:
			return kinded.Inr[kinded.SliceK](
				kinded.Inl[kinded.CopK[kinded.ListK, kinded.CNilK]](OptionOf(elem).Draw(t, "option")))
		default:
			return kinded.Inr[kinded.SliceK](
				kinded.Inr[kinded.OptionK](kinded.Inl[kinded.CNilK](ListOf(elem, 8).Draw(t, "list"))))
		}
	})
}

// ArmOf returns the position of the populated arm of a UnionShape value.
func ArmOf[A any](fa kinded.Of[UnionShape, A]) int {
	return kinded.Fold(fa,
		func(kinded.Of[kinded.SliceK, A]) int { return 0 },
		func(r kinded.Of[kinded.CopK[kinded.OptionK, kinded.CopK[kinded.ListK, kinded.CNilK]], A]) int {
			if r.Side() == kinded.Left {
				return 1
			}
			return 2
		})
}
