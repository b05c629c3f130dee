package kinded_test

import (
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/kinded/functional"
	"github.com/authcorp/kinded/internal/testutil"
	"github.com/authcorp/kinded/kinded"
)

// TestFunctorIdentity verifies Map(fa, id) renders exactly as fa.
func TestFunctorIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fa := testutil.UnionOf(rapid.Int()).Draw(t, "fa")

		mapped := kinded.Map(fa, functional.IdentityFunc[int])

		if mapped.String() != fa.String() {
			t.Fatalf("identity law violated: %s != %s", mapped, fa)
		}
	})
}

// TestFunctorCompositionOnUnions verifies Map(Map(fa, f), g) == Map(fa, g∘f).
func TestFunctorCompositionOnUnions(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fa := testutil.UnionOf(rapid.IntRange(-1000, 1000)).Draw(t, "fa")
		addend := rapid.IntRange(1, 100).Draw(t, "addend")

		f := func(x int) int { return x + addend }
		g := strconv.Itoa

		twice := kinded.Map(kinded.Map(fa, f), g)
		once := kinded.Map(fa, functional.ComposeFunc(f, g))

		if twice.String() != once.String() {
			t.Fatalf("composition law violated: %s != %s", twice, once)
		}
	})
}

// TestFunctorKeepsArm verifies the populated arm survives the element substitution.
func TestFunctorKeepsArm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fa := testutil.UnionOf(rapid.String()).Draw(t, "fa")

		mapped := kinded.Map(fa, func(s string) int { return len(s) })

		if testutil.ArmOf(fa) != testutil.ArmOf(mapped) {
			t.Fatalf("arm changed: %d -> %d", testutil.ArmOf(fa), testutil.ArmOf(mapped))
		}
		if fa.Side() != mapped.Side() {
			t.Fatalf("side changed: %s -> %s", fa.Side(), mapped.Side())
		}
	})
}

// TestSliceMapPreservesLength verifies mapping n elements yields n elements in order.
func TestSliceMapPreservesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fa := testutil.SliceOf(rapid.Int(), 32).Draw(t, "fa")

		in := kinded.ToSlice(fa)
		out := kinded.ToSlice(kinded.Map(fa, func(x int) int { return -x }))

		if len(in) != len(out) {
			t.Fatalf("length changed: %d -> %d", len(in), len(out))
		}
		for i := range in {
			if out[i] != -in[i] {
				t.Fatalf("element %d: got %d, want %d", i, out[i], -in[i])
			}
		}
	})
}

// TestOptionMapPreservesPresence verifies presence is unchanged by Map.
func TestOptionMapPreservesPresence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fa := testutil.OptionOf(rapid.Int()).Draw(t, "fa")

		mapped := kinded.Map(fa, strconv.Itoa)

		if kinded.ToOption(fa).IsSome() != kinded.ToOption(mapped).IsSome() {
			t.Fatal("presence changed")
		}
	})
}
