package functional

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMapOptionPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("MapOption on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			o := Some(n)
			fn := func(x int) int { return x * 2 }
			mapped := MapOption(o, fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("MapOption on None returns None without calling fn", prop.ForAll(
		func(s string) bool {
			called := false
			mapped := MapOption(None[string](), func(x string) int {
				called = true
				return len(x + s)
			})
			return mapped.IsNone() && !called
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() || o.IsNone() {
			t.Error("expected Some")
		}
		if v, ok := o.Get(); !ok || v != 42 {
			t.Errorf("expected (42, true), got (%d, %v)", v, ok)
		}
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() || !o.IsNone() {
			t.Error("expected None")
		}
		if v, ok := o.Get(); ok || v != 0 {
			t.Errorf("expected (0, false), got (%d, %v)", v, ok)
		}
	})

	t.Run("Unwrap panics on None", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		None[string]().Unwrap()
	})
}

func TestOptionRendering(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option[string]
		str   string
		goStr string
	}{
		{"some", Some("toto"), "Some(toto)", `Some("toto")`},
		{"none", None[string](), "None", "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opt.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.opt.GoString(); got != tt.goStr {
				t.Errorf("GoString() = %q, want %q", got, tt.goStr)
			}
		})
	}
}
