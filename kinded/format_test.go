package kinded_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/authcorp/kinded/kinded"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"slice", kinded.Slice("a", "b").String(), `["a", "b"]`},
		{"empty slice", kinded.Slice[int]().String(), "[]"},
		{"some", kinded.Some(1).String(), "Some(1)"},
		{"none", kinded.None[int]().String(), "None"},
		{"list", kinded.List("x").String(), `List["x"]`},
		{"unset", kinded.Of[kinded.SliceK, int]{}.String(), "<unset>"},
		{"nested", kinded.Inr[kinded.SliceK](kinded.Inl[kinded.CNilK](kinded.None[string]())).String(), "Inr(Inl(None))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	roundTrip := func(t *testing.T, v any) any {
		t.Helper()
		out, err := yaml.Marshal(v)
		require.NoError(t, err)
		var decoded any
		require.NoError(t, yaml.Unmarshal(out, &decoded))
		return decoded
	}

	t.Run("left slice", func(t *testing.T) {
		fa := kinded.Inl[tail](kinded.Slice("toto"))
		assert.Equal(t, map[string]any{"inl": []any{"toto"}}, roundTrip(t, fa))
	})

	t.Run("right option", func(t *testing.T) {
		fa := kinded.Inr[kinded.SliceK](kinded.Inl[kinded.CNilK](kinded.Some(42)))
		assert.Equal(t, map[string]any{"inr": map[string]any{"inl": 42}}, roundTrip(t, fa))
	})

	t.Run("none is null", func(t *testing.T) {
		fa := kinded.Inr[kinded.SliceK](kinded.Inl[kinded.CNilK](kinded.None[int]()))
		assert.Equal(t, map[string]any{"inr": map[string]any{"inl": nil}}, roundTrip(t, fa))
	})

	t.Run("list", func(t *testing.T) {
		assert.Equal(t, []any{1, 2}, roundTrip(t, kinded.List(1, 2)))
	})

	t.Run("unset fails", func(t *testing.T) {
		_, err := yaml.Marshal(kinded.Of[kinded.OptionK, int]{})
		assert.Error(t, err)
	})
}
