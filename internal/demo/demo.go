// Package demo builds a few union and constructor-union samples, maps the
// constructor unions and prints every original and mapped value.
package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/authcorp/kinded/coproduct"
	"github.com/authcorp/kinded/internal/config"
	apperrors "github.com/authcorp/kinded/internal/errors"
	"github.com/authcorp/kinded/kinded"
)

type (
	// Words is the plain union u32 | string | u32.
	Words = coproduct.Cop[uint32, coproduct.Cop[string, coproduct.Cop[uint32, coproduct.CNil]]]
	// ShortWords is the plain union u32 | string.
	ShortWords = coproduct.Cop[uint32, coproduct.Cop[string, coproduct.CNil]]

	optionTail = kinded.CopK[kinded.OptionK, kinded.CNilK]
	// Shape is the constructor union slice | option.
	Shape = kinded.CopK[kinded.SliceK, optionTail]
)

// Sample is a named value printed by the demo.
type Sample struct {
	Name  string
	Value any
}

// Samples builds the demo values in print order.
func Samples(cfg config.DemoConfig) []Sample {
	var c Words = coproduct.Inr[uint32](coproduct.Inl[coproduct.Cop[uint32, coproduct.CNil]](cfg.Word))
	var c2 ShortWords = coproduct.Inr[uint32](coproduct.Inl[coproduct.CNil](cfg.Word))

	ck := kinded.Inl[optionTail](kinded.Slice(cfg.Word))
	ck2 := kinded.Inr[kinded.SliceK](kinded.Inl[kinded.CNilK](kinded.Some(cfg.Word)))
	ck1 := kinded.Map(ck, appendSuffix(cfg.LeftSuffix))
	ck21 := kinded.Map(ck2, appendSuffix(cfg.RightSuffix))

	ik := kinded.Inl[optionTail](kinded.Slice(cfg.Number))
	ik2 := kinded.Inr[kinded.SliceK](kinded.Inl[kinded.CNilK](kinded.Some(cfg.Number)))
	inc := func(x int) int { return x + cfg.Increment }

	return []Sample{
		{"c", c},
		{"c2", c2},
		{"ck", ck},
		{"ck2", ck2},
		{"ck_1", ck1},
		{"ck2_1", ck21},
		{"ik", ik},
		{"ik2", ik2},
		{"ik_1", kinded.Map(ik, inc)},
		{"ik2_1", kinded.Map(ik2, inc)},
	}
}

func appendSuffix(suffix string) func(string) string {
	return func(x string) string {
		return fmt.Sprintf("%s_%s", x, suffix)
	}
}

// Run writes every sample to w in the configured output format.
func Run(ctx context.Context, w io.Writer, cfg config.DemoConfig, logger *slog.Logger) error {
	samples := Samples(cfg)
	logger.DebugContext(ctx, "samples built", slog.Int("count", len(samples)))

	var err error
	switch cfg.Output {
	case "yaml":
		err = writeYAML(w, samples)
	default:
		err = writeText(w, samples)
	}
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "demo finished", slog.String("output", cfg.Output), slog.Int("samples", len(samples)))
	return nil
}

func writeText(w io.Writer, samples []Sample) error {
	for _, s := range samples {
		if _, err := fmt.Fprintf(w, "%s: %#v\n", s.Name, s.Value); err != nil {
			return apperrors.RenderFailed(err, s.Name)
		}
	}
	return nil
}

func writeYAML(w io.Writer, samples []Sample) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range samples {
		var value yaml.Node
		if err := value.Encode(s.Value); err != nil {
			return apperrors.RenderFailed(err, s.Name)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s.Name}
		doc.Content = append(doc.Content, key, &value)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return apperrors.RenderFailed(err, "document")
	}
	if err := enc.Close(); err != nil {
		return apperrors.RenderFailed(err, "document")
	}
	return nil
}
