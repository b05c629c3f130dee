package kinded

import (
	"errors"
	"fmt"
	"strings"
)

// errUnset is returned when rendering a value that was never built.
var errUnset = errors.New("kinded: value is unset")

// String renders the value with elements in Go syntax, e.g.
// Inr(Inl(Some("toto"))) or Inl(["toto", "tata"]).
func (fa Of[F, A]) String() string {
	var sb strings.Builder
	writeNode[A](&sb, fa.n)
	return sb.String()
}

// GoString is the same rendering as String, so %#v prints the value rather
// than its internal representation.
func (fa Of[F, A]) GoString() string { return fa.String() }

func writeNode[A any](sb *strings.Builder, n node[A]) {
	switch n := n.(type) {
	case sliceNode[A]:
		writeElems(sb, "[", []A(n), "]")
	case optionNode[A]:
		sb.WriteString(n.o.GoString())
	case listNode[A]:
		writeElems(sb, "List[", ListValues(Of[ListK, A]{n: n}), "]")
	case inlNode[A]:
		sb.WriteString("Inl(")
		writeNode[A](sb, n.n)
		sb.WriteString(")")
	case inrNode[A]:
		sb.WriteString("Inr(")
		writeNode[A](sb, n.n)
		sb.WriteString(")")
	default:
		sb.WriteString("<unset>")
	}
}

func writeElems[A any](sb *strings.Builder, start string, xs []A, end string) {
	sb.WriteString(start)
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%#v", x)
	}
	sb.WriteString(end)
}

// MarshalYAML implements yaml.Marshaler. Slices and lists become sequences,
// an option becomes its value or null, and a union arm becomes a single-key
// mapping "inl" or "inr" around the arm's own rendering.
func (fa Of[F, A]) MarshalYAML() (interface{}, error) {
	return yamlNode[A](fa.n)
}

func yamlNode[A any](n node[A]) (interface{}, error) {
	switch n := n.(type) {
	case sliceNode[A]:
		return []A(n), nil
	case optionNode[A]:
		if v, ok := n.o.Get(); ok {
			return v, nil
		}
		return nil, nil
	case listNode[A]:
		return ListValues(Of[ListK, A]{n: n}), nil
	case inlNode[A]:
		inner, err := yamlNode[A](n.n)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"inl": inner}, nil
	case inrNode[A]:
		inner, err := yamlNode[A](n.n)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"inr": inner}, nil
	default:
		return nil, errUnset
	}
}
