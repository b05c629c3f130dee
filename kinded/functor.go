package kinded

import (
	"github.com/benbjohnson/immutable"

	"github.com/authcorp/kinded/functional"
)

// unreachable is the panic value for a union arm that cannot hold a value.
// Values built through this package never reach it.
const unreachable = "kinded: reached an uninhabited union arm"

// Map applies f to every element held by fa and returns a value of the same
// shape over B. fa is left untouched.
//
// Slices and lists are mapped element by element in order, options at most
// once, and unions only through their populated arm, keeping Inl as Inl and
// Inr as Inr. Map panics if fa is unset.
func Map[F Constructor, A, B any](fa Of[F, A], f func(A) B) Subst[F, B] {
	return Of[F, B]{n: mapNode(fa.n, f)}
}

func mapNode[A, B any](n node[A], f func(A) B) node[B] {
	switch n := n.(type) {
	case sliceNode[A]:
		out := make(sliceNode[B], len(n))
		for i, a := range n {
			out[i] = f(a)
		}
		return out
	case optionNode[A]:
		return optionNode[B]{o: functional.MapOption(n.o, f)}
	case listNode[A]:
		b := immutable.NewListBuilder(immutable.NewList())
		itr := n.l.Iterator()
		for !itr.Done() {
			_, v := itr.Next()
			b.Append(f(v.(A)))
		}
		return listNode[B]{l: b.List()}
	case inlNode[A]:
		return inlNode[B]{n: mapNode(n.n, f)}
	case inrNode[A]:
		return inrNode[B]{n: mapNode(n.n, f)}
	default:
		panic(unreachable)
	}
}
