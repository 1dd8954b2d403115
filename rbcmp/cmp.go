// Package rbcmp provides ready-made rbtree.Comparator implementations for
// common ordered types, plus a bridge to the sign-returning comparator
// convention used by github.com/emirpasic/gods/utils — part of the same
// gods module whose red-black tree the rbtree module benchmarks itself
// against.
package rbcmp

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// Ordered[T] returns a Comparator-shaped func(a, b *T) int for any type
// with the natural ordering of the cmp.Ordered constraint (integers,
// floats, strings).
func Ordered[T cmp.Ordered]() func(a, b *T) int {
	return func(a, b *T) int {
		return cmp.Compare(*a, *b)
	}
}

// FromGods adapts a github.com/emirpasic/gods/utils.Comparator — the
// boxed-interface{} sign comparator gods' own tree/list implementations
// use — into an rbtree Comparator over *T.
func FromGods[T any](c utils.Comparator) func(a, b *T) int {
	return func(a, b *T) int {
		return c(any(*a), any(*b))
	}
}

// ToGods is the inverse of FromGods: it exposes an rbtree Comparator as a
// gods utils.Comparator, for callers that want to hand this package's
// ordering to a gods container.
func ToGods[T any](c func(a, b *T) int) utils.Comparator {
	return func(a, b any) int {
		av, bv := a.(T), b.(T)
		return c(&av, &bv)
	}
}
