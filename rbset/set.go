// Package rbset is a small non-intrusive convenience wrapper over
// github.com/go-intrusive/rbtree, for callers who would rather box a plain
// value than embed rbtree.Node themselves. It exists to exercise the
// intrusive core's container-of contract end to end against a concrete
// element type, and to give rbtree a size-tracking example (the core Tree
// deliberately has no count field — see the module's DESIGN.md).
package rbset

import "github.com/go-intrusive/rbtree"

// entry is the boxed element the tree actually links.
type entry[T any] struct {
	node  rbtree.Node[entry[T]]
	value T
}

// Set is an ordered set of T, backed by an intrusive red-black tree with
// both min and max cached.
type Set[T any] struct {
	tree rbtree.LeftRightCached[entry[T]]
	cmp  rbtree.Comparator[entry[T]]
	size int
}

// New creates an empty Set ordered by cmp.
func New[T any](cmp func(a, b T) int) *Set[T] {
	return &Set[T]{
		cmp: func(a, b *entry[T]) int { return cmp(a.value, b.value) },
	}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	return s.size
}

// Insert adds value to the set. It reports whether the set changed (false
// if an equivalent value was already present).
func (s *Set[T]) Insert(value T) bool {
	probe := &entry[T]{value: value}
	if s.tree.Find(probe, s.cmp) != nil {
		return false
	}
	e := &entry[T]{value: value}
	rbtree.NodeInit(&e.node, e)
	s.tree.Insert(&e.node, s.cmp)
	s.size++
	return true
}

// Contains reports whether value (or something equivalent under the
// set's ordering) is a member.
func (s *Set[T]) Contains(value T) bool {
	probe := &entry[T]{value: value}
	return s.tree.Find(probe, s.cmp) != nil
}

// Remove deletes value from the set. It reports whether anything was
// removed.
//
// Delete's return value is the in-order successor of the removed element
// (or nil if none), not a found/not-found flag — nil is also what Delete
// returns when value was the maximum element. So presence is checked with
// Find first, and the located node is removed directly with DeleteAt.
func (s *Set[T]) Remove(value T) bool {
	probe := &entry[T]{value: value}
	found := s.tree.Find(probe, s.cmp)
	if found == nil {
		return false
	}
	s.tree.DeleteAt(found, s.cmp, copyEntry[T])
	s.size--
	return true
}

// Min returns the smallest element and true, or the zero value and false
// if the set is empty.
func (s *Set[T]) Min() (T, bool) {
	n := s.tree.Min()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Owner().value, true
}

// Max returns the largest element and true, or the zero value and false
// if the set is empty.
func (s *Set[T]) Max() (T, bool) {
	n := s.tree.Max()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Owner().value, true
}

// Values returns every element of the set in ascending order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.size)
	s.tree.InorderForeach(func(n *rbtree.Node[entry[T]]) bool {
		out = append(out, n.Owner().value)
		return true
	})
	return out
}

func copyEntry[T any](src, dst *entry[T]) {
	dst.value = src.value
}
