// Package rbtree provides a generic, intrusive red-black tree.
//
// "Intrusive" means the tree does not own or allocate element storage: the
// tree links live inside a [Node] that the caller embeds as a field of its
// own struct, and the tree recovers the owning struct through the back
// pointer set up once at [NodeInit]. Insertion, deletion, point lookup, and
// bidirectional ordered traversal are all O(log n).
//
// # Ordering
//
// The tree has no built-in notion of ordering; callers supply a
// [Comparator] that establishes a total preorder over element pointers.
// Equal keys are never rejected: ties are placed to the right of existing
// equal keys, so duplicates survive in insertion order under in-order
// traversal.
//
// # Cache variants
//
// [LeftCached], [RightCached] and [LeftRightCached] wrap [Tree] and
// additionally track the minimum and/or maximum node so that Min/Max run in
// O(1) instead of O(log n).
//
// # Safety mode
//
// [Unsafe] mirrors the "unsafe" build toggle of the library this package is
// modeled on. With Unsafe false (the default), malformed calls — a nil
// tree, a nil comparator, re-inserting an already-attached node — return
// without effect instead of panicking. Setting Unsafe to true removes these
// checks; behavior on malformed input is then undefined.
package rbtree

// Unsafe disables the nil/disconnected-node precondition checks that guard
// Insert, InsertAt, Find, Delete and DeleteAt (and the cache variants'
// Insert, Delete and DeleteAt). Leave it false unless the hot path has
// already been proven correct elsewhere and the checks show up in a
// profile.
var Unsafe = false
