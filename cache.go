package rbtree

// LeftCached is a Tree that additionally tracks its minimum node so Min
// runs in O(1) instead of O(log n). Use LeftCached.Insert/Delete/DeleteAt
// in place of the embedded Tree's, so the cache stays correct; every other
// Tree method (Find, First, Last, Next, Prev, the *Foreach traversals,
// Check) is safe to use unmodified.
type LeftCached[T any] struct {
	Tree[T]
	min *Node[T]
}

// Min returns the cached minimum node in O(1), or nil if the tree is
// empty.
func (t *LeftCached[T]) Min() *Node[T] {
	return t.min
}

// Insert behaves like Tree.Insert, including its Unsafe-gated precondition
// checks, and additionally updates the min cache. Ties at the minimum
// update the cache too (cmp(n, min) <= 0), so that a later deletion of the
// previous minimum still leaves the cache pointing at an in-tree node.
func (t *LeftCached[T]) Insert(n *Node[T], cmp Comparator[T]) {
	if !Unsafe && (t == nil || n == nil || cmp == nil || !n.disconnected()) {
		return
	}
	if t.min == nil || cmp(n.owner, t.min.owner) <= 0 {
		t.min = n
	}
	t.Tree.Insert(n, cmp)
}

// Delete behaves like Tree.Delete, including its Unsafe-gated precondition
// checks, and keeps the min cache correct.
func (t *LeftCached[T]) Delete(key *T, cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || cmp == nil || cp == nil) {
		return nil
	}
	target := t.Tree.Find(key, cmp)
	if target == nil {
		return nil
	}
	return t.deleteWithCache(target, cmp, cp)
}

// DeleteAt behaves like Tree.DeleteAt, including its Unsafe-gated
// precondition checks, and keeps the min cache correct.
func (t *LeftCached[T]) DeleteAt(it *Node[T], cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || it == nil || cmp == nil || cp == nil) {
		return nil
	}
	return t.deleteWithCache(it, cmp, cp)
}

// deleteWithCache re-reads the min cache from the tree after the delete
// whenever the removed key equals the cached one or the cached node is the
// one that copy-based deletion disconnected.
func (t *LeftCached[T]) deleteWithCache(target *Node[T], cmp Comparator[T], cp Copier[T]) *Node[T] {
	minHit := t.min != nil && cmp(target.owner, t.min.owner) == 0
	next := t.Tree.deleteNode(target, cp)
	if minHit || (t.min != nil && t.min.disconnected()) {
		t.min = t.Tree.First()
	}
	return next
}

// RightCached mirrors LeftCached, tracking the maximum node instead.
type RightCached[T any] struct {
	Tree[T]
	max *Node[T]
}

// Max returns the cached maximum node in O(1), or nil if the tree is
// empty.
func (t *RightCached[T]) Max() *Node[T] {
	return t.max
}

// Insert behaves like Tree.Insert, including its Unsafe-gated precondition
// checks, and additionally updates the max cache.
func (t *RightCached[T]) Insert(n *Node[T], cmp Comparator[T]) {
	if !Unsafe && (t == nil || n == nil || cmp == nil || !n.disconnected()) {
		return
	}
	if t.max == nil || cmp(n.owner, t.max.owner) >= 0 {
		t.max = n
	}
	t.Tree.Insert(n, cmp)
}

// Delete behaves like Tree.Delete, including its Unsafe-gated precondition
// checks, and keeps the max cache correct.
func (t *RightCached[T]) Delete(key *T, cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || cmp == nil || cp == nil) {
		return nil
	}
	target := t.Tree.Find(key, cmp)
	if target == nil {
		return nil
	}
	return t.deleteWithCache(target, cmp, cp)
}

// DeleteAt behaves like Tree.DeleteAt, including its Unsafe-gated
// precondition checks, and keeps the max cache correct.
func (t *RightCached[T]) DeleteAt(it *Node[T], cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || it == nil || cmp == nil || cp == nil) {
		return nil
	}
	return t.deleteWithCache(it, cmp, cp)
}

func (t *RightCached[T]) deleteWithCache(target *Node[T], cmp Comparator[T], cp Copier[T]) *Node[T] {
	maxHit := t.max != nil && cmp(target.owner, t.max.owner) == 0
	next := t.Tree.deleteNode(target, cp)
	if maxHit || (t.max != nil && t.max.disconnected()) {
		t.max = t.Tree.Last()
	}
	return next
}

// LeftRightCached tracks both the minimum and the maximum node.
type LeftRightCached[T any] struct {
	Tree[T]
	min, max *Node[T]
}

// Min returns the cached minimum node in O(1), or nil if the tree is
// empty.
func (t *LeftRightCached[T]) Min() *Node[T] {
	return t.min
}

// Max returns the cached maximum node in O(1), or nil if the tree is
// empty.
func (t *LeftRightCached[T]) Max() *Node[T] {
	return t.max
}

// Insert behaves like Tree.Insert, including its Unsafe-gated precondition
// checks, and additionally updates both caches.
func (t *LeftRightCached[T]) Insert(n *Node[T], cmp Comparator[T]) {
	if !Unsafe && (t == nil || n == nil || cmp == nil || !n.disconnected()) {
		return
	}
	if t.min == nil || cmp(n.owner, t.min.owner) <= 0 {
		t.min = n
	}
	if t.max == nil || cmp(n.owner, t.max.owner) >= 0 {
		t.max = n
	}
	t.Tree.Insert(n, cmp)
}

// Delete behaves like Tree.Delete, including its Unsafe-gated precondition
// checks, and keeps both caches correct.
func (t *LeftRightCached[T]) Delete(key *T, cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || cmp == nil || cp == nil) {
		return nil
	}
	target := t.Tree.Find(key, cmp)
	if target == nil {
		return nil
	}
	return t.deleteWithCache(target, cmp, cp)
}

// DeleteAt behaves like Tree.DeleteAt, including its Unsafe-gated
// precondition checks, and keeps both caches correct.
func (t *LeftRightCached[T]) DeleteAt(it *Node[T], cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || it == nil || cmp == nil || cp == nil) {
		return nil
	}
	return t.deleteWithCache(it, cmp, cp)
}

func (t *LeftRightCached[T]) deleteWithCache(target *Node[T], cmp Comparator[T], cp Copier[T]) *Node[T] {
	minHit := t.min != nil && cmp(target.owner, t.min.owner) == 0
	maxHit := t.max != nil && cmp(target.owner, t.max.owner) == 0
	next := t.Tree.deleteNode(target, cp)
	if minHit || (t.min != nil && t.min.disconnected()) {
		t.min = t.Tree.First()
	}
	if maxHit || (t.max != nil && t.max.disconnected()) {
		t.max = t.Tree.Last()
	}
	return next
}
