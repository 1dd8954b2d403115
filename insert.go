package rbtree

// Insert attaches n to the tree, choosing its position with cmp. n must be
// disconnected (see NodeInit); inserting an already-attached node is a
// precondition violation and, with Unsafe false, a no-op.
//
// Ties go right: among nodes comparing equal to n, n becomes the
// rightmost — later insertions of equal keys land after earlier ones, so
// in-order traversal preserves insertion order for duplicates.
func (t *Tree[T]) Insert(n *Node[T], cmp Comparator[T]) {
	if !Unsafe && (t == nil || n == nil || cmp == nil || !n.disconnected()) {
		return
	}

	if t.root == nil {
		n.parent = nil
		n.left = nil
		n.right = nil
		n.color = Black
		t.root = n
		return
	}

	var parent *Node[T]
	cur := t.root
	for cur != nil {
		parent = cur
		if cmp(n.owner, cur.owner) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	n.parent = parent
	n.left = nil
	n.right = nil
	n.color = Red
	if cmp(n.owner, parent.owner) < 0 {
		parent.left = n
	} else {
		parent.right = n
	}

	t.insertFixup(n)
}

// InsertAt inserts n like Insert, but starts its BST descent from hint
// instead of the root, turning the common case of appending in sorted
// order into an O(1) operation.
//
// hint must already be an iterator into t and must satisfy
// cmp(hint, n) < 0 and (Next(hint) is nil or cmp(Next(hint), n) >= 0) —
// i.e. n belongs immediately after hint in sort order. If hint does not
// satisfy this, InsertAt falls back to a plain Insert from the root. When
// Next(hint) compares greater than n the result is identical either way,
// only the cost differs; when Next(hint) compares equal to n, n can be
// placed before some existing keys equal to it, where Insert would place it
// after all of them.
func (t *Tree[T]) InsertAt(n, hint *Node[T], cmp Comparator[T]) {
	if !Unsafe && (t == nil || n == nil || cmp == nil || !n.disconnected()) {
		return
	}
	if hint == nil || !validHint(hint, n, cmp) {
		t.Insert(n, cmp)
		return
	}

	parent := hint
	cur := hint.right
	for cur != nil {
		parent = cur
		if cmp(n.owner, cur.owner) < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	n.parent = parent
	n.left = nil
	n.right = nil
	n.color = Red
	if parent == hint {
		parent.right = n
	} else if cmp(n.owner, parent.owner) < 0 {
		parent.left = n
	} else {
		parent.right = n
	}

	t.insertFixup(n)
}

func validHint[T any](hint, n *Node[T], cmp Comparator[T]) bool {
	if cmp(hint.owner, n.owner) >= 0 {
		return false
	}
	nxt := Next(hint)
	return nxt == nil || cmp(nxt.owner, n.owner) >= 0
}

// insertFixup restores the red-black invariants after x has been attached
// as a red leaf. Colors are swapped on P/G before the terminal rotation
// rather than after, so the node identities the rotation leaves behind are
// exactly the ones that need the restored colors.
func (t *Tree[T]) insertFixup(x *Node[T]) {
	for {
		p := x.parent
		if p == nil {
			x.color = Black
			return
		}
		if p.color == Black {
			return
		}

		g := p.parent
		// p is red and not the root, so g must exist (root is always black).
		if p == g.left {
			u := g.right
			if isRed(u) {
				p.color = Black
				u.color = Black
				g.color = Red
				x = g
				continue
			}
			if x == p.right {
				// LR: rotate left at p, then fall through as the LL case
				// centered on the old p.
				t.rotateLeft(p)
				p, x = x, p
			}
			// LL
			p.color = Black
			g.color = Red
			t.rotateRight(g)
			return
		}

		u := g.left
		if isRed(u) {
			p.color = Black
			u.color = Black
			g.color = Red
			x = g
			continue
		}
		if x == p.left {
			// RL
			t.rotateRight(p)
			p, x = x, p
		}
		// RR
		p.color = Black
		g.color = Red
		t.rotateLeft(g)
		return
	}
}
