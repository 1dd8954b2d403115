package rbtree

// Delete locates a node equivalent to key and removes it, returning an
// iterator to what was the removed key's in-order successor (so a caller
// can resume traversal right where the deleted key used to be), or nil if
// either no equivalent node was found or the removed key was the maximum
// in the tree. Callers that need to distinguish "not found" from "removed
// the maximum" should Find before calling Delete.
//
// Deletion is copy-based: when the located node ("target") has two
// children, its in-order predecessor's payload is copied into target via
// cp, and the predecessor is the node that physically becomes
// disconnected (not target, even though target is the node whose key
// logically left the tree). cp must overwrite only payload fields, never
// target's embedded Node. This choice (predecessor over successor) matches
// the reference C implementation this package is modeled on; either is
// correct, and swapping it is a one-line change confined to
// replacementFor.
func (t *Tree[T]) Delete(key *T, cmp Comparator[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || cmp == nil || cp == nil) {
		return nil
	}
	target := t.Find(key, cmp)
	if target == nil {
		return nil
	}
	return t.deleteNode(target, cp)
}

// DeleteAt removes the node it, which must already be an iterator into t,
// without performing a search, returning an iterator to its in-order
// successor exactly as Delete does. cp is used exactly as in Delete.
//
// Unlike Delete, DeleteAt takes no Comparator: it, already being an
// iterator into t, carries its own position, so no comparison is needed to
// locate it. The cache variants' DeleteAt do take a Comparator — they need
// it to tell whether it is the cached min/max node — so the two signatures
// differ deliberately rather than by omission.
func (t *Tree[T]) DeleteAt(it *Node[T], cp Copier[T]) *Node[T] {
	if !Unsafe && (t == nil || it == nil || cp == nil) {
		return nil
	}
	return t.deleteNode(it, cp)
}

// replacementFor returns the node that will vacate the tree on behalf of
// target: target's in-order predecessor if target has two children (a
// node with at most one, necessarily leaf, child of its own); target's
// lone child if it has exactly one; otherwise nil (target is a leaf).
func replacementFor[T any](target *Node[T]) *Node[T] {
	switch {
	case target.left != nil && target.right != nil:
		return rightmost(target.left)
	case target.left == nil:
		return target.right
	case target.right == nil:
		return target.left
	default:
		return nil
	}
}

func (t *Tree[T]) deleteNode(target *Node[T], cp Copier[T]) *Node[T] {
	replacement := replacementFor(target)

	// Rebalance before the physical unlink: whichever of replacement/target
	// is about to vacate its slot is still fully linked in at this point, so
	// the fixup can use its real parent/sibling to rotate and recolor.
	if replacement != nil {
		if replacement.color == Black {
			t.deleteFixup(replacement)
		}
	} else if target.color == Black {
		t.deleteFixup(target)
	}

	// The successor iterator is captured here, after the fixup's rotations
	// have settled but before target's own links are touched by the splice
	// below — target is still attached with up-to-date links at this point,
	// so Next(target) is the successor of the removed key. The one exception
	// is a target whose lone child is its right child: that child is both
	// Next(target) and the replacement, so once its payload has moved into
	// target, target is the iterator a caller sees.
	next := Next(target)

	if replacement != nil {
		cp(replacement.owner, target.owner)
		t.unlink(replacement)
		if next == replacement {
			next = target
		}
		return next
	}
	t.unlink(target)
	return next
}

// unlink splices node out of the tree, connecting its single (or absent)
// child to its parent, and resets node to disconnected.
func (t *Tree[T]) unlink(node *Node[T]) {
	var child *Node[T]
	if node.left != nil {
		child = node.left
	} else {
		child = node.right
	}
	t.replaceChild(node.parent, node, child)
	NodeInit(node, node.owner)
}

// deleteFixup restores the red-black invariants given that node stands in
// for a black node about to be removed from its current position. node is
// always a real, still-attached node (never nil): when the node being
// removed from the tree has no replacement at all, the fixup is centered
// on that very node before it is spliced out, using its still-valid
// parent/sibling links.
func (t *Tree[T]) deleteFixup(node *Node[T]) {
	for {
		p := node.parent
		if p == nil {
			node.color = Black
			return
		}
		if node.color == Red {
			node.color = Black
			return
		}

		s := sibling(node)

		// Case 1: red sibling. Rotate it into the parent's place so the new
		// sibling is black, then fall through to cases 2-4.
		if isRed(s) {
			s.color = Black
			p.color = Red
			if s == p.right {
				t.rotateLeft(p)
			} else {
				t.rotateRight(p)
			}
			s = sibling(node)
		}

		// Case 2: both of the sibling's children are black (or absent).
		// Push the deficiency up to the parent and continue there.
		if isBlack(s.left) && isBlack(s.right) {
			s.color = Red
			node = p
			continue
		}

		if s == p.right {
			// Case 3: sibling's near (left) child is red, far child is
			// black. Rotate the red child into the far position.
			if isBlack(s.right) {
				setColor(s.left, Black)
				s.color = Red
				t.rotateRight(s)
				s = sibling(node)
			}
			// Case 4: sibling's far (right) child is red.
			s.color = p.color
			p.color = Black
			setColor(s.right, Black)
			t.rotateLeft(p)
			return
		}

		// Mirror of the above with left/right exchanged.
		if isBlack(s.left) {
			setColor(s.right, Black)
			s.color = Red
			t.rotateLeft(s)
			s = sibling(node)
		}
		s.color = p.color
		p.color = Black
		setColor(s.left, Black)
		t.rotateRight(p)
		return
	}
}
