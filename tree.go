package rbtree

import "fmt"

// Comparator establishes a total preorder over the elements a tree holds.
// It must return a negative number if a orders before b, zero if they are
// equivalent, and a positive number if a orders after b.
//
// Comparator mirrors the sign-returning convention of
// github.com/emirpasic/gods/utils.Comparator, specialized to a concrete
// element type instead of interface{}.
type Comparator[T any] func(a, b *T) int

// Copier overwrites the payload fields of dst with src's, leaving dst's
// embedded Node untouched. It is only ever invoked during Delete/DeleteAt,
// with src the element whose node is about to be unlinked (the removed
// node's in-order predecessor or lone child) and dst the element whose key
// is being removed; the two are generally not equivalent.
type Copier[T any] func(src, dst *T)

// Tree is a red-black tree holding *Node[T] links only; element storage
// belongs entirely to the caller. The zero value is an empty tree ready to
// use — Init is only needed to reset a non-empty tree.
type Tree[T any] struct {
	root *Node[T]
}

// Init discards every node currently in the tree (without touching their
// storage) and leaves t empty.
func (t *Tree[T]) Init() {
	t.root = nil
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Check walks the tree and reports the first violation found, or nil if the
// root is black with a nil parent, every child links back to its parent and
// is ordered correctly against it, no red node has a red child, and every
// path has the same black height. Ordering is compared only between a node
// and its direct children. It is intended for tests, not hot paths.
func (t *Tree[T]) Check(cmp Comparator[T]) error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("rbtree: root has non-nil parent")
	}
	if !isBlack(t.root) {
		return fmt.Errorf("rbtree: root is red")
	}

	var blackHeight = -1
	var walk func(n *Node[T], path int) error
	walk = func(n *Node[T], blacks int) error {
		if n == nil {
			if blackHeight == -1 {
				blackHeight = blacks
			} else if blacks != blackHeight {
				return fmt.Errorf("rbtree: unequal black height (%d vs %d)", blacks, blackHeight)
			}
			return nil
		}
		if n.left != nil {
			if n.left.parent != n {
				return fmt.Errorf("rbtree: child/parent link mismatch")
			}
			if cmp(n.left.owner, n.owner) > 0 {
				return fmt.Errorf("rbtree: left subtree out of order")
			}
		}
		if n.right != nil {
			if n.right.parent != n {
				return fmt.Errorf("rbtree: child/parent link mismatch")
			}
			if cmp(n.right.owner, n.owner) < 0 {
				return fmt.Errorf("rbtree: right subtree out of order")
			}
		}
		if isRed(n) && (isRed(n.left) || isRed(n.right)) {
			return fmt.Errorf("rbtree: red node has a red child")
		}
		add := 0
		if isBlack(n) {
			add = 1
		}
		if err := walk(n.left, blacks+add); err != nil {
			return err
		}
		return walk(n.right, blacks+add)
	}
	return walk(t.root, 0)
}

// String renders the tree as a box-drawing diagram rotated 90 degrees so
// the root sits in the middle of the page.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return "<empty>\n"
	}
	return stringify(t.root, "", true)
}
