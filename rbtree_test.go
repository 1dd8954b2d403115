package rbtree

import (
	"fmt"
)

// item is the shared fixture type used across this package's tests: an
// intrusive node embedded directly in a small value type, comparator over
// its x field.
type item struct {
	node Node[item]
	x    int
}

func newItem(x int) *item {
	it := &item{x: x}
	NodeInit(&it.node, it)
	return it
}

func cmpItem(a, b *item) int {
	return a.x - b.x
}

func copyItem(src, dst *item) {
	dst.x = src.x
}

func (it *item) String() string {
	return fmt.Sprintf("%d", it.x)
}

// inorderValues collects the x fields of every node in ascending order.
func inorderValues(t *Tree[item]) []int {
	var out []int
	t.InorderForeach(func(n *Node[item]) bool {
		out = append(out, n.Owner().x)
		return true
	})
	return out
}
