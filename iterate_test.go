package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, values ...int) *Tree[item] {
	t.Helper()
	var tr Tree[item]
	for _, x := range values {
		it := newItem(x)
		tr.Insert(&it.node, cmpItem)
	}
	return &tr
}

func TestNextPrev_fullWalk(t *testing.T) {
	tr := buildTree(t, 10, 5, 15, 3, 7, 12, 20)

	var forward []int
	for n := tr.First(); n != nil; n = Next(n) {
		forward = append(forward, n.Owner().x)
	}
	assert.Equal(t, []int{3, 5, 7, 10, 12, 15, 20}, forward)

	var backward []int
	for n := tr.Last(); n != nil; n = Prev(n) {
		backward = append(backward, n.Owner().x)
	}
	assert.Equal(t, []int{20, 15, 12, 10, 7, 5, 3}, backward)
}

func TestNextPrev_nilSafe(t *testing.T) {
	assert.Nil(t, Next[item](nil))
	assert.Nil(t, Prev[item](nil))
}

func TestNextPrev_boundary(t *testing.T) {
	tr := buildTree(t, 1, 2, 3)
	assert.Nil(t, Next(tr.Last()))
	assert.Nil(t, Prev(tr.First()))
}

func TestInorderForeach_earlyExit(t *testing.T) {
	tr := buildTree(t, 1, 2, 3, 4, 5)
	var seen []int
	tr.InorderForeach(func(n *Node[item]) bool {
		seen = append(seen, n.Owner().x)
		return n.Owner().x < 3
	})
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestPreorderPostorder(t *testing.T) {
	tr := buildTree(t, 4, 2, 6, 1, 3, 5, 7)
	require.NoError(t, tr.Check(cmpItem))

	var pre []int
	tr.PreorderForeach(func(n *Node[item]) bool {
		pre = append(pre, n.Owner().x)
		return true
	})
	assert.Equal(t, tr.root.Owner().x, pre[0])

	var post []int
	tr.PostorderForeach(func(n *Node[item]) bool {
		post = append(post, n.Owner().x)
		return true
	})
	assert.Equal(t, tr.root.Owner().x, post[len(post)-1])

	assert.Len(t, pre, 7)
	assert.Len(t, post, 7)
}
