package rbtree_test

import (
	"fmt"

	"github.com/go-intrusive/rbtree"
)

type record struct {
	node rbtree.Node[record]
	key  int
}

func cmpRecord(a, b *record) int { return a.key - b.key }

func copyRecord(src, dst *record) { dst.key = src.key }

func ExampleTree_Insert() {
	var tree rbtree.Tree[record]

	for _, k := range []int{5, 2, 8, 1, 9} {
		r := &record{key: k}
		rbtree.NodeInit(&r.node, r)
		tree.Insert(&r.node, cmpRecord)
	}

	tree.InorderForeach(func(n *rbtree.Node[record]) bool {
		fmt.Println(n.Owner().key)
		return true
	})
	// Output:
	// 1
	// 2
	// 5
	// 8
	// 9
}

func ExampleTree_Delete() {
	var tree rbtree.Tree[record]
	records := make([]*record, 0, 5)
	for _, k := range []int{10, 5, 15, 3, 7} {
		r := &record{key: k}
		rbtree.NodeInit(&r.node, r)
		tree.Insert(&r.node, cmpRecord)
		records = append(records, r)
	}

	target := &record{key: 10}
	tree.Delete(target, cmpRecord, copyRecord)

	tree.InorderForeach(func(n *rbtree.Node[record]) bool {
		fmt.Println(n.Owner().key)
		return true
	})
	// Output:
	// 3
	// 5
	// 7
	// 15
}

func ExampleLeftRightCached() {
	var tree rbtree.LeftRightCached[record]
	for _, k := range []int{4, 2, 6, 1, 5, 3, 7} {
		r := &record{key: k}
		rbtree.NodeInit(&r.node, r)
		tree.Insert(&r.node, cmpRecord)
	}

	fmt.Println("min:", tree.Min().Owner().key)
	fmt.Println("max:", tree.Max().Owner().key)
	// Output:
	// min: 1
	// max: 7
}

func ExampleNext() {
	var tree rbtree.Tree[record]
	for _, k := range []int{3, 1, 2} {
		r := &record{key: k}
		rbtree.NodeInit(&r.node, r)
		tree.Insert(&r.node, cmpRecord)
	}

	for n := tree.First(); n != nil; n = rbtree.Next(n) {
		fmt.Println(n.Owner().key)
	}
	// Output:
	// 1
	// 2
	// 3
}
