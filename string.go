package rbtree

import "fmt"

const (
	connectorLeft     = " ╭── "
	connectorRight    = " ╰── "
	connectorVertical = " │   "
	connectorSpace    = "     "
)

func ownerString[T any](n *Node[T]) string {
	if n == nil || n.owner == nil {
		return "<nil>"
	}
	if s, ok := any(n.owner).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", *n.owner)
}

func stringify[T any](n *Node[T], prefix string, isTail bool) string {
	var out string
	if n.right != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += connectorVertical
		} else {
			newPrefix += connectorSpace
		}
		out += stringify(n.right, newPrefix, false)
	}

	out += prefix
	if isTail {
		out += connectorRight
	} else {
		out += connectorLeft
	}
	out += fmt.Sprintf("%s [%s]\n", ownerString(n), n.color)

	if n.left != nil {
		newPrefix := prefix
		if isTail {
			newPrefix += connectorSpace
		} else {
			newPrefix += connectorVertical
		}
		out += stringify(n.left, newPrefix, true)
	}
	return out
}
