package bst

import (
	"fmt"
)

// transplant replaces the subtree rooted at u with the subtree rooted
// at v, which may be nil, by relinking u's parent (or the tree root)
// to v and v's parent back to u's parent.
//
// It is a pure relinking primitive: u keeps its own child pointers and
// neither subtree is otherwise touched. deleteNode is responsible for
// any further surgery on u's children.
func transplant(t *Tree, u, v *Node) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	case u == u.parent.right:
		u.parent.right = v
	default:
		// Unreachable unless an earlier linkage bug corrupted the tree.
		panic(fmt.Sprintf(
			"bst: transplant: node key %d is not a child of its parent key %d",
			u.Key, u.parent.Key,
		))
	}

	if v != nil {
		v.parent = u.parent
	}
}
