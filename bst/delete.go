package bst

// Delete removes the node holding key. When the key is absent the
// search failure is returned unchanged and the tree is not modified.
func Delete(t *Tree, key int64) error {
	n, err := SearchNode(t, key)
	if err != nil {
		return err
	}
	deleteNode(t, n)
	return nil
}

// deleteNode unlinks n using the three-case deletion from
// "Introduction to Algorithms".
//
// With fewer than two children n's place is taken directly by its only
// child, possibly nil. With two children the in-order successor y, the
// minimum of n.right, takes n's place. When y sits deeper than n's
// direct right child it is first transplanted out by its own right
// child and adopts n's right subtree; either way y then replaces n and
// adopts n's left subtree.
func deleteNode(t *Tree, n *Node) {
	if n.left == nil {
		transplant(t, n, n.right)
		return
	}
	if n.right == nil {
		transplant(t, n, n.left)
		return
	}

	// Two children. y is non-nil because n.right is non-nil, and y has
	// no left child.
	y := MinimumNode(n.right)
	if y.parent != n {
		transplant(t, y, y.right)
		y.right = n.right
		y.right.parent = y
	}

	transplant(t, n, y)
	y.left = n.left
	y.left.parent = y
}
