package bst

// newTree builds a tree by inserting keys in the given order. The
// value stored under each key is the key itself, so value checks can
// derive their expectations.
func newTree(keys ...int64) *Tree {
	tree := &Tree{}
	for _, k := range keys {
		Insert(tree, k, k)
	}
	return tree
}

// collectKeys returns the in-order keys of tree.
func collectKeys(tree *Tree) []int64 {
	var keys []int64
	_ = Walk(tree, func(n *Node) error {
		keys = append(keys, n.Key)
		return nil
	})
	return keys
}
