package bst

// Walk visits every node in ascending key order, calling visit once
// per node. The first non-nil visitor error aborts the walk and is
// returned unchanged; a completed walk returns nil.
//
// The traversal reads live structure and allocates nothing. The
// visitor must not insert into or delete from the tree mid-walk.
func Walk(t *Tree, visit Visitor) error {
	return walkInorder(t.root, visit)
}

// walkInorder is the textbook recursive in-order traversal: left
// subtree, node, right subtree. Recursion depth is the tree depth, so
// a degenerate tree costs O(n) stack.
func walkInorder(n *Node, visit Visitor) error {
	if n == nil {
		return nil
	}
	if err := walkInorder(n.left, visit); err != nil {
		return err
	}
	if err := visit(n); err != nil {
		return err
	}
	return walkInorder(n.right, visit)
}

// Collect returns all key/value pairs in ascending key order. An empty
// tree collects to nil.
func Collect(t *Tree) []KeyValue {
	var kvs []KeyValue
	// The visitor never fails, so neither does the walk.
	_ = Walk(t, func(n *Node) error {
		kvs = append(kvs, KeyValue{Key: n.Key, Value: n.Value})
		return nil
	})
	return kvs
}
