package bst

// Insert stores value under key. An absent key gets a new leaf; a
// present key has its node's value overwritten in place, so the shape
// of the tree changes only on first insertion of a key.
//
// This is the reference insertion from "Introduction to Algorithms":
// the descent tracks the last node visited as the prospective parent,
// and links the new leaf below it when it falls off the tree.
func Insert(t *Tree, key int64, value any) {
	var y *Node
	x := t.root

	for x != nil {
		y = x
		switch {
		case key < x.Key:
			x = x.left
		case key > x.Key:
			x = x.right
		default:
			x.Value = value
			return
		}
	}

	z := &Node{Key: key, Value: value, parent: y}
	switch {
	case y == nil:
		t.root = z
	case z.Key < y.Key:
		y.left = z
	default:
		y.right = z
	}
}
