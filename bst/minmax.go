package bst

import (
	"fmt"
)

// MinimumNode returns the leftmost node of the subtree rooted at n, or
// nil when n is nil. Within deleteNode this is the in-order successor
// lookup: the minimum of a node's right subtree.
func MinimumNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// MaximumNode returns the rightmost node of the subtree rooted at n,
// or nil when n is nil.
func MaximumNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Minimum returns the smallest key in the tree, or ErrEmptyTree.
func Minimum(t *Tree) (int64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("%w: no minimum", ErrEmptyTree)
	}
	return MinimumNode(t.root).Key, nil
}

// Maximum returns the largest key in the tree, or ErrEmptyTree.
func Maximum(t *Tree) (int64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("%w: no maximum", ErrEmptyTree)
	}
	return MaximumNode(t.root).Key, nil
}
