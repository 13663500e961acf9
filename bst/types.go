package bst

import (
	"errors"
)

var (
	// ErrKeyNotFound is returned by Search and Delete when the key is not
	// present, including when the tree is empty.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrEmptyTree is returned by Minimum and Maximum when the tree has no
	// nodes at all.
	ErrEmptyTree = errors.New("bst: empty tree")

	// ErrTreeInvalid is returned by CheckTree when the ordering or linkage
	// invariants do not hold. The tree operations maintain those invariants
	// and never return it; a violation discovered mid-operation is a panic.
	ErrTreeInvalid = errors.New("bst: tree structure invalid")
)

// Node is a single keyed entry in the tree.
//
// Key and Value are exported for read access during traversal and
// inspection. The linkage is owned by this package: parent is a
// non-owning back reference used for upward navigation during delete,
// left and right are the owned subtrees. Visitors must treat the node
// as read only, except that overwriting Value is always safe.
type Node struct {
	Key   int64
	Value any

	parent *Node
	left   *Node
	right  *Node
}

// Tree is an unbalanced binary search tree over int64 keys. The zero
// value is an empty tree ready for use.
type Tree struct {
	root *Node
}

// KeyValue is one key/value pair, as produced by Collect in ascending
// key order.
type KeyValue struct {
	Key   int64
	Value any
}

// Visitor is called once per node by Walk, in ascending key order. The
// first non-nil error aborts the walk and is returned to the caller
// unchanged.
type Visitor func(n *Node) error
