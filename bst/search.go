package bst

import (
	"fmt"
)

// SearchNode returns the node holding key.
//
// The walk is the standard binary search descent: strictly less goes
// left, strictly greater goes right, equal stops. Cost is O(depth) of
// the tree, which is only O(log n) when the insertion order was well
// mixed.
//
// Absence is reported as ErrKeyNotFound, with distinct context for the
// empty tree so that triage can tell "never populated" from "not in a
// populated tree".
func SearchNode(t *Tree, key int64) (*Node, error) {
	if t.root == nil {
		return nil, fmt.Errorf("%w: key %d searched in empty tree", ErrKeyNotFound, key)
	}

	x := t.root
	for x != nil {
		switch {
		case key < x.Key:
			x = x.left
		case key > x.Key:
			x = x.right
		default:
			return x, nil
		}
	}

	return nil, fmt.Errorf("%w: key %d", ErrKeyNotFound, key)
}

// Search returns the value stored under key, or ErrKeyNotFound.
func Search(t *Tree, key int64) (any, error) {
	n, err := SearchNode(t, key)
	if err != nil {
		return nil, err
	}
	return n.Value, nil
}
