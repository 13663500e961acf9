package bst

import (
	"fmt"
)

// CheckTree verifies the structural invariants: strict key ordering
// within every subtree, child to parent back-links matching the parent
// to child links, and a parentless root. Violations are reported as
// wrapped ErrTreeInvalid naming the offending node.
//
// The tree operations maintain these invariants and never call this;
// it exists for tests and for triage of suspected corruption.
func CheckTree(t *Tree) error {
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root key %d has a parent", ErrTreeInvalid, t.root.Key)
	}
	return checkSubtree(t.root, nil, nil)
}

// checkSubtree walks the subtree at n carrying the open interval
// (lo, hi) that every key below must fall in. A nil bound is
// unbounded on that side.
func checkSubtree(n *Node, lo, hi *int64) error {
	if lo != nil && n.Key <= *lo {
		return fmt.Errorf("%w: key %d at or below lower bound %d", ErrTreeInvalid, n.Key, *lo)
	}
	if hi != nil && n.Key >= *hi {
		return fmt.Errorf("%w: key %d at or above upper bound %d", ErrTreeInvalid, n.Key, *hi)
	}

	if n.left != nil {
		if n.left.parent != n {
			return fmt.Errorf(
				"%w: left child key %d does not link back to key %d",
				ErrTreeInvalid, n.left.Key, n.Key,
			)
		}
		if err := checkSubtree(n.left, lo, &n.Key); err != nil {
			return err
		}
	}

	if n.right != nil {
		if n.right.parent != n {
			return fmt.Errorf(
				"%w: right child key %d does not link back to key %d",
				ErrTreeInvalid, n.right.Key, n.Key,
			)
		}
		if err := checkSubtree(n.right, &n.Key, hi); err != nil {
			return err
		}
	}

	return nil
}
