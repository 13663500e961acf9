package bst

/*

# Plain binary search tree primitives for go-sorteddict

This package provides the tree engine behind `sorteddict`: a classic
unbalanced binary search tree over signed 64-bit keys, with parent
back-links, as constructed in Cormen, Leiserson, Rivest & Stein
("Introduction to Algorithms"): iterative descent for search and insert,
subtree transplant, and the three-case delete that promotes the in-order
successor.

It follows a "functional primitives" style:

- small, composable functions over an explicit Tree/Node structure
- one operation per file
- a burden of knowledge on the caller for traversal visitors

## Core invariants

For every node n in a well formed tree:

1. every key under n.left is strictly less than n.Key
2. every key under n.right is strictly greater than n.Key
3. n.left.parent == n and n.right.parent == n where the children exist,
   and the root has a nil parent

Keys are unique. Inserting a key that is already present overwrites the
stored value in place and never creates a second node.

CheckTree verifies all three invariants and exists for tests and triage.
The operations maintain the invariants themselves and never call it.

## Why there is no balancing

Nothing here rotates or rebalances. Insertion order dictates the shape:
well mixed keys give O(log n) depth, while monotonically ordered inserts
degenerate the tree into a linked list and every O(depth) operation into
O(n). Callers that need guaranteed logarithmic depth need a different
structure, not an option on this one.

## Concurrency

There is no internal locking. A Tree may be read from many goroutines,
but any mutation requires exclusive access. Walk reads live structure:
a visitor must not insert into or delete from the tree it is walking.

## Failure contract

Absence of a key is reported with ErrKeyNotFound (search, delete) and an
empty tree with ErrEmptyTree (minimum, maximum). Both are facts about
the data, not faults. A broken parent/child linkage discovered during
node surgery is neither: it is a bug in this package, and transplant
panics rather than reporting it as if it were a missing key.

*/
