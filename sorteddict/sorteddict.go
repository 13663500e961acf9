// Package sorteddict provides a mutable dictionary over int64 keys
// that keeps its keys in ascending order, with minimum and maximum
// retrieval. It is a thin composition over the bst package: every
// method maps onto exactly one tree primitive, and the tree's failure
// contract (bst.ErrKeyNotFound, bst.ErrEmptyTree) passes through
// unchanged so callers match on the bst sentinels.
//
// A SortedDict is not safe for concurrent mutation. Guard it with a
// single lock if it is shared.
package sorteddict

import (
	"errors"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/forestrie/go-sorteddict/bst"
)

// SortedDict is a key-sorted dictionary backed by an unbalanced binary
// search tree. Reads and writes cost O(depth): O(log n) for well mixed
// insertion orders, O(n) in the degenerate monotonic case.
type SortedDict struct {
	log  logger.Logger
	tree bst.Tree
}

// New returns an empty dictionary. Mutations are traced at debug level
// through log.
func New(log logger.Logger) *SortedDict {
	return &SortedDict{
		log: log,
	}
}

// Set stores value under key, overwriting any previous value for that
// key.
func (d *SortedDict) Set(key int64, value any) {
	d.log.Debugf("set key %d", key)
	bst.Insert(&d.tree, key, value)
}

// Get returns the value stored under key, or bst.ErrKeyNotFound.
func (d *SortedDict) Get(key int64) (any, error) {
	return bst.Search(&d.tree, key)
}

// Delete removes key and its value, or returns bst.ErrKeyNotFound.
func (d *SortedDict) Delete(key int64) error {
	d.log.Debugf("delete key %d", key)
	return bst.Delete(&d.tree, key)
}

// Contains reports whether key is present. It is a membership
// projection of Get, not a separate traversal: absence is whatever Get
// reports as bst.ErrKeyNotFound.
func (d *SortedDict) Contains(key int64) bool {
	_, err := d.Get(key)
	return !errors.Is(err, bst.ErrKeyNotFound)
}

// Keys returns all keys in ascending order. An empty dictionary
// returns nil.
func (d *SortedDict) Keys() []int64 {
	var keys []int64
	_ = bst.Walk(&d.tree, func(n *bst.Node) error {
		keys = append(keys, n.Key)
		return nil
	})
	return keys
}

// Items returns all key/value pairs in ascending key order. An empty
// dictionary returns nil.
func (d *SortedDict) Items() []bst.KeyValue {
	return bst.Collect(&d.tree)
}

// Min returns the smallest key, or bst.ErrEmptyTree.
func (d *SortedDict) Min() (int64, error) {
	return bst.Minimum(&d.tree)
}

// Max returns the largest key, or bst.ErrEmptyTree.
func (d *SortedDict) Max() (int64, error) {
	return bst.Maximum(&d.tree)
}

// Len returns the number of entries. It counts by traversal rather
// than carrying a size field, so it costs O(n).
func (d *SortedDict) Len() int {
	n := 0
	_ = bst.Walk(&d.tree, func(*bst.Node) error {
		n++
		return nil
	})
	return n
}

// Walk visits every entry in ascending key order. The visitor's first
// non-nil error aborts the walk and is returned unchanged.
func (d *SortedDict) Walk(visit bst.Visitor) error {
	return bst.Walk(&d.tree, visit)
}

// String renders the underlying tree structure for debugging.
func (d *SortedDict) String() string {
	return bst.TreeString(&d.tree)
}
