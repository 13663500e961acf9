package bst

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestWalkVisitsKeysAscending(t *testing.T) {
	tree := newTree(5, 3, 8, 1, 4, 9, -2)

	var keys []int64
	err := Walk(tree, func(n *Node) error {
		keys = append(keys, n.Key)
		return nil
	})

	assert.NilError(t, err)
	assert.DeepEqual(t, keys, []int64{-2, 1, 3, 4, 5, 8, 9})
}

func TestWalkEmptyTreeVisitsNothing(t *testing.T) {
	tree := &Tree{}

	visits := 0
	err := Walk(tree, func(*Node) error {
		visits++
		return nil
	})

	assert.NilError(t, err)
	assert.Equal(t, visits, 0)
}

func TestWalkVisitorErrorAbortsTraversal(t *testing.T) {
	tree := newTree(5, 3, 8, 1, 4, 9)

	errStop := errors.New("stop")
	var keys []int64
	err := Walk(tree, func(n *Node) error {
		keys = append(keys, n.Key)
		if len(keys) == 3 {
			return errStop
		}
		return nil
	})

	assert.ErrorIs(t, err, errStop)
	assert.DeepEqual(t, keys, []int64{1, 3, 4})
}

func TestWalkDoesNotChangeStructure(t *testing.T) {
	tree := newTree(5, 3, 8, 1, 4, 9)
	before := NodeString(tree.root)

	err := Walk(tree, func(*Node) error { return nil })

	assert.NilError(t, err)
	assert.Equal(t, NodeString(tree.root), before)
	assert.NilError(t, CheckTree(tree))
}

func TestCollectPairsAscending(t *testing.T) {
	tree := &Tree{}
	Insert(tree, 2, "two")
	Insert(tree, 1, "one")
	Insert(tree, 3, "three")

	assert.DeepEqual(t, Collect(tree), []KeyValue{
		{Key: 1, Value: "one"},
		{Key: 2, Value: "two"},
		{Key: 3, Value: "three"},
	})
}

func TestCollectEmptyTree(t *testing.T) {
	assert.Assert(t, is.Len(Collect(&Tree{}), 0))
}
