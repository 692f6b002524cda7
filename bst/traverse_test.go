// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/mocks"
)

type traversal func(tree *bst.Tree[int], v bst.Visitor[int]) error

var traversals = []struct {
	name     string
	run      traversal
	expected []int
}{
	{"level", (*bst.Tree[int]).LevelOrder, []int{8, 4, 67, 1, 5, 9, 324, 3, 7, 23, 6345}},
	{"pre", (*bst.Tree[int]).PreOrder, []int{8, 4, 1, 3, 5, 7, 67, 9, 23, 324, 6345}},
	{"in", (*bst.Tree[int]).InOrder, []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}},
	{"post", (*bst.Tree[int]).PostOrder, []int{3, 1, 7, 5, 4, 23, 9, 6345, 324, 67, 8}},
}

func collect(t *testing.T, tree *bst.Tree[int], run traversal) []int {
	values := []int{}
	err := run(tree, bst.VisitorFunc[int](func(node *bst.Node[int]) {
		values = append(values, node.Value())
	}))
	require.Nil(t, err, "traversal error")
	return values
}

func TestTraversalOrders(t *testing.T) {
	tree := bst.Build(exampleValues)
	for _, item := range traversals {
		assert.Equal(t, item.expected, collect(t, tree, item.run), "%s: wrong order", item.name)

		// restartable and deterministic
		assert.Equal(t, item.expected, collect(t, tree, item.run), "%s: second run differs", item.name)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}, tree.Values(), "tree changed")
}

func TestTraversalVisitsNodesInOrder(t *testing.T) {
	tree := bst.Build(exampleValues)

	for _, item := range traversals {
		ctl := gomock.NewController(t)
		m := mocks.NewMockVisitor(ctl)

		calls := make([]*gomock.Call, 0, len(item.expected))
		for _, v := range item.expected {
			node := tree.Find(v)
			require.NotNil(t, node, "%s: value: %d not found", item.name, v)
			calls = append(calls, m.EXPECT().Visit(node).Times(1))
		}
		gomock.InOrder(calls...)

		err := item.run(tree, m)
		assert.Nil(t, err, "%s: wrong error", item.name)
		ctl.Finish()
	}
}

func TestTraversalEmptyTree(t *testing.T) {
	tree := bst.New[int]()
	for _, item := range traversals {
		ctl := gomock.NewController(t)
		m := mocks.NewMockVisitor(ctl)
		m.EXPECT().Visit(gomock.Any()).Times(0)

		err := item.run(tree, m)
		assert.Nil(t, err, "%s: wrong error", item.name)
		ctl.Finish()
	}
}

func TestTraversalVisitorRequired(t *testing.T) {
	tree := bst.Build(exampleValues)
	var nilFunc bst.VisitorFunc[int]

	for _, item := range traversals {
		err := item.run(tree, nil)
		assert.Equal(t, fault.ErrVisitorRequired, err, "%s: nil visitor", item.name)
		assert.True(t, fault.IsErrInvalid(err), "%s: wrong error class", item.name)

		err = item.run(tree, nilFunc)
		assert.Equal(t, fault.ErrVisitorRequired, err, "%s: nil visitor function", item.name)

		err = item.run(bst.New[int](), nil)
		assert.Equal(t, fault.ErrVisitorRequired, err, "%s: nil visitor on empty tree", item.name)
	}
}

func TestInOrderAscending(t *testing.T) {
	tree := bst.Build(randomValues(t, 100, 10000))
	for _, v := range randomValues(t, 50, 10000) {
		_ = tree.Insert(v)
	}
	for _, v := range randomValues(t, 50, 10000) {
		tree.Delete(v)
	}

	values := collect(t, tree, (*bst.Tree[int]).InOrder)
	for i := 1; i < len(values); i += 1 {
		assert.True(t, values[i-1] < values[i], "not ascending at: %d", i)
	}
	assert.Equal(t, tree.Count(), len(values), "wrong number of visits")
}

func TestLevelValues(t *testing.T) {
	tree := bst.Build(exampleValues)
	expected := [][]int{
		{8},
		{4, 67},
		{1, 5, 9, 324},
		{3, 7, 23, 6345},
	}
	assert.Equal(t, expected, tree.LevelValues(), "wrong levels")
	assert.Empty(t, bst.New[int]().LevelValues(), "levels in empty tree")
}
