// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/bst"
)

func TestBuildExample(t *testing.T) {
	input := append([]int(nil), exampleValues...)
	tree := bst.Build(input)

	assert.Equal(t, exampleValues, input, "input was modified")
	assert.Equal(t, 11, tree.Count(), "wrong count")
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}, tree.Values(), "wrong values")

	require.NotNil(t, tree.Root(), "missing root")
	assert.Equal(t, 8, tree.Root().Value(), "wrong root")
	assert.Equal(t, 4, tree.Root().Left().Value(), "wrong root.left")
	assert.Equal(t, 67, tree.Root().Right().Value(), "wrong root.right")

	// the largest element must survive the range split
	last := tree.Last()
	require.NotNil(t, last, "missing last")
	assert.Equal(t, 6345, last.Value(), "largest value dropped")
	assert.Equal(t, 1, tree.First().Value(), "wrong first")

	assert.True(t, tree.IsBalanced(), "example not balanced")
	assert.Equal(t, 3, tree.Height(), "wrong height")
	assert.Nil(t, tree.CheckOrder(), "order violated")
}

func TestBuildEmpty(t *testing.T) {
	for _, input := range [][]int{nil, {}} {
		tree := bst.Build(input)
		assert.True(t, tree.IsEmpty(), "tree not empty")
		assert.Nil(t, tree.Root(), "root present")
		assert.Equal(t, 0, tree.Count(), "wrong count")
		assert.Equal(t, -1, tree.Height(), "wrong height")
		assert.True(t, tree.IsBalanced(), "empty tree not balanced")
		assert.Nil(t, tree.First(), "first in empty tree")
		assert.Nil(t, tree.Last(), "last in empty tree")
		assert.Empty(t, tree.Values(), "values in empty tree")
	}
}

func TestBuildSingle(t *testing.T) {
	tree := bst.Build([]int{42, 42, 42})
	require.NotNil(t, tree.Root(), "missing root")
	assert.True(t, tree.Root().IsLeaf(), "single value not a leaf")
	assert.Equal(t, 42, tree.Root().Value(), "wrong value")
	assert.Equal(t, 1, tree.Count(), "wrong count")
	assert.Equal(t, 0, tree.Height(), "wrong height")
}

func TestBuildStrings(t *testing.T) {
	tree := bst.Build([]string{"pear", "apple", "fig", "apple", "kiwi"})
	assert.Equal(t, []string{"apple", "fig", "kiwi", "pear"}, tree.Values(), "wrong values")
	assert.Equal(t, "fig", tree.Root().Value(), "wrong root")
}

func TestBuildRandom(t *testing.T) {
	for n := 0; n < 200; n += 7 {
		input := randomValues(t, n, 100)
		tree := bst.Build(input)

		expected := sortedDistinct(input)
		assert.Equal(t, expected, append([]int{}, tree.Values()...), "n: %d: wrong in-order values", n)
		assert.Equal(t, len(expected), tree.Count(), "n: %d: wrong count", n)
		assert.True(t, tree.IsBalanced(), "n: %d: built tree not balanced", n)
		assert.Nil(t, tree.CheckOrder(), "n: %d: order violated", n)
	}
}

func TestMergeSort(t *testing.T) {
	input := randomValues(t, 333, 1000)
	original := append([]int(nil), input...)

	sorted := bst.MergeSort(input)

	expected := append([]int(nil), input...)
	sort.Ints(expected)
	assert.Equal(t, expected, sorted, "not sorted")
	assert.Equal(t, original, input, "input was modified")

	assert.Empty(t, bst.MergeSort([]int{}), "empty sort")
	assert.Equal(t, []int{5}, bst.MergeSort([]int{5}), "single sort")
	assert.Equal(t, []float64{-1.5, 0, 2.25}, bst.MergeSort([]float64{2.25, -1.5, 0}), "float sort")
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9, 23, 67, 324, 6345}, bst.Unique(bst.MergeSort(exampleValues)), "wrong unique")
	assert.Empty(t, bst.Unique([]int{}), "empty unique")
	assert.Equal(t, []int{2}, bst.Unique([]int{2, 2, 2, 2}), "all duplicates")
}
