// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Build - create a balanced tree from an unordered set of values,
// duplicates are discarded and the input slice is not modified
func Build[T constraints.Ordered](values []T) *Tree[T] {
	unique := Unique(MergeSort(values))
	return &Tree[T]{
		root:  build(unique, 0, len(unique)-1),
		count: len(unique),
	}
}

// internal: build a sub-tree over the inclusive range [start, end]
func build[T constraints.Ordered](sorted []T, start int, end int) *Node[T] {
	if start > end {
		return nil
	}
	middle := (start + end) / 2
	p := newNode(sorted[middle])
	p.left = build(sorted, start, middle-1)
	p.right = build(sorted, middle+1, end)
	return p
}
