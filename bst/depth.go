// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Depth - number of edges from the root to a node
//
// the node is located by identity, not by value, so a node from a
// different tree, or one that has been deleted, is not found and
// (-1, false) is returned.
func (tree *Tree[T]) Depth(node *Node[T]) (int, bool) {
	if nil == tree.root || nil == node {
		return -1, false
	}
	d := findDepth(tree.root, node, 0)
	return d, d >= 0
}

func findDepth[T constraints.Ordered](p *Node[T], node *Node[T], depth int) int {
	if nil == p {
		return -1
	}
	if p == node {
		return depth
	}
	if d := findDepth(p.left, node, depth+1); d >= 0 {
		return d
	}
	return findDepth(p.right, node, depth+1)
}
