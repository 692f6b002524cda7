// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
	"golang.org/x/exp/constraints"
)

// result of the balance scan of a sub-tree; height is only
// meaningful while balanced is true
type heightStatus struct {
	height   int
	balanced bool
}

var imbalanced = heightStatus{height: 0, balanced: false}

// IsBalanced - true if no node has sub-tree heights differing by
// more than one
func (tree *Tree[T]) IsBalanced() bool {
	return balanceHeight(tree.root).balanced
}

// internal: an empty sub-tree and a leaf both have height zero, an
// imbalance anywhere below stops the scan
func balanceHeight[T constraints.Ordered](p *Node[T]) heightStatus {
	if nil == p {
		return heightStatus{height: 0, balanced: true}
	}

	l := balanceHeight(p.left)
	if !l.balanced {
		return imbalanced
	}
	r := balanceHeight(p.right)
	if !r.balanced {
		return imbalanced
	}

	if l.height-r.height > 1 || r.height-l.height > 1 {
		return imbalanced
	}
	if p.IsLeaf() {
		return heightStatus{height: 0, balanced: true}
	}
	return heightStatus{height: 1 + max(l.height, r.height), balanced: true}
}

// Height - number of edges on the longest path from the root to a
// leaf, -1 for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

func height[T constraints.Ordered](p *Node[T]) int {
	if nil == p {
		return -1
	}
	return 1 + max(height(p.left), height(p.right))
}

// Rebalance - return a new balanced tree holding the same values
//
// the original tree is left untouched.  If it is already balanced
// nothing is built and fault.ErrAlreadyBalanced is returned.
func (tree *Tree[T]) Rebalance() (*Tree[T], error) {
	if tree.IsBalanced() {
		tree.debugf("rebalance: %s", fault.ErrAlreadyBalanced)
		return nil, fault.ErrAlreadyBalanced
	}

	values := tree.Values()
	tree.infof("rebalance: %d values", len(values))

	rebalanced := Build(values)
	rebalanced.log = tree.log
	return rebalanced, nil
}
