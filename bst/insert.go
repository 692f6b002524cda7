// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
	"golang.org/x/exp/constraints"
)

// Insert - add a new leaf holding value
//
// a value that is already present leaves the tree unchanged and
// returns fault.ErrValueAlreadyPresent.  No rebalancing is done.
func (tree *Tree[T]) Insert(value T) error {
	added := false
	tree.root, added = insert(value, tree.root)
	if !added {
		tree.infof("insert: %v: %s", value, fault.ErrValueAlreadyPresent)
		return fault.ErrValueAlreadyPresent
	}
	tree.count += 1
	return nil
}

// internal routine for insert, returns the possibly new sub-tree root
func insert[T constraints.Ordered](value T, p *Node[T]) (*Node[T], bool) {
	if nil == p {
		return newNode(value), true
	}
	added := false
	switch {
	case value < p.value:
		p.left, added = insert(value, p.left)
	case value > p.value:
		p.right, added = insert(value, p.right)
	}
	return p, added
}
