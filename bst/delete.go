// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Delete - removes a specific value from the tree
//
// returns false if the value was not present.  No rebalancing is
// done.
func (tree *Tree[T]) Delete(value T) bool {
	removed := false
	tree.root, removed = remove(value, tree.root)
	if removed {
		tree.count -= 1
		tree.debugf("delete: %v", value)
	}
	return removed
}

// internal delete routine, returns the replacement for p
func remove[T constraints.Ordered](value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch {
	case value < p.value:
		p.left, removed = remove(value, p.left)
		return p, removed
	case value > p.value:
		p.right, removed = remove(value, p.right)
		return p, removed
	}

	// found: at most one child, so the child takes its place
	if nil == p.left {
		r := p.right
		p.right = nil
		return r, true
	}
	if nil == p.right {
		l := p.left
		p.left = nil
		return l, true
	}

	// two children: take over the in-order successor's value, then
	// remove the successor, which has no left child
	successor := p.right.first()
	p.value = successor.value
	p.right, _ = remove(successor.value, p.right)
	return p, true
}
