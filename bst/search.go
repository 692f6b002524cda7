// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// Find - find a specific value, nil if not present
func (tree *Tree[T]) Find(value T) *Node[T] {
	node, _ := search(value, tree.root, nil)
	return node
}

// FindWithParent - find a specific value and also return its
// immediate parent, which is nil for the root or if not found
func (tree *Tree[T]) FindWithParent(value T) (*Node[T], *Node[T]) {
	return search(value, tree.root, nil)
}

// Contains - true if the value is in the tree
func (tree *Tree[T]) Contains(value T) bool {
	return nil != tree.Find(value)
}

func search[T constraints.Ordered](value T, p *Node[T], up *Node[T]) (*Node[T], *Node[T]) {
	if nil == p {
		return nil, nil
	}

	switch {
	case value < p.value:
		return search(value, p.left, p)
	case value > p.value:
		return search(value, p.right, p)
	default:
		return p, up
	}
}

// First - return the node with the lowest value
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
