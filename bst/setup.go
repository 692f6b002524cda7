// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"
)

// Node - a node in the tree, each link owns its whole sub-tree
type Node[T constraints.Ordered] struct {
	left  *Node[T] // left sub-tree: all values less than value
	right *Node[T] // right sub-tree: all values greater than value
	value T
}

// Tree - type to hold the root node of a tree
type Tree[T constraints.Ordered] struct {
	root  *Node[T]
	count int
	log   *logger.L
}

// New - create an initially empty tree
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// SetLog - attach a logger channel, nil turns logging off
func (tree *Tree[T]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Left - left child of a node or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child of a node or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// IsLeaf - true if a node has no children
func (p *Node[T]) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

func newNode[T constraints.Ordered](value T) *Node[T] {
	return &Node[T]{
		left:  nil,
		right: nil,
		value: value,
	}
}

// logging helpers, a tree without a channel stays silent
func (tree *Tree[T]) infof(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Infof(format, arguments...)
	}
}

func (tree *Tree[T]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}
