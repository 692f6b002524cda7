// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
	"golang.org/x/exp/constraints"
)

// Visitor - receives each node of a traversal
type Visitor[T constraints.Ordered] interface {
	Visit(node *Node[T])
}

// VisitorFunc - adapter to allow an ordinary function as a Visitor
type VisitorFunc[T constraints.Ordered] func(node *Node[T])

// Visit - call f(node)
func (f VisitorFunc[T]) Visit(node *Node[T]) {
	f(node)
}

// a nil interface and a nil function are both rejected
func checkVisitor[T constraints.Ordered](v Visitor[T]) error {
	if nil == v {
		return fault.ErrVisitorRequired
	}
	if f, ok := v.(VisitorFunc[T]); ok && nil == f {
		return fault.ErrVisitorRequired
	}
	return nil
}

// LevelOrder - breadth first, each level left to right
func (tree *Tree[T]) LevelOrder(v Visitor[T]) error {
	if err := checkVisitor(v); nil != err {
		return err
	}
	if nil == tree.root {
		return nil
	}

	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		v.Visit(p)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return nil
}

// PreOrder - node, then left sub-tree, then right sub-tree
func (tree *Tree[T]) PreOrder(v Visitor[T]) error {
	if err := checkVisitor(v); nil != err {
		return err
	}
	preOrder(tree.root, v)
	return nil
}

// InOrder - left sub-tree, then node, then right sub-tree; this
// visits the values in ascending order
func (tree *Tree[T]) InOrder(v Visitor[T]) error {
	if err := checkVisitor(v); nil != err {
		return err
	}
	inOrder(tree.root, v)
	return nil
}

// PostOrder - left sub-tree, then right sub-tree, then node
func (tree *Tree[T]) PostOrder(v Visitor[T]) error {
	if err := checkVisitor(v); nil != err {
		return err
	}
	postOrder(tree.root, v)
	return nil
}

func preOrder[T constraints.Ordered](p *Node[T], v Visitor[T]) {
	if nil == p {
		return
	}
	v.Visit(p)
	preOrder(p.left, v)
	preOrder(p.right, v)
}

func inOrder[T constraints.Ordered](p *Node[T], v Visitor[T]) {
	if nil == p {
		return
	}
	inOrder(p.left, v)
	v.Visit(p)
	inOrder(p.right, v)
}

func postOrder[T constraints.Ordered](p *Node[T], v Visitor[T]) {
	if nil == p {
		return
	}
	postOrder(p.left, v)
	postOrder(p.right, v)
	v.Visit(p)
}

// Values - all values in ascending order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	inOrder[T](tree.root, VisitorFunc[T](func(node *Node[T]) {
		values = append(values, node.value)
	}))
	return values
}

// LevelValues - values grouped by depth, root level first
func (tree *Tree[T]) LevelValues() [][]T {
	levels := [][]T{}
	if nil == tree.root {
		return levels
	}

	current := []*Node[T]{tree.root}
	for len(current) > 0 {
		next := []*Node[T]{}
		values := make([]T, 0, len(current))
		for _, p := range current {
			values = append(values, p.value)
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		levels = append(levels, values)
		current = next
	}
	return levels
}
