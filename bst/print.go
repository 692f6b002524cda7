// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"os"

	"github.com/xlab/treeprint"
	"golang.org/x/exp/constraints"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on
// stdout, returns the number of levels
func (tree *Tree[T]) Print() int {
	return tree.Fprint(os.Stdout)
}

// Fprint - display the tree sideways, right sub-tree above its
// parent, returns the number of levels
func (tree *Tree[T]) Fprint(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree[T constraints.Ordered](w io.Writer, p *Node[T], prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "│   "
		if right == br {
			t = "    "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case root, left:
		fmt.Fprintf(w, "%s└── %v\n", prefix, p.value)
	case right:
		fmt.Fprintf(w, "%s┌── %v\n", prefix, p.value)
	}
	if nil != p.left {
		t := "    "
		if right == br {
			t = "│   "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	return 1 + max(rd, ld)
}

// Outline - render the tree root first as an indented outline, each
// child labelled L: or R:
func (tree *Tree[T]) Outline() string {
	if nil == tree.root {
		return treeprint.NewWithRoot("(empty)").String()
	}
	outline := treeprint.NewWithRoot(fmt.Sprint(tree.root.value))
	addOutline(outline, tree.root)
	return outline.String()
}

func addOutline[T constraints.Ordered](outline treeprint.Tree, p *Node[T]) {
	for _, child := range []struct {
		label string
		node  *Node[T]
	}{
		{"L: ", p.left},
		{"R: ", p.right},
	} {
		if nil == child.node {
			continue
		}
		text := fmt.Sprintf("%s%v", child.label, child.node.value)
		if child.node.IsLeaf() {
			outline.AddNode(text)
		} else {
			addOutline(outline.AddBranch(text), child.node)
		}
	}
}
