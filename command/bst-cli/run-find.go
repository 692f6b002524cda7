// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/fault"
)

type findResult struct {
	Value  int  `json:"value"`
	Parent *int `json:"parent"` // null for the root
	Depth  int  `json:"depth"`
	Leaf   bool `json:"leaf"`
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value, err := getValue(c)
	if nil != err {
		return err
	}

	node, parent := m.tree.FindWithParent(value)
	if nil == node {
		return fault.ErrValueNotFound
	}

	depth, ok := m.tree.Depth(node)
	if !ok {
		return fault.ErrNodeNotFound
	}

	out := findResult{
		Value: node.Value(),
		Depth: depth,
		Leaf:  node.IsLeaf(),
	}
	if nil != parent {
		p := parent.Value()
		out.Parent = &p
	}

	if m.verbose {
		fmt.Fprintf(m.e, "found: %d at depth: %d\n", value, depth)
	}
	return printJson(m.w, out)
}
