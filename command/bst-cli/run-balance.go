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

type balancedResult struct {
	Balanced bool `json:"balanced"`
	Height   int  `json:"height"`
}

type rebalanceResult struct {
	Rebalanced bool    `json:"rebalanced"`
	Levels     [][]int `json:"levels"`
	treeInfo
}

func runBalanced(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	out := balancedResult{
		Balanced: m.tree.IsBalanced(),
		Height:   m.tree.Height(),
	}
	return printJson(m.w, out)
}

func runRebalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := m.tree.Rebalance()
	rebalanced := true
	if fault.ErrAlreadyBalanced == err {
		if m.verbose {
			fmt.Fprintf(m.e, "rebalance: %s\n", err)
		}
		tree = m.tree
		rebalanced = false
	} else if nil != err {
		return err
	}
	m.tree = tree

	out := rebalanceResult{
		Rebalanced: rebalanced,
		Levels:     tree.LevelValues(),
		treeInfo:   getTreeInfo(tree),
	}
	return printJson(m.w, out)
}
