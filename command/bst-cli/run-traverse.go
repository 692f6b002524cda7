// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
)

// traversal orders
const (
	orderLevel = "level"
	orderPre   = "pre"
	orderIn    = "in"
	orderPost  = "post"
)

type traverseResult struct {
	Order  string `json:"order"`
	Values []int  `json:"values"`
}

type levelsResult struct {
	Height int     `json:"height"`
	Levels [][]int `json:"levels"`
}

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	order := strings.ToLower(strings.TrimSpace(c.String("order")))

	var traverse func(bst.Visitor[int]) error
	switch order {
	case orderLevel:
		traverse = m.tree.LevelOrder
	case orderPre:
		traverse = m.tree.PreOrder
	case orderIn:
		traverse = m.tree.InOrder
	case orderPost:
		traverse = m.tree.PostOrder
	default:
		return ErrInvalidOrder
	}

	out := traverseResult{
		Order:  order,
		Values: []int{},
	}
	err := traverse(bst.VisitorFunc[int](func(node *bst.Node[int]) {
		out.Values = append(out.Values, node.Value())
	}))
	if nil != err {
		return err
	}

	return printJson(m.w, out)
}

func runLevels(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	out := levelsResult{
		Height: m.tree.Height(),
		Levels: m.tree.LevelValues(),
	}
	return printJson(m.w, out)
}
