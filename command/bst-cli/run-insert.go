// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type insertResult struct {
	Inserted int `json:"inserted"`
	treeInfo
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value, err := getValue(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "insert: %d\n", value)
	}

	err = m.tree.Insert(value)
	if nil != err {
		return err
	}

	out := insertResult{
		Inserted: value,
		treeInfo: getTreeInfo(m.tree),
	}
	return printJson(m.w, out)
}
