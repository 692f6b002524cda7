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

type deleteResult struct {
	Deleted int `json:"deleted"`
	treeInfo
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value, err := getValue(c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "delete: %d\n", value)
	}

	if !m.tree.Delete(value) {
		return fault.ErrValueNotFound
	}

	out := deleteResult{
		Deleted:  value,
		treeInfo: getTreeInfo(m.tree),
	}
	return printJson(m.w, out)
}
