// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// split a comma separated list of integers, blank items are ignored
func parseValues(s string) ([]int, error) {
	values := []int{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" == item {
			continue
		}
		v, err := strconv.Atoi(item)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidValue, item)
		}
		values = append(values, v)
	}
	return values, nil
}

// the required --value flag of a command
func getValue(c *cli.Context) (int, error) {
	s := strings.TrimSpace(c.String("value"))
	if "" == s {
		return 0, ErrValueRequired
	}
	v, err := strconv.Atoi(s)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidValue, s)
	}
	return v, nil
}

// summary of a whole tree
type treeInfo struct {
	Count    int   `json:"count"`
	Height   int   `json:"height"`
	Balanced bool  `json:"balanced"`
	Values   []int `json:"values"`
}

func getTreeInfo(tree *bst.Tree[int]) treeInfo {
	return treeInfo{
		Count:    tree.Count(),
		Height:   tree.Height(),
		Balanced: tree.IsBalanced(),
		Values:   tree.Values(),
	}
}
