// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

// diagram text, not JSON
func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if c.Bool("outline") {
		fmt.Fprint(m.w, m.tree.Outline())
		return nil
	}

	if m.tree.IsEmpty() {
		fmt.Fprintf(m.w, "(empty)\n")
		return nil
	}

	levels := m.tree.Fprint(m.w)
	if m.verbose {
		fmt.Fprintf(m.e, "levels: %d\n", levels)
	}
	return nil
}
