// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
)

type metadata struct {
	tree    *bst.Tree[int]
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// setup all flags and commands
func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bst-cli"
	app.Usage = "build a binary search tree and run one operation on it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	valueFlag := cli.StringFlag{
		Name:  "value, n",
		Value: "",
		Usage: "*integer `VALUE`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "values, l",
			Value: "",
			Usage: " comma separated initial tree `VALUES` e.g. 1,7,4",
		},
		cli.StringFlag{
			Name:  "log-directory, g",
			Value: "",
			Usage: " log tree operations to bst-cli.log in existing `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "show the tree built from the values",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runBuild,
		},
		{
			Name:      "insert",
			Usage:     "insert a value, duplicates are an error",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{valueFlag},
			Action:    runInsert,
		},
		{
			Name:      "delete",
			Usage:     "delete a value",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{valueFlag},
			Action:    runDelete,
		},
		{
			Name:      "find",
			Usage:     "find a value, its parent and its depth",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{valueFlag},
			Action:    runFind,
		},
		{
			Name:      "traverse",
			Usage:     "list the values in a traversal order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: orderIn,
					Usage: " traversal `ORDER` [level|pre|in|post]",
				},
			},
			Action: runTraverse,
		},
		{
			Name:   "levels",
			Usage:  "list the values of each level",
			Flags:  []cli.Flag{},
			Action: runLevels,
		},
		{
			Name:   "balanced",
			Usage:  "check whether the tree is balanced",
			Flags:  []cli.Flag{},
			Action: runBalanced,
		},
		{
			Name:   "rebalance",
			Usage:  "rebuild the tree if it is not balanced",
			Flags:  []cli.Flag{},
			Action: runRebalance,
		},
		{
			Name:  "print",
			Usage: "draw the tree",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "outline, t",
					Usage: " root first outline instead of sideways diagram",
				},
			},
			Action: runPrint,
		},
		{
			Name:  "version",
			Usage: "display bst-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// build the tree before each command
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		values, err := parseValues(c.GlobalString("values"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "values: %v\n", values)
		}

		tree := bst.Build(values)

		m := &metadata{
			tree:    tree,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if directory := c.GlobalString("log-directory"); "" != directory {
			logging := logger.Configuration{
				Directory: directory,
				File:      "bst-cli.log",
				Size:      1048576,
				Count:     10,
				Console:   false,
				Levels: map[string]string{
					logger.DefaultTag: "debug",
				},
			}
			if err := logger.Initialise(logging); nil != err {
				return err
			}
			m.logging = true
			tree.SetLog(logger.New("bst-cli"))
		}

		if verbose {
			fmt.Fprintf(e, "tree: %d nodes\n", tree.Count())
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			logger.Finalise()
			m.logging = false
		}
		return nil
	}

	return app
}
