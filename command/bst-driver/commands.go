// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// a complete configuration showing every setting at its default
const sampleConfiguration = `-- bst-driver.conf

local M = {}

-- "." is the directory containing this file
M.data_directory = "."

-- random input
M.sample_count = 30
M.minimum_value = 0
M.maximum_value = 100
M.seed = 0

-- inserted after the initial build
M.extra_values = { 1033, 150, 483 }

-- "sideways" or "outline"
M.format = "sideways"
M.traversals = false

M.logging = {
    size = 1048576,
    count = 10,
    console = false,
    directory = "log",
    file = "bst-driver.log",
    levels = {
        DEFAULT = "info",
    },
}

return M
`

// setup command handler
//
// commands that run before the configuration file is read
func processSetupCommand(program string, arguments []string) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "sample-config", "sample":
		if err := writeSampleConfiguration(arguments); nil != err {
			fmt.Printf("error writing configuration: %s\n", err)
			exitwithstatus.Exit(1)
		}

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--watch] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  sample-config [FILE]       (sample) - write a configuration with all defaults\n")
		fmt.Printf("                                        to FILE or to standard output\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// write to the named file, which must not already exist
func writeSampleConfiguration(arguments []string) error {
	if 0 == len(arguments) {
		_, err := io.WriteString(os.Stdout, sampleConfiguration)
		return err
	}

	fileName := arguments[0]
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0o600)
	if nil != err {
		return err
	}
	defer f.Close()

	_, err = io.WriteString(f, sampleConfiguration)
	if nil == err {
		fmt.Printf("generated configuration: %q\n", fileName)
	}
	return err
}
