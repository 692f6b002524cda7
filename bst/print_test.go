// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
)

func TestFprint(t *testing.T) {
	tree := bst.Build(exampleValues)

	expected := strings.Join([]string{
		"│           ┌── 6345",
		"│       ┌── 324",
		"│   ┌── 67",
		"│   │   │   ┌── 23",
		"│   │   └── 9",
		"└── 8",
		"    │       ┌── 7",
		"    │   ┌── 5",
		"    └── 4",
		"        │   ┌── 3",
		"        └── 1",
	}, "\n") + "\n"

	buffer := &bytes.Buffer{}
	levels := tree.Fprint(buffer)
	assert.Equal(t, expected, buffer.String(), "wrong diagram")
	assert.Equal(t, 4, levels, "wrong number of levels")
}

func TestFprintEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	levels := bst.New[int]().Fprint(buffer)
	assert.Equal(t, 0, levels, "wrong number of levels")
	assert.Equal(t, "", buffer.String(), "output for empty tree")
}

func TestOutline(t *testing.T) {
	tree := bst.Build(exampleValues)
	outline := tree.Outline()

	lines := strings.Split(strings.TrimSpace(outline), "\n")
	assert.Equal(t, "8", lines[0], "root not first")
	assert.Len(t, lines, 11, "wrong number of lines")
	for _, label := range []string{"L: 4", "R: 67", "L: 1", "R: 3", "R: 5", "R: 7", "L: 9", "R: 23", "R: 324", "R: 6345"} {
		assert.Contains(t, outline, label, "missing: %q", label)
	}
	assert.True(t, strings.Index(outline, "L: 4") < strings.Index(outline, "R: 67"), "left not before right")

	assert.Contains(t, bst.New[int]().Outline(), "(empty)", "empty tree outline")
}
