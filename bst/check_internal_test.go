// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/fault"
)

func TestCheckOrderViolation(t *testing.T) {
	tree := Build([]int{1, 2, 3, 4, 5, 6, 7})
	assert.Nil(t, tree.CheckOrder(), "valid tree rejected")

	// 5 is in the right sub-tree of 4, so making it 3 breaks the order
	tree.root.right.left.value = 3
	err := tree.CheckOrder()
	assert.NotNil(t, err, "violation not detected")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class")

	// equal values are not allowed either
	tree.root.right.left.value = 4
	assert.NotNil(t, tree.CheckOrder(), "duplicate not detected")
}

func TestBalanceHeightStatus(t *testing.T) {
	// a node with one leaf child measures the same as the balanced
	// status of an empty sub-tree plus one
	p := newNode(2)
	p.left = newNode(1)
	assert.Equal(t, heightStatus{height: 1, balanced: true}, balanceHeight(p), "wrong status")
	assert.Equal(t, heightStatus{height: 0, balanced: true}, balanceHeight(p.left), "wrong leaf status")
	assert.Equal(t, heightStatus{height: 0, balanced: true}, balanceHeight[int](nil), "wrong empty status")

	p.left.left = newNode(0)
	p.left.left.left = newNode(-1)
	assert.Equal(t, imbalanced, balanceHeight(p), "imbalance not detected")
}
