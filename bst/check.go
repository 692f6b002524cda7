// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/bstree/fault"
	"golang.org/x/exp/constraints"
)

// CheckOrder - verify every left sub-tree holds smaller values and
// every right sub-tree larger values than their parent
func (tree *Tree[T]) CheckOrder() error {
	return checkOrder(tree.root, nil, nil)
}

// internal: consistency checker, lower and upper are exclusive
// bounds inherited from the ancestors
func checkOrder[T constraints.Ordered](p *Node[T], lower *T, upper *T) error {
	if nil == p {
		return nil
	}
	if nil != lower && !(*lower < p.value) {
		return fmt.Errorf("value: %v not above: %v: %w", p.value, *lower, fault.ErrOrderViolation)
	}
	if nil != upper && !(p.value < *upper) {
		return fmt.Errorf("value: %v not below: %v: %w", p.value, *upper, fault.ErrOrderViolation)
	}
	if err := checkOrder(p.left, lower, &p.value); nil != err {
		return err
	}
	return checkOrder(p.right, &p.value, upper)
}
