// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/brianvoe/gofakeit/v6"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

const (
	scenarioLoggerPrefix = "scenario"
)

// outcome of one scenario run
type scenarioResult struct {
	samples    []int
	initial    *bst.Tree[int]
	rebalanced *bst.Tree[int]

	initialBalanced    bool
	extendedBalanced   bool
	rebalancedBalanced bool
	alreadyBalanced    bool
	duplicates         []int
}

// generate random values, build a tree from them, unbalance it with
// the extra values and finally rebalance it
//
// the initial tree is modified in place by the extra inserts
func runScenario(w io.Writer, log *logger.L, config *Configuration) (*scenarioResult, error) {

	faker := gofakeit.New(config.Seed)

	samples := make([]int, config.SampleCount)
	for i := range samples {
		samples[i] = faker.Number(config.MinimumValue, config.MaximumValue)
	}
	log.Infof("generated: %d samples in [%d, %d]", len(samples), config.MinimumValue, config.MaximumValue)
	log.Debugf("samples: %v", samples)

	result := &scenarioResult{
		samples: samples,
	}

	tree := bst.Build(samples)
	tree.SetLog(log)
	result.initial = tree
	result.initialBalanced = tree.IsBalanced()

	fmt.Fprintf(w, "samples: %s\n", joinValues(samples))
	fmt.Fprintf(w, "initial tree: %d distinct values\n", tree.Count())
	drawTree(w, tree, config.Format)
	fmt.Fprintf(w, "isBalanced: %t\n", result.initialBalanced)

	if config.Traversals {
		if err := writeTraversals(w, tree); nil != err {
			return nil, err
		}
	}

	expected := map[int]struct{}{}
	for _, v := range samples {
		expected[v] = struct{}{}
	}

	for _, v := range config.ExtraValues {
		err := tree.Insert(v)
		if fault.IsErrExists(err) {
			log.Warnf("insert: %d  error: %s", v, err)
			fmt.Fprintf(w, "insert: %d: %s\n", v, err)
			result.duplicates = append(result.duplicates, v)
			continue
		} else if nil != err {
			return nil, err
		}
		expected[v] = struct{}{}
	}

	result.extendedBalanced = tree.IsBalanced()
	fmt.Fprintf(w, "after inserting: %s\n", joinValues(config.ExtraValues))
	drawTree(w, tree, config.Format)
	fmt.Fprintf(w, "isBalanced: %t\n", result.extendedBalanced)

	rebalanced, err := tree.Rebalance()
	if fault.ErrAlreadyBalanced == err {
		log.Info("rebalance: no change")
		fmt.Fprintf(w, "rebalance: %s\n", err)
		result.alreadyBalanced = true
		rebalanced = tree
	} else if nil != err {
		return nil, err
	}
	result.rebalanced = rebalanced
	result.rebalancedBalanced = rebalanced.IsBalanced()

	fmt.Fprintf(w, "rebalanced tree:\n")
	drawTree(w, rebalanced, config.Format)
	fmt.Fprintf(w, "isBalanced: %t\n", result.rebalancedBalanced)

	if err := checkValues(rebalanced, expected); nil != err {
		log.Errorf("rebalanced values: %v  error: %s", rebalanced.Values(), err)
		return nil, err
	}
	log.Infof("rebalanced: %d values  height: %d", rebalanced.Count(), rebalanced.Height())

	return result, nil
}

// the tree must hold exactly the expected values in ascending order
func checkValues(tree *bst.Tree[int], expected map[int]struct{}) error {
	if err := tree.CheckOrder(); nil != err {
		return err
	}

	values := tree.Values()
	if len(values) != len(expected) {
		return fault.ErrValuesChanged
	}
	for _, v := range values {
		if _, ok := expected[v]; !ok {
			return fault.ErrValuesChanged
		}
	}
	return nil
}

func drawTree(w io.Writer, tree *bst.Tree[int], format string) {
	switch format {
	case formatOutline:
		fmt.Fprint(w, tree.Outline())
	default:
		tree.Fprint(w)
	}
}

// print the four traversal orders one per line
func writeTraversals(w io.Writer, tree *bst.Tree[int]) error {
	orders := []struct {
		name     string
		traverse func(bst.Visitor[int]) error
	}{
		{"level order", tree.LevelOrder},
		{"pre order", tree.PreOrder},
		{"in order", tree.InOrder},
		{"post order", tree.PostOrder},
	}

	for _, order := range orders {
		values := []int{}
		err := order.traverse(bst.VisitorFunc[int](func(node *bst.Node[int]) {
			values = append(values, node.Value())
		}))
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", order.name, joinValues(values))
	}
	return nil
}

func joinValues(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, " ")
}
