// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a binary search tree over ordered scalar values that
// is built balanced and can be checked and rebalanced on demand
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Construction sorts the input with a merge sort, drops duplicate
// values and builds a minimal height tree by recursively choosing the
// middle element of each range as the sub-tree root.
//
// Insert and Delete are plain (unbalanced) binary search tree
// operations, so a sequence of mutations can leave the tree out of
// balance.  IsBalanced detects this and Rebalance returns a new
// balanced tree holding the same values; the original tree is not
// modified.
//
// Floating point NaN values have no ordering and must not be stored.
package bst
