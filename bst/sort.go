// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"golang.org/x/exp/constraints"
)

// MergeSort - return a sorted copy of values
//
// top-down merge sort, stable, O(n log n) in the worst case
func MergeSort[T constraints.Ordered](values []T) []T {
	if len(values) <= 1 {
		return append([]T(nil), values...)
	}
	middle := len(values) / 2
	return merge(MergeSort(values[:middle]), MergeSort(values[middle:]))
}

// take the smaller front element until one side is exhausted, the
// left element wins ties
func merge[T constraints.Ordered](left []T, right []T) []T {
	merged := make([]T, 0, len(left)+len(right))
	i := 0
	j := 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			merged = append(merged, right[j])
			j += 1
		} else {
			merged = append(merged, left[i])
			i += 1
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}

// Unique - keep only the first occurrence of each value in a sorted
// sequence
func Unique[T constraints.Ordered](sorted []T) []T {
	unique := make([]T, 0, len(sorted))
	for i, value := range sorted {
		if 0 == i || value != sorted[i-1] {
			unique = append(unique, value)
		}
	}
	return unique
}
