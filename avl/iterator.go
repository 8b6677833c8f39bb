// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Foreach - call fn for every item in ascending order
//
// fn must not modify the tree
func (tree *Tree[T]) Foreach(fn func(item T)) {
	foreach(tree.root, fn)
}

// recurse only on the left; the right side is a loop so the call
// depth is bounded by the tree height
func foreach[T any](n *node[T], fn func(item T)) {
	for nil != n {
		foreach(n.link[left], fn)
		fn(n.data)
		n = n.link[right]
	}
}

// All - a single pass sequence of the items in ascending order
//
// the tree must not be modified while the sequence is in use
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack [maxHeight + 1]*node[T]
		top := 0

		n := tree.root
		for nil != n || top > 0 {
			for nil != n {
				stack[top] = n
				top += 1
				n = n.link[left]
			}
			top -= 1
			n = stack[top]
			if !yield(n.data) {
				return
			}
			n = n.link[right]
		}
	}
}
