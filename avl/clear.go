// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// destroy all nodes without recursion
//
// left children are rotated up so the tree turns into a right
// leaning list, and a node is released as soon as it has no left
// child; only the tree itself is used as working storage
func (tree *Tree[T]) teardown() {
	count := tree.size
	freed := 0

	it := tree.root
	for nil != it {
		var save *node[T]
		if nil == it.link[left] {
			save = it.link[right]
			tree.destroy(it.data)
			tree.freeNode(it)
			freed += 1
		} else {
			save = it.link[left]
			it.link[left] = save.link[right]
			save.link[right] = it
		}
		it = save
	}
	tree.root = nil

	if freed != count || 0 != tree.size {
		fault.Panicf("avl: teardown freed: %d  of: %d  remaining size: %d", freed, count, tree.size)
	}
}
