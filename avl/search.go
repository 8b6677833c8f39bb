// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - true if an item comparing equal to data is in the tree
func (tree *Tree[T]) Find(data T) bool {
	it := tree.root
	for nil != it {
		c := tree.compare(it.data, data)
		if 0 == c {
			return true
		}
		it = it.link[direction(c)]
	}
	return false
}

// First - return the lowest item, false if the tree is empty
func (tree *Tree[T]) First() (T, bool) {
	return tree.root.extreme(left)
}

// Last - return the highest item, false if the tree is empty
func (tree *Tree[T]) Last() (T, bool) {
	return tree.root.extreme(right)
}

// internal: follow dir links to the end of a sub-tree
func (n *node[T]) extreme(dir int) (T, bool) {
	if nil == n {
		var zero T
		return zero, false
	}
	for nil != n.link[dir] {
		n = n.link[dir]
	}
	return n.data, true
}

// the link to follow for a comparison of node against target
//
// node < target is on the right
func direction(c int) int {
	if c < 0 {
		return right
	}
	return left
}
