// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// maxHeight - depth of the path stack used by Insert and Remove
//
// an AVL tree of n nodes is at most ceil(1.44 * log2(n + 2)) high,
// which is below 64 for any count that fits in an int
const maxHeight = 64

// link indexes
const (
	left  = 0
	right = 1
)

// a node in the tree
type node[T any] struct {
	link   [2]*node[T] // left and right sub-trees
	height int         // a leaf is 0
	data   T           // the caller's item
}

// height of a possibly empty sub-tree
func height[T any](n *node[T]) int {
	if nil == n {
		return -1
	}
	return n.height
}

// recompute the cached height from the children
func (n *node[T]) refresh() {
	n.height = 1 + max(height(n.link[left]), height(n.link[right]))
}

// single rotation: the child opposite dir replaces root and root
// moves down on the dir side
func rotate[T any](root *node[T], dir int) *node[T] {
	save := root.link[dir^1]

	root.link[dir^1] = save.link[dir]
	save.link[dir] = root

	root.refresh()
	save.refresh()

	return save
}

// double rotation: straighten the zig-zag below root first
func rotate2[T any](root *node[T], dir int) *node[T] {
	root.link[dir^1] = rotate(root.link[dir^1], dir^1)
	return rotate(root, dir)
}
