// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Remove - delete the item comparing equal to data and destroy it
//
// returns fault.ErrNotFound, with the tree unchanged, if there is no
// such item
func (tree *Tree[T]) Remove(data T) error {
	var up [maxHeight]*node[T] // ancestors
	var upd [maxHeight]int     // direction taken at each ancestor
	top := 0

	push := func(n *node[T], dir int) {
		if top >= maxHeight {
			fault.Panicf("avl: remove path exceeds: %d levels", maxHeight)
		}
		up[top] = n
		upd[top] = dir
		top += 1
	}

	it := tree.root
	for {
		if nil == it {
			return fault.ErrNotFound
		}
		c := tree.compare(it.data, data)
		if 0 == c {
			break
		}
		dir := direction(c)
		push(it, dir)
		it = it.link[dir]
	}

	if nil == it.link[left] || nil == it.link[right] {

		// splice in the only child, if any
		dir := left
		if nil == it.link[left] {
			dir = right
		}
		tree.reattach(up[:top], upd[:top], it.link[dir])

		tree.destroy(it.data)
		tree.freeNode(it)

	} else {

		// the in-order successor is the leftmost node on the right
		push(it, right)
		heir := it.link[right]
		for nil != heir.link[left] {
			push(heir, left)
			heir = heir.link[left]
		}

		// it keeps its place in the tree and takes the successor's
		// item; the successor node is the one that is unlinked
		tree.destroy(it.data)
		it.data = heir.data
		up[top-1].link[upd[top-1]] = heir.link[right]

		tree.freeNode(heir)
	}

	// walk back up the search path
	for top > 0 {
		top -= 1
		p := up[top]
		dir := upd[top]

		shrunk := height(p.link[dir])
		other := height(p.link[dir^1])
		p.height = 1 + max(shrunk, other)

		diff := shrunk - other
		if -1 == diff {
			// was balanced, height is unchanged
			break
		}

		if diff <= -2 {
			near := p.link[dir^1].link[dir]
			far := p.link[dir^1].link[dir^1]
			if height(near) <= height(far) {
				p = rotate(p, dir)
			} else {
				p = rotate2(p, dir)
			}
			tree.reattach(up[:top], upd[:top], p)
		}
	}

	return nil
}
