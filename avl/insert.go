// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - add a new item to the tree
//
// returns:
//
//	fault.ErrAlreadyExists  an equal item is present
//	fault.ErrOutOfMemory    no node could be allocated
//
// in both cases the tree is unchanged
func (tree *Tree[T]) Insert(data T) error {
	if nil == tree.root {
		n, err := tree.newNode(data)
		if nil != err {
			return err
		}
		tree.root = n
		return nil
	}

	var up [maxHeight]*node[T] // ancestors
	var upd [maxHeight]int     // direction taken at each ancestor
	top := 0

	// search for an empty link, saving the path
	it := tree.root
	for {
		c := tree.compare(it.data, data)
		if 0 == c {
			return fault.ErrAlreadyExists
		}
		if top >= maxHeight {
			fault.Panicf("avl: insert path exceeds: %d levels", maxHeight)
		}
		dir := direction(c)
		up[top] = it
		upd[top] = dir
		top += 1

		if nil == it.link[dir] {
			break
		}
		it = it.link[dir]
	}

	n, err := tree.newNode(data)
	if nil != err {
		return err
	}
	it.link[upd[top-1]] = n

	// walk back up the search path
	for done := false; top > 0 && !done; {
		top -= 1
		p := up[top]
		dir := upd[top]

		grown := height(p.link[dir])
		other := height(p.link[dir^1])

		switch diff := grown - other; {
		case 0 == diff:
			// the shorter side caught up so nothing above changes
			done = true

		case diff >= 2:
			outer := p.link[dir].link[dir]
			inner := p.link[dir].link[dir^1]
			if height(outer) >= height(inner) {
				p = rotate(p, dir^1)
			} else {
				p = rotate2(p, dir^1)
			}
			tree.reattach(up[:top], upd[:top], p)
			done = true
		}

		p.refresh()
	}

	return nil
}

// link a rebalanced sub-tree back into its parent, the last entry of
// the path, or make it the root if the path is empty
func (tree *Tree[T]) reattach(up []*node[T], upd []int, n *node[T]) {
	top := len(up)
	if 0 == top {
		tree.root = n
		return
	}
	up[top-1].link[upd[top-1]] = n
}
