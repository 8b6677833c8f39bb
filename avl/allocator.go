// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// allocate a new leaf node and account for it in the tree size
//
// fails with ErrOutOfMemory, leaving the tree untouched, if the tree
// limit is reached or the count would overflow
func (tree *Tree[T]) newNode(data T) (*node[T], error) {
	if math.MaxInt == tree.size {
		return nil, fault.ErrOutOfMemory
	}
	if tree.limit > 0 && tree.size >= tree.limit {
		return nil, fault.ErrOutOfMemory
	}
	tree.size += 1
	return &node[T]{
		height: 0,
		data:   data,
	}, nil
}

// release a node that is no longer linked into the tree
//
// the item is cleared so the tree does not keep it reachable, the
// caller is responsible for having destroyed it first if required
func (tree *Tree[T]) freeNode(n *node[T]) {
	var zero T
	n.link[left] = nil
	n.link[right] = nil
	n.data = zero
	n.height = 0
	tree.size -= 1
}
