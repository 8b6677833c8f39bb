// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the tree invariants
//
// returns nil or the error class of the first violation found:
// search order, balance, cached height or size
func (tree *Tree[T]) Check() error {
	if nil == tree.compare || nil == tree.destroy {
		return fault.ErrMissingParameters
	}
	if (0 == tree.size) != (nil == tree.root) {
		return fault.ErrSizeMismatch
	}
	count, _, err := checkNode(tree.root, nil, nil, 0, tree.compare)
	if nil != err {
		return err
	}
	if count != tree.size {
		return fault.ErrSizeMismatch
	}
	return nil
}

// Validate - true if the tree invariants hold
//
// always true when built with "avlrelease"
func (tree *Tree[T]) Validate() bool {
	if !debugging {
		return true
	}
	return nil == tree.Check()
}

// Assert - abort if any tree invariant is broken
//
// a broken invariant is a bug in this package, not a caller error,
// so it is logged as critical and the program panics
func (tree *Tree[T]) Assert() {
	if !debugging {
		return
	}
	if err := tree.Check(); nil != err {
		fault.Panicf("avl: tree: %p  size: %d  invariant failed: %s", tree, tree.size, err)
	}
}

// internal: check a sub-tree whose items must lie strictly between
// the items of lo and hi (nil for no bound)
//
// depth is checked on the way down so a degenerate chain is reported
// before its imbalance; returns the node count and the computed height
func checkNode[T any](n *node[T], lo *node[T], hi *node[T], depth int, compare CompareFunc[T]) (int, int, error) {
	if nil == n {
		return 0, -1, nil
	}
	if depth >= maxHeight {
		return 0, 0, fault.ErrTooDeep
	}
	if nil != lo && compare(lo.data, n.data) >= 0 {
		return 0, 0, fault.ErrSearchOrder
	}
	if nil != hi && compare(n.data, hi.data) >= 0 {
		return 0, 0, fault.ErrSearchOrder
	}

	lc, lh, err := checkNode(n.link[left], lo, n, depth+1, compare)
	if nil != err {
		return 0, 0, err
	}
	rc, rh, err := checkNode(n.link[right], n, hi, depth+1, compare)
	if nil != err {
		return 0, 0, err
	}

	if lh-rh > 1 || rh-lh > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	h := 1 + max(lh, rh)
	if h != n.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	return 1 + lc + rc, h, nil
}
