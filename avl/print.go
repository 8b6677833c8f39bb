// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Dump - write a summary line to w then call printer for every
// item in order
//
// does nothing when built with "avlrelease"
func (tree *Tree[T]) Dump(w io.Writer, printer func(item T)) {
	if !debugging {
		return
	}
	fmt.Fprintf(w, "avl tree: %p  size: %d  limit: %d\n", tree, tree.size, tree.limit)
	tree.Foreach(printer)
}

// Print - display an ASCII graphic representation of the tree
//
// returns the number of levels printed, zero when built with
// "avlrelease"
func (tree *Tree[T]) Print(w io.Writer) int {
	if !debugging {
		return 0
	}
	return printTree(w, tree.root, "", rootBranch)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, n *node[T], prefix string, br branch) int {
	if nil == n {
		return 0
	}
	rd := 0
	ld := 0
	if nil != n.link[right] {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, n.link[right], prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	balance := height(n.link[right]) - height(n.link[left])
	fmt.Fprintf(w, "%v  h:%d %+d\n", n.data, n.height, balance)
	if nil != n.link[left] {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, n.link[left], prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
