// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CompareFunc - three-way comparison of two items
//
// must return a negative value if a < b, zero if a == b and a
// positive value if a > b, and define a total order
type CompareFunc[T any] func(a T, b T) int

// DestroyFunc - release an item that has left the tree
type DestroyFunc[T any] func(item T)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	size    int
	limit   int // maximum number of nodes, zero for no limit
	compare CompareFunc[T]
	destroy DestroyFunc[T]
}

// New - create an initially empty tree
//
// a nil compare orders items with Identity and a nil destroy does
// nothing; neither can be changed later
//
// Identity only orders reference kinds, numbers, strings and
// booleans: with a nil compare, a tree of structs or arrays panics
// with fault.ErrNotComparable on the first comparison, so such
// payloads need an explicit compare
func New[T any](compare CompareFunc[T], destroy DestroyFunc[T]) *Tree[T] {
	return NewWithLimit(compare, destroy, 0)
}

// NewWithLimit - create an empty tree that holds at most limit items
//
// an Insert beyond the limit fails with fault.ErrOutOfMemory; a limit
// of zero or less means no limit; a nil compare behaves as for New
func NewWithLimit[T any](compare CompareFunc[T], destroy DestroyFunc[T], limit int) *Tree[T] {
	if nil == compare {
		compare = Identity[T]
	}
	if nil == destroy {
		destroy = noDestroy[T]
	}
	if limit < 0 {
		limit = 0
	}
	return &Tree[T]{
		root:    nil,
		size:    0,
		limit:   limit,
		compare: compare,
		destroy: destroy,
	}
}

// Destroy - destroy every item and release the tree
//
// the caller's reference is set to nil so the tree cannot be used
// again; a nil reference is ignored
func Destroy[T any](tree **Tree[T]) {
	if nil == tree || nil == *tree {
		return
	}
	t := *tree
	t.teardown()
	t.compare = nil
	t.destroy = nil
	*tree = nil
}

// Clear - destroy every item, leaving an empty tree ready for reuse
func (tree *Tree[T]) Clear() {
	tree.teardown()
}

// IsEmpty - true if tree contains no items
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of items currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.size
}

// Limit - maximum number of items, zero if unlimited
func (tree *Tree[T]) Limit() int {
	return tree.limit
}

func noDestroy[T any](T) {}
