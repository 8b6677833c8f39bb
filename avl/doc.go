// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree holding a set
// of opaque items
//
// Note: an individual tree is not thread safe, so either access only
//
//	in a single go routine or use mutex/rwmutex to restrict
//	access.
//
// Ordering is supplied by a three-way compare function given when
// the tree is created, and a destroy function is called exactly once
// for every item that leaves the tree, whether by Remove, Clear or
// Destroy.  Items comparing equal are rejected, so the tree behaves
// as a set.
//
// The algorithm keeps no parent pointers: Insert and Remove record
// the descent path on a fixed size stack and walk back up it to
// restore balance, in the style described by Julienne Walker.
//
// Building with the tag "avlrelease" turns the debugging helpers
// (Validate, Assert, Dump and Print) into no-ops.
package avl
