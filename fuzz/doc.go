// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fuzz - randomised exercise of the avl tree
//
// a run inserts a batch of random keys, removes a second batch and
// checks the tree invariants and the operation counts after each
// phase.  Every operation can be passed to a Recorder so that the run
// can later be replayed from the journal.
package fuzz
