// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package journal - LevelDB record of tree operations
//
// every operation a fuzz run performs is stored under a key made of the
// run number and a sequence number, so that a run can be read back in
// order and executed again against a fresh tree.
//
// key:   'J' ‖ run (8 bytes BE) ‖ seq (8 bytes BE)
// value: op (1 byte) ‖ key (8 bytes BE) ‖ result (1 byte)
//
// the node limit of the run's tree is held in a header record
//
// key:   'L' ‖ run (8 bytes BE)
// value: limit (8 bytes BE)
package journal
