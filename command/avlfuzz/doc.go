// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlfuzz - run randomised insert/remove rounds against the avl tree
//
// each run is recorded in a LevelDB journal (if enabled) so that a
// failing run can be replayed with:
//
//	avlfuzz --config-file=avlfuzz.conf replay RUN
package main
