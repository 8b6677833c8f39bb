// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - process wide run state of the fuzz harness
//
// Stopped until workers start, Running while they run and Draining
// once a shutdown signal has been received and the current runs are
// finishing
package mode
