// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Op - the tree operation recorded
type Op byte

// operations
const (
	OpInsert Op = 'I'
	OpRemove Op = 'R'
	OpFind   Op = 'F'
)

// Result - outcome of an operation
type Result byte

// results
const (
	ResultOK Result = iota
	ResultExists
	ResultNotFound
	ResultOutOfMemory
)

// Entry - a single recorded operation
type Entry struct {
	Op     Op
	Key    uint64
	Result Result
}

const (
	runPrefix   = 'J'
	limitPrefix = 'L'
	keyLength   = 1 + 8 + 8
	valueLength = 1 + 8 + 1
	limitLength = 8
)

// ResultOf - map the error returned by a tree operation to a Result
func ResultOf(err error) Result {
	switch {
	case nil == err:
		return ResultOK
	case fault.IsErrExists(err):
		return ResultExists
	case fault.IsErrNotFound(err):
		return ResultNotFound
	default:
		return ResultOutOfMemory
	}
}

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpFind:
		return "find"
	default:
		return fmt.Sprintf("op(%d)", byte(op))
	}
}

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultExists:
		return "exists"
	case ResultNotFound:
		return "not-found"
	case ResultOutOfMemory:
		return "out-of-memory"
	default:
		return fmt.Sprintf("result(%d)", byte(r))
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s(%d) → %s", e.Op, e.Key, e.Result)
}

func runKey(run uint64) []byte {
	k := make([]byte, 9)
	k[0] = runPrefix
	binary.BigEndian.PutUint64(k[1:], run)
	return k
}

func limitKey(run uint64) []byte {
	k := make([]byte, 9)
	k[0] = limitPrefix
	binary.BigEndian.PutUint64(k[1:], run)
	return k
}

func entryKey(run uint64, seq uint64) []byte {
	k := make([]byte, keyLength)
	k[0] = runPrefix
	binary.BigEndian.PutUint64(k[1:], run)
	binary.BigEndian.PutUint64(k[9:], seq)
	return k
}

func splitKey(k []byte) (uint64, uint64, error) {
	if keyLength != len(k) || runPrefix != k[0] {
		return 0, 0, fault.ErrWrongRecordLength
	}
	return binary.BigEndian.Uint64(k[1:]), binary.BigEndian.Uint64(k[9:]), nil
}

func (e Entry) pack() []byte {
	v := make([]byte, valueLength)
	v[0] = byte(e.Op)
	binary.BigEndian.PutUint64(v[1:], e.Key)
	v[9] = byte(e.Result)
	return v
}

func unpack(v []byte) (Entry, error) {
	if valueLength != len(v) {
		return Entry{}, fault.ErrWrongRecordLength
	}
	e := Entry{
		Op:     Op(v[0]),
		Key:    binary.BigEndian.Uint64(v[1:]),
		Result: Result(v[9]),
	}
	switch e.Op {
	case OpInsert, OpRemove, OpFind:
	default:
		return Entry{}, fault.ErrRecordCorrupt
	}
	if e.Result > ResultOutOfMemory {
		return Entry{}, fault.ErrRecordCorrupt
	}
	return e, nil
}
