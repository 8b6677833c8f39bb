// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fuzz

import (
	"cmp"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/journal"
)

// Source - supplies the node limit and the recorded entries of a run
// in sequence order
type Source interface {
	Limit(run uint64) (int, error)
	Replay(run uint64, fn func(seq uint64, e journal.Entry) error) error
}

// Replay - execute a recorded run against a fresh tree
//
// the tree has the node limit recorded for the run; each operation
// must produce the recorded result and the tree must pass its checks
// at the end
func Replay(run uint64, src Source, log *logger.L) (Stats, error) {
	if nil == log {
		return Stats{}, fault.ErrInvalidLoggerChannel
	}
	if nil == src {
		return Stats{}, fault.ErrMissingParameters
	}

	limit, err := src.Limit(run)
	if nil != err {
		log.Errorf("run: %d  limit error: %s", run, err)
		return Stats{}, err
	}

	tree := avl.NewWithLimit[uint64](cmp.Compare[uint64], nil, limit)
	defer avl.Destroy(&tree)

	stats := Stats{}

	err = src.Replay(run, func(seq uint64, e journal.Entry) error {
		var result journal.Result
		switch e.Op {
		case journal.OpInsert:
			result = journal.ResultOf(tree.Insert(e.Key))
			switch result {
			case journal.ResultOK:
				stats.Inserted += 1
			case journal.ResultExists:
				stats.Exists += 1
			case journal.ResultOutOfMemory:
				stats.NoMemory += 1
			}
		case journal.OpRemove:
			result = journal.ResultOf(tree.Remove(e.Key))
			switch result {
			case journal.ResultOK:
				stats.Removed += 1
			case journal.ResultNotFound:
				stats.NotFound += 1
			}
		case journal.OpFind:
			result = journal.ResultNotFound
			if tree.Find(e.Key) {
				result = journal.ResultOK
			}
		default:
			return fault.ErrRecordCorrupt
		}

		if result != e.Result {
			log.Errorf("run: %d  seq: %d  %s: replayed: %s", run, seq, e, result)
			return fault.ErrReplayMismatch
		}
		return nil
	})
	if nil != err {
		return stats, err
	}

	stats.Remaining = uint64(tree.Size())
	if err := tree.Check(); nil != err {
		log.Errorf("run: %d  after replay: %s", run, err)
		return stats, err
	}

	log.Infof("replay run: %d  limit: %d  inserted: %d  removed: %d  remaining: %d", run, limit, stats.Inserted, stats.Removed, stats.Remaining)
	return stats, nil
}
