// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fuzz

import (
	"cmp"
	"math/rand/v2"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/journal"
)

//go:generate mockgen -source=fuzz.go -destination=mocks/recorder.go -package=mocks

// Recorder - receives the node limit and then every operation of a run
type Recorder interface {
	RecordLimit(run uint64, limit int) error
	Record(run uint64, seq uint64, e journal.Entry) error
}

// Config - parameters of a single run
type Config struct {
	Items    int    // number of inserts, and then of removes
	KeyRange uint64 // keys are drawn from [0, KeyRange)
	Limit    int    // node limit of the tree, 0 = unlimited
	Seed     uint64 // combined with the run number to seed the generator
}

// Stats - outcome counts of a run
type Stats struct {
	Inserted  uint64
	Exists    uint64
	NoMemory  uint64
	Removed   uint64
	NotFound  uint64
	Remaining uint64
}

type runner struct {
	run      uint64
	seq      uint64
	rec      Recorder
	tree     *avl.Tree[uint64]
	destroys uint64
}

func (r *runner) record(op journal.Op, key uint64, result journal.Result) error {
	if nil == r.rec {
		return nil
	}
	seq := r.seq
	r.seq += 1
	return r.rec.Record(r.run, seq, journal.Entry{Op: op, Key: key, Result: result})
}

// Run - perform one randomised insert/remove run
func Run(run uint64, cfg Config, rec Recorder, log *logger.L) (Stats, error) {
	if nil == log {
		return Stats{}, fault.ErrInvalidLoggerChannel
	}
	if cfg.Items <= 0 || 0 == cfg.KeyRange {
		return Stats{}, fault.ErrInvalidCount
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, run))

	r := &runner{
		run: run,
		rec: rec,
	}
	r.tree = avl.NewWithLimit[uint64](cmp.Compare[uint64], func(uint64) { r.destroys += 1 }, cfg.Limit)
	defer avl.Destroy(&r.tree)

	stats := Stats{}

	if nil != rec {
		if err := rec.RecordLimit(run, r.tree.Limit()); nil != err {
			return stats, err
		}
	}

	log.Debugf("run: %d  items: %d  range: %d  limit: %d", run, cfg.Items, cfg.KeyRange, cfg.Limit)

	for i := 0; i < cfg.Items; i += 1 {
		key := rng.Uint64N(cfg.KeyRange)
		err := r.tree.Insert(key)
		switch {
		case nil == err:
			stats.Inserted += 1
		case fault.IsErrExists(err):
			stats.Exists += 1
		case fault.ErrOutOfMemory == err:
			stats.NoMemory += 1
		default:
			return stats, err
		}
		if err := r.record(journal.OpInsert, key, journal.ResultOf(err)); nil != err {
			return stats, err
		}

		if nil == err {
			if !r.tree.Find(key) {
				log.Errorf("run: %d  inserted key: %d  not found", run, key)
				return stats, fault.ErrInsertedNotFound
			}
			if err := r.record(journal.OpFind, key, journal.ResultOK); nil != err {
				return stats, err
			}
		}
	}

	if err := r.tree.Check(); nil != err {
		log.Errorf("run: %d  after insert: %s", run, err)
		return stats, err
	}
	log.Debugf("run: %d  inserted: %d  exists: %d  no memory: %d", run, stats.Inserted, stats.Exists, stats.NoMemory)

	for i := 0; i < cfg.Items; i += 1 {
		key := rng.Uint64N(cfg.KeyRange)
		err := r.tree.Remove(key)
		switch {
		case nil == err:
			stats.Removed += 1
		case fault.IsErrNotFound(err):
			stats.NotFound += 1
		default:
			return stats, err
		}
		if err := r.record(journal.OpRemove, key, journal.ResultOf(err)); nil != err {
			return stats, err
		}

		if r.tree.Find(key) {
			log.Errorf("run: %d  removed key: %d  still present", run, key)
			return stats, fault.ErrRemovedStillPresent
		}
		if err := r.record(journal.OpFind, key, journal.ResultNotFound); nil != err {
			return stats, err
		}
	}

	stats.Remaining = uint64(r.tree.Size())
	if stats.Removed+stats.Remaining != stats.Inserted {
		log.Errorf("run: %d  removed: %d + size: %d ≠ inserted: %d", run, stats.Removed, stats.Remaining, stats.Inserted)
		return stats, fault.ErrCountMismatch
	}

	if err := r.tree.Check(); nil != err {
		log.Errorf("run: %d  after remove: %s", run, err)
		return stats, err
	}

	r.tree.Clear()
	if err := r.tree.Check(); nil != err {
		log.Errorf("run: %d  after clear: %s", run, err)
		return stats, err
	}

	// every payload that entered the tree has been released exactly once
	if r.destroys != stats.Inserted {
		log.Errorf("run: %d  destroyed: %d ≠ inserted: %d", run, r.destroys, stats.Inserted)
		return stats, fault.ErrCountMismatch
	}

	log.Debugf("run: %d  removed: %d  not found: %d  remaining: %d", run, stats.Removed, stats.NotFound, stats.Remaining)
	return stats, nil
}
