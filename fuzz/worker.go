// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fuzz

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/mode"
)

// Totals - statistics shared by all workers
type Totals struct {
	Active    counter.Counter // workers currently running
	Runs      counter.Counter
	Failed    counter.Counter
	Inserted  counter.Counter
	Exists    counter.Counter
	NoMemory  counter.Counter
	Removed   counter.Counter
	NotFound  counter.Counter
	Remaining counter.Counter
}

func (t *Totals) add(s Stats) {
	t.Inserted.Add(s.Inserted)
	t.Exists.Add(s.Exists)
	t.NoMemory.Add(s.NoMemory)
	t.Removed.Add(s.Removed)
	t.NotFound.Add(s.NotFound)
	t.Remaining.Add(s.Remaining)
}

// Worker - repeats runs until shut down, draining or its rounds are done
type Worker struct {
	log    *logger.L
	config Config
	rounds int
	rec    Recorder
	next   *counter.Counter
	totals *Totals
}

// NewWorker - create a worker
//
// next is shared between workers and hands out run numbers, rounds of
// zero means run until shutdown
func NewWorker(name string, cfg Config, rounds int, rec Recorder, next *counter.Counter, totals *Totals) *Worker {
	return &Worker{
		log:    logger.New(name),
		config: cfg,
		rounds: rounds,
		rec:    rec,
		next:   next,
		totals: totals,
	}
}

// Run - background process loop
func (w *Worker) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Info("starting…")

	w.totals.Active.Increment()
	defer w.totals.Active.Decrement()

loop:
	for i := 0; 0 == w.rounds || i < w.rounds; i += 1 {
		select {
		case <-shutdown:
			break loop
		default:
		}

		// no new runs once shutdown has begun
		if mode.Is(mode.Draining) {
			break loop
		}

		run := w.next.Increment()
		stats, err := Run(run, w.config, w.rec, log)
		w.totals.Runs.Increment()
		w.totals.add(stats)
		if nil != err {
			w.totals.Failed.Increment()
			log.Errorf("run: %d  failed: %s", run, err)
		}
	}

	log.Info("stopped")
}
