// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fuzz"
	"github.com/bitmark-inc/avltree/journal"
	"github.com/bitmark-inc/avltree/mode"
)

// start the workers and wait for them to finish or for a signal
func runWorkers(log *logger.L, options *Configuration, quiet bool) bool {

	var rec fuzz.Recorder
	var j *journal.Journal
	if options.Journal.Enabled {
		var err error
		j, err = journal.Open(options.Journal.Name, false)
		if nil != err {
			log.Criticalf("journal: %q  open error: %s", options.Journal.Name, err)
			fmt.Printf("journal: %q  open error: %s\n", options.Journal.Name, err)
			return false
		}
		defer j.Close()
		rec = j
	}

	// continue numbering after the last journalled run
	var next counter.Counter
	if nil != j {
		runs, err := j.Runs()
		if nil != err {
			log.Criticalf("journal runs error: %s", err)
			return false
		}
		if len(runs) > 0 {
			next.Swap(runs[len(runs)-1])
		}
	}

	totals := &fuzz.Totals{}
	cfg := options.FuzzConfig()

	processes := make(background.Processes, options.Workers)
	for i := range processes {
		processes[i] = fuzz.NewWorker(fmt.Sprintf("worker-%d", i), cfg, options.Rounds, rec, &next, totals)
	}

	log.Infof("workers: %d  rounds: %d  items: %d  range: %d  limit: %d", options.Workers, options.Rounds, cfg.Items, cfg.KeyRange, cfg.Limit)

	reporting := background.Start(background.Processes{
		&reporter{
			log:      logger.New("report"),
			interval: time.Duration(options.ReportInterval) * time.Second,
		},
	}, totals)

	mode.Set(mode.Running)
	workers := background.Start(processes, nil)

	finished := make(chan struct{})
	go func() {
		workers.Wait()
		close(finished)
	}()

	if !quiet && 0 == options.Rounds {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
		mode.Set(mode.Draining)
		workers.Stop()
	case <-finished:
	}

	reporting.Stop()
	mode.Set(mode.Stopped)

	report(log, totals)
	if !quiet {
		fmt.Printf("runs: %s  failed: %s  inserted: %s  removed: %s\n", &totals.Runs, &totals.Failed, &totals.Inserted, &totals.Removed)
	}
	return totals.Failed.IsZero()
}

type reporter struct {
	log      *logger.L
	interval time.Duration
}

// periodically log the running totals
func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {
	totals := args.(*fuzz.Totals)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			report(r.log, totals)
		}
	}
}

func report(log *logger.L, totals *fuzz.Totals) {
	log.Infof(
		"mode: %s  active: %s  runs: %s  failed: %s  inserted: %s  exists: %s  no memory: %s  removed: %s  not found: %s  remaining: %s",
		mode.String(), &totals.Active, &totals.Runs, &totals.Failed,
		&totals.Inserted, &totals.Exists, &totals.NoMemory,
		&totals.Removed, &totals.NotFound, &totals.Remaining,
	)
}
