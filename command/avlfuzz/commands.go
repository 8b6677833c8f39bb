// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fuzz"
	"github.com/bitmark-inc/avltree/journal"
)

// setup command handler
//
// commands that need neither the configuration file nor the journal
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  run                                 - start workers (default command)\n")
		fmt.Printf("  replay RUN                          - execute a journalled run again\n")
		fmt.Printf("  runs                                - list the journalled run numbers\n")
		fmt.Printf("  delete RUN                          - remove a run from the journal\n")
		fmt.Printf("  config                              - display the effective configuration\n")
		fmt.Printf("\n")

	default:
		return false
	}
	return true
}

// configuration command handler
//
// returns false if the command failed
func processConfigCommand(log *logger.L, arguments []string, options *Configuration, quiet bool) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "run":
		return runWorkers(log, options, quiet)

	case "config":
		data, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			fmt.Printf("config: error: %s\n", err)
			return false
		}
		fmt.Printf("%s\n", data)

	case "replay":
		run, ok := runArgument(command, arguments)
		if !ok {
			return false
		}
		return withJournal(log, options, true, func(j *journal.Journal) error {
			stats, err := fuzz.Replay(run, j, log)
			if nil == err && !quiet {
				fmt.Printf("run: %d  replayed: %+v\n", run, stats)
			}
			return err
		})

	case "runs":
		return withJournal(log, options, true, func(j *journal.Journal) error {
			runs, err := j.Runs()
			if nil != err {
				return err
			}
			for _, run := range runs {
				fmt.Printf("%d\n", run)
			}
			return nil
		})

	case "delete":
		run, ok := runArgument(command, arguments)
		if !ok {
			return false
		}
		return withJournal(log, options, false, func(j *journal.Journal) error {
			return j.DeleteRun(run)
		})

	default:
		fmt.Printf("error: no such command: %q\n", command)
		return false
	}
	return true
}

func runArgument(command string, arguments []string) (uint64, bool) {
	if 1 != len(arguments) {
		fmt.Printf("%s: expected a single RUN argument\n", command)
		return 0, false
	}
	run, err := strconv.ParseUint(arguments[0], 10, 64)
	if nil != err {
		fmt.Printf("%s: invalid run: %q  error: %s\n", command, arguments[0], err)
		return 0, false
	}
	return run, true
}

func withJournal(log *logger.L, options *Configuration, readOnly bool, fn func(*journal.Journal) error) bool {
	j, err := journal.Open(options.Journal.Name, readOnly)
	if nil != err {
		log.Errorf("journal: %q  open error: %s", options.Journal.Name, err)
		fmt.Printf("journal: %q  open error: %s\n", options.Journal.Name, err)
		return false
	}
	defer j.Close()

	if err := fn(j); nil != err {
		log.Errorf("journal command error: %s", err)
		fmt.Printf("error: %s\n", err)
		return false
	}
	return true
}
