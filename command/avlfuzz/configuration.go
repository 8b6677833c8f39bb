// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/fuzz"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultWorkers        = 4
	defaultRounds         = 0 // run until signalled
	defaultItems          = 10000
	defaultKeyRange       = 20000
	defaultReportInterval = 10 // seconds

	defaultJournalDirectory = "data"
	defaultJournalName      = "avlfuzz.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "avlfuzz.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
	defaultLogLevel     = "critical"
)

// JournalType - where runs are recorded
type JournalType struct {
	Enabled   bool   `gluamapper:"enabled" json:"enabled"`
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	Workers        int                  `gluamapper:"workers" json:"workers"`
	Rounds         int                  `gluamapper:"rounds" json:"rounds"`
	Items          int                  `gluamapper:"items" json:"items"`
	KeyRange       uint64               `gluamapper:"key_range" json:"key_range"`
	Limit          int                  `gluamapper:"limit" json:"limit"`
	Seed           uint64               `gluamapper:"seed" json:"seed"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Journal        JournalType          `gluamapper:"journal" json:"journal"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// FuzzConfig - the parameters passed to each run
func (c *Configuration) FuzzConfig() fuzz.Config {
	return fuzz.Config{
		Items:    c.Items,
		KeyRange: c.KeyRange,
		Limit:    c.Limit,
		Seed:     c.Seed,
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, fmt.Errorf("configuration file: %q  error: %s", configurationFileName, fault.ErrNotFound)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:  defaultDataDirectory,
		Workers:        defaultWorkers,
		Rounds:         defaultRounds,
		Items:          defaultItems,
		KeyRange:       defaultKeyRange,
		ReportInterval: defaultReportInterval,

		Journal: JournalType{
			Enabled:   true,
			Directory: defaultJournalDirectory,
			Name:      defaultJournalName,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if options.Workers <= 0 {
		return nil, fmt.Errorf("workers: %d must be positive", options.Workers)
	}
	if options.Rounds < 0 {
		return nil, fmt.Errorf("rounds: %d must not be negative", options.Rounds)
	}
	if options.Items <= 0 {
		return nil, fmt.Errorf("items: %d must be positive", options.Items)
	}
	if 0 == options.KeyRange {
		return nil, fmt.Errorf("key_range: must be positive")
	}
	if options.Limit < 0 {
		return nil, fmt.Errorf("limit: %d must not be negative", options.Limit)
	}
	if options.ReportInterval <= 0 {
		options.ReportInterval = defaultReportInterval
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Journal.Directory,
		&options.Logging.Directory,
	} {
		if *d, err = util.EnsureDirectory(options.DataDirectory, *d); nil != err {
			return nil, err
		}
	}

	// must not be paths, the directory is prefixed here
	if options.Journal.Name, err = util.PlainName(options.Journal.Directory, options.Journal.Name); nil != err {
		return nil, fmt.Errorf("journal name: %q  error: %s", options.Journal.Name, err)
	}
	if _, err = util.PlainName(options.Logging.Directory, options.Logging.File); nil != err {
		return nil, fmt.Errorf("log file: %q  error: %s", options.Logging.File, err)
	}

	return options, nil
}
