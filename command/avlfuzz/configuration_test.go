// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func writeConfiguration(t *testing.T, body string) (string, string) {
	dir := t.TempDir()
	name := filepath.Join(dir, "avlfuzz.conf")
	require.NoError(t, os.WriteFile(name, []byte(body), 0o600), "write configuration")
	return dir, name
}

func TestConfigurationDefaults(t *testing.T) {
	dir, name := writeConfiguration(t, `return { data_directory = "." }`)

	c, err := getConfiguration(name)
	require.NoError(t, err, "configuration")

	assert.Equal(t, defaultWorkers, c.Workers, "workers")
	assert.Equal(t, defaultRounds, c.Rounds, "rounds")
	assert.Equal(t, defaultItems, c.Items, "items")
	assert.Equal(t, uint64(defaultKeyRange), c.KeyRange, "key range")
	assert.Equal(t, 0, c.Limit, "limit")
	assert.Equal(t, defaultReportInterval, c.ReportInterval, "report interval")
	assert.True(t, c.Journal.Enabled, "journal enabled")
	assert.Equal(t, filepath.Join(dir, defaultJournalDirectory, defaultJournalName), c.Journal.Name, "journal name")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, c.Logging.File, "log file")

	assert.DirExists(t, filepath.Join(dir, defaultJournalDirectory), "journal directory")
	assert.DirExists(t, filepath.Join(dir, defaultLogDirectory), "log directory")
}

func TestConfigurationOverrides(t *testing.T) {
	dir, name := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.workers = 2
M.rounds = 5
M.items = 100
M.key_range = 50
M.limit = 20
M.seed = 7
M.journal = {
    enabled = false,
    directory = "j",
    name = "x.leveldb",
}
M.logging = {
    directory = "/tmp",
    file = "f.log",
    size = 100,
    count = 2,
}
return M
`)

	c, err := getConfiguration(name)
	require.NoError(t, err, "configuration")

	assert.Equal(t, 2, c.Workers, "workers")
	assert.Equal(t, 5, c.Rounds, "rounds")
	assert.Equal(t, 20, c.Limit, "limit")

	fc := c.FuzzConfig()
	assert.Equal(t, 100, fc.Items, "items")
	assert.Equal(t, uint64(50), fc.KeyRange, "key range")
	assert.Equal(t, 20, fc.Limit, "fuzz limit")
	assert.Equal(t, uint64(7), fc.Seed, "seed")

	assert.False(t, c.Journal.Enabled, "journal disabled")
	assert.Equal(t, filepath.Join(dir, "j", "x.leveldb"), c.Journal.Name, "journal name")
	assert.Equal(t, "/tmp", c.Logging.Directory, "absolute log directory kept")
	assert.Equal(t, "f.log", c.Logging.File, "log file")
	assert.EqualValues(t, 100, c.Logging.Size, "log size")
	assert.EqualValues(t, 2, c.Logging.Count, "log count")
}

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no data directory", `return { workers = 1 }`},
		{"missing data directory", `return { data_directory = "absent" }`},
		{"zero workers", `return { data_directory = ".", workers = 0 }`},
		{"negative rounds", `return { data_directory = ".", rounds = -1 }`},
		{"zero items", `return { data_directory = ".", items = 0 }`},
		{"zero key range", `return { data_directory = ".", key_range = 0 }`},
		{"journal path", `return { data_directory = ".", journal = { name = "a/b.leveldb" } }`},
		{"lua error", `return { data_directory = . }`},
	}
	for _, test := range tests {
		_, name := writeConfiguration(t, test.body)
		_, err := getConfiguration(name)
		assert.Error(t, err, test.name)
	}
}

func TestConfigurationNotATable(t *testing.T) {
	_, name := writeConfiguration(t, `return 42`)
	_, err := getConfiguration(name)
	assert.Equal(t, fault.ErrMissingParameters, err, "not a table")
}

func TestSampleConfiguration(t *testing.T) {
	dir := t.TempDir()
	sample, err := os.ReadFile("avlfuzz.conf.sample")
	require.NoError(t, err, "read sample")
	name := filepath.Join(dir, "avlfuzz.conf")
	require.NoError(t, os.WriteFile(name, sample, 0o600), "write sample")

	c, err := getConfiguration(name)
	require.NoError(t, err, "sample configuration")
	assert.Equal(t, 4, c.Workers, "workers")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "default level")
}
