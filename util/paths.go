// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - make an absolute directory below base and create
// it if missing
func EnsureDirectory(base string, directory string) (string, error) {
	d := EnsureAbsolute(base, directory)
	if err := os.MkdirAll(d, 0o700); nil != err {
		return "", err
	}
	return d, nil
}

// PlainName - join a plain file name to its directory, paths are rejected
func PlainName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		if "" == name || "." == name {
			return "", fault.ErrMissingParameters
		}
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fault.ErrNotPlainName
	}
}
