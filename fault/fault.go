// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyExists        = ExistsError("already exists")
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCountMismatch        = LengthError("operation counts do not match size")
	ErrHeightMismatch       = InvalidError("cached height does not match subtree")
	ErrInsertedNotFound     = ProcessError("inserted item not found")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingParameters    = InvalidError("missing parameters")
	ErrNotComparable        = InvalidError("payload kind has no default ordering")
	ErrNotFound             = NotFoundError("not found")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotPlainName         = InvalidError("file name must not contain a path")
	ErrOutOfMemory          = ProcessError("out of memory")
	ErrReadOnly             = ProcessError("database is read only")
	ErrRecordCorrupt        = RecordError("journal record is corrupt")
	ErrRemovedStillPresent  = ProcessError("removed item still present")
	ErrReplayMismatch       = ProcessError("replayed result differs from journal")
	ErrSearchOrder          = InvalidError("search order violated")
	ErrSizeMismatch         = LengthError("size does not match node count")
	ErrTooDeep              = LengthError("tree exceeds maximum height")
	ErrUnbalanced           = InvalidError("balance factor out of range")
	ErrWrongRecordLength    = RecordError("journal record has wrong length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
