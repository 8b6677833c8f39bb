// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avltree/fault"
)

const (
	currentVersion = 1
	batchSize      = 1000
)

var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// Journal - an open operation database
type Journal struct {
	sync.Mutex

	log      *logger.L
	db       *leveldb.DB
	batch    *leveldb.Batch
	readOnly bool
}

// Open - open or create the journal database
func Open(name string, readOnly bool) (*Journal, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	j := &Journal{
		log:      logger.New("journal"),
		db:       db,
		batch:    new(leveldb.Batch),
		readOnly: readOnly,
	}

	versionValue, err := db.Get(versionKey, nil)
	switch {
	case leveldb.ErrNotFound == err && !readOnly:
		v := make([]byte, 4)
		binary.BigEndian.PutUint32(v, currentVersion)
		if err := db.Put(versionKey, v, nil); nil != err {
			db.Close()
			return nil, err
		}
	case leveldb.ErrNotFound == err:
	case nil != err:
		db.Close()
		return nil, err
	case 4 != len(versionValue):
		db.Close()
		return nil, fmt.Errorf("incompatible journal version length: expected: %d  actual: %d", 4, len(versionValue))
	case currentVersion != binary.BigEndian.Uint32(versionValue):
		db.Close()
		return nil, fmt.Errorf("incompatible journal version: expected: %d  actual: %d", currentVersion, binary.BigEndian.Uint32(versionValue))
	}

	j.log.Infof("opened: %q  read only: %t", name, readOnly)
	return j, nil
}

// Close - flush pending records and close the database
func (j *Journal) Close() error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	err := j.flush()
	if e := j.db.Close(); nil == err {
		err = e
	}
	j.db = nil
	j.log.Info("closed")
	j.log.Flush()
	return err
}

// Record - queue one operation, writing out the batch once it is large enough
func (j *Journal) Record(run uint64, seq uint64, e Entry) error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	if j.readOnly {
		return fault.ErrReadOnly
	}
	j.batch.Put(entryKey(run, seq), e.pack())
	if j.batch.Len() >= batchSize {
		return j.flush()
	}
	return nil
}

// RecordLimit - queue the header record holding the node limit of a run
func (j *Journal) RecordLimit(run uint64, limit int) error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	if j.readOnly {
		return fault.ErrReadOnly
	}
	if limit < 0 {
		return fault.ErrInvalidCount
	}
	v := make([]byte, limitLength)
	binary.BigEndian.PutUint64(v, uint64(limit))
	j.batch.Put(limitKey(run), v)
	if j.batch.Len() >= batchSize {
		return j.flush()
	}
	return nil
}

// Limit - the node limit recorded for a run
func (j *Journal) Limit(run uint64) (int, error) {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return 0, fault.ErrNotInitialised
	}
	if err := j.flush(); nil != err {
		return 0, err
	}

	v, err := j.db.Get(limitKey(run), nil)
	if leveldb.ErrNotFound == err {
		return 0, fault.ErrNotFound
	} else if nil != err {
		return 0, err
	}
	if limitLength != len(v) {
		return 0, fault.ErrWrongRecordLength
	}
	limit := binary.BigEndian.Uint64(v)
	if limit > math.MaxInt {
		return 0, fault.ErrRecordCorrupt
	}
	return int(limit), nil
}

// Flush - write any queued records
func (j *Journal) Flush() error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	return j.flush()
}

func (j *Journal) flush() error {
	if 0 == j.batch.Len() {
		return nil
	}
	j.log.Debugf("write batch: %d records", j.batch.Len())
	err := j.db.Write(j.batch, nil)
	j.batch.Reset()
	return err
}

// Replay - call fn for every entry of a run in sequence order
//
// iteration stops at the first error from fn, which is returned
func (j *Journal) Replay(run uint64, fn func(seq uint64, e Entry) error) error {
	j.Lock()
	if nil == j.db {
		j.Unlock()
		return fault.ErrNotInitialised
	}
	if err := j.flush(); nil != err {
		j.Unlock()
		return err
	}
	snapshot, err := j.db.GetSnapshot()
	j.Unlock()
	if nil != err {
		return err
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(ldb_util.BytesPrefix(runKey(run)), nil)
	defer iter.Release()

	n := 0
	for iter.Next() {
		_, seq, err := splitKey(iter.Key())
		if nil != err {
			return fault.ErrRecordCorrupt
		}
		e, err := unpack(iter.Value())
		if nil != err {
			j.log.Warnf("run: %d  seq: %d  error: %s", run, seq, err)
			return fault.ErrRecordCorrupt
		}
		if err := fn(seq, e); nil != err {
			return err
		}
		n += 1
	}
	if err := iter.Error(); nil != err {
		return err
	}
	if 0 == n {
		return fault.ErrNotFound
	}
	return nil
}

// Runs - list the run numbers present, ascending
func (j *Journal) Runs() ([]uint64, error) {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return nil, fault.ErrNotInitialised
	}
	if err := j.flush(); nil != err {
		return nil, err
	}

	iter := j.db.NewIterator(ldb_util.BytesPrefix([]byte{runPrefix}), nil)
	defer iter.Release()

	runs := make([]uint64, 0, 16)
	for ok := iter.First(); ok; {
		run, _, err := splitKey(iter.Key())
		if nil != err {
			return nil, fault.ErrRecordCorrupt
		}
		runs = append(runs, run)
		if ^uint64(0) == run {
			break
		}
		ok = iter.Seek(runKey(run + 1))
	}
	return runs, iter.Error()
}

// DeleteRun - remove every entry of a run and its limit record
func (j *Journal) DeleteRun(run uint64) error {
	j.Lock()
	defer j.Unlock()

	if nil == j.db {
		return fault.ErrNotInitialised
	}
	if j.readOnly {
		return fault.ErrReadOnly
	}
	if err := j.flush(); nil != err {
		return err
	}

	iter := j.db.NewIterator(ldb_util.BytesPrefix(runKey(run)), nil)
	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}
	if 0 == batch.Len() {
		return fault.ErrNotFound
	}
	batch.Delete(limitKey(run))
	j.log.Infof("delete run: %d  records: %d", run, batch.Len())
	return j.db.Write(batch, nil)
}
