/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package stateleveldb provides a goleveldb-backed committed state together
// with a write-batch overlay, yielding the immutable pre/post snapshot pair
// the validity predicates judge. The committed database is the
// pre-transaction view; the post-transaction view is the batch layered over
// it, with deletes shadowing committed entries.
package stateleveldb

import (
	"sync"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/hyperledger-labs/ibc-statevp/core/ibc/keys"
	"github.com/hyperledger-labs/ibc-statevp/core/ledger/ledgerconfig"
)

var logger = flogging.MustGetLogger("stateleveldb")

type dbState int32

const (
	closed dbState = iota
	opened
)

// Conf configures a Provider.
type Conf struct {
	// DBPath is the filesystem location of the database. When empty, the
	// viper-configured ledger path is used.
	DBPath string
}

// Provider wraps the committed state database.
type Provider struct {
	conf    *Conf
	db      *leveldb.DB
	dbState dbState
	mutex   sync.RWMutex

	readOpts      *opt.ReadOptions
	writeOptsSync *opt.WriteOptions
}

// NewProvider constructs a Provider for the given configuration.
func NewProvider(conf *Conf) *Provider {
	if conf == nil || conf.DBPath == "" {
		conf = &Conf{DBPath: ledgerconfig.GetIBCStateLevelDBPath()}
	}
	writeOptsSync := &opt.WriteOptions{Sync: true}
	return &Provider{
		conf:          conf,
		dbState:       closed,
		readOpts:      &opt.ReadOptions{},
		writeOptsSync: writeOptsSync,
	}
}

// Open opens the underlying database. Opening an already-open provider is a
// no-op.
func (p *Provider) Open() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.dbState == opened {
		return nil
	}
	db, err := leveldb.OpenFile(p.conf.DBPath, &opt.Options{})
	if err != nil {
		return errors.Wrapf(err, "error opening leveldb at path [%s]", p.conf.DBPath)
	}
	p.db = db
	p.dbState = opened
	return nil
}

// Close closes the underlying database.
func (p *Provider) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.dbState == closed {
		return
	}
	if err := p.db.Close(); err != nil {
		logger.Errorf("error closing leveldb: %s", err)
	}
	p.dbState = closed
}

// Get returns the committed value for the key, or nil when the key is
// absent.
func (p *Provider) Get(key keys.Key) ([]byte, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	value, err := p.db.Get([]byte(key.String()), p.readOpts)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		logger.Errorf("error retrieving leveldb key [%s]: %s", key, err)
		return nil, errors.Wrapf(err, "error retrieving leveldb key [%s]", key)
	}
	if len(value) == 0 {
		return nil, nil
	}
	return value, nil
}

// Commit applies a validated batch to the committed state.
func (p *Provider) Commit(batch *UpdateBatch) error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	dbBatch := &leveldb.Batch{}
	for _, key := range batch.ChangedKeys() {
		value, _ := batch.Get(key)
		if value == nil {
			dbBatch.Delete([]byte(key.String()))
			continue
		}
		dbBatch.Put([]byte(key.String()), value)
	}
	if err := p.db.Write(dbBatch, p.writeOptsSync); err != nil {
		return errors.Wrap(err, "error writing batch to leveldb")
	}
	return nil
}

// TxSnapshots scopes a snapshot pair to one transaction's batch. The
// returned value must not outlive the batch's validation.
func (p *Provider) TxSnapshots(batch *UpdateBatch) *TxSnapshots {
	return &TxSnapshots{db: p, batch: batch}
}

// TxSnapshots implements state.StateReader over the committed database
// (pre) and the write-batch overlay (post).
type TxSnapshots struct {
	db    *Provider
	batch *UpdateBatch
}

// ReadPre reads from the committed state only.
func (s *TxSnapshots) ReadPre(key keys.Key) ([]byte, error) {
	return s.db.Get(key)
}

// ReadPost reads the batch first; a batched delete shadows the committed
// entry.
func (s *TxSnapshots) ReadPost(key keys.Key) ([]byte, error) {
	if value, ok := s.batch.Get(key); ok {
		if len(value) == 0 {
			return nil, nil
		}
		return value, nil
	}
	return s.db.Get(key)
}
