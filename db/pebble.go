package db

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var _ DB = (*pebbleDB)(nil)

type pebbleDB struct {
	pebble *pebble.DB
	wMutex *sync.Mutex
}

type pebbleTxn struct {
	batch    *pebble.Batch
	snapshot *pebble.Snapshot
	lock     *sync.Mutex
}

// NewPebble opens a database at the given path.
func NewPebble(path string, logger pebble.Logger) (DB, error) {
	return newPebble(path, &pebble.Options{
		Logger: logger,
	})
}

// NewMem opens a new in-memory database.
func NewMem() (DB, error) {
	return newPebble("", &pebble.Options{
		FS: vfs.NewMem(),
	})
}

// NewMemTest opens a new in-memory database and fails the test on error.
func NewMemTest(t *testing.T) DB {
	memDB, err := NewMem()
	if err != nil {
		t.Fatalf("create in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := memDB.Close(); err != nil {
			t.Errorf("close in-memory db: %v", err)
		}
	})
	return memDB
}

func newPebble(path string, options *pebble.Options) (DB, error) {
	pDB, err := pebble.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &pebbleDB{pebble: pDB, wMutex: new(sync.Mutex)}, nil
}

// NewTransaction : see db.DB.NewTransaction
func (d *pebbleDB) NewTransaction(update bool) Transaction {
	txn := &pebbleTxn{}
	if update {
		d.wMutex.Lock()
		txn.lock = d.wMutex
		txn.batch = d.pebble.NewIndexedBatch()
	} else {
		txn.snapshot = d.pebble.NewSnapshot()
	}

	return txn
}

// Close : see io.Closer.Close
func (d *pebbleDB) Close() error {
	return d.pebble.Close()
}

// View : see db.DB.View
func (d *pebbleDB) View(fn func(txn Transaction) error) error {
	txn := d.NewTransaction(false)
	defer txn.Discard()

	return fn(txn)
}

// Update : see db.DB.Update
func (d *pebbleDB) Update(fn func(txn Transaction) error) error {
	txn := d.NewTransaction(true)
	defer txn.Discard()

	if err := fn(txn); err != nil {
		return err
	}

	return txn.Commit()
}

// Discard : see db.Transaction.Discard
func (t *pebbleTxn) Discard() {
	if t.batch != nil {
		t.batch.Close()
		t.batch = nil
	}
	if t.snapshot != nil {
		t.snapshot.Close()
		t.snapshot = nil
	}

	if t.lock != nil {
		t.lock.Unlock()
		t.lock = nil
	}
}

// Commit : see db.Transaction.Commit
func (t *pebbleTxn) Commit() error {
	defer t.Discard()
	if t.batch == nil {
		return errors.New("discarded txn")
	}
	return t.batch.Commit(pebble.Sync)
}

// Set : see db.Transaction.Set
func (t *pebbleTxn) Set(key, val []byte) error {
	if t.batch == nil {
		return errors.New("read only transaction")
	} else if len(key) == 0 {
		return errors.New("empty key")
	}
	return t.batch.Set(key, val, pebble.Sync)
}

// Delete : see db.Transaction.Delete
func (t *pebbleTxn) Delete(key []byte) error {
	if t.batch == nil {
		return errors.New("read only transaction")
	}
	return t.batch.Delete(key, pebble.Sync)
}

// Get : see db.Transaction.Get
func (t *pebbleTxn) Get(key []byte, cb func([]byte) error) error {
	var val []byte
	var closer io.Closer
	var err error
	if t.batch != nil {
		val, closer, err = t.batch.Get(key)
	} else if t.snapshot != nil {
		val, closer, err = t.snapshot.Get(key)
	} else {
		return errors.New("discarded txn")
	}
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return ErrKeyNotFound
		}

		return err
	}
	defer closer.Close()
	return cb(val)
}
