// Package db is the narrow key-value abstraction the persistent state reader
// sits on. It exposes buckets as single-byte key prefixes, a poor man's
// alternative to real bucket support.
package db

import (
	"bytes"
	"errors"
	"io"
)

var ErrKeyNotFound = errors.New("key not found")

// Bucket prefixes for the different key groups of committed ledger state.
type Bucket byte

const (
	ContractClassHashBucket Bucket = iota // contract address -> class hash
	ContractNonceBucket                   // contract address -> nonce
	ContractStorageBucket                 // (contract address, storage key) -> value
	ClassBucket                           // class hash -> contract class definition
)

// Key flattens a bucket prefix and a series of byte arrays into a single key.
func (b Bucket) Key(key ...[]byte) []byte {
	return append([]byte{byte(b)}, bytes.Join(key, []byte{})...)
}

type DB interface {
	io.Closer

	// NewTransaction returns a transaction on this database. Only one
	// update transaction may run at a time.
	NewTransaction(update bool) Transaction
	// View creates a read-only transaction and runs fn on it.
	View(fn func(txn Transaction) error) error
	// Update creates a read-write transaction, runs fn on it and commits
	// it if fn returned nil.
	Update(fn func(txn Transaction) error) error
}

type Transaction interface {
	// Get fetches the value for the given key and hands it to cb. Returns
	// ErrKeyNotFound if the key is absent.
	Get(key []byte, cb func(value []byte) error) error
	// Set updates or inserts the value for the given key.
	Set(key, value []byte) error
	// Delete removes the key from the database.
	Delete(key []byte) error
	// Commit flushes all changes made in this transaction.
	Commit() error
	// Discard drops all changes made in this transaction.
	Discard()
}
