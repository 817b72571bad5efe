package state

import (
	"errors"
	"fmt"

	"github.com/NethermindEth/seqcore/core"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/db"
	"github.com/NethermindEth/seqcore/encoder"
)

// PebbleStateReader reads committed state out of a persistent key-value
// store. Felts are stored in their canonical 32-byte form, class definitions
// cbor-encoded. Missing contract cells read as zero; a missing class
// definition is an error.
type PebbleStateReader struct {
	db db.DB
}

var _ StateReader = (*PebbleStateReader)(nil)

func NewPebbleStateReader(database db.DB) *PebbleStateReader {
	return &PebbleStateReader{db: database}
}

func (r *PebbleStateReader) ContractClassHash(addr *felt.Address) (felt.ClassHash, error) {
	addrBytes := addr.Bytes()
	var classHash felt.ClassHash
	err := r.getFelt(db.ContractClassHashBucket.Key(addrBytes[:]), classHash.AsFelt())
	return classHash, err
}

func (r *PebbleStateReader) ContractNonce(addr *felt.Address) (felt.Felt, error) {
	addrBytes := addr.Bytes()
	var nonce felt.Felt
	err := r.getFelt(db.ContractNonceBucket.Key(addrBytes[:]), &nonce)
	return nonce, err
}

func (r *PebbleStateReader) ContractStorage(addr *felt.Address, key *felt.Felt) (felt.Felt, error) {
	addrBytes := addr.Bytes()
	keyBytes := key.Bytes()
	var value felt.Felt
	err := r.getFelt(db.ContractStorageBucket.Key(addrBytes[:], keyBytes[:]), &value)
	return value, err
}

func (r *PebbleStateReader) ContractClass(classHash *felt.ClassHash) (*core.ContractClass, error) {
	hashBytes := classHash.Bytes()
	class := new(core.ContractClass)
	err := r.db.View(func(txn db.Transaction) error {
		return txn.Get(db.ClassBucket.Key(hashBytes[:]), func(value []byte) error {
			return encoder.Unmarshal(value, class)
		})
	})
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrClassNotFound, classHash.String())
		}
		return nil, err
	}
	return class, nil
}

// getFelt decodes the value under key into out. An absent key leaves out
// zero, matching ledger semantics for uninitialized cells.
func (r *PebbleStateReader) getFelt(key []byte, out *felt.Felt) error {
	err := r.db.View(func(txn db.Transaction) error {
		return txn.Get(key, func(value []byte) error {
			out.SetBytes(value)
			return nil
		})
	})
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil
	}
	return err
}

// CommitStateWriter persists a transaction batch's state into the store.
type CommitStateWriter struct {
	db db.DB
}

func NewCommitStateWriter(database db.DB) *CommitStateWriter {
	return &CommitStateWriter{db: database}
}

// WriteContract stores the address to class hash relation.
func (w *CommitStateWriter) WriteContract(addr *felt.Address, classHash *felt.ClassHash) error {
	addrBytes := addr.Bytes()
	hashBytes := classHash.Bytes()
	return w.db.Update(func(txn db.Transaction) error {
		return txn.Set(db.ContractClassHashBucket.Key(addrBytes[:]), hashBytes[:])
	})
}

// WriteNonce stores a contract's nonce.
func (w *CommitStateWriter) WriteNonce(addr *felt.Address, nonce *felt.Felt) error {
	addrBytes := addr.Bytes()
	nonceBytes := nonce.Bytes()
	return w.db.Update(func(txn db.Transaction) error {
		return txn.Set(db.ContractNonceBucket.Key(addrBytes[:]), nonceBytes[:])
	})
}

// WriteClass stores a class definition under its hash.
func (w *CommitStateWriter) WriteClass(classHash *felt.ClassHash, class *core.ContractClass) error {
	enc, err := encoder.Marshal(class)
	if err != nil {
		return err
	}
	hashBytes := classHash.Bytes()
	return w.db.Update(func(txn db.Transaction) error {
		return txn.Set(db.ClassBucket.Key(hashBytes[:]), enc)
	})
}

// WriteStorageDiff persists a nested state diff produced at block close.
func (w *CommitStateWriter) WriteStorageDiff(diff map[felt.Address]map[felt.Felt]felt.Felt) error {
	return w.db.Update(func(txn db.Transaction) error {
		for addr, contractStorage := range diff {
			addrBytes := addr.Bytes()
			for key, value := range contractStorage {
				keyBytes := key.Bytes()
				valueBytes := value.Bytes()
				if err := txn.Set(db.ContractStorageBucket.Key(addrBytes[:], keyBytes[:]), valueBytes[:]); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
