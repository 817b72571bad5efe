package state

import (
	"fmt"

	"github.com/NethermindEth/seqcore/core"
	"github.com/NethermindEth/seqcore/core/felt"
)

// InMemoryStateReader is a map-backed committed state, used for genesis
// construction and tests. Uninitialized cells read as zero, matching ledger
// semantics.
type InMemoryStateReader struct {
	classHashes map[felt.Address]felt.ClassHash
	nonces      map[felt.Address]felt.Felt
	storage     map[StorageEntry]felt.Felt
	classes     map[felt.ClassHash]*core.ContractClass
}

var _ StateReader = (*InMemoryStateReader)(nil)

func NewInMemoryStateReader() *InMemoryStateReader {
	return &InMemoryStateReader{
		classHashes: make(map[felt.Address]felt.ClassHash),
		nonces:      make(map[felt.Address]felt.Felt),
		storage:     make(map[StorageEntry]felt.Felt),
		classes:     make(map[felt.ClassHash]*core.ContractClass),
	}
}

func (r *InMemoryStateReader) ContractClassHash(addr *felt.Address) (felt.ClassHash, error) {
	return r.classHashes[*addr], nil
}

func (r *InMemoryStateReader) ContractNonce(addr *felt.Address) (felt.Felt, error) {
	return r.nonces[*addr], nil
}

func (r *InMemoryStateReader) ContractStorage(addr *felt.Address, key *felt.Felt) (felt.Felt, error) {
	return r.storage[StorageEntry{Address: *addr, Key: *key}], nil
}

func (r *InMemoryStateReader) ContractClass(classHash *felt.ClassHash) (*core.ContractClass, error) {
	class, ok := r.classes[*classHash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, classHash.String())
	}
	return class, nil
}

func (r *InMemoryStateReader) PutContract(addr *felt.Address, classHash *felt.ClassHash) {
	r.classHashes[*addr] = *classHash
}

func (r *InMemoryStateReader) PutNonce(addr *felt.Address, nonce *felt.Felt) {
	r.nonces[*addr] = *nonce
}

func (r *InMemoryStateReader) PutStorage(addr *felt.Address, key, value *felt.Felt) {
	r.storage[StorageEntry{Address: *addr, Key: *key}] = *value
}

func (r *InMemoryStateReader) PutClass(classHash *felt.ClassHash, class *core.ContractClass) {
	r.classes[*classHash] = class
}
