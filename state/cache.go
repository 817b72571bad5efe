package state

import (
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/utils"
)

// StorageEntry addresses one storage cell: a contract and a key within its
// storage space. Keys are unique within a snapshot.
type StorageEntry struct {
	Address felt.Address
	Key     felt.Felt
}

// stateCache buffers one transactional lifetime's view of the ledger. The
// initial-value maps memoize the first read of every cell as it was before
// the transaction; the write maps carry the cells the transaction changed.
// Both grow monotonically and are discarded (or merged upstream) at commit.
type stateCache struct {
	classHashInitialValues map[felt.Address]felt.ClassHash
	nonceInitialValues     map[felt.Address]felt.Felt
	storageInitialValues   map[StorageEntry]felt.Felt

	classHashWrites map[felt.Address]felt.ClassHash
	nonceWrites     map[felt.Address]felt.Felt
	storageWrites   map[StorageEntry]felt.Felt
}

func newStateCache() stateCache {
	return stateCache{
		classHashInitialValues: make(map[felt.Address]felt.ClassHash),
		nonceInitialValues:     make(map[felt.Address]felt.Felt),
		storageInitialValues:   make(map[StorageEntry]felt.Felt),
		classHashWrites:        make(map[felt.Address]felt.ClassHash),
		nonceWrites:            make(map[felt.Address]felt.Felt),
		storageWrites:          make(map[StorageEntry]felt.Felt),
	}
}

func (c *stateCache) classHash(addr *felt.Address) (felt.ClassHash, bool) {
	if classHash, ok := c.classHashWrites[*addr]; ok {
		return classHash, true
	}
	classHash, ok := c.classHashInitialValues[*addr]
	return classHash, ok
}

func (c *stateCache) nonce(addr *felt.Address) (felt.Felt, bool) {
	if nonce, ok := c.nonceWrites[*addr]; ok {
		return nonce, true
	}
	nonce, ok := c.nonceInitialValues[*addr]
	return nonce, ok
}

func (c *stateCache) storage(entry StorageEntry) (felt.Felt, bool) {
	if value, ok := c.storageWrites[entry]; ok {
		return value, true
	}
	value, ok := c.storageInitialValues[entry]
	return value, ok
}

// StorageDelta returns the storage cells whose written value differs from the
// value present immediately before the transaction. Writes that restore the
// initial value do not count as changes.
func (c *stateCache) storageDelta() map[StorageEntry]felt.Felt {
	return utils.SubtractMappings(c.storageWrites, c.storageInitialValues)
}
