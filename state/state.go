// Package state implements the transactional, read-through cached view of
// committed ledger state and the diff engine that turns its write set into a
// commitment-ready state diff.
package state

import (
	"fmt"

	"github.com/NethermindEth/seqcore/core"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/utils"
)

// StateReader is a read-only view of committed ledger state. Implementations
// must be deterministic for a fixed backing snapshot.
type StateReader interface {
	ContractClassHash(addr *felt.Address) (felt.ClassHash, error)
	ContractNonce(addr *felt.Address) (felt.Felt, error)
	ContractStorage(addr *felt.Address, key *felt.Felt) (felt.Felt, error)
	ContractClass(classHash *felt.ClassHash) (*core.ContractClass, error)
}

// CachedState overlays a backing StateReader with write-buffering caches.
// Reads fall through to the reader exactly once per cell and are memoized;
// writes only ever touch the caches. One instance belongs to exactly one
// in-flight transaction; there is no interior locking.
type CachedState struct {
	reader  StateReader
	cache   stateCache
	classes map[felt.ClassHash]*core.ContractClass
}

var _ StateReader = (*CachedState)(nil)

func NewCachedState(reader StateReader) *CachedState {
	return &CachedState{
		reader:  reader,
		cache:   newStateCache(),
		classes: make(map[felt.ClassHash]*core.ContractClass),
	}
}

// ContractClassHash returns the class hash deployed at addr, fetching and
// memoizing it from the backing reader on first access.
func (s *CachedState) ContractClassHash(addr *felt.Address) (felt.ClassHash, error) {
	if classHash, ok := s.cache.classHash(addr); ok {
		return classHash, nil
	}
	classHash, err := s.reader.ContractClassHash(addr)
	if err != nil {
		return felt.ClassHash{}, fmt.Errorf("%w: %v", ErrClassHashRead, err)
	}
	s.cache.classHashInitialValues[*addr] = classHash
	return classHash, nil
}

// SetContractClassHash records a class hash assignment in the cache.
func (s *CachedState) SetContractClassHash(addr *felt.Address, classHash *felt.ClassHash) {
	s.cache.classHashWrites[*addr] = *classHash
}

// ContractNonce returns the contract's nonce, fetching and memoizing it from
// the backing reader on first access.
func (s *CachedState) ContractNonce(addr *felt.Address) (felt.Felt, error) {
	if nonce, ok := s.cache.nonce(addr); ok {
		return nonce, nil
	}
	nonce, err := s.reader.ContractNonce(addr)
	if err != nil {
		return felt.Felt{}, err
	}
	s.cache.nonceInitialValues[*addr] = nonce
	return nonce, nil
}

// SetContractNonce records a nonce update in the cache.
func (s *CachedState) SetContractNonce(addr *felt.Address, nonce *felt.Felt) {
	s.cache.nonceWrites[*addr] = *nonce
}

// IncrementNonce bumps the contract's nonce by one.
func (s *CachedState) IncrementNonce(addr *felt.Address) error {
	nonce, err := s.ContractNonce(addr)
	if err != nil {
		return fmt.Errorf("get contract nonce: %w", err)
	}
	one := new(felt.Felt).SetUint64(1)
	s.SetContractNonce(addr, nonce.Add(&nonce, one))
	return nil
}

// ContractStorage returns the value of one storage cell, fetching and
// memoizing it from the backing reader on first access.
func (s *CachedState) ContractStorage(addr *felt.Address, key *felt.Felt) (felt.Felt, error) {
	entry := StorageEntry{Address: *addr, Key: *key}
	if value, ok := s.cache.storage(entry); ok {
		return value, nil
	}
	value, err := s.reader.ContractStorage(addr, key)
	if err != nil {
		return felt.Felt{}, err
	}
	s.cache.storageInitialValues[entry] = value
	return value, nil
}

// SetContractStorage records a storage cell write in the cache. The backing
// reader is never touched.
func (s *CachedState) SetContractStorage(addr *felt.Address, key, value *felt.Felt) {
	s.cache.storageWrites[StorageEntry{Address: *addr, Key: *key}] = *value
}

// ContractClass resolves a class definition, memoizing it per class hash.
func (s *CachedState) ContractClass(classHash *felt.ClassHash) (*core.ContractClass, error) {
	if class, ok := s.classes[*classHash]; ok {
		return class, nil
	}
	class, err := s.reader.ContractClass(classHash)
	if err != nil {
		return nil, err
	}
	s.classes[*classHash] = class
	return class, nil
}

// SetContractClass registers a class definition in the cache.
func (s *CachedState) SetContractClass(classHash *felt.ClassHash, class *core.ContractClass) {
	s.classes[*classHash] = class
}

// DeployContract assigns a class hash to a fresh address with a zero nonce.
func (s *CachedState) DeployContract(addr *felt.Address, classHash *felt.ClassHash) error {
	current, err := s.ContractClassHash(addr)
	if err != nil {
		return err
	}
	if !current.IsZero() {
		return fmt.Errorf("contract %s already deployed", addr.String())
	}
	s.SetContractClassHash(addr, classHash)
	s.SetContractNonce(addr, &felt.Zero)
	return nil
}

// ValidateContractDeployed returns the class hash deployed at addr, or
// ErrContractNotDeployed when the cached or fetched class hash is the zero
// sentinel.
func (s *CachedState) ValidateContractDeployed(addr *felt.Address) (felt.ClassHash, error) {
	classHash, err := s.ContractClassHash(addr)
	if err != nil {
		return felt.ClassHash{}, err
	}
	if classHash.IsZero() {
		return felt.ClassHash{}, fmt.Errorf("%w: %s", ErrContractNotDeployed, addr.String())
	}
	return classHash, nil
}

// CountActualStorageChanges reports how many distinct contracts have at least
// one changed cell and how many distinct cells changed, diffed against the
// values present immediately before the transaction rather than against the
// cache's own stale reads.
func (s *CachedState) CountActualStorageChanges() (nModifiedContracts, nStorageChanges int) {
	delta := s.cache.storageDelta()
	modified := make(map[felt.Address]struct{}, len(delta))
	for entry := range delta {
		modified[entry.Address] = struct{}{}
	}
	return len(modified), len(delta)
}

// ModifiedContracts returns the addresses with at least one actually changed
// storage cell, in arbitrary order. These are the contracts the on-chain data
// segment publishes entries for.
func (s *CachedState) ModifiedContracts() []felt.Address {
	return utils.MapKeys(s.StorageDiff())
}

// StorageWrites returns the flat write set accumulated so far. The map is
// shared with the cache; callers must treat it as read-only.
func (s *CachedState) StorageWrites() map[StorageEntry]felt.Felt {
	return s.cache.storageWrites
}

// StorageDiff returns the nested minimal storage delta for commitment:
// per-address, per-key values that differ from the pre-transaction state.
func (s *CachedState) StorageDiff() map[felt.Address]map[felt.Felt]felt.Felt {
	return ToStateDiffStorageMapping(s.cache.storageDelta())
}
