package state

import (
	"github.com/NethermindEth/seqcore/core/felt"
)

// ToStateDiffStorageMapping groups a flat write set by contract address.
// The output's key set equals the set of distinct addresses in the input;
// input iteration order is irrelevant.
func ToStateDiffStorageMapping(flat map[StorageEntry]felt.Felt) map[felt.Address]map[felt.Felt]felt.Felt {
	nested := make(map[felt.Address]map[felt.Felt]felt.Felt)
	for entry, value := range flat {
		contractStorage, ok := nested[entry.Address]
		if !ok {
			contractStorage = make(map[felt.Felt]felt.Felt)
			nested[entry.Address] = contractStorage
		}
		contractStorage[entry.Key] = value
	}
	return nested
}

// ToCacheStateStorageMapping flattens a nested storage mapping back to
// (address, key) -> value pairs. Exact inverse of ToStateDiffStorageMapping
// on well-formed maps.
func ToCacheStateStorageMapping(nested map[felt.Address]map[felt.Felt]felt.Felt) map[StorageEntry]felt.Felt {
	flat := make(map[StorageEntry]felt.Felt)
	for addr, contractStorage := range nested {
		for key, value := range contractStorage {
			flat[StorageEntry{Address: addr, Key: key}] = value
		}
	}
	return flat
}
