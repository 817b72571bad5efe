package crypto

import (
	"github.com/NethermindEth/seqcore/core/felt"
)

// StorageVarAddress derives the storage key of a named contract storage
// variable: the starknet keccak of the variable name, folded with a Pedersen
// hash per argument. Deterministic, so the key set a call touches can be
// reproduced without re-running the contract.
func StorageVarAddress(name string, args ...*felt.Felt) (*felt.Felt, error) {
	addr, err := StarknetKeccak([]byte(name))
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		addr = Pedersen(addr, arg)
	}
	return addr, nil
}
