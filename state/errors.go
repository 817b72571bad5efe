package state

import (
	"errors"
)

var (
	// ErrContractNotDeployed means the contract's class hash is the zero
	// sentinel: no class was ever assigned to the address.
	ErrContractNotDeployed = errors.New("contract not deployed")
	// ErrClassHashRead wraps backing-reader failures while resolving a
	// contract's class hash.
	ErrClassHashRead = errors.New("failed to read class hash")
	// ErrClassNotFound means the backing reader has no definition for the
	// requested class hash.
	ErrClassNotFound = errors.New("class definition not found")
)
