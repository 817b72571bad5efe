package core

import (
	"encoding/json"

	"github.com/NethermindEth/seqcore/core/felt"
)

// EntryPointType is the kind of a callable contract function.
type EntryPointType string

const (
	External    EntryPointType = "EXTERNAL"
	L1Handler   EntryPointType = "L1_HANDLER"
	Constructor EntryPointType = "CONSTRUCTOR"
)

// EntryPoint uniquely identifies a Cairo function inside a class's bytecode.
type EntryPoint struct {
	// Starknet keccak hash of the function signature.
	Selector *felt.Felt `json:"selector"`
	// The offset of the instruction that should be called in the class's bytecode.
	Offset uint64 `json:"offset"`
}

// Flatten appends the canonical (offset, selector) encoding of the entry
// point to elems. The inverse of the encoding is position-based, so the order
// here must never change.
func (ep *EntryPoint) Flatten(elems []*felt.Felt) []*felt.Felt {
	return append(elems, new(felt.Felt).SetUint64(ep.Offset), ep.Selector)
}

// FlattenEntryPoints returns the canonical encoding of the entry points in
// declaration order.
func FlattenEntryPoints(eps []EntryPoint) []*felt.Felt {
	elems := make([]*felt.Felt, 0, len(eps)*2)
	for idx := range eps {
		elems = eps[idx].Flatten(elems)
	}
	return elems
}

// ContractClass unambiguously defines a contract's semantics: the compiled
// program, its callable entry points grouped by kind, and the optional ABI.
// Instances are immutable once loaded.
type ContractClass struct {
	Program           Program                         `json:"program"`
	EntryPointsByType map[EntryPointType][]EntryPoint `json:"entry_points_by_type"`
	Abi               json.RawMessage                 `json:"abi,omitempty"`
}

// EntryPoints returns the entry points of the given kind in declaration
// order. An absent kind yields an empty list. Every offset must fit within
// the program bytecode, otherwise an InvalidOffsetError is returned.
func (c *ContractClass) EntryPoints(kind EntryPointType) ([]EntryPoint, error) {
	entryPoints := c.EntryPointsByType[kind]
	programLen := uint64(len(c.Program.Data))
	for _, ep := range entryPoints {
		if ep.Offset > programLen {
			return nil, &InvalidOffsetError{Offset: ep.Offset}
		}
	}
	return entryPoints, nil
}
