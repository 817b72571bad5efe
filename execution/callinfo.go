package execution

import (
	"github.com/NethermindEth/seqcore/core"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/vm"
)

type CallType int

const (
	CallTypeCall CallType = iota
	CallTypeDelegate
)

// OrderedL2ToL1Message is a message emitted during execution destined for
// settlement on L1, tagged with its emission order within the transaction.
type OrderedL2ToL1Message struct {
	Order     uint64
	ToAddress felt.Address
	Payload   []felt.Felt
}

// L2ToL1MessageInfo is a message paired with its emitting contract, in final
// emission order.
type L2ToL1MessageInfo struct {
	FromAddress felt.Address
	ToAddress   felt.Address
	Payload     []felt.Felt
}

// CallInfo is one node of the call topology a transaction produced: who
// called whom, with what data, what came back, and what the call touched.
// Produced by execution; consumed read-only here.
type CallInfo struct {
	CallerAddress       felt.Address
	ContractAddress     felt.Address
	CallType            CallType
	ClassHash           *felt.ClassHash
	EntryPointSelector  *felt.Felt
	EntryPointType      core.EntryPointType
	Calldata            []felt.Felt
	Retdata             []felt.Felt
	ExecutionResources  vm.ExecutionResources
	StorageReadValues   []felt.Felt
	AccessedStorageKeys map[felt.Felt]struct{}
	L2ToL1Messages      []OrderedL2ToL1Message
	InternalCalls       []CallInfo
}

// CallTopology flattens the call tree in preorder: the node itself, then each
// internal call's topology in declaration order. Deterministic for a fixed
// tree.
func (c *CallInfo) CallTopology() []*CallInfo {
	topology := []*CallInfo{c}
	for idx := range c.InternalCalls {
		topology = append(topology, c.InternalCalls[idx].CallTopology()...)
	}
	return topology
}

// CountConstructors returns how many calls in the topology entered through a
// constructor, which is the deployment count for fee purposes.
func (c *CallInfo) CountConstructors() int {
	deployments := 0
	for _, call := range c.CallTopology() {
		if call.EntryPointType == core.Constructor {
			deployments++
		}
	}
	return deployments
}

// SortedL2ToL1Messages collects every message emitted across the call
// topology, placed by its emission order index. A gap or duplicate order
// means the tree is malformed and returns ErrUnorderedL2ToL1Messages.
func (c *CallInfo) SortedL2ToL1Messages() ([]L2ToL1MessageInfo, error) {
	topology := c.CallTopology()

	nMessages := 0
	for _, call := range topology {
		nMessages += len(call.L2ToL1Messages)
	}

	sorted := make([]*L2ToL1MessageInfo, nMessages)
	for _, call := range topology {
		for _, message := range call.L2ToL1Messages {
			if message.Order >= uint64(nMessages) || sorted[message.Order] != nil {
				return nil, ErrUnorderedL2ToL1Messages
			}
			sorted[message.Order] = &L2ToL1MessageInfo{
				FromAddress: call.ContractAddress,
				ToAddress:   message.ToAddress,
				Payload:     message.Payload,
			}
		}
	}

	messages := make([]L2ToL1MessageInfo, nMessages)
	for idx, message := range sorted {
		if message == nil {
			return nil, ErrUnorderedL2ToL1Messages
		}
		messages[idx] = *message
	}
	return messages, nil
}

// VerifyNoCallsToOtherContracts checks that every call in the topology
// targets the invoked contract. Validation entry points must not touch any
// other contract.
func VerifyNoCallsToOtherContracts(call *CallInfo) error {
	invokedContract := call.ContractAddress
	for _, internal := range call.CallTopology() {
		if !internal.ContractAddress.Equal(&invokedContract) {
			return ErrUnauthorizedValidateCall
		}
	}
	return nil
}
