package execution

import (
	"github.com/NethermindEth/seqcore/utils"
	"github.com/NethermindEth/seqcore/vm"
)

// GasUsageResource is the mandatory key of the L1 gas entry in a billable
// resource mapping.
const GasUsageResource = "l1_gas_usage"

// ResourcesManager accumulates VM resource counters and syscall invocation
// counts across an entire transaction's nested calls.
type ResourcesManager struct {
	vmUsage        vm.ExecutionResources
	syscallCounter map[string]uint64
}

func NewResourcesManager() *ResourcesManager {
	return &ResourcesManager{
		syscallCounter: make(map[string]uint64),
	}
}

// AddVMUsage folds one call's VM resource counters into the total.
func (m *ResourcesManager) AddVMUsage(resources *vm.ExecutionResources) {
	m.vmUsage.Add(resources)
}

// IncrementSyscallCounter counts one invocation of the named syscall.
func (m *ResourcesManager) IncrementSyscallCounter(syscall string) {
	m.syscallCounter[syscall]++
}

// VMUsage returns the accumulated VM resource counters.
func (m *ResourcesManager) VMUsage() vm.ExecutionResources {
	return m.vmUsage
}

// SyscallCounter returns the accumulated per-syscall invocation counts.
func (m *ResourcesManager) SyscallCounter() map[string]uint64 {
	return m.syscallCounter
}

// CalculateTxResources returns the total resources needed to include the most
// recent transaction in a batch: L1 gas usage plus VM execution resources,
// with the OS overhead for the transaction's syscalls folded in. Calculated
// as if the transaction were the first in the batch, for consistency.
// Resources with a zero final count are dropped; the result always carries
// GasUsageResource.
func CalculateTxResources(resourcesManager *ResourcesManager, callInfos []*CallInfo,
	txType TransactionType, storageChanges StorageChanges, l1HandlerPayloadSize *int,
) (map[string]uint64, error) {
	nonOptionalCalls := utils.Filter(callInfos, func(call *CallInfo) bool { return call != nil })

	nDeployments := 0
	var l2ToL1Messages []L2ToL1MessageInfo
	for _, call := range nonOptionalCalls {
		nDeployments += call.CountConstructors()

		messages, err := call.SortedL2ToL1Messages()
		if err != nil {
			return nil, err
		}
		l2ToL1Messages = append(l2ToL1Messages, messages...)
	}

	l1GasUsage := CalculateTxGasUsage(l2ToL1Messages, storageChanges.NModifiedContracts,
		storageChanges.NStorageChanges, l1HandlerPayloadSize, nDeployments)

	additional, err := AdditionalOSResources(resourcesManager.SyscallCounter(), txType)
	if err != nil {
		return nil, err
	}

	total := resourcesManager.VMUsage()
	total.Add(&additional)
	filtered := total.FilterUnusedBuiltins()

	resources := map[string]uint64{
		GasUsageResource: uint64(l1GasUsage),
	}
	if filtered.Steps > 0 {
		resources["n_steps"] = filtered.Steps
	}
	if filtered.MemoryHoles > 0 {
		resources["n_memory_holes"] = filtered.MemoryHoles
	}
	for builtin, count := range filtered.BuiltinInstanceCounter {
		resources[builtin] = count
	}
	return resources, nil
}

// StorageChanges is the pair CachedState.CountActualStorageChanges reports.
type StorageChanges struct {
	NModifiedContracts int
	NStorageChanges    int
}
