package execution

import (
	"github.com/NethermindEth/seqcore/vm"
)

// Builtin names as they appear in VM resource counters.
const (
	PedersenBuiltin   = "pedersen_builtin"
	RangeCheckBuiltin = "range_check_builtin"
	EcdsaBuiltin      = "ecdsa_builtin"
	BitwiseBuiltin    = "bitwise_builtin"
	OutputBuiltin     = "output_builtin"
	EcOpBuiltin       = "ec_op_builtin"
)

// Measured OS overhead per syscall: the steps and builtin instances the OS
// spends wrapping each syscall on top of the contract's own execution.
var osResourcesPerSyscall = map[string]vm.ExecutionResources{
	"call_contract": {
		Steps:                  690,
		BuiltinInstanceCounter: map[string]uint64{RangeCheckBuiltin: 15},
	},
	"delegate_call": {
		Steps:                  712,
		BuiltinInstanceCounter: map[string]uint64{RangeCheckBuiltin: 15},
	},
	"delegate_l1_handler": {
		Steps:                  691,
		BuiltinInstanceCounter: map[string]uint64{RangeCheckBuiltin: 14},
	},
	"deploy": {
		Steps:                  936,
		BuiltinInstanceCounter: map[string]uint64{PedersenBuiltin: 7, RangeCheckBuiltin: 18},
	},
	"emit_event": {
		Steps: 19,
	},
	"get_block_number": {
		Steps: 40,
	},
	"get_block_timestamp": {
		Steps: 38,
	},
	"get_caller_address": {
		Steps: 32,
	},
	"get_contract_address": {
		Steps: 36,
	},
	"get_sequencer_address": {
		Steps: 34,
	},
	"get_tx_info": {
		Steps: 29,
	},
	"get_tx_signature": {
		Steps: 44,
	},
	"library_call": {
		Steps:                  679,
		BuiltinInstanceCounter: map[string]uint64{RangeCheckBuiltin: 15},
	},
	"library_call_l1_handler": {
		Steps:                  658,
		BuiltinInstanceCounter: map[string]uint64{RangeCheckBuiltin: 14},
	},
	"replace_class": {
		Steps: 73,
	},
	"send_message_to_l1": {
		Steps: 84,
	},
	"storage_read": {
		Steps: 44,
	},
	"storage_write": {
		Steps: 46,
	},
}

// Measured OS overhead per transaction type: the fixed cost of validating
// and wrapping the transaction, independent of what it executes.
var osResourcesPerTxType = map[TransactionType]vm.ExecutionResources{
	Declare: {
		Steps:                  2703,
		BuiltinInstanceCounter: map[string]uint64{PedersenBuiltin: 15, RangeCheckBuiltin: 63},
	},
	Deploy: {
		Steps: 0,
	},
	DeployAccount: {
		Steps:                  3612,
		BuiltinInstanceCounter: map[string]uint64{PedersenBuiltin: 23, RangeCheckBuiltin: 83},
	},
	InitializeBlockInfo: {
		Steps: 0,
	},
	InvokeFunction: {
		Steps:                  3363,
		BuiltinInstanceCounter: map[string]uint64{PedersenBuiltin: 16, RangeCheckBuiltin: 80},
	},
	L1Handler: {
		Steps:                  1068,
		BuiltinInstanceCounter: map[string]uint64{PedersenBuiltin: 11, RangeCheckBuiltin: 15},
	},
}

// AdditionalOSResources folds the OS overhead of every counted syscall plus
// the transaction type's fixed overhead into one resource total. A syscall
// without a known overhead mapping aborts billing.
func AdditionalOSResources(syscallCounter map[string]uint64, txType TransactionType) (vm.ExecutionResources, error) {
	var additional vm.ExecutionResources
	for syscall, count := range syscallCounter {
		perCall, ok := osResourcesPerSyscall[syscall]
		if !ok {
			return vm.ExecutionResources{}, &UnknownSyscallError{Syscall: syscall}
		}
		for i := uint64(0); i < count; i++ {
			additional.Add(&perCall)
		}
	}

	txOverhead := osResourcesPerTxType[txType]
	additional.Add(&txOverhead)
	return additional, nil
}
