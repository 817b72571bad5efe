package execution

import (
	"errors"
	"fmt"
)

var (
	// ErrUnorderedL2ToL1Messages means the emission order indices across a
	// call tree have gaps or duplicates: the tree is malformed.
	ErrUnorderedL2ToL1Messages = errors.New("l2 to l1 messages have gaps in their emission order")
	// ErrUnauthorizedValidateCall means a call tree that must stay within
	// one contract reached out to another.
	ErrUnauthorizedValidateCall = errors.New("unauthorized call to another contract during validation")
)

// UnknownSyscallError means a syscall was counted for which no resource
// overhead is known. Billing cannot proceed.
type UnknownSyscallError struct {
	Syscall string
}

func (e *UnknownSyscallError) Error() string {
	return fmt.Sprintf("unknown syscall %s", e.Syscall)
}
