// Package vm holds the data types exchanged with the arithmetic VM that
// executes compiled Cairo programs. The VM itself is an external collaborator;
// this package only fixes the shapes that cross the boundary.
package vm

import (
	"github.com/NethermindEth/seqcore/core/felt"
)

// CairoArg is one argument of a VM entry point invocation: either a single
// field element or a flat array of field elements. Exactly one of the two
// fields is set.
type CairoArg struct {
	Single *felt.Felt
	Array  []*felt.Felt
}

func NewSingleArg(v *felt.Felt) CairoArg {
	return CairoArg{Single: v}
}

func NewArrayArg(vs []*felt.Felt) CairoArg {
	return CairoArg{Array: vs}
}

// ExecutionResources counts the low-level resources one VM run consumed.
type ExecutionResources struct {
	Steps                  uint64
	MemoryHoles            uint64
	BuiltinInstanceCounter map[string]uint64
}

// Add accumulates other into r, resource by resource.
func (r *ExecutionResources) Add(other *ExecutionResources) {
	r.Steps += other.Steps
	r.MemoryHoles += other.MemoryHoles
	if len(other.BuiltinInstanceCounter) == 0 {
		return
	}
	if r.BuiltinInstanceCounter == nil {
		r.BuiltinInstanceCounter = make(map[string]uint64, len(other.BuiltinInstanceCounter))
	}
	for builtin, count := range other.BuiltinInstanceCounter {
		r.BuiltinInstanceCounter[builtin] += count
	}
}

// FilterUnusedBuiltins returns a copy of r without zero-count builtins.
func (r *ExecutionResources) FilterUnusedBuiltins() ExecutionResources {
	filtered := ExecutionResources{
		Steps:                  r.Steps,
		MemoryHoles:            r.MemoryHoles,
		BuiltinInstanceCounter: make(map[string]uint64, len(r.BuiltinInstanceCounter)),
	}
	for builtin, count := range r.BuiltinInstanceCounter {
		if count > 0 {
			filtered.BuiltinInstanceCounter[builtin] = count
		}
	}
	return filtered
}
