package core

import (
	"encoding/json"

	"github.com/NethermindEth/seqcore/core/felt"
)

// Program is a compiled Cairo program: flat bytecode as field elements, the
// builtins it imports and the identifier table the compiler emitted.
type Program struct {
	Builtins         []string              `json:"builtins"`
	Data             []*felt.Felt          `json:"data"`
	Hints            json.RawMessage       `json:"hints,omitempty"`
	Identifiers      map[string]Identifier `json:"identifiers,omitempty"`
	MainScope        string                `json:"main_scope,omitempty"`
	Prime            string                `json:"prime,omitempty"`
	ReferenceManager json.RawMessage       `json:"reference_manager,omitempty"`
}

// Identifier is one entry of a program's identifier table. Constants carry a
// value, functions carry the pc of their first instruction.
type Identifier struct {
	Type  string     `json:"type,omitempty"`
	Value *felt.Felt `json:"value,omitempty"`
	Pc    *uint64    `json:"pc,omitempty"`
}

// Identifier looks the name up in the program's identifier table. A missing
// name means the program artefact is malformed for the caller's purpose.
func (p *Program) Identifier(name string) (Identifier, bool) {
	ident, ok := p.Identifiers[name]
	return ident, ok
}
