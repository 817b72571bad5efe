package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "embed"

	"github.com/NethermindEth/seqcore/core/crypto"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/encoder"
	"github.com/NethermindEth/seqcore/utils"
	"github.com/NethermindEth/seqcore/vm"
	lru "github.com/hashicorp/golang-lru"
)

const (
	apiVersionIdentifier = "__main__.API_VERSION"
	classHashEntryPoint  = "__main__.class_hash"

	// The hinted class hash input is a fixed placeholder rather than the
	// real abi/program serialization. Changing it changes every class hash
	// ever computed, so it is kept bit-for-bit as is.
	hintedClassHashInput = `{"abi": contract_class.abi, "program": contract_class.program}`

	classHashCacheSize = 4096
)

// The compiled hash-computation program ships with the engine build. It is
// parsed once and shared read-only between invocations; each run clones only
// the handle, never the parsed program.
//
//go:embed classhash_program.json
var classHashProgramJSON []byte

var classHashProgram = sync.OnceValues(func() (*Program, error) {
	program := new(Program)
	if err := json.Unmarshal(classHashProgramJSON, program); err != nil {
		return nil, fmt.Errorf("parse embedded hash program: %w", err)
	}
	return program, nil
})

//go:generate mockgen -destination=../mocks/mock_vm.go -package=mocks github.com/NethermindEth/seqcore/core VMFactory,VMRunner

// VMRunner is one run of the arithmetic VM over a fixed program. Implemented
// by the external execution engine; the class hasher only drives it.
type VMRunner interface {
	// AddAdditionalHashBuiltin registers the auxiliary hash resource
	// counter the hash program expects as its first argument.
	AddAdditionalHashBuiltin()
	// RunFromEntryPoint executes the program from the instruction at
	// entryPointPC with the given arguments.
	RunFromEntryPoint(entryPointPC uint64, args []vm.CairoArg, verifySecure bool) (vm.ExecutionResources, []*felt.Felt, error)
}

// VMFactory instantiates a fresh runner and memory per invocation.
type VMFactory interface {
	NewRunner(program *Program) (VMRunner, error)
}

// ClassHasher derives deterministic class hashes by replaying the embedded
// hash-computation program inside the same arithmetic VM that executes
// contracts, so the hash's field arithmetic can never drift from the
// execution engine's own semantics.
type ClassHasher struct {
	vm    VMFactory
	log   utils.SimpleLogger
	cache *lru.Cache
}

func NewClassHasher(vmFactory VMFactory, log utils.SimpleLogger) (*ClassHasher, error) {
	cache, err := lru.New(classHashCacheSize)
	if err != nil {
		return nil, err
	}
	return &ClassHasher{
		vm:    vmFactory,
		log:   log,
		cache: cache,
	}, nil
}

// Hash computes the content-derived identifier of the class. The hash is a
// pure function of class content, so results are memoized on a content key.
func (h *ClassHasher) Hash(class *ContractClass) (felt.ClassHash, error) {
	contentKey, err := classContentKey(class)
	if err != nil {
		return felt.ClassHash{}, err
	}
	if cached, ok := h.cache.Get(contentKey); ok {
		return cached.(felt.ClassHash), nil
	}

	program, err := classHashProgram()
	if err != nil {
		return felt.ClassHash{}, err
	}

	entryPoint, ok := program.Identifier(classHashEntryPoint)
	if !ok || entryPoint.Pc == nil {
		return felt.ClassHash{}, &MissingIdentifierError{Name: classHashEntryPoint}
	}

	args, err := canonicalClassArgs(program, class)
	if err != nil {
		return felt.ClassHash{}, err
	}

	runner, err := h.vm.NewRunner(program)
	if err != nil {
		return felt.ClassHash{}, err
	}
	runner.AddAdditionalHashBuiltin()

	resources, returns, err := runner.RunFromEntryPoint(*entryPoint.Pc, args, true)
	if err != nil {
		return felt.ClassHash{}, err
	}
	// The program returns (hash_ptr, hash); the hash is the second value.
	if len(returns) != 2 || returns[1] == nil {
		return felt.ClassHash{}, ErrIndexOutOfRange
	}

	hash := felt.ClassHash(*returns[1])
	h.cache.Add(contentKey, hash)
	h.log.Debugw("computed class hash", "hash", hash.String(), "steps", resources.Steps)
	return hash, nil
}

// canonicalClassArgs serializes the class into the flat argument list the
// hash program consumes. The section order is part of the hash definition:
// api version, the three entry point groups (count then flattened pairs),
// builtins (count then lower-cased big-endian names), hinted class hash,
// bytecode length, bytecode.
func canonicalClassArgs(hashProgram *Program, class *ContractClass) ([]vm.CairoArg, error) {
	apiVersion, ok := hashProgram.Identifier(apiVersionIdentifier)
	if !ok {
		return nil, &MissingIdentifierError{Name: apiVersionIdentifier}
	}
	if apiVersion.Value == nil {
		return nil, ErrMissingAPIVersion
	}

	for kind := range class.EntryPointsByType {
		switch kind {
		case External, L1Handler, Constructor:
		default:
			return nil, ErrMissingEntryPointType
		}
	}

	externals, err := class.EntryPoints(External)
	if err != nil {
		return nil, err
	}
	l1Handlers, err := class.EntryPoints(L1Handler)
	if err != nil {
		return nil, err
	}
	constructors, err := class.EntryPoints(Constructor)
	if err != nil {
		return nil, err
	}

	builtins := utils.Map(class.Program.Builtins, func(builtin string) *felt.Felt {
		return new(felt.Felt).SetBytes([]byte(strings.ToLower(builtin)))
	})

	hintedHash, err := HintedClassHash(class)
	if err != nil {
		return nil, err
	}

	return []vm.CairoArg{
		vm.NewSingleArg(apiVersion.Value),
		vm.NewSingleArg(new(felt.Felt).SetUint64(uint64(len(externals)))),
		vm.NewArrayArg(FlattenEntryPoints(externals)),
		vm.NewSingleArg(new(felt.Felt).SetUint64(uint64(len(l1Handlers)))),
		vm.NewArrayArg(FlattenEntryPoints(l1Handlers)),
		vm.NewSingleArg(new(felt.Felt).SetUint64(uint64(len(constructors)))),
		vm.NewArrayArg(FlattenEntryPoints(constructors)),
		vm.NewSingleArg(new(felt.Felt).SetUint64(uint64(len(builtins)))),
		vm.NewArrayArg(builtins),
		vm.NewSingleArg(hintedHash),
		vm.NewSingleArg(new(felt.Felt).SetUint64(uint64(len(class.Program.Data)))),
		vm.NewArrayArg(utils.NonNilSlice(class.Program.Data)),
	}, nil
}

// HintedClassHash is the starknet keccak of the class's abi/program encoding.
// The current encoding is the fixed placeholder above; see
// hintedClassHashInput before assuming it reflects real class content.
func HintedClassHash(_ *ContractClass) (*felt.Felt, error) {
	return crypto.StarknetKeccak([]byte(hintedClassHashInput))
}

// classContentKey derives a cache key from the full class content.
func classContentKey(class *ContractClass) (felt.Felt, error) {
	enc, err := encoder.Marshal(class)
	if err != nil {
		return felt.Felt{}, err
	}
	key, err := crypto.StarknetKeccak(enc)
	if err != nil {
		return felt.Felt{}, err
	}
	return *key, nil
}
