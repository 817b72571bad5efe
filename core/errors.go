package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIVersion means the api version identifier of the hash
	// program carries no value.
	ErrMissingAPIVersion = errors.New("api version identifier has no value")
	// ErrMissingEntryPointType means a class declares entry points of a
	// kind outside the canonical class layout.
	ErrMissingEntryPointType = errors.New("non existing entry point type")
	// ErrIndexOutOfRange means the hash program returned values in an
	// unexpected shape.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// MissingIdentifierError means the embedded hash program's identifier table
// lacks a required name. This is a malformed build artefact, not a property
// of the class being hashed.
type MissingIdentifierError struct {
	Name string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("missing identifier %s", e.Name)
}

// InvalidOffsetError means an entry point offset points outside the class's
// bytecode.
type InvalidOffsetError struct {
	Offset uint64
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid offset %d", e.Offset)
}
