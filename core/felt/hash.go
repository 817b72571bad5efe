package felt

type Hash Felt

func (h *Hash) Bytes() [32]byte {
	return (*Felt)(h).Bytes()
}

func (h *Hash) String() string {
	return (*Felt)(h).String()
}

// ClassHash is the content-derived identifier of a compiled contract class.
// The zero value is the reserved sentinel for "not deployed".
type ClassHash Hash

func (h *ClassHash) AsFelt() *Felt {
	return (*Felt)(h)
}

func (h *ClassHash) Bytes() [32]byte {
	return (*Hash)(h).Bytes()
}

func (h *ClassHash) String() string {
	return (*Hash)(h).String()
}

func (h *ClassHash) IsZero() bool {
	return (*Felt)(h).IsZero()
}

func (h *ClassHash) Equal(o *ClassHash) bool {
	return (*Felt)(h).Equal((*Felt)(o))
}

// ClassHashFromString parses a 0x-prefixed hex or decimal class hash
// representation.
func ClassHashFromString(s string) (ClassHash, error) {
	var f Felt
	if _, err := f.SetString(s); err != nil {
		return ClassHash{}, err
	}
	return ClassHash(f), nil
}

type TransactionHash Hash

func (h *TransactionHash) String() string {
	return (*Hash)(h).String()
}
