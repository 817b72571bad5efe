package felt

// Address is the field-element identifier of a deployed contract instance.
// It is a distinct type from the felts stored under it so that nested diff
// mappings cannot confuse an address for a committed storage value.
type Address Felt

func AddressFromUint64(v uint64) Address {
	return Address(*new(Felt).SetUint64(v))
}

func (a *Address) AsFelt() *Felt {
	return (*Felt)(a)
}

func (a *Address) Bytes() [32]byte {
	return (*Felt)(a).Bytes()
}

func (a *Address) String() string {
	return (*Felt)(a).String()
}

func (a *Address) UnmarshalJSON(data []byte) error {
	return (*Felt)(a).UnmarshalJSON(data)
}

func (a *Address) MarshalJSON() ([]byte, error) {
	return (*Felt)(a).MarshalJSON()
}

func (a *Address) Marshal() []byte {
	return (*Felt)(a).Marshal()
}

func (a *Address) IsZero() bool {
	return (*Felt)(a).IsZero()
}

func (a *Address) Equal(b *Address) bool {
	return (*Felt)(a).Equal((*Felt)(b))
}
