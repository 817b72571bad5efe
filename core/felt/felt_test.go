package felt_test

import (
	"testing"

	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalJson(t *testing.T) {
	var with felt.Felt
	assert.NoError(t, with.UnmarshalJSON([]byte("0x4437ab")))

	var without felt.Felt
	assert.NoError(t, without.UnmarshalJSON([]byte("4437ab")))
	assert.Equal(t, true, without.Equal(&with))
}

func TestFeltCbor(t *testing.T) {
	var val felt.Felt
	_, err := val.SetRandom()
	assert.NoError(t, err)

	bytes, err := cbor.Marshal(&val)
	assert.NoError(t, err)

	var unmarshaledFelt felt.Felt
	assert.NoError(t, cbor.Unmarshal(bytes, &unmarshaledFelt))
	assert.Equal(t, val, unmarshaledFelt)
}

func TestBinaryRoundTrip(t *testing.T) {
	val := new(felt.Felt).SetUint64(257)
	marshaled, err := val.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, marshaled, felt.Bytes)

	var unmarshaled felt.Felt
	require.NoError(t, unmarshaled.UnmarshalBinary(marshaled))
	assert.True(t, val.Equal(&unmarshaled))
}

func TestAddressAndClassHashAreDistinct(t *testing.T) {
	addr := felt.AddressFromUint64(7)
	assert.Equal(t, "7", addr.String())
	assert.False(t, addr.IsZero())

	var classHash felt.ClassHash
	assert.True(t, classHash.IsZero())

	parsed, err := felt.ClassHashFromString("0x101")
	require.NoError(t, err)
	assert.Equal(t, uint64(257), parsed.AsFelt().Uint64())
}
