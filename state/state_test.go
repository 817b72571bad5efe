package state_test

import (
	"testing"

	"github.com/NethermindEth/seqcore/core"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingReader wraps InMemoryStateReader and counts backing reads so tests
// can assert on memoization.
type countingReader struct {
	*state.InMemoryStateReader
	classHashReads int
	nonceReads     int
	storageReads   int
}

func (r *countingReader) ContractClassHash(addr *felt.Address) (felt.ClassHash, error) {
	r.classHashReads++
	return r.InMemoryStateReader.ContractClassHash(addr)
}

func (r *countingReader) ContractNonce(addr *felt.Address) (felt.Felt, error) {
	r.nonceReads++
	return r.InMemoryStateReader.ContractNonce(addr)
}

func (r *countingReader) ContractStorage(addr *felt.Address, key *felt.Felt) (felt.Felt, error) {
	r.storageReads++
	return r.InMemoryStateReader.ContractStorage(addr, key)
}

func TestCachedStateMemoizesReads(t *testing.T) {
	reader := &countingReader{InMemoryStateReader: state.NewInMemoryStateReader()}
	addr := felt.AddressFromUint64(1)
	key := new(felt.Felt).SetUint64(42)
	value := new(felt.Felt).SetUint64(7)
	reader.PutStorage(&addr, key, value)

	cached := state.NewCachedState(reader)
	for i := 0; i < 3; i++ {
		got, err := cached.ContractStorage(&addr, key)
		require.NoError(t, err)
		assert.True(t, value.Equal(&got))
	}
	assert.Equal(t, 1, reader.storageReads)

	for i := 0; i < 3; i++ {
		_, err := cached.ContractNonce(&addr)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, reader.nonceReads)
}

func TestCachedStateWritesShadowReader(t *testing.T) {
	reader := &countingReader{InMemoryStateReader: state.NewInMemoryStateReader()}
	addr := felt.AddressFromUint64(1)
	key := new(felt.Felt).SetUint64(5)

	cached := state.NewCachedState(reader)
	written := new(felt.Felt).SetUint64(99)
	cached.SetContractStorage(&addr, key, written)

	got, err := cached.ContractStorage(&addr, key)
	require.NoError(t, err)
	assert.True(t, written.Equal(&got))
	assert.Zero(t, reader.storageReads)
}

func TestIncrementNonce(t *testing.T) {
	reader := state.NewInMemoryStateReader()
	addr := felt.AddressFromUint64(3)
	start := new(felt.Felt).SetUint64(10)
	reader.PutNonce(&addr, start)

	cached := state.NewCachedState(reader)
	require.NoError(t, cached.IncrementNonce(&addr))

	nonce, err := cached.ContractNonce(&addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), nonce.Uint64())

	// The backing reader still holds the committed value.
	committed, err := reader.ContractNonce(&addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), committed.Uint64())
}

func TestDeployContract(t *testing.T) {
	reader := state.NewInMemoryStateReader()
	cached := state.NewCachedState(reader)

	addr := felt.AddressFromUint64(100)
	classHash, err := felt.ClassHashFromString("0xdead")
	require.NoError(t, err)

	require.NoError(t, cached.DeployContract(&addr, &classHash))

	got, err := cached.ContractClassHash(&addr)
	require.NoError(t, err)
	assert.True(t, classHash.Equal(&got))

	nonce, err := cached.ContractNonce(&addr)
	require.NoError(t, err)
	assert.True(t, nonce.IsZero())

	t.Run("deploying to an occupied address fails", func(t *testing.T) {
		other, err := felt.ClassHashFromString("0xbeef")
		require.NoError(t, err)
		assert.Error(t, cached.DeployContract(&addr, &other))
	})
}

func TestValidateContractDeployed(t *testing.T) {
	reader := state.NewInMemoryStateReader()
	deployed := felt.AddressFromUint64(1)
	classHash, err := felt.ClassHashFromString("0x1234")
	require.NoError(t, err)
	reader.PutContract(&deployed, &classHash)

	cached := state.NewCachedState(reader)

	got, err := cached.ValidateContractDeployed(&deployed)
	require.NoError(t, err)
	assert.True(t, classHash.Equal(&got))

	t.Run("zero class hash means not deployed", func(t *testing.T) {
		missing := felt.AddressFromUint64(2)
		_, err := cached.ValidateContractDeployed(&missing)
		assert.ErrorIs(t, err, state.ErrContractNotDeployed)
	})
}

func TestCountActualStorageChanges(t *testing.T) {
	reader := state.NewInMemoryStateReader()
	addr1 := felt.AddressFromUint64(1)
	addr2 := felt.AddressFromUint64(2)
	keyA := new(felt.Felt).SetUint64(10)
	keyB := new(felt.Felt).SetUint64(11)
	reader.PutStorage(&addr1, keyA, new(felt.Felt).SetUint64(5))

	cached := state.NewCachedState(reader)

	// Populate initial values through reads before writing.
	_, err := cached.ContractStorage(&addr1, keyA)
	require.NoError(t, err)

	// Rewriting a cell to its pre-transaction value is not a change.
	cached.SetContractStorage(&addr1, keyA, new(felt.Felt).SetUint64(5))
	nContracts, nChanges := cached.CountActualStorageChanges()
	assert.Zero(t, nContracts)
	assert.Zero(t, nChanges)

	cached.SetContractStorage(&addr1, keyA, new(felt.Felt).SetUint64(6))
	cached.SetContractStorage(&addr1, keyB, new(felt.Felt).SetUint64(7))
	cached.SetContractStorage(&addr2, keyA, new(felt.Felt).SetUint64(8))

	nContracts, nChanges = cached.CountActualStorageChanges()
	assert.Equal(t, 2, nContracts)
	assert.Equal(t, 3, nChanges)
	assert.ElementsMatch(t, []felt.Address{addr1, addr2}, cached.ModifiedContracts())
}

func TestContractClassMemoized(t *testing.T) {
	reader := state.NewInMemoryStateReader()
	classHash, err := felt.ClassHashFromString("0xc1a55")
	require.NoError(t, err)
	reader.PutClass(&classHash, &core.ContractClass{})

	cached := state.NewCachedState(reader)
	class, err := cached.ContractClass(&classHash)
	require.NoError(t, err)
	assert.NotNil(t, class)

	t.Run("unknown class", func(t *testing.T) {
		missing, err := felt.ClassHashFromString("0xffff")
		require.NoError(t, err)
		_, err = cached.ContractClass(&missing)
		assert.ErrorIs(t, err, state.ErrClassNotFound)
	})
}
