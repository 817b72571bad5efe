package state_test

import (
	"testing"

	"github.com/NethermindEth/seqcore/core"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/NethermindEth/seqcore/db"
	"github.com/NethermindEth/seqcore/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPebbleStateReader(t *testing.T) {
	database := db.NewMemTest(t)
	writer := state.NewCommitStateWriter(database)
	reader := state.NewPebbleStateReader(database)

	addr := felt.AddressFromUint64(7)
	classHash, err := felt.ClassHashFromString("0xabc123")
	require.NoError(t, err)

	t.Run("unwritten cells read as zero", func(t *testing.T) {
		got, err := reader.ContractClassHash(&addr)
		require.NoError(t, err)
		assert.True(t, got.IsZero())

		nonce, err := reader.ContractNonce(&addr)
		require.NoError(t, err)
		assert.True(t, nonce.IsZero())

		key := new(felt.Felt).SetUint64(1)
		value, err := reader.ContractStorage(&addr, key)
		require.NoError(t, err)
		assert.True(t, value.IsZero())
	})

	t.Run("contract round trip", func(t *testing.T) {
		require.NoError(t, writer.WriteContract(&addr, &classHash))

		got, err := reader.ContractClassHash(&addr)
		require.NoError(t, err)
		assert.True(t, classHash.Equal(&got))
	})

	t.Run("nonce round trip", func(t *testing.T) {
		nonce := new(felt.Felt).SetUint64(12)
		require.NoError(t, writer.WriteNonce(&addr, nonce))

		got, err := reader.ContractNonce(&addr)
		require.NoError(t, err)
		assert.True(t, nonce.Equal(&got))
	})

	t.Run("storage diff round trip", func(t *testing.T) {
		key := *new(felt.Felt).SetUint64(3)
		value := *new(felt.Felt).SetUint64(44)
		diff := map[felt.Address]map[felt.Felt]felt.Felt{
			addr: {key: value},
		}
		require.NoError(t, writer.WriteStorageDiff(diff))

		got, err := reader.ContractStorage(&addr, &key)
		require.NoError(t, err)
		assert.True(t, value.Equal(&got))
	})

	t.Run("class round trip", func(t *testing.T) {
		selector := new(felt.Felt).SetUint64(0x1234)
		class := &core.ContractClass{
			Program: core.Program{
				Builtins: []string{"pedersen", "range_check"},
				Data:     []*felt.Felt{new(felt.Felt).SetUint64(0x480680017fff8000)},
				Prime:    "0x800000000000011000000000000000000000000000000000000000000000001",
			},
			EntryPointsByType: map[core.EntryPointType][]core.EntryPoint{
				core.External: {{Selector: selector, Offset: 0}},
			},
		}
		require.NoError(t, writer.WriteClass(&classHash, class))

		got, err := reader.ContractClass(&classHash)
		require.NoError(t, err)
		assert.Equal(t, class.Program.Builtins, got.Program.Builtins)
		assert.Equal(t, class.Program.Prime, got.Program.Prime)
		require.Len(t, got.EntryPointsByType[core.External], 1)
		assert.True(t, selector.Equal(got.EntryPointsByType[core.External][0].Selector))
	})

	t.Run("missing class is an error", func(t *testing.T) {
		missing, err := felt.ClassHashFromString("0xfeed")
		require.NoError(t, err)
		_, err = reader.ContractClass(&missing)
		assert.ErrorIs(t, err, state.ErrClassNotFound)
	})

	t.Run("cached state over the store", func(t *testing.T) {
		cached := state.NewCachedState(reader)
		got, err := cached.ValidateContractDeployed(&addr)
		require.NoError(t, err)
		assert.True(t, classHash.Equal(&got))
	})
}
