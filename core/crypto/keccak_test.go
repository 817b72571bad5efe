package crypto_test

import (
	"testing"

	"github.com/NethermindEth/seqcore/core/crypto"
	"github.com/NethermindEth/seqcore/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarknetKeccak(t *testing.T) {
	tests := map[string]struct {
		input string
		want  string
	}{
		"hello": {
			input: "hello",
			want:  "245588857976802048747271734601661359235654411526357843137188188665016085192",
		},
		"empty": {
			input: "",
			want:  "0x1d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		"get_balance entry point": {
			input: "get_balance",
			want:  "0x39e11d48192e4333233c7eb19d10ad67c362bb28580c604d67884c85da39695",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			want, err := new(felt.Felt).SetString(test.want)
			require.NoError(t, err)

			got, err := crypto.StarknetKeccak([]byte(test.input))
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s, want %s", got, want)
		})
	}
}

func TestStarknetKeccakTopBits(t *testing.T) {
	// The masked digest always fits in 250 bits.
	for _, input := range []string{"a", "storage", "__default__", "pool_balance"} {
		got, err := crypto.StarknetKeccak([]byte(input))
		require.NoError(t, err)
		bytes := got.Bytes()
		assert.LessOrEqual(t, bytes[0], uint8(3))
	}
}
