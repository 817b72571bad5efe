package crypto

import (
	"github.com/NethermindEth/seqcore/core/felt"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type lruKey struct {
	x, y felt.Felt
}

var lruPedersen, _ = lru.New(1000000)

var pedersenCache = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "seqcore_pedersen",
	Help: "pedersen",
}, []string{"hit"})

// Pedersen implements the [Pedersen hash].
//
// [Pedersen hash]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#pedersen_hash
func Pedersen(a, b *felt.Felt) *felt.Felt {
	key := lruKey{
		x: *a, y: *b,
	}

	res, ok := lruPedersen.Get(key)
	if ok {
		pedersenCache.WithLabelValues("true").Inc()
		return res.(*felt.Felt)
	}

	hash := pedersenhash.Pedersen(a.Impl(), b.Impl())
	result := felt.New(&hash)
	lruPedersen.Add(key, result)
	pedersenCache.WithLabelValues("false").Inc()
	return result
}

// PedersenArray implements [Pedersen array hashing].
//
// [Pedersen array hashing]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#array_hashing
func PedersenArray(elems ...*felt.Felt) *felt.Felt {
	digest := &felt.Zero
	for _, elem := range elems {
		digest = Pedersen(digest, elem)
	}
	return Pedersen(digest, new(felt.Felt).SetUint64(uint64(len(elems))))
}
