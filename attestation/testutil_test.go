package attestation

import (
	"math/big"
	"testing"

	"github.com/privattest/bgncore/bgn"
	"github.com/stretchr/testify/require"
)

// toyPrimes mirrors package bgn's own toy fixture (q1=11, q2=13, n=143):
// small enough to make attestation tests fast while still exercising the
// full key-generation and pairing search path.
func toyPrimes(_ int) (*big.Int, *big.Int, error) {
	return big.NewInt(11), big.NewInt(13), nil
}

func mustKeypair(t *testing.T) (*bgn.PublicKey, *bgn.PrivateKey) {
	t.Helper()
	pub, priv, err := bgn.GenerateKeypair(bgn.MinKeySize, toyPrimes)
	require.NoError(t, err)
	return pub, priv
}
