package bgn

import (
	"crypto/rand"
	"math/big"
)

// randRange draws a cryptographically strong uniform random integer in
// [lo, hi]. The core never falls back to math/rand: every draw here and in
// package attestation goes through crypto/rand.
func randRange(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}
