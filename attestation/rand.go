package attestation

import (
	"crypto/rand"
	"math/big"
)

// randRange draws a cryptographically strong uniform random integer in
// [lo, hi]. Mirrors package bgn's helper, which is unexported and so
// cannot be called from here.
func randRange(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}

// cryptoShuffle performs an in-place Fisher-Yates shuffle driven by
// crypto/rand, generic over the element type so it serves both the
// bit-pair-unit shuffle and the independent private-list shuffle in
// builder.go.
func cryptoShuffle[T any](s []T) error {
	for i := len(s) - 1; i > 0; i-- {
		jBig, err := randRange(big.NewInt(0), big.NewInt(int64(i)))
		if err != nil {
			return err
		}
		j := int(jBig.Int64())
		s[i], s[j] = s[j], s[i]
	}
	return nil
}
