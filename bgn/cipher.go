package bgn

import (
	"math/big"

	"github.com/privattest/bgncore/field"
)

// Ciphertext is a single F_{p^2} element. The BGN homomorphism makes
// Ciphertext multiplication equivalent to plaintext addition: Mul(a,b)
// encrypts a+b under the same key and randomness combined.
type Ciphertext struct {
	C field.Element
}

// Mul returns an encryption of the sum of the two ciphertexts' plaintexts.
func (c *Ciphertext) Mul(o *Ciphertext) *Ciphertext {
	return &Ciphertext{C: c.C.Mul(o.C)}
}

var four = big.NewInt(4)

// randomBlind draws h^r for r uniform in [4, p-1], resampling if h^r == 1.
// The upper bound intentionally uses the field modulus p rather than the
// group order n: PublicKey never carries n (only p, g, h per the scheme's
// data model), and p is always comfortably larger than ord(h), so any r in
// this range blinds correctly.
func randomBlind(h field.Element, p *big.Int) (field.Element, error) {
	one := field.One(p)
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	for {
		r, err := randRange(four, pMinus1)
		if err != nil {
			return field.Element{}, err
		}
		test := h.Pow(r)
		if !test.Equal(one) {
			return test, nil
		}
	}
}

// Encrypt computes Enc(pk, m) = g^m * h^r for a fresh random r.
func Encrypt(pk *PublicKey, m *big.Int) (*Ciphertext, error) {
	blind, err := randomBlind(pk.H, pk.P)
	if err != nil {
		return nil, err
	}
	c := pk.G.Pow(m).Mul(blind)
	return &Ciphertext{C: c}, nil
}

// EncryptInt64 is a convenience wrapper around Encrypt for small message
// values, the common case throughout the attestation protocol.
func EncryptInt64(pk *PublicKey, m int64) (*Ciphertext, error) {
	return Encrypt(pk, big.NewInt(m))
}

// Decrypt searches msgSpace for the unique m with c decrypting to it.
// Returns (0, false) if no candidate in msgSpace matches -- the
// "undecodable" outcome, not an error: ciphertexts outside the searched
// message space are expected to occur and are handled by the caller.
func Decrypt(sk *PrivateKey, msgSpace []int64, c *Ciphertext) (int64, bool) {
	d := c.C.Pow(sk.Q1)
	t := sk.G.Pow(sk.Q1)
	for _, m := range msgSpace {
		if d.Equal(t.Pow(big.NewInt(m))) {
			return m, true
		}
	}
	return 0, false
}
