package attestation

import (
	"github.com/privattest/bgncore/bgn"
)

// bitPairMsgSpace is the decode search space for a compressed bit-pair
// ciphertext: a sum of two bits is always in {0,1,2}.
var bitPairMsgSpace = []int64{0, 1, 2}

// CreateChallenge compresses a bit-pair into a single ciphertext and
// re-randomizes it with a fresh encryption of zero, so the ciphertext the
// verifier sends is unlinkable to the stored bit-pair while still
// decrypting to the same bit sum.
func CreateChallenge(pk *bgn.PublicKey, bitpair BitPairAttestation) (*bgn.Ciphertext, error) {
	zero, err := bgn.EncryptInt64(pk, 0)
	if err != nil {
		return nil, err
	}
	return bitpair.Compress().Mul(zero), nil
}

// CreateHonestyCheck encrypts a known value v so the verifier can confirm
// the prover decodes and reports it faithfully.
func CreateHonestyCheck(pk *bgn.PublicKey, v int64) (*bgn.Ciphertext, error) {
	return bgn.EncryptInt64(pk, v)
}

// Decode decrypts c against the bit-pair message space {0,1,2}.
func Decode(sk *bgn.PrivateKey, c *bgn.Ciphertext) (int, bool) {
	m, ok := bgn.Decrypt(sk, bitPairMsgSpace, c)
	return int(m), ok
}

// CreateChallengeResponse decodes challenge against the bit-pair message
// space {0,1,2}; an undecodable ciphertext (outside that space) responds
// with 3, the scheme's sentinel for a failed response rather than an error.
func CreateChallengeResponse(sk *bgn.PrivateKey, challenge *bgn.Ciphertext) int64 {
	m, ok := Decode(sk, challenge)
	if !ok {
		return 3
	}
	return int64(m)
}
