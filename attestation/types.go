// Package attestation implements the bit-pair commitment builder and the
// challenge/response scoring protocol layered on top of package bgn.
package attestation

import "github.com/privattest/bgncore/bgn"

// BitPairAttestation is a triple of ciphertexts (Ca, Cb, S) whose product
// decrypts to the sum of the two bits it commits to.
type BitPairAttestation struct {
	Ca *bgn.Ciphertext
	Cb *bgn.Ciphertext
	S  *bgn.Ciphertext
}

// Compress returns Ca*Cb*S, the single ciphertext that decrypts to the
// bit-pair's sum in {0,1,2}.
func (b BitPairAttestation) Compress() *bgn.Ciphertext {
	return b.Ca.Mul(b.Cb).Mul(b.S)
}

// Attestation is the owning public key plus an ordered sequence of
// bit-pair commitments, one per pair of bits of the attested value.
type Attestation struct {
	PK    *bgn.PublicKey
	Pairs []BitPairAttestation
}
