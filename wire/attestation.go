package wire

import (
	"github.com/privattest/bgncore/attestation"
)

// EncodeAttestation writes the owning public key followed by a 4-byte
// pair count and each bit-pair's three chained ciphertext encodings.
func EncodeAttestation(a *attestation.Attestation) []byte {
	out := EncodePublicKey(a.PK)

	count := make([]byte, 4)
	putUint32(count, uint32(len(a.Pairs)))
	out = append(out, count...)

	for _, pair := range a.Pairs {
		out = append(out, EncodeCiphertext(pair.Ca)...)
		out = append(out, EncodeCiphertext(pair.Cb)...)
		out = append(out, EncodeCiphertext(pair.S)...)
	}
	return out
}

// DecodeAttestation is the inverse of EncodeAttestation.
func DecodeAttestation(data []byte) (*attestation.Attestation, []byte, error) {
	pk, rest, err := DecodePublicKey(data)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) < 4 {
		return nil, nil, shortRead("attestation pair count")
	}
	count := int(getUint32(rest[0:4]))
	rest = rest[4:]

	pairs := make([]attestation.BitPairAttestation, count)
	for i := 0; i < count; i++ {
		ca, r, err := DecodeCiphertext(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = r
		cb, r, err := DecodeCiphertext(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = r
		s, r, err := DecodeCiphertext(rest)
		if err != nil {
			return nil, nil, err
		}
		rest = r
		pairs[i] = attestation.BitPairAttestation{Ca: ca, Cb: cb, S: s}
	}

	return &attestation.Attestation{PK: pk, Pairs: pairs}, rest, nil
}
