package attestation

import (
	"crypto/sha512"
	"math/big"

	"github.com/privattest/bgncore/bgn"
	"github.com/privattest/bgncore/bgnerr"
	"github.com/privattest/bgncore/internal/xlog"
)

// effectiveWidth applies the odd-length policy: an odd bitspace is padded
// with one extra leading zero so the bit count is always even.
func effectiveWidth(bitspace int) int {
	if bitspace%2 != 0 {
		return bitspace + 1
	}
	return bitspace
}

// toBits renders value as a big-endian 0/1 slice of the given width,
// zero-padded on the left. big.Int.Bit returns 0 for indices beyond the
// value's significant bits, so this also handles width > bitlen cleanly.
func toBits(value *big.Int, width int) []int {
	bits := make([]int, width)
	for i := 0; i < width; i++ {
		bits[i] = int(value.Bit(width - 1 - i))
	}
	return bits
}

func sha512AsInt(value []byte) *big.Int {
	digest := sha512.Sum512(value)
	return new(big.Int).SetBytes(digest[:])
}

// generateZeroSumVector draws a vector R of length width with
// R[0..width-2] uniform in [1, p-1] and R[width-1] set so that
// sum(R) mod (p+1) == 0, then shuffles it so the balancing element's
// position stays secret.
func generateZeroSumVector(p *big.Int, width int) ([]*big.Int, error) {
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	pPlus1 := new(big.Int).Add(p, big.NewInt(1))

	r := make([]*big.Int, width)
	sum := big.NewInt(0)
	for i := 0; i < width-1; i++ {
		v, err := randRange(big.NewInt(1), pMinus1)
		if err != nil {
			return nil, err
		}
		r[i] = v
		sum.Add(sum, v)
	}
	r[width-1] = new(big.Int).Mod(new(big.Int).Neg(sum), pPlus1)

	if err := cryptoShuffle(r); err != nil {
		return nil, err
	}
	return r, nil
}

type pairUnit struct {
	origIndex int
	ca, cb    *bgn.Ciphertext
}

type privateEntry struct {
	pairPosition int
	s            *bgn.Ciphertext
}

// Attest commits to value within the given bitspace: it encodes value's
// bits blinded by a zero-sum vector, builds the bit-pair sum checks, and
// shuffles pairs (as units) and the private sum list independently so
// neither ordering leaks the value's bit positions.
func Attest(pk *bgn.PublicKey, value *big.Int, bitspace int) (*Attestation, error) {
	if value.Sign() < 0 {
		return nil, &bgnerr.DomainError{Op: "attestation.Attest", Reason: "value must be non-negative"}
	}
	if bitspace < value.BitLen() {
		return nil, &bgnerr.DomainError{Op: "attestation.Attest", Reason: "bitspace smaller than value's bit length"}
	}

	width := effectiveWidth(bitspace)
	bits := toBits(value, width)

	r, err := generateZeroSumVector(pk.P, width)
	if err != nil {
		return nil, err
	}

	ciphertexts := make([]*bgn.Ciphertext, width)
	for i := 0; i < width; i++ {
		m := new(big.Int).Add(big.NewInt(int64(bits[i])), r[i])
		c, err := bgn.Encrypt(pk, m)
		if err != nil {
			return nil, err
		}
		ciphertexts[i] = c
	}

	pPlus1 := new(big.Int).Add(pk.P, big.NewInt(1))
	numPairs := width / 2
	sums := make([]*bgn.Ciphertext, numPairs)
	for k := 0; k < numPairs; k++ {
		i := 2 * k
		negSum := new(big.Int).Mod(new(big.Int).Neg(new(big.Int).Add(r[i], r[i+1])), pPlus1)
		c, err := bgn.Encrypt(pk, negSum)
		if err != nil {
			return nil, err
		}
		sums[k] = c
	}

	units := make([]pairUnit, numPairs)
	for k := 0; k < numPairs; k++ {
		units[k] = pairUnit{origIndex: k, ca: ciphertexts[2*k], cb: ciphertexts[2*k+1]}
	}
	if err := cryptoShuffle(units); err != nil {
		return nil, err
	}

	shuffleMap := make(map[int]int, numPairs)
	for newPos, u := range units {
		shuffleMap[u.origIndex] = newPos
	}

	privateList := make([]privateEntry, numPairs)
	for k := 0; k < numPairs; k++ {
		privateList[k] = privateEntry{pairPosition: shuffleMap[k], s: sums[k]}
	}
	if err := cryptoShuffle(privateList); err != nil {
		return nil, err
	}

	pairs := make([]BitPairAttestation, numPairs)
	for idx, entry := range privateList {
		u := units[entry.pairPosition]
		pairs[idx] = BitPairAttestation{Ca: u.ca, Cb: u.cb, S: entry.s}
	}

	xlog.Logger().Debug().
		Str("component", "attestation.Attest").
		Int("bitspace", bitspace).
		Int("pairs", numPairs).
		Msg("built attestation")

	return &Attestation{PK: pk, Pairs: pairs}, nil
}

// AttestSHA512 attests to the SHA-512 digest of value, interpreted as a
// big-endian 512-bit integer.
func AttestSHA512(pk *bgn.PublicKey, value []byte) (*Attestation, error) {
	return Attest(pk, sha512AsInt(value), 512)
}

// BinaryRelativity computes the inter-bit-pair relativity map of value at
// the given bitspace, independent of any particular attestation's shuffle.
func BinaryRelativity(value *big.Int, bitspace int) RelativityCounts {
	width := effectiveWidth(bitspace)
	bits := toBits(value, width)

	out := emptyCounts()
	for i := 0; i < width-1; i += 2 {
		out[bits[i]+bits[i+1]]++
	}
	return out
}

// BinaryRelativitySHA512 is BinaryRelativity over the SHA-512 digest of
// value at bitspace 512.
func BinaryRelativitySHA512(value []byte) RelativityCounts {
	return BinaryRelativity(sha512AsInt(value), 512)
}
