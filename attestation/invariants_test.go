package attestation

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// The blinding vector generateZeroSumVector produces always sums to 0 mod
// p+1, whatever width it's drawn at.
func TestZeroSumBlindingVectorSumsToZero(t *testing.T) {
	pub, _ := mustKeypair(t)
	pPlus1 := new(big.Int).Add(pub.P, big.NewInt(1))

	for width := 2; width <= 16; width += 2 {
		r, err := generateZeroSumVector(pub.P, width)
		require.NoError(t, err)

		sum := big.NewInt(0)
		for _, v := range r {
			sum.Add(sum, v)
		}
		require.Equal(t, big.NewInt(0), new(big.Int).Mod(sum, pPlus1))
	}
}

// Every bit-pair in an honest attestation for v decodes (Ca*Cb*S) to the
// correct bit-pair sum of v.
func TestAttestationSoundness(t *testing.T) {
	pub, priv := mustKeypair(t)
	value := big.NewInt(0xA5) // 10100101
	const bitspace = 16

	att, err := Attest(pub, value, bitspace)
	require.NoError(t, err)

	bits := toBits(value, bitspace)
	wantSums := map[int]int{}
	for i := 0; i < bitspace; i += 2 {
		wantSums[bits[i]+bits[i+1]]++
	}

	gotSums := map[int]int{}
	for _, pair := range att.Pairs {
		c := pair.Compress()
		sum, ok := Decode(priv, c)
		require.True(t, ok)
		gotSums[sum]++
	}
	require.Equal(t, wantSums, gotSums)
}

// The multiset of bit-pair sums derived from an attestation equals
// BinaryRelativity(v, W): the builder's internal shuffle never changes
// the decoded distribution, only the order pairs are stored in.
func TestShuffleIndependence(t *testing.T) {
	pub, priv := mustKeypair(t)
	value := big.NewInt(200)
	const bitspace = 16

	att, err := Attest(pub, value, bitspace)
	require.NoError(t, err)

	observed := emptyCounts()
	for _, pair := range att.Pairs {
		sum, ok := Decode(priv, pair.Compress())
		require.True(t, ok)
		observed[sum]++
	}

	require.Equal(t, BinaryRelativity(value, bitspace), observed)
}

// Adding one observation of bucket k never decreases the match score when
// expected[k] >= observed[k] (i.e. the new observation does not itself
// trigger the undershoot short-circuit).
func TestMatchScoreMonotonicity(t *testing.T) {
	params := gopter.DefaultTestParameters()
	props := gopter.NewProperties(params)

	bucketGen := gen.IntRange(0, 3)
	countGen := gen.UInt64Range(0, 20)

	props.Property("adding an observation within bounds never decreases match", prop.ForAll(
		func(e0, e1, e2 uint64, o0, o1, o2 uint64, k int) bool {
			expected := RelativityCounts{0: e0, 1: e1, 2: e2, 3: 0}
			observed := RelativityCounts{0: o0, 1: o1, 2: o2, 3: 0}

			if observed[k] > expected[k] {
				return true // precondition "expected[k] >= observed[k]" not met
			}

			before := BinaryRelativityMatch(expected, observed)
			after := make(RelativityCounts, len(observed))
			for kk, v := range observed {
				after[kk] = v
			}
			after[k]++

			return BinaryRelativityMatch(expected, after) >= before
		},
		countGen, countGen, countGen, countGen, countGen, countGen, bucketGen,
	))

	props.TestingRun(t)
}
