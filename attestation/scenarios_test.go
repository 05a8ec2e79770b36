package attestation

import (
	"math/big"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Attesting the value 5 at bitspace 8 (bits 00000101) and running an
// honest verifier across every bit-pair should produce an observed
// relativity map that never undershoots the expected one.
func TestAttestationOfFiveScoresAtOrAboveExpected(t *testing.T) {
	expected := BinaryRelativity(big.NewInt(5), 8)
	require.Equal(t, RelativityCounts{0: 2, 1: 2, 2: 0, 3: 0}, expected)

	pub, priv := mustKeypair(t)
	att, err := Attest(pub, big.NewInt(5), 8)
	require.NoError(t, err)
	require.Len(t, att.Pairs, 4)

	observed := NewRelativityMap()
	for _, pair := range att.Pairs {
		for round := 0; round < 5; round++ {
			challenge, err := CreateChallenge(pub, pair)
			require.NoError(t, err)
			response := CreateChallengeResponse(priv, challenge)
			ProcessChallengeResponse(observed, response)
		}
	}

	snap := observed.Snapshot()
	for k := 0; k < 3; k++ {
		require.GreaterOrEqualf(t, snap[k], expected[k], "bucket %d", k)
	}
}

// AttestSHA512 of b"hello" produces exactly 256 bit-pair triples, and
// decoding every triple reproduces binary_relativity_sha512's map exactly.
func TestSHA512AttestationHasExpectedPairCountAndRelativity(t *testing.T) {
	pub, priv := mustKeypair(t)
	value := []byte("hello")

	att, err := AttestSHA512(pub, value)
	require.NoError(t, err)
	require.Len(t, att.Pairs, 256)

	decoded := emptyCounts()
	for _, pair := range att.Pairs {
		c := pair.Compress()
		sum := CreateChallengeResponse(priv, c)
		decoded[int(sum)]++
	}

	if diff := cmp.Diff(BinaryRelativitySHA512(value), decoded); diff != "" {
		t.Fatalf("relativity map mismatch (-want +got):\n%s", diff)
	}
}

// When observed undershoots expected in any bucket, the match score is the
// 0.0 short-circuit regardless of the other buckets.
func TestMatchScoreZerosOutOnBucketUndershoot(t *testing.T) {
	expected := BinaryRelativity(big.NewInt(5), 8)
	require.Equal(t, RelativityCounts{0: 2, 1: 2, 2: 0, 3: 0}, expected)

	observed := RelativityCounts{0: 1, 1: 3, 2: 0, 3: 0}
	require.Equal(t, 0.0, BinaryRelativityMatch(expected, observed))
}

// Certainty grows toward 1 with the number of observations regardless of
// which buckets they land in.
func TestCertaintyGrowsWithObservationCount(t *testing.T) {
	one := RelativityCounts{0: 1, 1: 0, 2: 0, 3: 0}
	require.InDelta(t, 0.5, Certainty(one), 1e-9)

	ten := RelativityCounts{0: 10, 1: 0, 2: 0, 3: 0}
	require.InDelta(t, 1-1.0/1024.0, Certainty(ten), 1e-9)
}

// Many goroutines incrementing the same relativity map concurrently must
// not lose any updates: N goroutines x K increments lands exactly N*K.
func TestConcurrentResponseAccountingLosesNoUpdates(t *testing.T) {
	const n = 50
	const k = 200

	m := NewRelativityMap()
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < k; j++ {
				ProcessChallengeResponse(m, int64(j%4))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(n*k), m.Snapshot().Total())
}
