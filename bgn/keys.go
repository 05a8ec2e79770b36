// Package bgn implements the Boneh-Goh-Nissim 2-DNF homomorphic
// cryptosystem: key generation, encryption, decryption by small-message-
// space discrete-log search, and the multiplicative homomorphism that
// backs the attestation protocol in package attestation.
package bgn

import (
	"math/big"
	"time"

	"github.com/privattest/bgncore/bgnerr"
	"github.com/privattest/bgncore/curve"
	"github.com/privattest/bgncore/field"
	"github.com/privattest/bgncore/internal/xlog"
	"github.com/privattest/bgncore/primality"
)

// MinKeySize is the smallest key size (in bits) the module accepts; it
// mirrors the RSA-style bit length of the two primes an external source
// must supply.
const MinKeySize = 512

// maxKeyGenAttempts bounds the outer "restart from scratch" loop on a
// CryptoInvariantViolation; the reference scheme treats this as unbounded,
// but a library call should not spin forever.
const maxKeyGenAttempts = 8

// maxGeneratorSearchAttempts bounds the inner brute-force pairing search
// that looks for a generator of good order.
const maxGeneratorSearchAttempts = 2000

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// PublicKey is (p, g, h): the field modulus, the message generator, and
// the blinding generator.
type PublicKey struct {
	P *big.Int
	G field.Element
	H field.Element
}

// PrivateKey is (p, g, h, n, q1): the public key plus the full order n and
// its smaller factor q1, which together make decryption tractable.
type PrivateKey struct {
	P  *big.Int
	G  field.Element
	H  field.Element
	N  *big.Int
	Q1 *big.Int
}

// Public returns the public half of sk.
func (sk *PrivateKey) Public() *PublicKey {
	return &PublicKey{P: sk.P, G: sk.G, H: sk.H}
}

// PrimeSource supplies two primes of approximately bits/2 bits each, with
// q1 < q2. Generating cryptographically sound large primes (the RSA-style
// construction the reference implementation delegates to the `cryptography`
// package) is explicitly out of this module's scope; callers inject their
// own source.
type PrimeSource func(bits int) (q1, q2 *big.Int, err error)

// GeneratePrime returns the smallest p = l*n - 1, l >= 1, such that
// p mod 3 == 2 and p passes the Lucas pseudoprime test.
func GeneratePrime(n *big.Int) *big.Int {
	l := big.NewInt(0)
	p := big.NewInt(1)
	three := big.NewInt(3)
	target := big.NewInt(2)
	for {
		mod3 := new(big.Int).Mod(p, three)
		if mod3.Cmp(target) == 0 && primality.IsLucasPseudoprime(p) {
			return p
		}
		l.Add(l, one)
		p = new(big.Int).Sub(new(big.Int).Mul(l, n), one)
	}
}

// getRandomBase samples a raw (x,y) pair in [2, n-1]^2. These are NOT
// checked against the curve equation: the generator search brute-forces
// pairing values from arbitrary coordinates and only filters on the
// resulting pairing's order, the same trick the reference implementation
// uses instead of inspecting torsion points for co-primality.
func getRandomBase(n *big.Int) (x, y *big.Int, err error) {
	nMinus1 := new(big.Int).Sub(n, one)
	x, err = randRange(two, nMinus1)
	if err != nil {
		return nil, nil, err
	}
	y, err = randRange(two, nMinus1)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// getGoodWP brute-forces a self-pairing e(P,P) of good order, retrying
// with fresh random coordinates until one is found (or the power (p+1)/n
// rescues a borderline candidate). Returns the pairing value and the base
// point that produced it.
func getGoodWP(n, p *big.Int) (field.Element, curve.Point, error) {
	log := xlog.Logger().With().Str("component", "bgn.getGoodWP").Logger()
	start := time.Now()

	pPlus1OverN := new(big.Int).Div(new(big.Int).Add(p, one), n)

	for attempt := 0; attempt < maxGeneratorSearchAttempts; attempt++ {
		x, y, err := getRandomBase(n)
		if err != nil {
			return field.Element{}, curve.Point{}, err
		}
		base := curve.New(field.New(p, x, big.NewInt(0)), field.New(p, y, big.NewInt(0)))

		sx, sy, err := getRandomBase(n)
		if err != nil {
			return field.Element{}, curve.Point{}, err
		}
		aux := curve.New(field.New(p, sx, big.NewInt(0)), field.New(p, sy, big.NewInt(0)))
		if aux.Equal(base) || aux.Infinity {
			continue
		}

		wp := curve.Pairing(p, n, base, base, aux)
		if !curve.IsGoodPairing(n, wp) {
			wp = wp.Pow(pPlus1OverN)
		}
		if curve.IsGoodPairing(n, wp) {
			log.Debug().Int("attempts", attempt+1).Dur("took", time.Since(start)).Msg("found good pairing")
			return wp, base, nil
		}
	}
	return field.Element{}, curve.Point{}, &bgnerr.CryptoInvariantViolation{Op: "bgn.getGoodWP", Attempts: maxGeneratorSearchAttempts}
}

// generateKeypairOnce runs one full attempt at key generation without the
// outer restart loop: pick p, find g, find h. Returns a
// *bgnerr.CryptoInvariantViolation if the generator search fails outright.
func generateKeypairOnce(q1, q2 *big.Int) (*PublicKey, *PrivateKey, error) {
	n := new(big.Int).Mul(q1, q2)
	p := GeneratePrime(n)

	g, _, err := getGoodWP(n, p)
	if err != nil {
		return nil, nil, err
	}

	var h field.Element
	for attempt := 0; attempt < maxGeneratorSearchAttempts; attempt++ {
		u, _, err := getGoodWP(n, p)
		if err != nil {
			return nil, nil, err
		}
		candidate := u.Pow(q2)
		if !candidate.Equal(field.One(p)) {
			h = candidate
			break
		}
		if attempt == maxGeneratorSearchAttempts-1 {
			return nil, nil, &bgnerr.CryptoInvariantViolation{Op: "bgn.generateKeypairOnce(h)", Attempts: attempt + 1}
		}
	}

	if h.P == nil || h.Pow(q2).Equal(field.One(p)) {
		return nil, nil, &bgnerr.CryptoInvariantViolation{Op: "bgn.generateKeypairOnce(self-check)", Attempts: 1}
	}
	if !curve.IsGoodPairing(n, g) {
		return nil, nil, &bgnerr.CryptoInvariantViolation{Op: "bgn.generateKeypairOnce(g order)", Attempts: 1}
	}

	pub := &PublicKey{P: p, G: g, H: h}
	priv := &PrivateKey{P: p, G: g, H: h, N: n, Q1: q1}
	return pub, priv, nil
}

// GenerateKeypair draws two primes from primes (each of approximately
// keySize/2 bits), builds the field modulus p, and finds generators g, h.
// It restarts the whole process, bounded by maxKeyGenAttempts, if an
// internal self-check fails.
func GenerateKeypair(keySize int, primes PrimeSource) (*PublicKey, *PrivateKey, error) {
	if keySize < MinKeySize {
		return nil, nil, &bgnerr.ConfigError{Op: "bgn.GenerateKeypair", Reason: "key_size below minimum of 512 bits"}
	}

	log := xlog.Logger().With().Str("component", "bgn.GenerateKeypair").Int("keySize", keySize).Logger()

	for attempt := 0; attempt < maxKeyGenAttempts; attempt++ {
		q1, q2, err := primes(keySize)
		if err != nil {
			return nil, nil, err
		}
		if q1.Cmp(q2) > 0 {
			q1, q2 = q2, q1
		}

		pub, priv, err := generateKeypairOnce(q1, q2)
		if err != nil {
			log.Debug().Int("attempt", attempt+1).Err(err).Msg("key generation attempt failed, restarting")
			continue
		}
		log.Debug().Int("attempt", attempt+1).Msg("key generation succeeded")
		return pub, priv, nil
	}
	return nil, nil, &bgnerr.CryptoInvariantViolation{Op: "bgn.GenerateKeypair", Attempts: maxKeyGenAttempts}
}
