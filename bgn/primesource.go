package bgn

import (
	"crypto/rand"
	"math/big"
)

// DefaultPrimeSource is a minimal PrimeSource built on crypto/rand.Prime.
// It is not the RSA-style prime generation the reference implementation
// delegates to an external library (that remains explicitly out of this
// module's scope); it exists so the module is usable standalone and in
// tests. Production callers with stronger requirements (e.g. safe primes,
// a specific distribution) should supply their own PrimeSource.
func DefaultPrimeSource(bits int) (*big.Int, *big.Int, error) {
	half := bits / 2
	q1, err := rand.Prime(rand.Reader, half)
	if err != nil {
		return nil, nil, err
	}
	q2, err := rand.Prime(rand.Reader, half)
	if err != nil {
		return nil, nil, err
	}
	if q1.Cmp(q2) > 0 {
		q1, q2 = q2, q1
	}
	return q1, q2, nil
}
