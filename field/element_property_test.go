package field

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// elementGen produces field elements over testP from two int64 limbs,
// exercising the full residue range via the reduction in New.
func elementGen() gopter.Gen {
	return gopter.CombineGens(gen.Int64(), gen.Int64()).Map(func(vs []interface{}) Element {
		a := vs[0].(int64)
		b := vs[1].(int64)
		return New(testP, big.NewInt(a), big.NewInt(b))
	})
}

// TestFieldAxioms checks commutative and associative multiplication, and
// distributivity over addition.
func TestFieldAxioms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b Element) bool {
			return a.Mul(b).Equal(b.Mul(a))
		},
		elementGen(), elementGen(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c)))
		},
		elementGen(), elementGen(), elementGen(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Element) bool {
			lhs := a.Add(b).Mul(c)
			rhs := a.Mul(c).Add(b.Mul(c))
			return lhs.Equal(rhs)
		},
		elementGen(), elementGen(), elementGen(),
	))

	properties.TestingRun(t)
}

// TestFieldInverse checks that a * a^-1 == 1 for nonzero a.
func TestFieldInverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("nonzero elements have a multiplicative inverse", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			inv, err := a.Inv()
			if err != nil {
				return false
			}
			return a.Mul(inv).Equal(One(testP))
		},
		elementGen(),
	))

	properties.TestingRun(t)
}

// TestFieldFermat checks that a^(p^2-1) == 1 for nonzero a.
func TestFieldFermat(t *testing.T) {
	order := new(big.Int).Sub(new(big.Int).Mul(testP, testP), big.NewInt(1))

	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("a^(p^2-1) == 1 for nonzero a", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			return a.Pow(order).Equal(One(testP))
		},
		elementGen(),
	))

	properties.TestingRun(t)
}
