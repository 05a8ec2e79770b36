// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package field implements arithmetic in the quadratic extension F_{p^2},
// represented as a + b*i with i^2 = -1 mod p. Unlike a fixed-curve field
// type, the modulus p is not known at compile time: the BGN scheme picks a
// fresh p per key, so every Element carries its own modulus.
package field

import (
	"fmt"
	"math/big"

	"github.com/privattest/bgncore/bgnerr"
)

// Element is a + b*i in F_{p^2}, with a, b kept reduced into [0, p).
type Element struct {
	P *big.Int
	A *big.Int
	B *big.Int
}

// New builds an element from arbitrary (possibly negative or unreduced)
// integers a, b modulo p.
func New(p, a, b *big.Int) Element {
	return Element{P: p, A: reduce(a, p), B: reduce(b, p)}
}

// Zero returns 0 + 0*i in F_{p^2}.
func Zero(p *big.Int) Element {
	return Element{P: p, A: big.NewInt(0), B: big.NewInt(0)}
}

// One returns 1 + 0*i in F_{p^2}.
func One(p *big.Int) Element {
	return Element{P: p, A: big.NewInt(1), B: big.NewInt(0)}
}

func reduce(x, p *big.Int) *big.Int {
	r := new(big.Int).Mod(x, p)
	return r
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.A.Sign() == 0 && e.B.Sign() == 0
}

// Equal reports structural equality modulo p.
func (e Element) Equal(o Element) bool {
	return e.A.Cmp(o.A) == 0 && e.B.Cmp(o.B) == 0
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	return New(e.P, new(big.Int).Add(e.A, o.A), new(big.Int).Add(e.B, o.B))
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	return New(e.P, new(big.Int).Sub(e.A, o.A), new(big.Int).Sub(e.B, o.B))
}

// Neg returns -e.
func (e Element) Neg() Element {
	return New(e.P, new(big.Int).Neg(e.A), new(big.Int).Neg(e.B))
}

// Mul returns e * o, using (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (e Element) Mul(o Element) Element {
	ac := new(big.Int).Mul(e.A, o.A)
	bd := new(big.Int).Mul(e.B, o.B)
	ad := new(big.Int).Mul(e.A, o.B)
	bc := new(big.Int).Mul(e.B, o.A)

	real := new(big.Int).Sub(ac, bd)
	imag := new(big.Int).Add(ad, bc)
	return New(e.P, real, imag)
}

// norm returns a^2 + b^2 mod p, the field norm used by Inv.
func (e Element) norm() *big.Int {
	a2 := new(big.Int).Mul(e.A, e.A)
	b2 := new(big.Int).Mul(e.B, e.B)
	return reduce(new(big.Int).Add(a2, b2), e.P)
}

// Inv returns e^-1 via the conjugate trick: (a - bi) / (a^2 + b^2).
// Inverting the zero element is a domain error.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Element{}, &bgnerr.DomainError{Op: "field.Inv", Reason: "cannot invert the zero element"}
	}
	n := e.norm()
	nInv := new(big.Int).ModInverse(n, e.P)
	if nInv == nil {
		return Element{}, &bgnerr.DomainError{Op: "field.Inv", Reason: "norm has no modular inverse (p not prime?)"}
	}
	real := new(big.Int).Mul(e.A, nInv)
	imag := new(big.Int).Mul(new(big.Int).Neg(e.B), nInv)
	return New(e.P, real, imag), nil
}

// Pow raises e to a non-negative integer exponent via square-and-multiply.
// By convention e^0 == One, even when e is the zero element: this keeps
// pairing code from special-casing a zero base.
func (e Element) Pow(exp *big.Int) Element {
	if exp.Sign() < 0 {
		panic(fmt.Sprintf("field: negative exponent %s not supported, invert first", exp))
	}
	result := One(e.P)
	if exp.Sign() == 0 {
		return result
	}
	base := e
	// walk the exponent from LSB to MSB, squaring the base each step
	e2 := new(big.Int).Set(exp)
	for e2.Sign() > 0 {
		if e2.Bit(0) == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e2.Rsh(e2, 1)
	}
	return result
}

// String renders e as "a+bi" for debugging and log output.
func (e Element) String() string {
	return fmt.Sprintf("%s+%si", e.A.String(), e.B.String())
}
