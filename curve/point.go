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

// Package curve implements the supersingular curve y^2 = x^3 + 1 over
// F_{p^2} and the Weil pairing used by the BGN cryptosystem.
package curve

import (
	"math/big"

	"github.com/privattest/bgncore/field"
)

// Point is an affine point on y^2 = x^3 + 1, or the point at infinity.
type Point struct {
	X, Y     field.Element
	Infinity bool
}

// New builds an affine point from its coordinates. It does not check the
// curve equation; callers that need that guarantee should call OnCurve.
func New(x, y field.Element) Point {
	return Point{X: x, Y: y}
}

// AtInfinity returns the additive identity over the field with modulus p.
func AtInfinity(p *big.Int) Point {
	return Point{X: field.Zero(p), Y: field.Zero(p), Infinity: true}
}

// OnCurve reports whether pt satisfies y^2 = x^3 + 1.
func (pt Point) OnCurve() bool {
	if pt.Infinity {
		return true
	}
	lhs := pt.Y.Mul(pt.Y)
	rhs := pt.X.Mul(pt.X).Mul(pt.X).Add(field.One(pt.X.P))
	return lhs.Equal(rhs)
}

// Equal reports whether pt and o are the same affine point.
func (pt Point) Equal(o Point) bool {
	if pt.Infinity || o.Infinity {
		return pt.Infinity == o.Infinity
	}
	return pt.X.Equal(o.X) && pt.Y.Equal(o.Y)
}

// Neg returns -pt.
func (pt Point) Neg() Point {
	if pt.Infinity {
		return pt
	}
	return Point{X: pt.X, Y: pt.Y.Neg()}
}

// Add returns p1 + p2 using the standard chord-and-tangent rules for
// y^2 = x^3 + 1 (a == 0). Returns the point at infinity when a denominator
// has no inverse (the two points are a vertical pair).
func Add(p1, p2 Point) Point {
	if p1.Infinity {
		return p2
	}
	if p2.Infinity {
		return p1
	}
	if p1.X.Equal(p2.X) {
		if p1.Y.Equal(p2.Y) {
			return double(p1)
		}
		// p1.Y == -p2.Y, or p1.Y + p2.Y == 0: vertical pair
		return AtInfinity(p1.X.P)
	}

	num := p2.Y.Sub(p1.Y)
	den := p2.X.Sub(p1.X)
	denInv, err := den.Inv()
	if err != nil {
		return AtInfinity(p1.X.P)
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Mul(lambda).Sub(p1.X).Sub(p2.X)
	y3 := lambda.Mul(p1.X.Sub(x3)).Sub(p1.Y)
	return Point{X: x3, Y: y3}
}

func double(pt Point) Point {
	if pt.Infinity || pt.Y.IsZero() {
		return AtInfinity(pt.X.P)
	}
	three := field.New(pt.X.P, big.NewInt(3), big.NewInt(0))
	two := field.New(pt.X.P, big.NewInt(2), big.NewInt(0))
	num := three.Mul(pt.X.Mul(pt.X))
	den := two.Mul(pt.Y)
	denInv, err := den.Inv()
	if err != nil {
		return AtInfinity(pt.X.P)
	}
	lambda := num.Mul(denInv)
	x3 := lambda.Mul(lambda).Sub(pt.X).Sub(pt.X)
	y3 := lambda.Mul(pt.X.Sub(x3)).Sub(pt.Y)
	return Point{X: x3, Y: y3}
}

// ScalarMul returns k*pt via double-and-add.
func ScalarMul(pt Point, k *big.Int) Point {
	result := AtInfinity(pt.X.P)
	if k.Sign() == 0 {
		return result
	}
	addend := pt
	kk := new(big.Int).Set(k)
	for kk.Sign() > 0 {
		if kk.Bit(0) == 1 {
			result = Add(result, addend)
		}
		addend = double(addend)
		kk.Rsh(kk, 1)
	}
	return result
}
