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

package curve

import (
	"math/big"

	"github.com/privattest/bgncore/field"
)

// lineEval returns the line through p1 and p2 (tangent if p1 == p2),
// evaluated at x and divided by the vertical line through p1+p2. This is
// the standard Miller building block; it returns the field zero sentinel
// whenever a denominator is not invertible, mirroring the "bad pairing"
// policy at the Pairing level.
func lineEval(p1, p2, x Point) field.Element {
	p := x.X.P
	if p1.Infinity || p2.Infinity {
		return field.One(p)
	}

	var lambda field.Element
	switch {
	case p1.X.Equal(p2.X) && p1.Y.Add(p2.Y).IsZero():
		// vertical line through p1 and -p1
		return x.X.Sub(p1.X)
	case p1.Equal(p2):
		three := field.New(p, big.NewInt(3), big.NewInt(0))
		two := field.New(p, big.NewInt(2), big.NewInt(0))
		num := three.Mul(p1.X.Mul(p1.X))
		den := two.Mul(p1.Y)
		denInv, err := den.Inv()
		if err != nil {
			return field.Zero(p)
		}
		lambda = num.Mul(denInv)
	default:
		num := p2.Y.Sub(p1.Y)
		den := p2.X.Sub(p1.X)
		denInv, err := den.Inv()
		if err != nil {
			return field.Zero(p)
		}
		lambda = num.Mul(denInv)
	}

	sum := Add(p1, p2)
	num := x.Y.Sub(p1.Y).Sub(lambda.Mul(x.X.Sub(p1.X)))
	den := x.X.Sub(sum.X)
	denInv, err := den.Inv()
	if err != nil {
		return field.Zero(p)
	}
	return num.Mul(denInv)
}

// millerFunction evaluates f_{n,base}(at), building f via double-and-add
// over the binary expansion of n. Returns the field zero sentinel if an
// intermediate accumulation point collapses to infinity or a line
// evaluation has no inverse.
func millerFunction(base Point, n *big.Int, at Point) field.Element {
	p := base.X.P
	f := field.One(p)
	t := base

	for i := n.BitLen() - 2; i >= 0; i-- {
		g := lineEval(t, t, at)
		if g.IsZero() {
			return field.Zero(p)
		}
		f = f.Mul(f).Mul(g)
		t = double(t)
		if t.Infinity && i != 0 {
			return field.Zero(p)
		}

		if n.Bit(i) == 1 {
			g = lineEval(t, base, at)
			if g.IsZero() {
				return field.Zero(p)
			}
			f = f.Mul(g)
			t = Add(t, base)
			if t.Infinity && i != 0 {
				return field.Zero(p)
			}
		}
	}
	return f
}

// Pairing computes the Weil pairing e_n(P, Q) via Miller's algorithm, using
// auxiliary point S to avoid evaluating the Miller functions at points in
// the support of their own divisors. S must differ from the point at
// infinity, P, Q and P-Q.
//
// Returns the field zero as a sentinel when any denominator is zero or an
// intermediate point collapses to infinity; callers should treat that as
// "bad pairing" and retry with fresh randomness rather than treat it as an
// error.
func Pairing(p, n *big.Int, P, Q, S Point) field.Element {
	zero := field.Zero(p)

	qPlusS := Add(Q, S)
	fPNum := millerFunction(P, n, qPlusS)
	fPDen := millerFunction(P, n, S)
	if fPNum.IsZero() || fPDen.IsZero() {
		return zero
	}
	fPDenInv, err := fPDen.Inv()
	if err != nil {
		return zero
	}
	fPRatio := fPNum.Mul(fPDenInv)

	pMinusS := Add(P, S.Neg())
	negS := S.Neg()
	fQNum := millerFunction(Q, n, pMinusS)
	fQDen := millerFunction(Q, n, negS)
	if fQNum.IsZero() || fQDen.IsZero() {
		return zero
	}
	fQDenInv, err := fQDen.Inv()
	if err != nil {
		return zero
	}
	fQRatio := fQNum.Mul(fQDenInv)

	fQRatioInv, err := fQRatio.Inv()
	if err != nil {
		return zero
	}
	return fPRatio.Mul(fQRatioInv)
}

// IsGoodPairing reports whether wp is a usable pairing value: nonzero,
// not one, and of order dividing n.
func IsGoodPairing(n *big.Int, wp field.Element) bool {
	zero := field.Zero(wp.P)
	one := field.One(wp.P)
	if wp.Equal(zero) || wp.Equal(one) {
		return false
	}
	nPlus1 := new(big.Int).Add(n, big.NewInt(1))
	return wp.Pow(nPlus1).Equal(wp)
}
