// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package qadic

import (
	"math/big"

	"github.com/consensys/go-qadic/pkg/util/math"
)

// O constructs the "zero known to precision N" element from m = p^N.  This is
// the seed every coercion and arithmetic operation uses for precision-bounded
// zero construction; it never materialises digits.  Fails with
// NotAPowerOfPrimeError when m is not an exact power of the field's prime.
func O(f *Field, m *big.Int) (*Element, error) {
	// Common cases short-circuit the valuation scan
	switch {
	case m.Cmp(big.NewInt(1)) == 0:
		return zeroElement(f, 0), nil
	case m.Cmp(&f.prime) == 0:
		return zeroElement(f, 1), nil
	}
	//
	n, ok := math.PowerOf(m, &f.prime)
	//
	if !ok {
		return nil, &NotAPowerOfPrimeError{Value: new(big.Rat).SetInt(m), Prime: f.Prime()}
	}
	//
	return zeroElement(f, n), nil
}

// ORat is the rational form of the O constructor, accepting 1/p^k to denote
// negative precisions (poles of order up to k).  Rationals with any numerator
// other than one are rejected.
func ORat(f *Field, m *big.Rat) (*Element, error) {
	if m.IsInt() {
		return O(f, m.Num())
	}
	//
	n, ok := math.RatPowerOf(m, &f.prime)
	//
	if !ok {
		return nil, &NotAPowerOfPrimeError{Value: new(big.Rat).Set(m), Prime: f.Prime()}
	}
	//
	return zeroElement(f, n), nil
}

// FromInt lifts an exact integer into the field.  The absolute precision is
// the integer's valuation plus the field's default precision, so that the
// relative precision of the lift always matches the default.
func (f *Field) FromInt(n *big.Int) *Element {
	if n.Sign() == 0 {
		return zeroElement(f, int(f.prec))
	}
	//
	var (
		val  = 0
		unit = n
	)
	// Units contribute no valuation offset
	if n.CmpAbs(big.NewInt(1)) != 0 {
		val, unit = math.Valuation(n, &f.prime)
	}
	//
	prec := val + int(f.prec)
	//
	return normalize(f, f.mod.Scalar(unit, f.mod.Modulus(f.prec)), val, prec)
}

// FromInt64 is a convenience wrapper over FromInt.
func (f *Field) FromInt64(n int64) *Element {
	return f.FromInt(big.NewInt(n))
}

// FromRat lifts an exact rational a/b (lowest terms) into the field.  Only
// the denominator can contribute a pole: its valuation enters negatively,
// while the numerator's enters positively, and the result carries the default
// relative precision.
func (f *Field) FromRat(q *big.Rat) *Element {
	if q.IsInt() {
		return f.FromInt(q.Num())
	}
	//
	var (
		vand, a = math.Valuation(q.Num(), &f.prime)
		vbnd, b = math.Valuation(q.Denom(), &f.prime)
		val     = vand - vbnd
		prec    = val + int(f.prec)
		pm      = f.mod.Modulus(f.prec)
	)
	// b is a p-unit, hence invertible at any precision
	inv := new(big.Int).ModInverse(b, pm)
	//
	var unit big.Int
	//
	unit.Mul(a, inv)
	//
	return normalize(f, f.mod.Scalar(&unit, pm), val, prec)
}

// FromPoly lifts a polynomial in the generator, given by its rational
// coefficients (constant term first), into the field.  A polynomial of
// degree equal to the field degree is reduced once against the monic
// defining polynomial; anything of higher degree fails with
// DegreeOverflowError.
func (f *Field) FromPoly(coeffs []*big.Rat) (*Element, error) {
	if uint(len(coeffs)) > f.degree+1 {
		return nil, &DegreeOverflowError{Degree: len(coeffs) - 1, Max: int(f.degree)}
	}
	// Minimum valuation over the non-zero coefficients
	var (
		vmin  = 0
		found = false
	)
	//
	for _, c := range coeffs {
		if c == nil || c.Sign() == 0 {
			continue
		}
		//
		va, _ := math.Valuation(c.Num(), &f.prime)
		vb, _ := math.Valuation(c.Denom(), &f.prime)
		//
		if v := va - vb; !found || v < vmin {
			vmin, found = v, true
		}
	}
	//
	if !found {
		return zeroElement(f, int(f.prec)), nil
	}
	//
	var (
		prec = vmin + int(f.prec)
		pm   = f.mod.Modulus(f.prec)
		unit = make([]big.Int, max(int(f.degree), len(coeffs)))
	)
	// Scale each coefficient by p^-vmin; all stay p-integral by choice of vmin
	for i, c := range coeffs {
		if c == nil || c.Sign() == 0 {
			continue
		}
		//
		var (
			va, a = math.Valuation(c.Num(), &f.prime)
			vb, b = math.Valuation(c.Denom(), &f.prime)
			shift = va - vb - vmin
		)
		//
		unit[i].Mul(a, math.BigPow(&f.prime, uint(shift)))
		unit[i].Mul(&unit[i], new(big.Int).ModInverse(b, pm))
		unit[i].Mod(&unit[i], pm)
	}
	// Fold a degree-d term against the monic modulus: x^d = -(f[0] + ... + f[d-1]*x^(d-1))
	if d := int(f.degree); len(unit) > d {
		var t big.Int
		//
		for i := 0; i < d; i++ {
			t.Mul(&unit[d], &f.modulus[i])
			unit[i].Sub(&unit[i], &t)
			unit[i].Mod(&unit[i], pm)
		}
		//
		unit = unit[:d]
	}
	//
	return normalize(f, unit, vmin, prec), nil
}

// Coerce brings an element of another field into this one.  Only elements of
// a structurally equal field are accepted; anything else fails with
// IncompatibleFieldError, as q-adic fields admit no implicit embeddings here.
func (f *Field) Coerce(x *Element) (*Element, error) {
	if x.fld != f && !x.fld.Equal(f) {
		return nil, &IncompatibleFieldError{Op: "coerce", Left: f, Right: x.fld}
	}
	//
	y := x.Copy()
	y.fld = f
	//
	return y, nil
}
