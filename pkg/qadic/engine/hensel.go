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
package engine

import (
	"math/big"
)

// Inv computes the inverse of a unit vector x modulo (f, p^prec).  The
// inverse is first computed in the residue field by the extended Euclidean
// algorithm over F_p[x], then Hensel-lifted with precision doubling via
// z <- z(2 - xz).  Fails with ErrNotUnit when x is divisible by p.
func (m *Mod) Inv(x []big.Int, prec uint) ([]big.Int, error) {
	if v, ok := m.Valuation(x); !ok || v > 0 {
		return nil, ErrNotUnit
	}
	// Residue-field inverse
	z, err := m.invModP(x)
	//
	if err != nil {
		return nil, err
	}
	// Hensel lift, doubling the attained precision each round
	var two = big.NewInt(2)
	//
	for cur := uint(1); cur < prec; {
		cur = min(2*cur, prec)
		//
		var (
			pm = m.Modulus(cur)
			t  = m.Mul(x, z, pm)
		)
		// z <- z(2 - xz)
		t = m.Sub(m.Scalar(two, pm), t, pm)
		z = m.Mul(z, t, pm)
	}
	//
	return m.Reduce(z, m.Modulus(prec)), nil
}

// Sqrt computes a square root of a unit vector x modulo (f, p^prec), or fails
// with ErrNoSquareRoot if x is not a square in the field.  The residue-field
// root is found by Tonelli-Shanks over F_{p^d} and then Newton-lifted.  Odd
// residue characteristic is required.
func (m *Mod) Sqrt(x []big.Int, prec uint) ([]big.Int, error) {
	if m.p.Bit(0) == 0 {
		return nil, ErrEvenCharacteristic
	}
	//
	if v, ok := m.Valuation(x); !ok || v > 0 {
		return nil, ErrNotUnit
	}
	// Residue-field square root
	s, err := m.sqrtModP(x)
	//
	if err != nil {
		return nil, err
	}
	// Newton lift: s <- (s + x/s) / 2
	for cur := uint(1); cur < prec; {
		cur = min(2*cur, prec)
		//
		var (
			pm      = m.Modulus(cur)
			invS, _ = m.Inv(s, cur)
			t       = m.Mul(x, invS, pm)
			inv2    = new(big.Int).ModInverse(big.NewInt(2), pm)
		)
		//
		s = m.Add(s, t, pm)
		s = m.MulScalar(s, inv2, pm)
	}
	//
	return m.Reduce(s, m.Modulus(prec)), nil
}

// sqrtModP computes a square root of x in the residue field F_{p^d}, assuming
// p is odd and x is a unit.
func (m *Mod) sqrtModP(x []big.Int) ([]big.Int, error) {
	var (
		p    = new(big.Int).Set(&m.p)
		q    = new(big.Int).Exp(p, big.NewInt(int64(m.d)), nil)
		qm1  = new(big.Int).Sub(q, big.NewInt(1))
		half = new(big.Int).Rsh(qm1, 1)
		u    = m.Reduce(x, p)
	)
	// Euler criterion: x^((q-1)/2) must be one
	if !Equal(m.PowBig(u, half, p), m.One(), p) {
		return nil, ErrNoSquareRoot
	}
	// Fast path: q = 3 (mod 4)
	if q.Bit(0) == 1 && q.Bit(1) == 1 {
		e := new(big.Int).Add(q, big.NewInt(1))
		e.Rsh(e, 2)
		//
		return m.PowBig(u, e, p), nil
	}
	//
	return m.tonelliShanks(u, q, qm1)
}

// tonelliShanks finds a square root of the unit u in F_q for q = 1 (mod 4),
// by the standard descent in the 2-Sylow subgroup of the multiplicative
// group.  The required quadratic non-residue is located by deterministic
// enumeration of field elements.
func (m *Mod) tonelliShanks(u []big.Int, q, qm1 *big.Int) ([]big.Int, error) {
	var (
		p = new(big.Int).Set(&m.p)
		// Write q - 1 = s * 2^e with s odd
		s = new(big.Int).Set(qm1)
		e = 0
	)
	//
	for s.Bit(0) == 0 {
		s.Rsh(s, 1)
		e++
	}
	//
	var (
		half = new(big.Int).Rsh(qm1, 1)
		z    = m.nonResidue(half, q)
		// c generates the 2-Sylow subgroup
		c = m.PowBig(z, s, p)
		// t tracks the defect of the current candidate
		t = m.PowBig(u, s, p)
		// r is the candidate root
		r = m.PowBig(u, new(big.Int).Rsh(new(big.Int).Add(s, big.NewInt(1)), 1), p)
	)
	//
	for !Equal(t, m.One(), p) {
		// Find least i with t^(2^i) = 1
		var (
			i  = 0
			t2 = Copy(t)
		)
		//
		for !Equal(t2, m.One(), p) {
			t2 = m.Mul(t2, t2, p)
			i++
			//
			if i == e {
				return nil, ErrNoSquareRoot
			}
		}
		// b = c^(2^(e-i-1))
		b := c
		//
		for j := 0; j < e-i-1; j++ {
			b = m.Mul(b, b, p)
		}
		//
		r = m.Mul(r, b, p)
		c = m.Mul(b, b, p)
		t = m.Mul(t, c, p)
		e = i
	}
	//
	return r, nil
}

// nonResidue locates a quadratic non-residue in F_q by enumerating vectors in
// base-p digit order and applying the Euler criterion.  Half the non-zero
// field elements qualify, so the search terminates quickly.
func (m *Mod) nonResidue(half, q *big.Int) []big.Int {
	var (
		p       = new(big.Int).Set(&m.p)
		minus1  = m.Neg(m.One(), p)
		counter = big.NewInt(2)
	)
	//
	for {
		cand := m.vectorOf(counter, p)
		//
		if !IsZero(cand) && Equal(m.PowBig(cand, half, p), minus1, p) {
			return cand
		}
		//
		counter.Add(counter, big.NewInt(1))
	}
}

// vectorOf maps an integer counter onto a coefficient vector via its base-p
// digits, providing a deterministic enumeration of F_{p^d}.
func (m *Mod) vectorOf(counter, p *big.Int) []big.Int {
	var (
		x = make([]big.Int, m.d)
		t = new(big.Int).Set(counter)
	)
	//
	for i := 0; i < m.d && t.Sign() != 0; i++ {
		t.QuoRem(t, p, &x[i])
	}
	//
	return x
}

// invModP computes the inverse of x in the residue field F_p[x]/(f) by the
// extended Euclidean algorithm.
func (m *Mod) invModP(x []big.Int) ([]big.Int, error) {
	var p = new(big.Int).Set(&m.p)
	// Degree one reduces to a scalar inverse
	if m.d == 1 {
		var z big.Int
		//
		if z.ModInverse(&x[0], p) == nil {
			return nil, ErrNotUnit
		}
		//
		return []big.Int{z}, nil
	}
	//
	var (
		// r0 starts as the defining polynomial
		r0 = polyTrim(m.f, p)
		r1 = polyTrim(x, p)
		s0 = []big.Int{}
		s1 = []big.Int{*big.NewInt(1)}
	)
	//
	for len(r1) > 0 {
		quo, rem := polyDivMod(r0, r1, p)
		r0, r1 = r1, rem
		s0, s1 = s1, polySub(s0, polyMul(quo, s1, p), p)
	}
	// r0 is now the gcd; a unit requires gcd of degree zero
	if len(r0) != 1 {
		return nil, ErrNotUnit
	}
	// Normalise by the gcd's leading coefficient
	var lead big.Int
	//
	if lead.ModInverse(&r0[0], p) == nil {
		return nil, ErrNotUnit
	}
	//
	z := make([]big.Int, m.d)
	//
	for i := range s0 {
		z[i].Mul(&s0[i], &lead)
		z[i].Mod(&z[i], p)
	}
	//
	return z, nil
}

// ---------------------------------------------------------------------------
// Dense polynomial arithmetic over F_p, used only to seed Hensel lifting.
// Polynomials are coefficient slices with no trailing zeros.
// ---------------------------------------------------------------------------

func polyTrim(x []big.Int, p *big.Int) []big.Int {
	var (
		z    = make([]big.Int, len(x))
		last = -1
	)
	//
	for i := range x {
		z[i].Mod(&x[i], p)
		//
		if z[i].Sign() != 0 {
			last = i
		}
	}
	//
	return z[:last+1]
}

func polySub(x, y []big.Int, p *big.Int) []big.Int {
	z := make([]big.Int, max(len(x), len(y)))
	//
	for i := range z {
		if i < len(x) {
			z[i].Set(&x[i])
		}
		//
		if i < len(y) {
			z[i].Sub(&z[i], &y[i])
		}
		//
		z[i].Mod(&z[i], p)
	}
	//
	return polyTrim(z, p)
}

func polyMul(x, y []big.Int, p *big.Int) []big.Int {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	//
	var (
		z = make([]big.Int, len(x)+len(y)-1)
		t big.Int
	)
	//
	for i := range x {
		for j := range y {
			t.Mul(&x[i], &y[j])
			z[i+j].Add(&z[i+j], &t)
		}
	}
	//
	return polyTrim(z, p)
}

func polyDivMod(num, den []big.Int, p *big.Int) (quo, rem []big.Int) {
	if len(den) == 0 {
		panic("division by zero polynomial")
	}
	//
	var (
		lead    big.Int
		r       = polyTrim(num, p)
		q       = make([]big.Int, max(len(num)-len(den)+1, 0))
		t, prod big.Int
	)
	//
	lead.ModInverse(&den[len(den)-1], p)
	//
	for len(r) >= len(den) {
		var (
			shift = len(r) - len(den)
			c     = t.Mul(&r[len(r)-1], &lead)
		)
		//
		c.Mod(c, p)
		q[shift].Set(c)
		//
		for i := range den {
			prod.Mul(c, &den[i])
			r[shift+i].Sub(&r[shift+i], &prod)
			r[shift+i].Mod(&r[shift+i], p)
		}
		//
		r = polyTrim(r, p)
	}
	//
	return polyTrim(q, p), r
}
