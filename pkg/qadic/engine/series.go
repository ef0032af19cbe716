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

// Exp computes the exponential series sum x^k / k! modulo (f, p^prec) for a
// vector x of p-adic valuation at least v.  The series converges exactly when
// v(p-1) > 1; outside that region the computation fails with
// ErrPrecisionLoss.  Divisions by factorials are performed exactly, with the
// working precision padded to absorb the digits they consume.
func (m *Mod) Exp(x []big.Int, v uint, prec uint) ([]big.Int, error) {
	terms, slack, err := m.seriesBounds(v, prec)
	//
	if err != nil {
		return nil, err
	}
	//
	var (
		pw   = m.Modulus(prec + slack)
		sum  = m.One()
		term = m.One()
	)
	//
	for k := uint(1); k <= terms; k++ {
		term = m.Mul(term, x, pw)
		//
		if term, err = m.divideExact(term, k, pw); err != nil {
			return nil, err
		}
		//
		sum = m.Add(sum, term, pw)
	}
	//
	return m.Reduce(sum, m.Modulus(prec)), nil
}

// Log computes the logarithm series sum (-1)^(k+1) u^k / k modulo
// (f, p^prec), where u = x - 1 has p-adic valuation at least v.  As with Exp,
// convergence requires v(p-1) > 1; the caller is expected to reduce the p = 2
// case into this region by squaring.
func (m *Mod) Log(u []big.Int, v uint, prec uint) ([]big.Int, error) {
	terms, slack, err := m.seriesBounds(v, prec)
	//
	if err != nil {
		return nil, err
	}
	//
	var (
		pw  = m.Modulus(prec + slack)
		sum = m.Zero()
		pow = m.One()
	)
	//
	for k := uint(1); k <= terms; k++ {
		var term []big.Int
		//
		pow = m.Mul(pow, u, pw)
		//
		if term, err = m.divideExact(pow, k, pw); err != nil {
			return nil, err
		}
		//
		if k%2 == 1 {
			sum = m.Add(sum, term, pw)
		} else {
			sum = m.Sub(sum, term, pw)
		}
	}
	//
	return m.Reduce(sum, m.Modulus(prec)), nil
}

// seriesBounds determines how many series terms are required for the tail to
// vanish modulo p^prec, together with the extra working digits consumed by
// the exact divisions along the way.  A term of index k has valuation at
// least k*v - k/(p-1), so convergence requires v(p-1) > 1.
func (m *Mod) seriesBounds(v uint, prec uint) (terms uint, slack uint, err error) {
	var (
		pm1   = new(big.Int).Sub(&m.p, big.NewInt(1))
		denom = new(big.Int).Mul(new(big.Int).SetUint64(uint64(v)), pm1)
	)
	//
	denom.Sub(denom, big.NewInt(1))
	//
	if denom.Sign() <= 0 {
		return 0, 0, ErrPrecisionLoss
	}
	// terms = ceil(prec * (p-1) / denom) + 1
	num := new(big.Int).Mul(new(big.Int).SetUint64(uint64(prec)), pm1)
	num.Add(num, denom)
	num.Sub(num, big.NewInt(1))
	num.Div(num, denom)
	num.Add(num, big.NewInt(2))
	//
	if !num.IsUint64() {
		return 0, 0, ErrPrecisionLoss
	}
	//
	terms = uint(num.Uint64())
	// slack bounds the valuation of every divisor encountered
	lost := new(big.Int).SetUint64(uint64(terms))
	lost.Div(lost, pm1)
	slack = uint(lost.Uint64()) + 1
	//
	return terms, slack, nil
}

// divideExact divides a vector exactly by the integer k, splitting k into its
// p-part (an exact digit shift) and its unit part (a modular inverse).
func (m *Mod) divideExact(x []big.Int, k uint, pw *big.Int) ([]big.Int, error) {
	var (
		e, unit = valuationUint(k, &m.p)
		z       = x
		err     error
	)
	//
	if e > 0 {
		if z, err = m.ShiftRight(z, e); err != nil {
			return nil, err
		}
	}
	//
	if unit.Cmp(big.NewInt(1)) != 0 {
		inv := new(big.Int).ModInverse(unit, pw)
		z = m.MulScalar(z, inv, pw)
	}
	//
	return z, nil
}

// valuationUint splits k into p^e * unit.
func valuationUint(k uint, p *big.Int) (uint, *big.Int) {
	var (
		e    uint
		unit = new(big.Int).SetUint64(uint64(k))
		q, r big.Int
	)
	//
	for {
		q.QuoRem(unit, p, &r)
		//
		if r.Sign() != 0 {
			return e, unit
		}
		//
		unit.Set(&q)
		e++
	}
}
