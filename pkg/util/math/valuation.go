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
package math

import (
	"math/big"
)

// Valuation computes the p-adic valuation of a non-zero integer n, that is the
// largest k such that p^k divides n, along with the cofactor n / p^k.  This
// will panic if n is zero, since the valuation of zero is not a finite
// quantity.
func Valuation(n *big.Int, p *big.Int) (int, *big.Int) {
	if n.Sign() == 0 {
		panic("valuation of zero is undefined")
	}
	//
	var (
		val = 0
		u   = new(big.Int).Set(n)
		q   = new(big.Int)
		r   = new(big.Int)
	)
	//
	for {
		q.QuoRem(u, p, r)
		//
		if r.Sign() != 0 {
			return val, u
		}
		//
		u.Set(q)
		q = new(big.Int)
		val++
	}
}

// BigPow computes p^n for a non-negative exponent n.
func BigPow(p *big.Int, n uint) *big.Int {
	return new(big.Int).Exp(p, new(big.Int).SetUint64(uint64(n)), nil)
}

// PowerOf determines whether m is an exact power of p and, if so, returns the
// exponent k such that p^k == m.  Both m and p must be positive, and p must
// exceed one.
func PowerOf(m *big.Int, p *big.Int) (int, bool) {
	if m.Sign() <= 0 {
		return 0, false
	}
	// Count factors of p in m
	val, u := Valuation(m, p)
	// Exact powers leave a cofactor of one
	if u.Cmp(oneInt) != 0 {
		return 0, false
	}
	//
	return val, true
}

// RatPowerOf determines whether a rational m is an exact (possibly negative)
// power of p, returning the exponent.  Negative exponents arise from rationals
// of the form 1 / p^k; any rational whose numerator and denominator are not
// both powers of p is rejected.
func RatPowerOf(m *big.Rat, p *big.Int) (int, bool) {
	if m.Sign() <= 0 {
		return 0, false
	}
	//
	num, numOk := PowerOf(m.Num(), p)
	den, denOk := PowerOf(m.Denom(), p)
	//
	if !numOk || !denOk {
		return 0, false
	}
	// Canonical rationals never carry p in both halves.
	return num - den, true
}

var oneInt = big.NewInt(1)
