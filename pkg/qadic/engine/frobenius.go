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

// Teichmuller computes the Teichmuller lift of a unit vector x modulo
// (f, p^prec): the unique root of unity (of order dividing q - 1) congruent
// to x modulo p.  The lift is obtained by iterating t <- t^q, which gains one
// digit of agreement per round.
func (m *Mod) Teichmuller(x []big.Int, prec uint) ([]big.Int, error) {
	if v, ok := m.Valuation(x); !ok || v > 0 {
		return nil, ErrNotUnit
	}
	//
	var (
		q  = new(big.Int).Exp(&m.p, big.NewInt(int64(m.d)), nil)
		pm = m.Modulus(prec)
		t  = m.Reduce(x, pm)
	)
	//
	for i := uint(1); i < prec; i++ {
		next := m.PowBig(t, q, pm)
		// Fixed point reached
		if Equal(next, t, pm) {
			return next, nil
		}
		//
		t = next
	}
	//
	return t, nil
}

// FrobeniusGen computes the image of the generator under the e-th power of
// the Frobenius automorphism, modulo (f, p^prec).  The image is the unique
// root of the defining polynomial congruent to g^(p^e) modulo p, recovered by
// Newton-lifting that residue root.  Requires 0 <= e < d.
func (m *Mod) FrobeniusGen(e uint, prec uint) []big.Int {
	var (
		pm  = m.Modulus(prec)
		gen = m.Gen(pm)
	)
	// Identity cases
	if e == 0 || m.d == 1 {
		return gen
	}
	// Residue image of the generator: g^(p^e) in F_q
	var (
		exp = new(big.Int).Exp(&m.p, new(big.Int).SetUint64(uint64(e)), nil)
		r   = m.PowBig(gen, exp, new(big.Int).Set(&m.p))
	)
	// Newton-lift the root: r <- r - f(r)/f'(r)
	fd := m.derivative()
	//
	for cur := uint(1); cur < prec; {
		cur = min(2*cur, prec)
		//
		var (
			pc  = m.Modulus(cur)
			fr  = m.Eval(m.f, r, pc)
			dfr = m.Eval(fd, r, pc)
		)
		// f is separable modulo p, so f'(r) is always a unit
		invDfr, err := m.Inv(dfr, cur)
		//
		if err != nil {
			panic("defining polynomial not separable modulo p")
		}
		//
		r = m.Sub(r, m.Mul(fr, invDfr, pc), pc)
	}
	//
	return r
}

// Frobenius applies the e-th power of the Frobenius automorphism to a vector
// by re-evaluating its polynomial representation at the image of the
// generator.
func (m *Mod) Frobenius(x []big.Int, e uint, prec uint) []big.Int {
	if m.d == 1 || e%uint(m.d) == 0 {
		return m.Reduce(x, m.Modulus(prec))
	}
	//
	image := m.FrobeniusGen(e%uint(m.d), prec)
	//
	return m.Eval(x, image, m.Modulus(prec))
}

// derivative computes the formal derivative of the defining polynomial.
func (m *Mod) derivative() []big.Int {
	var (
		fd = make([]big.Int, m.d)
		k  big.Int
	)
	//
	for i := 1; i <= m.d; i++ {
		k.SetInt64(int64(i))
		fd[i-1].Mul(&m.f[i], &k)
	}
	//
	return fd
}
