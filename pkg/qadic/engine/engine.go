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

// Package engine provides the primitive modular-polynomial arithmetic service
// underpinning q-adic elements.  Values are represented as coefficient vectors
// of fixed length d over the ring Z/p^M, reduced modulo a monic defining
// polynomial f of degree d.  Every operation takes its target precision M
// explicitly and is pure: inputs are never modified, and outputs are freshly
// allocated.  Precision bookkeeping is the caller's responsibility; this
// package computes digits at exactly the precision it is asked for.
package engine

import (
	"errors"
	"math/big"

	"github.com/consensys/go-qadic/pkg/util/math"
)

var (
	// ErrNotUnit signals an attempt to invert a vector divisible by p.
	ErrNotUnit = errors.New("not a unit")
	// ErrNoSquareRoot signals that no square root exists in the field.
	ErrNoSquareRoot = errors.New("no square root exists")
	// ErrPrecisionLoss signals that a series computation could not sustain
	// the requested precision (the radius of convergence was exceeded).
	ErrPrecisionLoss = errors.New("series cannot attain requested precision")
	// ErrEvenCharacteristic signals an operation unsupported at p = 2.
	ErrEvenCharacteristic = errors.New("unsupported in residue characteristic two")
)

// Mod captures the frozen arithmetic parameters of an unramified extension:
// the prime p and the monic defining polynomial f of degree d.  A Mod is
// immutable once constructed and safely shared between goroutines.
type Mod struct {
	p big.Int
	d int
	// Coefficients f[0..d] of the defining polynomial, with f[d] = 1.
	f []big.Int
}

// NewMod constructs the arithmetic parameters for Z_p[x]/(f).  The defining
// polynomial must be monic of degree at least one; primality of p is not
// checked here (that is a concern of the layer above).
func NewMod(p *big.Int, f []*big.Int) (*Mod, error) {
	if p.Cmp(big.NewInt(1)) <= 0 {
		return nil, errors.New("modulus prime must exceed one")
	}
	//
	if len(f) < 2 {
		return nil, errors.New("defining polynomial must have degree at least one")
	}
	//
	if f[len(f)-1].Cmp(big.NewInt(1)) != 0 {
		return nil, errors.New("defining polynomial must be monic")
	}
	//
	m := &Mod{d: len(f) - 1, f: make([]big.Int, len(f))}
	m.p.Set(p)
	//
	for i, c := range f {
		m.f[i].Set(c)
	}
	//
	return m, nil
}

// Prime returns the prime p.
func (m *Mod) Prime() *big.Int {
	return new(big.Int).Set(&m.p)
}

// Degree returns the degree d of the defining polynomial.
func (m *Mod) Degree() int {
	return m.d
}

// Modulus returns p^n.
func (m *Mod) Modulus(n uint) *big.Int {
	return math.BigPow(&m.p, n)
}

// Zero returns the zero vector.
func (m *Mod) Zero() []big.Int {
	return make([]big.Int, m.d)
}

// One returns the unit vector.
func (m *Mod) One() []big.Int {
	x := make([]big.Int, m.d)
	x[0].SetUint64(1)
	//
	return x
}

// Gen returns the image of x in Z_p[x]/(f).  For degree one this degenerates
// to the root of the linear polynomial f, i.e. -f[0].
func (m *Mod) Gen(pm *big.Int) []big.Int {
	x := make([]big.Int, m.d)
	//
	if m.d == 1 {
		x[0].Neg(&m.f[0])
		x[0].Mod(&x[0], pm)
	} else {
		x[1].SetUint64(1)
	}
	//
	return x
}

// Scalar lifts an integer scalar into a vector mod pm.
func (m *Mod) Scalar(c *big.Int, pm *big.Int) []big.Int {
	x := make([]big.Int, m.d)
	x[0].Mod(c, pm)
	//
	return x
}

// Copy returns a fresh copy of x.
func Copy(x []big.Int) []big.Int {
	y := make([]big.Int, len(x))
	//
	for i := range x {
		y[i].Set(&x[i])
	}
	//
	return y
}

// IsZero reports whether every coefficient of x is zero.
func IsZero(x []big.Int) bool {
	for i := range x {
		if x[i].Sign() != 0 {
			return false
		}
	}
	//
	return true
}

// Equal reports coefficient-wise equality of x and y modulo pm.
func Equal(x, y []big.Int, pm *big.Int) bool {
	var u, v big.Int
	//
	for i := range x {
		u.Mod(&x[i], pm)
		v.Mod(&y[i], pm)
		//
		if u.Cmp(&v) != 0 {
			return false
		}
	}
	//
	return true
}

// Reduce returns x with every coefficient reduced into [0, pm).
func (m *Mod) Reduce(x []big.Int, pm *big.Int) []big.Int {
	y := make([]big.Int, m.d)
	//
	for i := range x {
		y[i].Mod(&x[i], pm)
	}
	//
	return y
}

// Add computes x + y mod pm.
func (m *Mod) Add(x, y []big.Int, pm *big.Int) []big.Int {
	z := make([]big.Int, m.d)
	//
	for i := range z {
		z[i].Add(&x[i], &y[i])
		z[i].Mod(&z[i], pm)
	}
	//
	return z
}

// Sub computes x - y mod pm.
func (m *Mod) Sub(x, y []big.Int, pm *big.Int) []big.Int {
	z := make([]big.Int, m.d)
	//
	for i := range z {
		z[i].Sub(&x[i], &y[i])
		z[i].Mod(&z[i], pm)
	}
	//
	return z
}

// Neg computes -x mod pm.
func (m *Mod) Neg(x []big.Int, pm *big.Int) []big.Int {
	z := make([]big.Int, m.d)
	//
	for i := range z {
		z[i].Neg(&x[i])
		z[i].Mod(&z[i], pm)
	}
	//
	return z
}

// Mul computes x * y mod (f, pm) by schoolbook convolution followed by
// reduction against the monic defining polynomial.
func (m *Mod) Mul(x, y []big.Int, pm *big.Int) []big.Int {
	var (
		conv = make([]big.Int, 2*m.d-1)
		t    big.Int
	)
	//
	for i := range x {
		if x[i].Sign() == 0 {
			continue
		}
		//
		for j := range y {
			t.Mul(&x[i], &y[j])
			conv[i+j].Add(&conv[i+j], &t)
		}
	}
	//
	return m.reducePoly(conv, pm)
}

// MulScalar computes c * x mod pm for an integer scalar c.
func (m *Mod) MulScalar(x []big.Int, c *big.Int, pm *big.Int) []big.Int {
	z := make([]big.Int, m.d)
	//
	for i := range z {
		z[i].Mul(&x[i], c)
		z[i].Mod(&z[i], pm)
	}
	//
	return z
}

// PowBig computes x^e mod (f, pm) for a non-negative exponent by square and
// multiply.
func (m *Mod) PowBig(x []big.Int, e *big.Int, pm *big.Int) []big.Int {
	if e.Sign() < 0 {
		panic("negative exponent")
	}
	//
	var (
		acc  = m.One()
		base = m.Reduce(x, pm)
	)
	//
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = m.Mul(acc, acc, pm)
		//
		if e.Bit(i) == 1 {
			acc = m.Mul(acc, base, pm)
		}
	}
	//
	return acc
}

// Eval evaluates a polynomial with scalar coefficients at a vector point by
// Horner's rule.  This is how field automorphisms are applied: an element
// written as a polynomial in the generator is re-evaluated at the image of
// the generator.
func (m *Mod) Eval(coeffs []big.Int, at []big.Int, pm *big.Int) []big.Int {
	acc := m.Zero()
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = m.Mul(acc, at, pm)
		acc[0].Add(&acc[0], &coeffs[i])
		acc[0].Mod(&acc[0], pm)
	}
	//
	return acc
}

// Valuation computes the minimum p-adic valuation over the non-zero
// coefficients of x.  The second result is false when x is the zero vector.
func (m *Mod) Valuation(x []big.Int) (int, bool) {
	var (
		best  = -1
		found = false
	)
	//
	for i := range x {
		if x[i].Sign() == 0 {
			continue
		}
		//
		v, _ := math.Valuation(&x[i], &m.p)
		//
		if !found || v < best {
			best, found = v, true
		}
		// Cannot improve further
		if best == 0 {
			break
		}
	}
	//
	return best, found
}

// ShiftRight divides every coefficient of x exactly by p^k.  It fails with
// ErrPrecisionLoss if any coefficient is not divisible by p^k, which in the
// series computations above signals leaving the radius of convergence.
func (m *Mod) ShiftRight(x []big.Int, k uint) ([]big.Int, error) {
	var (
		pk = math.BigPow(&m.p, k)
		z  = make([]big.Int, m.d)
		r  big.Int
	)
	//
	for i := range x {
		z[i].QuoRem(&x[i], pk, &r)
		//
		if r.Sign() != 0 {
			return nil, ErrPrecisionLoss
		}
	}
	//
	return z, nil
}

// ShiftLeft multiplies every coefficient of x by p^k mod pm.
func (m *Mod) ShiftLeft(x []big.Int, k uint, pm *big.Int) []big.Int {
	return m.MulScalar(x, math.BigPow(&m.p, k), pm)
}

// reducePoly reduces a convolution of degree up to 2d-2 against the monic
// defining polynomial, then brings coefficients into [0, pm).
func (m *Mod) reducePoly(conv []big.Int, pm *big.Int) []big.Int {
	var t big.Int
	// Eliminate high-degree terms using x^d = -(f[0] + ... + f[d-1] x^{d-1})
	for k := len(conv) - 1; k >= m.d; k-- {
		if conv[k].Sign() == 0 {
			continue
		}
		//
		for i := 0; i < m.d; i++ {
			t.Mul(&conv[k], &m.f[i])
			conv[k-m.d+i].Sub(&conv[k-m.d+i], &t)
		}
		//
		conv[k].SetUint64(0)
	}
	//
	z := make([]big.Int, m.d)
	//
	for i := range z {
		z[i].Mod(&conv[i], pm)
	}
	//
	return z
}
