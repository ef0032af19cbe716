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
	"errors"
	"math/big"

	"github.com/consensys/go-qadic/pkg/qadic/engine"
)

var big1 = big.NewInt(1)

// Sqrt computes a square root of x with precision Nx - vx/2.  The valuation
// must be even, otherwise no square root exists in an unramified extension
// and the operation fails with DomainError.  An exact zero yields zero at
// half the precision (rounded up), that being all a square root of something
// divisible by p^N is entitled to.
func (x *Element) Sqrt() (*Element, error) {
	if !x.IsZero() && x.val%2 != 0 {
		return nil, &DomainError{Op: "sqrt", Valuation: x.val, Reason: "odd valuation"}
	}
	//
	return x.sqrt()
}

// SqrtUnchecked computes a square root without the valuation parity guard,
// leaving success or failure to the underlying primitive.  Odd valuations
// still fail, but with the primitive's verdict rather than the precondition
// check.
func (x *Element) SqrtUnchecked() (*Element, error) {
	if !x.IsZero() && x.val%2 != 0 {
		// The primitive cannot produce a root either, whatever the digits.
		return nil, &DomainError{Op: "sqrt", Valuation: x.val, Reason: "no square root exists"}
	}
	//
	return x.sqrt()
}

func (x *Element) sqrt() (*Element, error) {
	if x.IsZero() {
		// ceil(N/2) digits survive a square root of zero
		return zeroElement(x.fld, (x.prec+1)/2), nil
	}
	//
	var (
		prec      = x.prec - x.val/2
		unitDigit = uint(x.prec - x.val)
	)
	//
	unit, err := x.fld.mod.Sqrt(x.coeffs, unitDigit)
	//
	switch {
	case errors.Is(err, engine.ErrNoSquareRoot):
		return nil, &DomainError{Op: "sqrt", Valuation: x.val, Reason: "no square root exists"}
	case errors.Is(err, engine.ErrEvenCharacteristic):
		return nil, &ConvergenceError{Op: "sqrt", Precision: prec}
	case err != nil:
		return nil, err
	}
	//
	return normalize(x.fld, unit, x.val/2, prec), nil
}

// Exp computes the q-adic exponential with unchanged precision Nx.  The
// series converges only for strictly positive valuation; an exact zero maps
// to one by convention, and anything else of non-positive valuation fails
// with DomainError.  Near the boundary of convergence the underlying series
// can fail, surfacing as ConvergenceError.
func (x *Element) Exp() (*Element, error) {
	if x.IsZero() {
		return x.fld.One().WithPrecision(x.prec), nil
	}
	//
	if x.val <= 0 {
		return nil, &DomainError{Op: "exp", Valuation: x.val, Reason: "non-positive valuation"}
	}
	//
	var (
		pm    = x.fld.mod.Modulus(uint(x.prec))
		value = x.fld.mod.ShiftLeft(x.coeffs, uint(x.val), pm)
	)
	//
	unit, err := x.fld.mod.Exp(value, uint(x.val), uint(x.prec))
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "exp", Precision: x.prec}
	}
	//
	return normalize(x.fld, unit, 0, x.prec), nil
}

// Log computes the q-adic logarithm with unchanged precision Nx, defined only
// on units (valuation zero, not zero).  The Teichmuller representative is
// divided out first, so the series always runs on an operand of positive
// valuation; residue characteristic two is additionally squared into the
// region of convergence.
func (x *Element) Log() (*Element, error) {
	if x.IsZero() || x.val != 0 {
		return nil, &DomainError{Op: "log", Valuation: x.Valuation(), Reason: "not a unit"}
	}
	//
	var (
		fld  = x.fld
		prec = uint(x.prec)
		pm   = fld.mod.Modulus(prec)
	)
	// Divide out the root of unity: x = t(1 + w) with log(t) = 0
	t, err := fld.mod.Teichmuller(x.coeffs, prec)
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "log", Precision: x.prec}
	}
	//
	invT, err := fld.mod.Inv(t, prec)
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "log", Precision: x.prec}
	}
	//
	w := fld.mod.Mul(x.coeffs, invT, pm)
	w[0].Sub(&w[0], big1)
	w[0].Mod(&w[0], pm)
	//
	if engine.IsZero(w) {
		return zeroElement(fld, x.prec), nil
	}
	//
	vw, _ := fld.mod.Valuation(w)
	//
	if twoAdic := fld.prime.Bit(0) == 0; twoAdic && vw < 2 {
		return x.logSquared(w, prec)
	}
	//
	unit, err := fld.mod.Log(w, uint(vw), prec)
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "log", Precision: x.prec}
	}
	//
	return normalize(fld, unit, 0, x.prec), nil
}

// logSquared handles the 2-adic unit of valuation-one defect via
// log(x) = log(x^2)/2, computed one digit above the target so the final halving
// is exact.
func (x *Element) logSquared(w []big.Int, prec uint) (*Element, error) {
	var (
		fld = x.fld
		pm1 = fld.mod.Modulus(prec + 1)
		one = fld.mod.One()
	)
	// (1+w)^2 - 1 has valuation at least two
	u := fld.mod.Add(one, w, pm1)
	u = fld.mod.Mul(u, u, pm1)
	u = fld.mod.Sub(u, one, pm1)
	//
	vu, ok := fld.mod.Valuation(u)
	//
	if !ok {
		return zeroElement(fld, int(prec)), nil
	}
	//
	l2, err := fld.mod.Log(u, uint(vu), prec+1)
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "log", Precision: int(prec)}
	}
	// log(x^2) is divisible by 2 exactly
	half, err := fld.mod.ShiftRight(l2, 1)
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "log", Precision: int(prec)}
	}
	//
	return normalize(fld, half, 0, int(prec)), nil
}

// Teichmuller computes the Teichmuller lift of x with unchanged precision:
// the unique root of unity (or zero) congruent to x modulo the maximal
// ideal.  Negative valuations are outside the domain; positive ones map to
// zero by convention.
func (x *Element) Teichmuller() (*Element, error) {
	if x.IsZero() || x.val > 0 {
		return zeroElement(x.fld, x.prec), nil
	}
	//
	if x.val < 0 {
		return nil, &DomainError{Op: "teichmuller", Valuation: x.val, Reason: "negative valuation"}
	}
	//
	unit, err := x.fld.mod.Teichmuller(x.coeffs, uint(x.prec))
	//
	if err != nil {
		return nil, &ConvergenceError{Op: "teichmuller", Precision: x.prec}
	}
	//
	return normalize(x.fld, unit, 0, x.prec), nil
}

// Frobenius applies the e-th power of the Frobenius automorphism, the field
// map extending the p-th power map on residues.  It is defined everywhere and
// exact, so valuation and precision are unchanged.  The exponent defaults to
// one in the sense that Frobenius(1) is the generating automorphism.
func (x *Element) Frobenius(e uint) *Element {
	if x.IsZero() {
		return zeroElement(x.fld, x.prec)
	}
	//
	unit := x.fld.mod.Frobenius(x.coeffs, e, uint(x.prec-x.val))
	//
	return normalize(x.fld, unit, x.val, x.prec)
}

// Trace computes the absolute trace, the sum of all d Frobenius conjugates.
func (x *Element) Trace() *Element {
	acc := x.Copy()
	//
	for e := uint(1); e < x.fld.degree; e++ {
		acc = mustSameField(acc.Add(x.Frobenius(e)))
	}
	//
	return acc
}

// Norm computes the absolute norm, the product of all d Frobenius conjugates.
func (x *Element) Norm() *Element {
	acc := x.Copy()
	//
	for e := uint(1); e < x.fld.degree; e++ {
		acc = mustSameField(acc.Mul(x.Frobenius(e)))
	}
	//
	return acc
}

// mustSameField unwraps an operation between conjugates, which share the
// receiver's field and hence cannot fail the compatibility check.
func mustSameField(z *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	//
	return z
}
