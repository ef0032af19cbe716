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

import "math/big"

// This file is the precision propagation engine: every operation first
// validates its operands, then derives the precision its result is entitled
// to, and only then asks the digit engine for a computation at exactly that
// precision.  The derivations follow the standard ultrametric bounds; getting
// any of them wrong produces results that look fine but are silently known to
// fewer digits than claimed.

// Neg computes -x.  Negation is exact, so the precision is unchanged.
func (x *Element) Neg() *Element {
	if x.IsZero() {
		return zeroElement(x.fld, x.prec)
	}
	//
	unit := x.fld.mod.Neg(x.coeffs, x.fld.mod.Modulus(uint(x.prec-x.val)))
	//
	return &Element{fld: x.fld, coeffs: unit, val: x.val, prec: x.prec}
}

// Add computes x + y with precision min(Nx, Ny): a sum can be trusted only to
// the lesser of the two input certainties.
func (x *Element) Add(y *Element) (*Element, error) {
	if err := compatible("add", x, y); err != nil {
		return nil, err
	}
	//
	return x.addSub(y, false), nil
}

// Sub computes x - y with precision min(Nx, Ny).
func (x *Element) Sub(y *Element) (*Element, error) {
	if err := compatible("sub", x, y); err != nil {
		return nil, err
	}
	//
	return x.addSub(y, true), nil
}

func (x *Element) addSub(y *Element, negate bool) *Element {
	prec := min(x.prec, y.prec)
	//
	if x.IsZero() && y.IsZero() {
		return zeroElement(x.fld, prec)
	}
	//
	if y.IsZero() {
		return x.WithPrecision(prec)
	}
	//
	if x.IsZero() {
		if negate {
			return y.Neg().WithPrecision(prec)
		}
		//
		return y.WithPrecision(prec)
	}
	// Align both operands at the lesser valuation
	var (
		m      = min(x.val, y.val)
		digits = uint(prec - m)
		pm     = x.fld.mod.Modulus(digits)
		xs     = x.fld.mod.ShiftLeft(x.coeffs, uint(x.val-m), pm)
		ys     = x.fld.mod.ShiftLeft(y.coeffs, uint(y.val-m), pm)
	)
	//
	if negate {
		return normalize(x.fld, x.fld.mod.Sub(xs, ys, pm), m, prec)
	}
	//
	return normalize(x.fld, x.fld.mod.Add(xs, ys, pm), m, prec)
}

// Mul computes x * y with precision min(Nx + vy, Ny + vx): each operand
// contributes its own certainty shifted by the other's valuation, because
// multiplying by a value of valuation v moves significance by v digits.
func (x *Element) Mul(y *Element) (*Element, error) {
	if err := compatible("mul", x, y); err != nil {
		return nil, err
	}
	//
	var (
		vx, vy = x.Valuation(), y.Valuation()
		prec   = min(x.prec+vy, y.prec+vx)
	)
	//
	if x.IsZero() || y.IsZero() {
		return zeroElement(x.fld, prec), nil
	}
	// Unit parts multiply at precision prec - vx - vy
	var (
		pm   = x.fld.mod.Modulus(uint(prec - vx - vy))
		unit = x.fld.mod.Mul(x.coeffs, y.coeffs, pm)
	)
	//
	return normalize(x.fld, unit, vx+vy, prec), nil
}

// Inv computes x^-1 with precision Nx - 2vx, failing with DivideByZeroError
// when x is exactly zero at its precision.
func (x *Element) Inv() (*Element, error) {
	if x.IsZero() {
		return nil, &DivideByZeroError{Op: "inv"}
	}
	// The inverse unit is needed modulo p^(Nx - vx)
	unit, err := x.fld.mod.Inv(x.coeffs, uint(x.prec-x.val))
	//
	if err != nil {
		// Unreachable for a well-formed unit part
		return nil, &DivideByZeroError{Op: "inv"}
	}
	//
	return normalize(x.fld, unit, -x.val, x.prec-2*x.val), nil
}

// Div computes x / y as x * y^-1.
func (x *Element) Div(y *Element) (*Element, error) {
	if err := compatible("div", x, y); err != nil {
		return nil, err
	}
	//
	inv, err := y.Inv()
	//
	if err != nil {
		return nil, &DivideByZeroError{Op: "div"}
	}
	//
	return x.Mul(inv)
}

// Pow computes x^n with precision Nx + (n-1)vx for positive n.  The case
// n = 0 degenerates to the exact unit at the field's default precision, and
// negative exponents go through inversion of the positive power.
func (x *Element) Pow(n int64) (*Element, error) {
	switch {
	case n == 0:
		return x.fld.One(), nil
	case n < 0:
		pow, err := x.Pow(-n)
		//
		if err != nil {
			return nil, err
		}
		//
		return pow.Inv()
	}
	//
	var (
		vx   = x.Valuation()
		prec = x.prec + int(n-1)*vx
	)
	//
	if x.IsZero() {
		return zeroElement(x.fld, prec), nil
	}
	// Unit precision Nx - vx is preserved by powering
	var (
		pm   = x.fld.mod.Modulus(uint(x.prec - x.val))
		unit = x.fld.mod.PowBig(x.coeffs, big.NewInt(n), pm)
	)
	//
	return normalize(x.fld, unit, int(n)*x.val, prec), nil
}

// Eq is the mathematical (precision-relative) equality predicate: the
// difference of x and y, computed at the lesser of the two precisions, is
// zero at that precision.  Two elements of different nominal precision can
// therefore compare equal; IsEqual is the stricter identity check.
func (x *Element) Eq(y *Element) (bool, error) {
	diff, err := x.Sub(y)
	//
	if err != nil {
		return false, err
	}
	//
	return diff.IsZero(), nil
}

// Gcd implements the field convention for greatest common divisors: zero when
// both operands are exactly zero at their precisions, and the multiplicative
// identity otherwise, every non-zero element of a field being a unit.
func Gcd(x, y *Element) (*Element, error) {
	if err := compatible("gcd", x, y); err != nil {
		return nil, err
	}
	//
	if x.IsZero() && y.IsZero() {
		return zeroElement(x.fld, min(x.prec, y.prec)), nil
	}
	//
	return x.fld.One(), nil
}
