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
	"testing"

	"github.com/consensys/go-qadic/pkg/util/assert"
)

func Test_Arith_AddPrecision(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	// O(5^2): zero known to two digits
	y, err := O(fld, big.NewInt(25))
	assert.NoError(t, err)
	//
	z, err := x.Add(y)
	assert.NoError(t, err)
	// The sum inherits the lesser precision.
	assert.Equal(t, 2, z.Precision())
	assertEq(t, z, fld.FromInt64(7))
}

func Test_Arith_AddAligned(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(5)
		y   = fld.FromInt64(25)
	)
	//
	z, err := x.Add(y)
	assert.NoError(t, err)
	assert.Equal(t, 1, z.Valuation())
	assert.Equal(t, 11, z.Precision())
	assertEq(t, z, fld.FromInt64(30))
}

func Test_Arith_SubCancels(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	//
	z, err := x.Sub(fld.FromInt64(7))
	assert.NoError(t, err)
	// Nothing beyond divisibility by 5^10 is known about the difference.
	assert.True(t, z.IsZero())
	assert.Equal(t, 10, z.Precision())
	assert.Equal(t, 10, z.Valuation())
}

func Test_Arith_Neg(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	//
	z, err := x.Add(x.Neg())
	assert.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 10, x.Neg().Precision())
}

func Test_Arith_MulPrecision(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
		y   = fld.FromInt64(5).WithPrecision(10)
	)
	//
	z, err := x.Mul(y)
	assert.NoError(t, err)
	// min(Nx + vy, Ny + vx) = min(10 + 1, 10 + 0)
	assert.Equal(t, 10, z.Precision())
	assert.Equal(t, 1, z.Valuation())
	assertEq(t, z, fld.FromInt64(35))
}

func Test_Arith_MulZero(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	//
	y, err := O(fld, big.NewInt(125))
	assert.NoError(t, err)
	//
	z, err := x.Mul(y)
	assert.NoError(t, err)
	assert.True(t, z.IsZero())
	// A zero of valuation 3 scales the certainty of the unit operand.
	assert.Equal(t, 3, z.Precision())
}

func Test_Arith_InvPrecision(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(5).WithPrecision(10)
	)
	//
	z, err := x.Inv()
	assert.NoError(t, err)
	// Nx - 2vx = 10 - 2
	assert.Equal(t, 8, z.Precision())
	assert.Equal(t, -1, z.Valuation())
	// x * x^-1 = 1
	prod, err := x.Mul(z)
	assert.NoError(t, err)
	assertEq(t, prod, fld.One())
}

func Test_Arith_InvZero(t *testing.T) {
	fld := padic5(t)
	//
	_, err := fld.Zero().Inv()
	assert.IsError[*DivideByZeroError](t, err)
}

func Test_Arith_Div(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(35)
	)
	//
	z, err := x.Div(fld.FromInt64(7))
	assert.NoError(t, err)
	assertEq(t, z, fld.FromInt64(5))
	//
	_, err = x.Div(fld.Zero())
	assert.IsError[*DivideByZeroError](t, err)
}

func Test_Arith_PowPrecision(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(5)
	)
	//
	z, err := x.Pow(3)
	assert.NoError(t, err)
	// Nx + (n-1)vx = 11 + 2
	assert.Equal(t, 13, z.Precision())
	assert.Equal(t, 3, z.Valuation())
	assertEq(t, z, fld.FromInt64(125))
}

func Test_Arith_PowZeroExponent(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	//
	z, err := x.Pow(0)
	assert.NoError(t, err)
	assert.True(t, z.IsEqual(fld.One()))
}

func Test_Arith_PowNegative(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	//
	z, err := x.Pow(-2)
	assert.NoError(t, err)
	//
	sq, err := x.Mul(x)
	assert.NoError(t, err)
	//
	inv, err := sq.Inv()
	assert.NoError(t, err)
	assertEq(t, z, inv)
}

func Test_Arith_Ultrametric(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(5)
		y   = fld.FromInt64(25)
	)
	// Distinct valuations force equality in the ultrametric bound.
	z, err := x.Add(y)
	assert.NoError(t, err)
	assert.Equal(t, min(x.Valuation(), y.Valuation()), z.Valuation())
	// Equal valuations can only increase it.
	w, err := x.Add(x.Neg())
	assert.NoError(t, err)
	assert.True(t, w.Valuation() >= x.Valuation())
}

func Test_Arith_EqVersusIsEqual(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
		y   = fld.FromInt64(7).WithPrecision(5)
	)
	// Values agree at the lesser precision
	assertEq(t, x, y)
	// but the identity-level predicate separates them.
	assert.False(t, x.IsEqual(y))
	assert.True(t, x.IsEqual(x.Copy()))
}

func Test_Arith_CopyIndependent(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
		y   = x.Copy()
	)
	//
	assert.NoError(t, y.AccAdd(fld.FromInt64(1)))
	// Mutating the copy leaves the original untouched.
	assertEq(t, x, fld.FromInt64(7))
	assertEq(t, y, fld.FromInt64(8))
}

func Test_Arith_Hash(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(7)
	)
	//
	assert.Equal(t, x.Hash(), x.Copy().Hash())
	assert.True(t, x.Hash() != fld.FromInt64(8).Hash())
	assert.True(t, x.Hash() != x.WithPrecision(5).Hash())
}

func Test_Arith_Gcd(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(10)
		y   = fld.FromInt64(15)
	)
	// Every non-zero field element is a unit.
	z, err := Gcd(x, y)
	assert.NoError(t, err)
	assert.True(t, z.IsEqual(fld.One()))
	//
	z, err = Gcd(fld.Zero(), fld.Zero().WithPrecision(4))
	assert.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 4, z.Precision())
}

func Test_Arith_String(t *testing.T) {
	fld := padic5(t)
	//
	assert.Equal(t, "7 + O(5^10)", fld.FromInt64(7).String())
	assert.Equal(t, "O(5^10)", fld.Zero().String())
	assert.Equal(t, "2*5 + O(5^11)", fld.FromInt64(10).String())
}

func Test_Arith_InPlace(t *testing.T) {
	var (
		fld = padic5(t)
		x   = fld.FromInt64(3)
	)
	//
	assert.NoError(t, x.AccMul(fld.FromInt64(4)))
	assertEq(t, x, fld.FromInt64(12))
	//
	assert.NoError(t, x.Set(fld.FromInt64(9)))
	assertEq(t, x, fld.FromInt64(9))
	//
	x.SetZero(4)
	assert.True(t, x.IsZero())
	assert.Equal(t, 4, x.Precision())
	// Elements of a different field are rejected.
	assert.IsError[*IncompatibleFieldError](t, x.Set(quad5(t).FromInt64(1)))
}
