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

func Test_Coerce_O(t *testing.T) {
	fld := padic5(t)
	//
	for _, c := range []struct {
		m    int64
		prec int
	}{
		{1, 0}, {5, 1}, {25, 2}, {125, 3},
	} {
		z, err := O(fld, big.NewInt(c.m))
		assert.NoError(t, err)
		assert.True(t, z.IsZero())
		assert.Equal(t, c.prec, z.Precision())
	}
}

func Test_Coerce_O_Absorbs(t *testing.T) {
	fld := padic5(t)
	// O(5^3) compares equal to anything divisible by 5^3, since the
	// comparison only sees the first three digits.
	z, err := O(fld, big.NewInt(125))
	assert.NoError(t, err)
	assert.True(t, z.Valuation() >= 3)
	//
	for _, n := range []int64{0, 125, 250, -125, 625} {
		eq, err := z.Eq(fld.FromInt64(n))
		assert.NoError(t, err)
		assert.True(t, eq)
	}
	// Anything with a unit digit below 5^3 stays distinguishable.
	eq, err := z.Eq(fld.FromInt64(25))
	assert.NoError(t, err)
	assert.False(t, eq)
}

func Test_Coerce_O_Reject(t *testing.T) {
	fld := padic5(t)
	//
	for _, m := range []int64{0, -5, 10, 15, 50} {
		_, err := O(fld, big.NewInt(m))
		assert.IsError[*NotAPowerOfPrimeError](t, err)
	}
}

func Test_Coerce_ORat(t *testing.T) {
	fld := padic5(t)
	// 1/25 denotes a pole of order two
	z, err := ORat(fld, big.NewRat(1, 25))
	assert.NoError(t, err)
	assert.Equal(t, -2, z.Precision())
	// Integral rationals delegate to the integer form
	z, err = ORat(fld, big.NewRat(125, 1))
	assert.NoError(t, err)
	assert.Equal(t, 3, z.Precision())
	//
	_, err = ORat(fld, big.NewRat(2, 25))
	assert.IsError[*NotAPowerOfPrimeError](t, err)
}

func Test_Coerce_FromInt(t *testing.T) {
	fld := padic5(t)
	//
	z := fld.FromInt64(0)
	assert.True(t, z.IsZero())
	assert.Equal(t, 10, z.Precision())
	// Units carry the default precision exactly
	z = fld.FromInt64(7)
	assert.Equal(t, 0, z.Valuation())
	assert.Equal(t, 10, z.Precision())
	// Valuation shifts the window so relative precision stays the default
	z = fld.FromInt64(50)
	assert.Equal(t, 2, z.Valuation())
	assert.Equal(t, 12, z.Precision())
	//
	z = fld.FromInt64(-1)
	assert.Equal(t, 0, z.Valuation())
	assert.Equal(t, 10, z.Precision())
}

func Test_Coerce_FromRat(t *testing.T) {
	fld := padic5(t)
	// 7/5 has a simple pole
	z := fld.FromRat(big.NewRat(7, 5))
	assert.Equal(t, -1, z.Valuation())
	assert.Equal(t, 9, z.Precision())
	// Denominators prime to p invert exactly
	z = fld.FromRat(big.NewRat(1, 3))
	//
	prod, err := z.Mul(fld.FromInt64(3))
	assert.NoError(t, err)
	assertEq(t, prod, fld.One())
	// Integral rationals agree with the integer coercion
	assert.True(t, fld.FromRat(big.NewRat(7, 1)).IsEqual(fld.FromInt64(7)))
}

func Test_Coerce_RatRoundTrip(t *testing.T) {
	var (
		fld = padic5(t)
		q   = big.NewRat(35, 2)
		z   = fld.FromRat(q)
	)
	// Scaling the pole back out recovers the rational relationship
	prod, err := z.Mul(fld.FromInt64(2))
	assert.NoError(t, err)
	assertEq(t, prod, fld.FromInt64(35))
	assert.Equal(t, 1, z.Valuation())
}

func Test_Coerce_FromPoly(t *testing.T) {
	fld := quad5(t)
	// 3 + a
	z, err := fld.FromPoly([]*big.Rat{big.NewRat(3, 1), big.NewRat(1, 1)})
	assert.NoError(t, err)
	assert.Equal(t, 0, z.Valuation())
	assert.Equal(t, 10, z.Precision())
	//
	sub, err := z.Sub(fld.Generator())
	assert.NoError(t, err)
	assertEq(t, sub, fld.FromInt64(3))
}

func Test_Coerce_FromPoly_Reduce(t *testing.T) {
	fld := quad5(t)
	// a^2 folds against the defining polynomial to the constant 2
	z, err := fld.FromPoly([]*big.Rat{nil, nil, big.NewRat(1, 1)})
	assert.NoError(t, err)
	assert.True(t, z.IsEqual(fld.FromInt64(2)))
}

func Test_Coerce_FromPoly_Overflow(t *testing.T) {
	fld := quad5(t)
	//
	_, err := fld.FromPoly([]*big.Rat{nil, nil, nil, big.NewRat(1, 1)})
	assert.IsError[*DegreeOverflowError](t, err)
}

func Test_Coerce_FromPoly_Zero(t *testing.T) {
	fld := quad5(t)
	//
	z, err := fld.FromPoly(nil)
	assert.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 10, z.Precision())
}

func Test_Coerce_Lift(t *testing.T) {
	var (
		fld = quad5(t)
		q   = []*big.Rat{big.NewRat(3, 1), big.NewRat(5, 2)}
	)
	//
	z, err := fld.FromPoly(q)
	assert.NoError(t, err)
	// The rational lift reproduces the coefficients modulo 5^10
	lifted, err := fld.FromPoly(z.Lift())
	assert.NoError(t, err)
	assertEq(t, lifted, z)
}

func Test_Coerce_SameField(t *testing.T) {
	var (
		f1 = padic5(t)
		f2 = padic5(t)
		x  = f1.FromInt64(7)
	)
	// Structurally equal fields accept each other's elements
	y, err := f2.Coerce(x)
	assert.NoError(t, err)
	assert.True(t, x.IsEqual(y))
	// while anything else is rejected.
	_, err = quad5(t).Coerce(x)
	assert.IsError[*IncompatibleFieldError](t, err)
}
