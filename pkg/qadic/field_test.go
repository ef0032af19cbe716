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

// padic5 constructs Q_5 at the default precision used throughout the tests.
func padic5(t *testing.T) *Field {
	f, err := NewPadicField(big.NewInt(5), 10, "")
	assert.NoError(t, err)
	//
	return f
}

// quad5 constructs the unramified quadratic extension of Q_5 defined by
// a^2 - 2.
func quad5(t *testing.T) *Field {
	f, err := NewField(big.NewInt(5), ints(-2, 0, 1), 10, "a")
	assert.NoError(t, err)
	//
	return f
}

func ints(ns ...int64) []*big.Int {
	out := make([]*big.Int, len(ns))
	//
	for i, n := range ns {
		out[i] = big.NewInt(n)
	}
	//
	return out
}

// assertEq checks precision-relative equality of two elements.
func assertEq(t *testing.T, x, y *Element) {
	t.Helper()
	//
	eq, err := x.Eq(y)
	assert.NoError(t, err)
	assert.True(t, eq, "expected %s == %s", x, y)
}

func Test_Field_New(t *testing.T) {
	fld := padic5(t)
	//
	assert.BigEqual(t, big.NewInt(5), fld.Prime())
	assert.Equal(t, uint(1), fld.Degree())
	assert.Equal(t, uint(10), fld.Precision())
}

func Test_Field_NotPrime(t *testing.T) {
	_, err := NewPadicField(big.NewInt(10), 10, "")
	assert.True(t, err != nil)
}

func Test_Field_Equal(t *testing.T) {
	var (
		f1 = padic5(t)
		f2 = padic5(t)
		g  = quad5(t)
	)
	//
	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(g))
	// Differing default precision separates otherwise identical fields.
	f3, err := NewPadicField(big.NewInt(5), 12, "")
	assert.NoError(t, err)
	assert.False(t, f1.Equal(f3))
}

func Test_Field_Cached(t *testing.T) {
	f1, err := CachedField(big.NewInt(5), ints(-2, 0, 1), 10, "a")
	assert.NoError(t, err)
	//
	f2, err := CachedField(big.NewInt(5), ints(-2, 0, 1), 10, "a")
	assert.NoError(t, err)
	// Equal parameters intern to the identical instance.
	assert.True(t, f1 == f2)
	//
	f3, err := CachedField(big.NewInt(5), ints(-2, 0, 1), 12, "a")
	assert.NoError(t, err)
	assert.True(t, f1 != f3)
}

func Test_Field_ZeroOne(t *testing.T) {
	fld := padic5(t)
	//
	assert.True(t, fld.Zero().IsZero())
	assert.False(t, fld.One().IsZero())
	assert.Equal(t, 10, fld.Zero().Precision())
	assert.Equal(t, 0, fld.One().Valuation())
}

func Test_Field_Generator(t *testing.T) {
	var (
		fld = quad5(t)
		g   = fld.Generator()
	)
	//
	assert.Equal(t, 0, g.Valuation())
	assert.Equal(t, 10, g.Precision())
	// g^2 = 2 by the choice of defining polynomial
	sq, err := g.Mul(g)
	assert.NoError(t, err)
	assertEq(t, sq, fld.FromInt64(2))
	// The degree-one "generator" is the root of x - 1.
	assertEq(t, padic5(t).Generator(), padic5(t).One())
}

func Test_Field_Incompatible(t *testing.T) {
	var (
		x = padic5(t).FromInt64(1)
		y = quad5(t).FromInt64(1)
	)
	//
	_, err := x.Add(y)
	assert.IsError[*IncompatibleFieldError](t, err)
}

func Test_Field_String(t *testing.T) {
	assert.Equal(t, "Q_5 (prec 10)", padic5(t).String())
}
