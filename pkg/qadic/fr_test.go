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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

// At precision one over the BLS12-377 scalar modulus, q-adic arithmetic
// degenerates to arithmetic in the prime field, which gnark-crypto
// implements independently.  These tests cross-check the two.

func frField(t *testing.T) *Field {
	fld, err := NewPadicField(fr.Modulus(), 1, "")
	require.NoError(t, err)
	//
	return fld
}

// frDigit extracts the single digit of a precision-one unit.
func frDigit(t *testing.T, x *Element) *big.Int {
	require.False(t, x.IsZero())
	require.Equal(t, 0, x.Valuation())
	//
	return x.Unit()[0]
}

func Test_Fr_Add(t *testing.T) {
	var (
		fld  = frField(t)
		a    = big.NewInt(1234567891011)
		b    = big.NewInt(987654321)
		x, _ = fld.FromInt(a).Add(fld.FromInt(b))
	)
	//
	var ea, eb fr.Element
	ea.SetBigInt(a)
	eb.SetBigInt(b)
	ea.Add(&ea, &eb)
	//
	require.Equal(t, 0, ea.BigInt(new(big.Int)).Cmp(frDigit(t, x)))
}

func Test_Fr_Mul(t *testing.T) {
	var (
		fld  = frField(t)
		a    = new(big.Int).Lsh(big.NewInt(3), 200)
		b    = new(big.Int).Lsh(big.NewInt(7), 100)
		x, _ = fld.FromInt(a).Mul(fld.FromInt(b))
	)
	//
	var ea, eb fr.Element
	ea.SetBigInt(a)
	eb.SetBigInt(b)
	ea.Mul(&ea, &eb)
	//
	require.Equal(t, 0, ea.BigInt(new(big.Int)).Cmp(frDigit(t, x)))
}

func Test_Fr_Inv(t *testing.T) {
	var (
		fld  = frField(t)
		a    = big.NewInt(123456789)
		x, _ = fld.FromInt(a).Inv()
	)
	//
	var ea fr.Element
	ea.SetBigInt(a)
	ea.Inverse(&ea)
	//
	require.Equal(t, 0, ea.BigInt(new(big.Int)).Cmp(frDigit(t, x)))
}
