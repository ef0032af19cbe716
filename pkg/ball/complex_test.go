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
package ball

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Ball_Exact(t *testing.T) {
	z := New(big.NewFloat(2), big.NewFloat(3), 64)
	//
	require.True(t, z.IsExact())
	require.True(t, z.Contains(big.NewRat(2, 1), big.NewRat(3, 1)))
	require.False(t, z.Contains(big.NewRat(2, 1), big.NewRat(4, 1)))
}

func Test_Ball_ContainsExact(t *testing.T) {
	var (
		z   = New(big.NewFloat(1), big.NewFloat(0), 64)
		eps = new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 200))
		re  = new(big.Rat).Add(big.NewRat(1, 1), eps)
	)
	// A point ball admits nothing but its midpoint, however close.
	require.True(t, z.Contains(big.NewRat(1, 1), new(big.Rat)))
	require.False(t, z.Contains(re, new(big.Rat)))
}

func Test_Ball_FromRat(t *testing.T) {
	// 1/3 cannot be represented exactly in binary, so the radius absorbs
	// the rounding.
	z := FromRat(big.NewRat(1, 3), 64)
	//
	require.False(t, z.IsExact())
	require.True(t, z.Contains(big.NewRat(1, 3), new(big.Rat)))
}

func Test_Ball_Add(t *testing.T) {
	var (
		x = FromRat(big.NewRat(1, 3), 64)
		y = FromRat(big.NewRat(1, 7), 64)
		z = x.Add(y)
	)
	// 1/3 + 1/7 = 10/21
	require.True(t, z.Contains(big.NewRat(10, 21), new(big.Rat)))
}

func Test_Ball_Sub(t *testing.T) {
	var (
		x = FromRat(big.NewRat(1, 3), 64)
		z = x.Sub(x)
	)
	// The difference ball must contain the exact zero.
	require.True(t, z.Contains(new(big.Rat), new(big.Rat)))
}

func Test_Ball_Mul(t *testing.T) {
	var (
		x = New(big.NewFloat(1), big.NewFloat(2), 64)
		y = New(big.NewFloat(3), big.NewFloat(-1), 64)
		z = x.Mul(y)
	)
	// (1 + 2i)(3 - i) = 5 + 5i
	require.True(t, z.Contains(big.NewRat(5, 1), big.NewRat(5, 1)))
}

func Test_Ball_MulContainment(t *testing.T) {
	var (
		x = FromRat(big.NewRat(1, 3), 64)
		y = FromRat(big.NewRat(1, 9), 64)
		z = x.Mul(y)
	)
	// 1/27 lies in every valid enclosure of (1/3)(1/9).
	require.True(t, z.Contains(big.NewRat(1, 27), new(big.Rat)))
	require.False(t, z.Contains(big.NewRat(1, 26), new(big.Rat)))
}

func Test_Ball_MulCrossTerms(t *testing.T) {
	var (
		r = big.NewRat(1, 1<<20)
		z = New(big.NewFloat(1), big.NewFloat(1), 64)
		w = New(big.NewFloat(1), big.NewFloat(1), 64)
	)
	//
	z.rad.SetRat(r)
	// The corner (1+r) + (1+r)i lies in z and multiplies with 1+i to
	// 2(1+r)i, a full 2r above the midpoint product 2i.
	var (
		corner = new(big.Rat).Add(big.NewRat(1, 1), r)
		im     = new(big.Rat).Add(new(big.Rat).Add(r, r), big.NewRat(2, 1))
		p      = z.Mul(w)
	)
	//
	require.True(t, z.Contains(corner, corner))
	require.True(t, p.Contains(new(big.Rat), im))
}

func Test_Ball_Scale(t *testing.T) {
	var (
		x = FromRat(big.NewRat(1, 3), 64)
		z = x.Scale(big.NewRat(3, 2))
	)
	//
	require.True(t, z.Contains(big.NewRat(1, 2), new(big.Rat)))
}

func Test_Ball_Neg(t *testing.T) {
	var (
		x = FromRat(big.NewRat(1, 3), 64)
		z = x.Neg()
	)
	//
	require.True(t, z.Contains(big.NewRat(-1, 3), new(big.Rat)))
	require.Equal(t, 0, x.Rad().Cmp(z.Rad()))
}

func Test_Ball_Zero(t *testing.T) {
	z := Zero(64)
	//
	require.True(t, z.IsExact())
	require.True(t, z.Contains(new(big.Rat), new(big.Rat)))
}
