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
	"testing"
)

func Test_Valuation_01(t *testing.T) {
	checkValuation(t, 75, 5, 2, 3)
	checkValuation(t, 7, 5, 0, 7)
	checkValuation(t, -50, 5, 2, -2)
	checkValuation(t, 1024, 2, 10, 1)
}

func Test_Valuation_02(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero")
		}
	}()
	//
	Valuation(big.NewInt(0), big.NewInt(5))
}

func Test_PowerOf(t *testing.T) {
	checkPowerOf(t, 1, 5, 0, true)
	checkPowerOf(t, 5, 5, 1, true)
	checkPowerOf(t, 625, 5, 4, true)
	checkPowerOf(t, 10, 5, 0, false)
	checkPowerOf(t, 0, 5, 0, false)
	checkPowerOf(t, -25, 5, 0, false)
}

func Test_RatPowerOf(t *testing.T) {
	checkRatPowerOf(t, big.NewRat(25, 1), 5, 2, true)
	checkRatPowerOf(t, big.NewRat(1, 125), 5, -3, true)
	checkRatPowerOf(t, big.NewRat(2, 125), 5, 0, false)
	checkRatPowerOf(t, big.NewRat(-1, 5), 5, 0, false)
}

func Test_BigPow(t *testing.T) {
	if BigPow(big.NewInt(5), 0).Cmp(big.NewInt(1)) != 0 {
		t.Error("5^0 != 1")
	}
	//
	if BigPow(big.NewInt(5), 4).Cmp(big.NewInt(625)) != 0 {
		t.Error("5^4 != 625")
	}
}

func Test_IsPrime(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 65537} {
		if !IsPrime(big.NewInt(p)) {
			t.Errorf("%d should be prime", p)
		}
	}
	//
	for _, n := range []int64{0, 1, 4, 15, 65536} {
		if IsPrime(big.NewInt(n)) {
			t.Errorf("%d should not be prime", n)
		}
	}
	// Beyond the sieve bound
	big1, _ := new(big.Int).SetString("340282366920938463463374607431768211507", 10)
	if !IsPrime(big1) {
		t.Error("2^128 + 51 should be prime")
	}
}

func checkValuation(t *testing.T, n, p int64, val int, unit int64) {
	t.Helper()
	//
	v, u := Valuation(big.NewInt(n), big.NewInt(p))
	//
	if v != val || u.Cmp(big.NewInt(unit)) != 0 {
		t.Errorf("Valuation(%d, %d) = (%d, %s), expected (%d, %d)", n, p, v, u, val, unit)
	}
}

func checkPowerOf(t *testing.T, m, p int64, exp int, ok bool) {
	t.Helper()
	//
	e, o := PowerOf(big.NewInt(m), big.NewInt(p))
	//
	if o != ok || (ok && e != exp) {
		t.Errorf("PowerOf(%d, %d) = (%d, %v), expected (%d, %v)", m, p, e, o, exp, ok)
	}
}

func checkRatPowerOf(t *testing.T, m *big.Rat, p int64, exp int, ok bool) {
	t.Helper()
	//
	e, o := RatPowerOf(m, big.NewInt(p))
	//
	if o != ok || (ok && e != exp) {
		t.Errorf("RatPowerOf(%s, %d) = (%d, %v), expected (%d, %v)", m, p, e, o, exp, ok)
	}
}
