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
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// sieveBound determines how far the small-prime sieve extends.  Primes below
// this bound are decided by table lookup rather than Miller-Rabin rounds.
const sieveBound = 1 << 16

var (
	sieveOnce sync.Once
	sieve     *bitset.BitSet
)

// smallPrimeSieve constructs (once) a bitset over [0, sieveBound) in which
// exactly the composite indices are set.
func smallPrimeSieve() *bitset.BitSet {
	sieveOnce.Do(func() {
		sieve = bitset.New(sieveBound)
		sieve.Set(0).Set(1)
		//
		for i := uint(2); i*i < sieveBound; i++ {
			if sieve.Test(i) {
				continue
			}
			//
			for j := i * i; j < sieveBound; j += i {
				sieve.Set(j)
			}
		}
	})
	//
	return sieve
}

// IsPrime reports whether p is prime.  Values below the sieve bound are
// decided exactly; larger values go through probabilistic primality testing
// with an error probability well below 2^-64.
func IsPrime(p *big.Int) bool {
	if p.Sign() <= 0 {
		return false
	}
	//
	if p.IsUint64() && p.Uint64() < sieveBound {
		return !smallPrimeSieve().Test(uint(p.Uint64()))
	}
	//
	return p.ProbablyPrime(32)
}
