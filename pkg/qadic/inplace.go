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

// The in-place operation set mutates only its designated receiver slot and
// exists to let hot loops reuse allocations.  None of these may be called
// concurrently on the same element from multiple goroutines; every other
// operation in the package treats elements as immutable values.

// SetZero resets this element to the canonical zero known to the given
// precision.
func (x *Element) SetZero(prec int) {
	x.coeffs = nil
	x.val = 0
	x.prec = prec
}

// Set overwrites this element with a copy of y, which must belong to the same
// field.
func (x *Element) Set(y *Element) error {
	if err := compatible("set", x, y); err != nil {
		return err
	}
	//
	c := y.Copy()
	x.coeffs, x.val, x.prec = c.coeffs, c.val, c.prec
	//
	return nil
}

// AccAdd adds y into this element, i.e. x = x + y with the usual precision
// propagation.
func (x *Element) AccAdd(y *Element) error {
	z, err := x.Add(y)
	//
	if err != nil {
		return err
	}
	//
	x.coeffs, x.val, x.prec = z.coeffs, z.val, z.prec
	//
	return nil
}

// AccMul multiplies y into this element, i.e. x = x * y with the usual
// precision propagation.
func (x *Element) AccMul(y *Element) error {
	z, err := x.Mul(y)
	//
	if err != nil {
		return err
	}
	//
	x.coeffs, x.val, x.prec = z.coeffs, z.val, z.prec
	//
	return nil
}
