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
	"fmt"
	"math/big"
	"strings"

	sha256 "github.com/minio/sha256-simd"

	"github.com/consensys/go-qadic/pkg/qadic/engine"
	"github.com/consensys/go-qadic/pkg/util/math"
)

// Element is a q-adic number known to an absolute precision: writing v for
// its valuation and N for its precision, the element is p^v * u where the
// unit part u is stored as a coefficient vector in the generator basis,
// reduced modulo p^(N-v).  The invariant v < N holds for every non-zero
// element; an element whose digits all vanish at its precision is stored as
// the canonical zero, whose reported valuation equals its precision.
// Elements are immutable value types apart from the explicitly in-place
// operations, and never outlive their field.
type Element struct {
	fld *Field
	// Unit-part coefficients; nil for the canonical zero.
	coeffs []big.Int
	// Valuation v, meaningless (and unset) for zero.
	val int
	// Absolute precision N; possibly negative for elements with poles.
	prec int
}

// zeroElement constructs the canonical zero known to precision prec.
func zeroElement(f *Field, prec int) *Element {
	return &Element{fld: f, prec: prec}
}

// normalize establishes the representation invariant for a candidate unit
// vector known modulo p^(prec-val): trailing p-divisibility is folded into
// the valuation, and digitless candidates collapse to the canonical zero.
func normalize(f *Field, unit []big.Int, val int, prec int) *Element {
	if prec <= val {
		return zeroElement(f, prec)
	}
	//
	digits := uint(prec - val)
	unit = f.mod.Reduce(unit, f.mod.Modulus(digits))
	//
	w, ok := f.mod.Valuation(unit)
	//
	if !ok {
		return zeroElement(f, prec)
	}
	//
	if w > 0 {
		val += w
		//
		if prec <= val {
			return zeroElement(f, prec)
		}
		// Exact by choice of w
		unit, _ = f.mod.ShiftRight(unit, uint(w))
		unit = f.mod.Reduce(unit, f.mod.Modulus(uint(prec-val)))
	}
	//
	return &Element{fld: f, coeffs: unit, val: val, prec: prec}
}

// Field returns the field this element belongs to.
func (x *Element) Field() *Field {
	return x.fld
}

// IsZero reports whether this element is exactly zero at its precision.
func (x *Element) IsZero() bool {
	return x.coeffs == nil
}

// Precision returns the absolute precision N of this element: its value is
// known modulo p^N.
func (x *Element) Precision() int {
	return x.prec
}

// Valuation returns the p-adic valuation of this element.  By convention the
// valuation of an exact zero is its precision, reflecting that nothing more
// than divisibility by p^N is known about it.
func (x *Element) Valuation() int {
	if x.IsZero() {
		return x.prec
	}
	//
	return x.val
}

// Copy produces a deep copy of this element.
func (x *Element) Copy() *Element {
	if x.IsZero() {
		return zeroElement(x.fld, x.prec)
	}
	//
	return &Element{fld: x.fld, coeffs: engine.Copy(x.coeffs), val: x.val, prec: x.prec}
}

// WithPrecision returns this element re-tagged with absolute precision n.
// Lowering the precision truncates digits; raising it asserts knowledge the
// representation does not actually carry, which mirrors the usual capped
// model where the caller takes responsibility for such assertions.
func (x *Element) WithPrecision(n int) *Element {
	if x.IsZero() {
		return zeroElement(x.fld, n)
	}
	//
	return normalize(x.fld, x.coeffs, x.val, n)
}

// IsEqual is the identity-level equality predicate: same field, same
// precision, same valuation and identical digits.  Contrast with Eq, which
// compares values at the lesser of the two precisions.
func (x *Element) IsEqual(y *Element) bool {
	if x.fld != y.fld && !x.fld.Equal(y.fld) {
		return false
	}
	//
	if x.prec != y.prec || x.IsZero() != y.IsZero() {
		return false
	}
	//
	if x.IsZero() {
		return true
	}
	//
	return x.val == y.val &&
		engine.Equal(x.coeffs, y.coeffs, x.fld.mod.Modulus(uint(x.prec-x.val)))
}

// Unit returns a copy of the unit-part coefficient vector of this element, or
// nil for zero.
func (x *Element) Unit() []*big.Int {
	if x.IsZero() {
		return nil
	}
	//
	out := make([]*big.Int, len(x.coeffs))
	//
	for i := range x.coeffs {
		out[i] = new(big.Int).Set(&x.coeffs[i])
	}
	//
	return out
}

// Lift returns the coefficients of this element as exact rationals in the
// generator basis, using the stored representative.
func (x *Element) Lift() []*big.Rat {
	var (
		out = make([]*big.Rat, x.fld.degree)
		pv  = new(big.Rat)
	)
	// p^v as a rational, covering negative valuations
	if x.IsZero() || x.val >= 0 {
		pv.SetInt(math.BigPow(&x.fld.prime, uint(max(x.Valuation(), 0))))
	} else {
		pv.SetFrac(big.NewInt(1), math.BigPow(&x.fld.prime, uint(-x.val)))
	}
	//
	for i := range out {
		out[i] = new(big.Rat)
		//
		if !x.IsZero() && i < len(x.coeffs) {
			out[i].SetInt(&x.coeffs[i])
			out[i].Mul(out[i], pv)
		}
	}
	//
	return out
}

// Hash returns a content hash of this element, suitable for use as a map key.
// Structurally equal elements (in the IsEqual sense) hash identically.
func (x *Element) Hash() [32]byte {
	h := sha256.New()
	fk := x.fld.key()
	h.Write(fk[:])
	//
	var buf [16]byte
	encodeInt64(buf[:8], int64(x.prec))
	encodeInt64(buf[8:], int64(x.Valuation()))
	h.Write(buf[:])
	//
	if !x.IsZero() {
		pm := x.fld.mod.Modulus(uint(x.prec - x.val))
		//
		for i := range x.coeffs {
			var c big.Int
			//
			c.Mod(&x.coeffs[i], pm)
			h.Write(c.Bytes())
			h.Write([]byte{0xff})
		}
	}
	//
	var out [32]byte
	copy(out[:], h.Sum(nil))
	//
	return out
}

func encodeInt64(dst []byte, v int64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}

// String renders the element as a truncated digit expansion in the generator,
// for example "2 + 3*a + O(5^10)".
func (x *Element) String() string {
	var (
		sb    strings.Builder
		label = x.fld.label
		empty = true
	)
	//
	if label == "" {
		label = "a"
	}
	//
	if !x.IsZero() {
		pv := valuePower(&x.fld.prime, x.val)
		//
		for i := range x.coeffs {
			if x.coeffs[i].Sign() == 0 {
				continue
			}
			//
			if !empty {
				sb.WriteString(" + ")
			}
			//
			sb.WriteString(coeffString(&x.coeffs[i], pv, label, i))
			empty = false
		}
	}
	//
	if !empty {
		sb.WriteString(" + ")
	}
	//
	fmt.Fprintf(&sb, "O(%s^%d)", x.fld.prime.String(), x.prec)
	//
	return sb.String()
}

// valuePower renders p^v, covering negative valuations.
func valuePower(p *big.Int, v int) string {
	switch {
	case v == 0:
		return ""
	case v == 1:
		return p.String()
	case v > 0:
		return fmt.Sprintf("%s^%d", p, v)
	default:
		return fmt.Sprintf("%s^(%d)", p, v)
	}
}

func coeffString(c *big.Int, pv string, label string, i int) string {
	var parts []string
	//
	if c.Cmp(big.NewInt(1)) != 0 || (pv == "" && i == 0) {
		parts = append(parts, c.String())
	}
	//
	if pv != "" {
		parts = append(parts, pv)
	}
	//
	switch {
	case i == 1:
		parts = append(parts, label)
	case i > 1:
		parts = append(parts, fmt.Sprintf("%s^%d", label, i))
	}
	//
	return strings.Join(parts, "*")
}
