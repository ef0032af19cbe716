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

// Package ball provides arbitrary-precision complex ball arithmetic: a value
// is a midpoint with a rigorous error radius, and every ring operation
// propagates the radius so that the true result is always contained in the
// output ball.  Midpoint rounding is absorbed into the radius by one-ulp
// padding, keeping containment unconditional.  Transcendental functions are
// deliberately out of scope.
package ball

import (
	"fmt"
	"math/big"
)

// Complex is a complex ball: all complex numbers within distance Rad (in the
// max norm on real and imaginary parts) of the midpoint.
type Complex struct {
	re, im *big.Float
	rad    *big.Float
}

// New constructs an exact ball (radius zero) from midpoint parts at the given
// precision.
func New(re, im *big.Float, prec uint) *Complex {
	return &Complex{
		re:  new(big.Float).SetPrec(prec).Set(re),
		im:  new(big.Float).SetPrec(prec).Set(im),
		rad: new(big.Float).SetPrec(radPrec),
	}
}

// FromRat constructs a ball containing an exact rational, with the rounding
// of the midpoint reflected in the radius.
func FromRat(q *big.Rat, prec uint) *Complex {
	z := &Complex{
		re:  new(big.Float).SetPrec(prec).SetRat(q),
		im:  new(big.Float).SetPrec(prec),
		rad: new(big.Float).SetPrec(radPrec),
	}
	//
	z.padUlp()
	//
	return z
}

// Zero constructs the exact zero ball at the given precision.
func Zero(prec uint) *Complex {
	return New(new(big.Float), new(big.Float), prec)
}

// radPrec is the (low) precision used for radius bookkeeping; radii only need
// an order of magnitude, rounded upward.
const radPrec = 32

// Prec returns the midpoint precision in bits.
func (z *Complex) Prec() uint {
	return z.re.Prec()
}

// Mid returns copies of the midpoint parts.
func (z *Complex) Mid() (re, im *big.Float) {
	return new(big.Float).Copy(z.re), new(big.Float).Copy(z.im)
}

// Rad returns a copy of the radius.
func (z *Complex) Rad() *big.Float {
	return new(big.Float).Copy(z.rad)
}

// IsExact reports whether the radius is zero, i.e. the ball is a point.
func (z *Complex) IsExact() bool {
	return z.rad.Sign() == 0
}

// Add computes z + w; radii add, plus rounding slack.
func (z *Complex) Add(w *Complex) *Complex {
	out := &Complex{
		re:  sum(z.re, w.re, z.Prec()),
		im:  sum(z.im, w.im, z.Prec()),
		rad: sumUp(z.rad, w.rad),
	}
	//
	out.padUlp()
	//
	return out
}

// Sub computes z - w.
func (z *Complex) Sub(w *Complex) *Complex {
	return z.Add(w.Neg())
}

// Neg computes -z; negation is exact, so the radius carries over unchanged.
func (z *Complex) Neg() *Complex {
	return &Complex{
		re:  new(big.Float).SetPrec(z.Prec()).Neg(z.re),
		im:  new(big.Float).SetPrec(z.Prec()).Neg(z.im),
		rad: new(big.Float).SetPrec(radPrec).Set(z.rad),
	}
}

// Mul computes z * w.  The radius follows the max-norm bound
// 2*(|z|rw + |w|rz + rz*rw), everything rounded upward, plus midpoint slack.
func (z *Complex) Mul(w *Complex) *Complex {
	var (
		prec = z.Prec()
		t1   = new(big.Float).SetPrec(prec)
		t2   = new(big.Float).SetPrec(prec)
	)
	// (a+bi)(c+di) = (ac - bd) + (ad + bc)i
	var (
		re = new(big.Float).SetPrec(prec).Sub(t1.Mul(z.re, w.re), t2.Mul(z.im, w.im))
		im = new(big.Float).SetPrec(prec).Add(
			new(big.Float).SetPrec(prec).Mul(z.re, w.im),
			new(big.Float).SetPrec(prec).Mul(z.im, w.re),
		)
	)
	//
	var (
		rad = mulUp(z.magUp(), w.rad)
		r2  = mulUp(w.magUp(), z.rad)
		r3  = mulUp(z.rad, w.rad)
	)
	// Re(w*dz) = wre*dre - wim*dim mixes both parts, so every magnitude/radius
	// product enters the max norm twice.
	rad = sumUp(sumUp(rad, r2), r3)
	rad = sumUp(rad, rad)
	//
	out := &Complex{re: re, im: im, rad: rad}
	out.padUlp()
	//
	return out
}

// Scale multiplies the ball by an exact rational.
func (z *Complex) Scale(q *big.Rat) *Complex {
	var (
		prec = z.Prec()
		c    = new(big.Float).SetPrec(prec).SetRat(q)
		abs  = new(big.Float).SetPrec(radPrec).SetMode(big.AwayFromZero).Abs(c)
	)
	//
	out := &Complex{
		re:  new(big.Float).SetPrec(prec).Mul(z.re, c),
		im:  new(big.Float).SetPrec(prec).Mul(z.im, c),
		rad: mulUp(abs, z.rad),
	}
	//
	out.padUlp()
	//
	return out
}

// Contains reports whether the ball certainly contains the exact complex
// point (re, im).  Midpoints and radii are dyadic, so the comparison is
// exact in rationals.
func (z *Complex) Contains(re, im *big.Rat) bool {
	var (
		rad, _ = z.rad.Rat(nil)
		mre, _ = z.re.Rat(nil)
		mim, _ = z.im.Rat(nil)
		dr     = new(big.Rat).Sub(mre, re)
		di     = new(big.Rat).Sub(mim, im)
	)
	//
	return dr.Abs(dr).Cmp(rad) <= 0 && di.Abs(di).Cmp(rad) <= 0
}

func (z *Complex) String() string {
	return fmt.Sprintf("(%s + %s*i) +/- %s",
		z.re.Text('g', 10), z.im.Text('g', 10), z.rad.Text('g', 3))
}

// magUp computes an upward-rounded bound on max(|re|, |im|).
func (z *Complex) magUp() *big.Float {
	var (
		a = new(big.Float).SetPrec(radPrec).SetMode(big.AwayFromZero).Abs(z.re)
		b = new(big.Float).SetPrec(radPrec).SetMode(big.AwayFromZero).Abs(z.im)
	)
	//
	if a.Cmp(b) >= 0 {
		return a
	}
	//
	return b
}

// padUlp grows the radius by one unit in the last place of the midpoint,
// covering the rounding of the midpoint computation itself.
func (z *Complex) padUlp() {
	m := z.magUp()
	//
	if m.Sign() == 0 {
		return
	}
	// 2^(exp - prec) bounds the ulp of the midpoint
	ulp := new(big.Float).SetPrec(radPrec).SetMantExp(big.NewFloat(1), m.MantExp(nil)-int(z.Prec()))
	z.rad = sumUp(z.rad, ulp)
}

func sum(a, b *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Add(a, b)
}

// sumUp adds radii with upward rounding.
func sumUp(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(radPrec).SetMode(big.AwayFromZero).Add(a, b)
}

// mulUp multiplies radii with upward rounding.
func mulUp(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(radPrec).SetMode(big.AwayFromZero).Mul(a, b)
}
