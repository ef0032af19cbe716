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

// Package num ties the numeric kinds of the tower together behind a single
// interface: exact integers, exact rationals and q-adic field elements.  What
// a dynamically dispatched language resolves per operand-type pair is handled
// here by one polymorphic interface plus a small set of explicit promotions:
// integers promote to rationals, and both promote into a q-adic field
// whenever the other operand fixes one.
package num

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-qadic/pkg/qadic"
)

// ErrIncompatible signals a binary operation between values no promotion can
// reconcile.
var ErrIncompatible = errors.New("incompatible numeric kinds")

// Value is a member of the numeric tower.
type Value interface {
	fmt.Stringer
	// Add computes the sum of this value and y, promoting as required.
	Add(y Value) (Value, error)
	// Sub computes the difference of this value and y.
	Sub(y Value) (Value, error)
	// Mul computes the product of this value and y.
	Mul(y Value) (Value, error)
	// Neg computes the additive inverse of this value.
	Neg() Value
	// IsZero reports whether this value is (known to be) zero.
	IsZero() bool
}

// Int is an exact arbitrary-precision integer.
type Int struct{ v big.Int }

// NewInt wraps a big integer as a tower value.
func NewInt(v *big.Int) *Int {
	var n Int
	n.v.Set(v)
	//
	return &n
}

// NewInt64 wraps a machine integer as a tower value.
func NewInt64(v int64) *Int {
	var n Int
	n.v.SetInt64(v)
	//
	return &n
}

// BigInt returns the underlying integer.
func (x *Int) BigInt() *big.Int { return new(big.Int).Set(&x.v) }

// IsZero reports whether this integer is zero.
func (x *Int) IsZero() bool { return x.v.Sign() == 0 }

// Neg computes -x.
func (x *Int) Neg() Value {
	var n Int
	n.v.Neg(&x.v)
	//
	return &n
}

func (x *Int) String() string { return x.v.String() }

// Add computes x + y, promoting through the tower as needed.
func (x *Int) Add(y Value) (Value, error) { return dispatch(x, y, opAdd) }

// Sub computes x - y.
func (x *Int) Sub(y Value) (Value, error) { return dispatch(x, y, opSub) }

// Mul computes x * y.
func (x *Int) Mul(y Value) (Value, error) { return dispatch(x, y, opMul) }

// Rat is an exact arbitrary-precision rational.
type Rat struct{ v big.Rat }

// NewRat wraps a big rational as a tower value.
func NewRat(v *big.Rat) *Rat {
	var r Rat
	r.v.Set(v)
	//
	return &r
}

// BigRat returns the underlying rational.
func (x *Rat) BigRat() *big.Rat { return new(big.Rat).Set(&x.v) }

// IsZero reports whether this rational is zero.
func (x *Rat) IsZero() bool { return x.v.Sign() == 0 }

// Neg computes -x.
func (x *Rat) Neg() Value {
	var r Rat
	r.v.Neg(&x.v)
	//
	return &r
}

func (x *Rat) String() string { return x.v.RatString() }

// Add computes x + y, promoting through the tower as needed.
func (x *Rat) Add(y Value) (Value, error) { return dispatch(x, y, opAdd) }

// Sub computes x - y.
func (x *Rat) Sub(y Value) (Value, error) { return dispatch(x, y, opSub) }

// Mul computes x * y.
func (x *Rat) Mul(y Value) (Value, error) { return dispatch(x, y, opMul) }

// Qadic is a q-adic field element viewed as a tower value.
type Qadic struct{ v *qadic.Element }

// NewQadic wraps a field element as a tower value.
func NewQadic(v *qadic.Element) *Qadic { return &Qadic{v} }

// Element returns the underlying field element.
func (x *Qadic) Element() *qadic.Element { return x.v }

// IsZero reports whether this element is exactly zero at its precision.
func (x *Qadic) IsZero() bool { return x.v.IsZero() }

// Neg computes -x.
func (x *Qadic) Neg() Value { return &Qadic{x.v.Neg()} }

func (x *Qadic) String() string { return x.v.String() }

// Add computes x + y, promoting through the tower as needed.
func (x *Qadic) Add(y Value) (Value, error) { return dispatch(x, y, opAdd) }

// Sub computes x - y.
func (x *Qadic) Sub(y Value) (Value, error) { return dispatch(x, y, opSub) }

// Mul computes x * y.
func (x *Qadic) Mul(y Value) (Value, error) { return dispatch(x, y, opMul) }

// ---------------------------------------------------------------------------
// Promotion and dispatch
// ---------------------------------------------------------------------------

type op int

const (
	opAdd op = iota
	opSub
	opMul
)

// AsRat promotes an exact value to a rational; q-adic elements do not
// demote.
func AsRat(v Value) (*Rat, error) {
	switch v := v.(type) {
	case *Int:
		var r Rat
		r.v.SetInt(&v.v)
		//
		return &r, nil
	case *Rat:
		return v, nil
	default:
		return nil, ErrIncompatible
	}
}

// Lift promotes any exact value into the given field; field elements pass
// through subject to field compatibility.
func Lift(f *qadic.Field, v Value) (*Qadic, error) {
	switch v := v.(type) {
	case *Int:
		return &Qadic{f.FromInt(&v.v)}, nil
	case *Rat:
		return &Qadic{f.FromRat(&v.v)}, nil
	case *Qadic:
		e, err := f.Coerce(v.v)
		//
		if err != nil {
			return nil, err
		}
		//
		return &Qadic{e}, nil
	default:
		return nil, ErrIncompatible
	}
}

// dispatch resolves a binary operation by promoting both operands to their
// join in the tower and delegating to the corresponding concrete arithmetic.
func dispatch(x, y Value, o op) (Value, error) {
	// The join is q-adic as soon as either operand is
	if q, ok := x.(*Qadic); ok {
		yy, err := Lift(q.v.Field(), y)
		//
		if err != nil {
			return nil, err
		}
		//
		return applyQadic(q, yy, o)
	}
	//
	if q, ok := y.(*Qadic); ok {
		xx, err := Lift(q.v.Field(), x)
		//
		if err != nil {
			return nil, err
		}
		//
		return applyQadic(xx, q, o)
	}
	// Integer fast path
	if a, ok := x.(*Int); ok {
		if b, ok := y.(*Int); ok {
			return applyInt(a, b, o), nil
		}
	}
	// Otherwise the join is rational
	a, err := AsRat(x)
	//
	if err != nil {
		return nil, err
	}
	//
	b, err := AsRat(y)
	//
	if err != nil {
		return nil, err
	}
	//
	return applyRat(a, b, o), nil
}

func applyInt(x, y *Int, o op) Value {
	var z Int
	//
	switch o {
	case opAdd:
		z.v.Add(&x.v, &y.v)
	case opSub:
		z.v.Sub(&x.v, &y.v)
	default:
		z.v.Mul(&x.v, &y.v)
	}
	//
	return &z
}

func applyRat(x, y *Rat, o op) Value {
	var z Rat
	//
	switch o {
	case opAdd:
		z.v.Add(&x.v, &y.v)
	case opSub:
		z.v.Sub(&x.v, &y.v)
	default:
		z.v.Mul(&x.v, &y.v)
	}
	//
	return &z
}

func applyQadic(x, y *Qadic, o op) (Value, error) {
	var (
		z   *qadic.Element
		err error
	)
	//
	switch o {
	case opAdd:
		z, err = x.v.Add(y.v)
	case opSub:
		z, err = x.v.Sub(y.v)
	default:
		z, err = x.v.Mul(y.v)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return &Qadic{z}, nil
}
