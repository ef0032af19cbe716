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

// Package qadic implements precision-tracked arithmetic over unramified
// extensions of the p-adic numbers.  Every element carries an absolute
// precision N, meaning its value is known modulo p^N, and every operation
// derives a provably correct precision for its result from the precisions and
// valuations of its operands.  The digit computations themselves are
// delegated to the engine subpackage at exactly the derived precision.
package qadic

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	sha256 "github.com/minio/sha256-simd"
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qadic/pkg/qadic/engine"
	"github.com/consensys/go-qadic/pkg/util/math"
)

// Field describes a q-adic field: an unramified extension of Q_p of degree d,
// together with a default working precision and a display label for the
// generator.  Fields are immutable once constructed and safely shared across
// goroutines.  Elements of two fields may be combined only when the fields
// are structurally equal; correctness never depends on fields being interned.
type Field struct {
	prime   big.Int
	degree  uint
	prec    uint
	label   string
	modulus []big.Int
	mod     *engine.Mod
}

// NewField constructs the q-adic field Q_p[x]/(f) where f is given by its
// coefficient slice (constant term first, monic, degree at least one).  The
// prime must actually be prime, and the defining polynomial is trusted to be
// irreducible modulo p; supplying a reducible one yields a ring in which
// inversions can fail unexpectedly.
func NewField(prime *big.Int, modulus []*big.Int, prec uint, label string) (*Field, error) {
	if !math.IsPrime(prime) {
		return nil, fmt.Errorf("%s is not prime", prime)
	}
	//
	mod, err := engine.NewMod(prime, modulus)
	//
	if err != nil {
		return nil, err
	}
	//
	f := &Field{
		degree:  uint(mod.Degree()),
		prec:    prec,
		label:   label,
		modulus: make([]big.Int, len(modulus)),
		mod:     mod,
	}
	//
	f.prime.Set(prime)
	//
	for i, c := range modulus {
		f.modulus[i].Set(c)
	}
	//
	return f, nil
}

// NewPadicField constructs the degree-one field Q_p.  The defining polynomial
// degenerates to the linear x - 1, whose root is the rational lift 1; this
// keeps the underlying engine away from genuinely degenerate moduli while
// giving the "generator" a well-defined meaning.
func NewPadicField(prime *big.Int, prec uint, label string) (*Field, error) {
	return NewField(prime, []*big.Int{big.NewInt(-1), big.NewInt(1)}, prec, label)
}

// Prime returns the prime p of this field.
func (f *Field) Prime() *big.Int {
	return new(big.Int).Set(&f.prime)
}

// Degree returns the extension degree d of this field over Q_p.
func (f *Field) Degree() uint {
	return f.degree
}

// Precision returns the default working precision of this field.
func (f *Field) Precision() uint {
	return f.prec
}

// Label returns the display symbol used for the generator.
func (f *Field) Label() string {
	return f.label
}

// Generator returns the generator of this field at its default precision.
// For degree one the generator degenerates to the lift of the root of the
// linear defining polynomial.
func (f *Field) Generator() *Element {
	gen := f.mod.Gen(f.mod.Modulus(f.prec))
	//
	return normalize(f, gen, 0, int(f.prec))
}

// Equal determines whether two fields are structurally equal, that is they
// agree on prime, degree, default precision, label and defining polynomial.
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	//
	if f.prime.Cmp(&g.prime) != 0 || f.degree != g.degree ||
		f.prec != g.prec || f.label != g.label || len(f.modulus) != len(g.modulus) {
		return false
	}
	//
	for i := range f.modulus {
		if f.modulus[i].Cmp(&g.modulus[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Zero constructs the zero element known to the default precision.
func (f *Field) Zero() *Element {
	return zeroElement(f, int(f.prec))
}

// One constructs the unit element at the default precision.
func (f *Field) One() *Element {
	return normalize(f, f.mod.One(), 0, int(f.prec))
}

func (f *Field) String() string {
	if f.degree == 1 {
		return fmt.Sprintf("Q_%s (prec %d)", f.prime.String(), f.prec)
	}
	//
	return fmt.Sprintf("Q_%s[%s]/deg%d (prec %d)", f.prime.String(), f.label, f.degree, f.prec)
}

// key computes the interning key of this field's parameters.
func (f *Field) key() [32]byte {
	h := sha256.New()
	h.Write(f.prime.Bytes())
	h.Write([]byte{0})
	//
	for i := range f.modulus {
		h.Write(f.modulus[i].Bytes())
		h.Write([]byte{byte(f.modulus[i].Sign() + 1)})
	}
	//
	h.Write([]byte{byte(f.degree), byte(f.prec), byte(f.prec >> 8)})
	h.Write([]byte(f.label))
	//
	var key [32]byte
	copy(key[:], h.Sum(nil))
	//
	return key
}

// registry interns fields so that equal parameters yield the identical shared
// instance.  This is purely a performance and identity convenience: all
// compatibility checks go through structural equality.
var registry = struct {
	sync.Mutex
	fields map[[32]byte]*Field
}{fields: make(map[[32]byte]*Field)}

// CachedField behaves as NewField but interns the result, returning the same
// *Field for repeated calls with equal parameters.
func CachedField(prime *big.Int, modulus []*big.Int, prec uint, label string) (*Field, error) {
	f, err := NewField(prime, modulus, prec, label)
	//
	if err != nil {
		return nil, err
	}
	//
	key := f.key()
	//
	registry.Lock()
	defer registry.Unlock()
	//
	if cached, ok := registry.fields[key]; ok {
		// Hash collisions decide identity here, so verify structurally.
		if cached.Equal(f) {
			return cached, nil
		}
		//
		return nil, errors.New("field registry key collision")
	}
	//
	registry.fields[key] = f
	log.Debugf("interned field %s", f)
	//
	return f, nil
}

// compatible checks that two elements may participate in the same operation,
// producing an IncompatibleFieldError otherwise.
func compatible(op string, x, y *Element) error {
	if x.fld != y.fld && !x.fld.Equal(y.fld) {
		return &IncompatibleFieldError{Op: op, Left: x.fld, Right: y.fld}
	}
	//
	return nil
}
