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
)

// IncompatibleFieldError signals a binary operation whose operands belong to
// two structurally distinct fields.  Such operations are always rejected
// outright; there is no implicit coercion between fields.
type IncompatibleFieldError struct {
	// Op names the rejected operation.
	Op string
	// Left and Right identify the two fields involved.
	Left, Right *Field
}

func (e *IncompatibleFieldError) Error() string {
	return fmt.Sprintf("%s: incompatible fields %s and %s", e.Op, e.Left, e.Right)
}

// NotAPowerOfPrimeError signals that the argument of the O constructor was
// not an exact (positive or negative) power of the field's prime.
type NotAPowerOfPrimeError struct {
	// Value is the offending argument.
	Value *big.Rat
	// Prime is the prime of the field in question.
	Prime *big.Int
}

func (e *NotAPowerOfPrimeError) Error() string {
	return fmt.Sprintf("%s is not a power of %s", e.Value.RatString(), e.Prime)
}

// DivideByZeroError signals inversion or division by an element which is
// exactly zero at its precision.
type DivideByZeroError struct {
	// Op names the rejected operation.
	Op string
}

func (e *DivideByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Op)
}

// DomainError signals an operation applied outside its domain of definition,
// such as a square root of odd valuation or a logarithm of a non-unit.
type DomainError struct {
	// Op names the rejected operation.
	Op string
	// Valuation of the offending operand.
	Valuation int
	// Reason describes the violated precondition.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (valuation %d)", e.Op, e.Reason, e.Valuation)
}

// ConvergenceError signals that a series-based computation cannot attain the
// requested precision, typically because the operand lies outside the radius
// of convergence.  Such failures are deterministic and never retried.
type ConvergenceError struct {
	// Op names the failed operation.
	Op string
	// Precision that was requested.
	Precision int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: series does not converge to precision %d", e.Op, e.Precision)
}

// DegreeOverflowError signals a polynomial coercion whose degree exceeds the
// degree of the field extension.
type DegreeOverflowError struct {
	// Degree of the offending polynomial.
	Degree int
	// Max is the largest acceptable degree, i.e. the field degree.
	Max int
}

func (e *DegreeOverflowError) Error() string {
	return fmt.Sprintf("polynomial degree %d exceeds field degree bound %d", e.Degree, e.Max)
}
