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
package cmd

import (
	"fmt"
	"unicode"
)

// SExp is an S-expression over the calculator's expression language: either a
// list of zero or more S-expressions, or an atomic symbol.
type SExp interface {
	// AsList checks whether this S-expression is a list and, if so, returns
	// it.  Otherwise, it returns nil.
	AsList() *List
	// AsSymbol checks whether this S-expression is a symbol and, if so,
	// returns it.  Otherwise, it returns nil.
	AsSymbol() *Symbol
}

// List represents a list of zero or more S-expressions.
type List struct {
	Elements []SExp
}

// AsList returns the given list.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil for a list.
func (l *List) AsSymbol() *Symbol { return nil }

// Len gets the number of elements in this list.
func (l *List) Len() int { return len(l.Elements) }

// Get the ith element of this list.
func (l *List) Get(i int) SExp { return l.Elements[i] }

// Symbol represents an atom: an operator name or a literal.
type Symbol struct {
	Value string
}

// AsList returns nil for a symbol.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns the given symbol.
func (s *Symbol) AsSymbol() *Symbol { return s }

// ParseSExp parses a single S-expression from the given input, rejecting
// trailing garbage.
func ParseSExp(input string) (SExp, error) {
	runes := []rune(input)
	//
	sexp, index, err := parseSExpAt(runes, 0)
	//
	if err != nil {
		return nil, err
	}
	//
	index = skipSpace(runes, index)
	//
	if index != len(runes) {
		return nil, fmt.Errorf("%d: unexpected trailing input", index)
	}
	//
	return sexp, nil
}

func parseSExpAt(runes []rune, index int) (SExp, int, error) {
	index = skipSpace(runes, index)
	//
	if index >= len(runes) {
		return nil, index, fmt.Errorf("%d: unexpected end of input", index)
	}
	//
	switch runes[index] {
	case '(':
		return parseListAt(runes, index+1)
	case ')':
		return nil, index, fmt.Errorf("%d: unexpected closing brace", index)
	default:
		return parseSymbolAt(runes, index)
	}
}

func parseListAt(runes []rune, index int) (SExp, int, error) {
	var list List
	//
	for {
		index = skipSpace(runes, index)
		//
		if index >= len(runes) {
			return nil, index, fmt.Errorf("%d: unterminated list", index)
		}
		//
		if runes[index] == ')' {
			return &list, index + 1, nil
		}
		//
		element, next, err := parseSExpAt(runes, index)
		//
		if err != nil {
			return nil, next, err
		}
		//
		list.Elements = append(list.Elements, element)
		index = next
	}
}

func parseSymbolAt(runes []rune, index int) (SExp, int, error) {
	start := index
	//
	for index < len(runes) && !unicode.IsSpace(runes[index]) &&
		runes[index] != '(' && runes[index] != ')' {
		index++
	}
	//
	return &Symbol{Value: string(runes[start:index])}, index, nil
}

func skipSpace(runes []rune, index int) int {
	for index < len(runes) && unicode.IsSpace(runes[index]) {
		index++
	}
	//
	return index
}
