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
	"math/big"
	"os"

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-qadic/pkg/num"
	"github.com/consensys/go-qadic/pkg/qadic"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "evaluate an s-expression over a q-adic field.",
	Long: `Evaluate a given s-expression over the working field, for example
	 (log (* 7 (inv (rat 1/5)))).  Integer and rational literals stay exact
	 until an operation forces them into the field.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		fld := resolveField(cmd)
		//
		sexp, err := ParseSExp(args[0])
		if err == nil {
			var value num.Value
			//
			if value, err = evaluate(fld, sexp); err == nil {
				printValue(cmd, value)
				return
			}
		}
		//
		fmt.Println(err)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// printValue renders an evaluation result, as JSON when requested.
func printValue(cmd *cobra.Command, value num.Value) {
	if !GetFlag(cmd, "json") {
		fmt.Println(value.String())
		return
	}
	//
	out := map[string]any{"result": value.String()}
	//
	if q, ok := value.(*num.Qadic); ok {
		out["precision"] = q.Element().Precision()
		out["valuation"] = q.Element().Valuation()
	}
	//
	bytes, err := json.Marshal(out)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	fmt.Println(string(bytes))
}

// evaluate reduces an S-expression to a tower value over the given field.
func evaluate(fld *qadic.Field, sexp SExp) (num.Value, error) {
	if symbol := sexp.AsSymbol(); symbol != nil {
		return evaluateLiteral(symbol.Value)
	}
	//
	list := sexp.AsList()
	//
	if list.Len() == 0 {
		return nil, fmt.Errorf("empty application")
	}
	//
	head := list.Get(0).AsSymbol()
	//
	if head == nil {
		return nil, fmt.Errorf("operator must be a symbol")
	}
	//
	args, err := evaluateArgs(fld, list)
	//
	if err != nil {
		return nil, err
	}
	//
	return apply(fld, head.Value, args, list)
}

func evaluateArgs(fld *qadic.Field, list *List) ([]num.Value, error) {
	var args []num.Value
	// Special forms take unevaluated arguments
	if head := list.Get(0).AsSymbol(); head != nil && (head.Value == "O" || head.Value == "rat") {
		return nil, nil
	}
	//
	for i := 1; i < list.Len(); i++ {
		arg, err := evaluate(fld, list.Get(i))
		//
		if err != nil {
			return nil, err
		}
		//
		args = append(args, arg)
	}
	//
	return args, nil
}

//nolint:gocyclo
func apply(fld *qadic.Field, op string, args []num.Value, list *List) (num.Value, error) {
	switch op {
	case "O":
		return applyBigO(fld, list)
	case "rat":
		return literalRat(list)
	case "+":
		return fold(args, func(a, b num.Value) (num.Value, error) { return a.Add(b) })
	case "*":
		return fold(args, func(a, b num.Value) (num.Value, error) { return a.Mul(b) })
	case "-":
		if len(args) == 1 {
			return args[0].Neg(), nil
		}
		//
		return fold(args, func(a, b num.Value) (num.Value, error) { return a.Sub(b) })
	case "/":
		return applyDiv(fld, args)
	case "pow":
		return applyPow(fld, args)
	case "frob":
		return applyFrobenius(fld, args)
	}
	// Remaining operators are unary and act in the field
	if len(args) != 1 {
		return nil, fmt.Errorf("%s expects exactly one argument", op)
	}
	//
	x, err := num.Lift(fld, args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	return applyUnary(op, x.Element())
}

func applyUnary(op string, x *qadic.Element) (num.Value, error) {
	var (
		z   *qadic.Element
		err error
	)
	//
	switch op {
	case "inv":
		z, err = x.Inv()
	case "sqrt":
		z, err = x.Sqrt()
	case "exp":
		z, err = x.Exp()
	case "log":
		z, err = x.Log()
	case "teich":
		z, err = x.Teichmuller()
	case "trace":
		z = x.Trace()
	case "norm":
		z = x.Norm()
	case "prec":
		return num.NewInt64(int64(x.Precision())), nil
	case "val":
		return num.NewInt64(int64(x.Valuation())), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", op)
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return num.NewQadic(z), nil
}

// applyFrobenius evaluates (frob x [e]), defaulting the power to one.
func applyFrobenius(fld *qadic.Field, args []num.Value) (num.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, fmt.Errorf("frob expects one or two arguments")
	}
	//
	e := uint(1)
	//
	if len(args) == 2 {
		n, ok := args[1].(*num.Int)
		//
		if !ok || !n.BigInt().IsInt64() || n.BigInt().Sign() < 0 {
			return nil, fmt.Errorf("frob power must be a non-negative machine integer")
		}
		//
		e = uint(n.BigInt().Int64())
	}
	//
	x, err := num.Lift(fld, args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	return num.NewQadic(x.Element().Frobenius(e)), nil
}

// applyBigO evaluates (O m) for an integer or rational power of p.
func applyBigO(fld *qadic.Field, list *List) (num.Value, error) {
	if list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return nil, fmt.Errorf("O expects a single literal argument")
	}
	//
	var (
		text  = list.Get(1).AsSymbol().Value
		m, ok = new(big.Rat).SetString(text)
	)
	//
	if !ok {
		return nil, fmt.Errorf("malformed O argument %q", text)
	}
	//
	z, err := qadic.ORat(fld, m)
	//
	if err != nil {
		return nil, err
	}
	//
	return num.NewQadic(z), nil
}

// literalRat evaluates (rat a/b).
func literalRat(list *List) (num.Value, error) {
	if list.Len() != 2 || list.Get(1).AsSymbol() == nil {
		return nil, fmt.Errorf("rat expects a single literal argument")
	}
	//
	var (
		text  = list.Get(1).AsSymbol().Value
		q, ok = new(big.Rat).SetString(text)
	)
	//
	if !ok {
		return nil, fmt.Errorf("malformed rational %q", text)
	}
	//
	return num.NewRat(q), nil
}

func applyDiv(fld *qadic.Field, args []num.Value) (num.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("/ expects exactly two arguments")
	}
	// Exact division when both operands are exact
	a, errA := num.AsRat(args[0])
	b, errB := num.AsRat(args[1])
	//
	if errA == nil && errB == nil {
		if b.IsZero() {
			return nil, fmt.Errorf("/: division by zero")
		}
		//
		q := a.BigRat()
		q.Quo(q, b.BigRat())
		//
		return num.NewRat(q), nil
	}
	// Otherwise divide in the field
	x, err := num.Lift(fld, args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	y, err := num.Lift(fld, args[1])
	//
	if err != nil {
		return nil, err
	}
	//
	z, err := x.Element().Div(y.Element())
	//
	if err != nil {
		return nil, err
	}
	//
	return num.NewQadic(z), nil
}

func applyPow(fld *qadic.Field, args []num.Value) (num.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("pow expects exactly two arguments")
	}
	//
	exp, ok := args[1].(*num.Int)
	//
	if !ok || !exp.BigInt().IsInt64() {
		return nil, fmt.Errorf("pow exponent must be a machine integer")
	}
	//
	x, err := num.Lift(fld, args[0])
	//
	if err != nil {
		return nil, err
	}
	//
	z, err := x.Element().Pow(exp.BigInt().Int64())
	//
	if err != nil {
		return nil, err
	}
	//
	return num.NewQadic(z), nil
}

func fold(args []num.Value, op func(a, b num.Value) (num.Value, error)) (num.Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("operator expects at least one argument")
	}
	//
	acc := args[0]
	//
	for _, arg := range args[1:] {
		var err error
		//
		if acc, err = op(acc, arg); err != nil {
			return nil, err
		}
	}
	//
	return acc, nil
}

// evaluateLiteral parses an atomic literal: an integer, or a rational written
// with a slash.
func evaluateLiteral(text string) (num.Value, error) {
	if n, ok := new(big.Int).SetString(text, 10); ok {
		return num.NewInt(n), nil
	}
	//
	if q, ok := new(big.Rat).SetString(text); ok {
		return num.NewRat(q), nil
	}
	//
	return nil, fmt.Errorf("unknown symbol %q", text)
}
