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
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-qadic/pkg/qadic"
)

// GetFlag reads an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString reads an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint reads an expected uint flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// resolveField constructs the working field from the command flags, or from a
// named preset when a config file is given.  Any malformed parameter is fatal.
func resolveField(cmd *cobra.Command) *qadic.Field {
	if cfg := GetString(cmd, "config"); cfg != "" {
		fld, err := fieldFromConfig(cfg, GetString(cmd, "field"))
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return fld
	}
	//
	var (
		prime, ok = new(big.Int).SetString(GetString(cmd, "prime"), 10)
		prec      = GetUint(cmd, "prec")
		label     = GetString(cmd, "label")
		modstr    = GetString(cmd, "modulus")
	)
	//
	if !ok {
		fmt.Printf("malformed prime %q\n", GetString(cmd, "prime"))
		os.Exit(2)
	}
	//
	var (
		fld *qadic.Field
		err error
	)
	//
	if modstr == "" {
		fld, err = qadic.NewPadicField(prime, prec, label)
	} else {
		modulus, merr := parseModulus(modstr)
		//
		if merr != nil {
			fmt.Println(merr)
			os.Exit(2)
		}
		//
		fld, err = qadic.NewField(prime, modulus, prec, label)
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return fld
}

// parseModulus parses a comma-separated coefficient list, constant term
// first.
func parseModulus(s string) ([]*big.Int, error) {
	var (
		parts  = strings.Split(s, ",")
		coeffs = make([]*big.Int, len(parts))
	)
	//
	for i, p := range parts {
		c, ok := new(big.Int).SetString(strings.TrimSpace(p), 10)
		//
		if !ok {
			return nil, fmt.Errorf("malformed modulus coefficient %q", p)
		}
		//
		coeffs[i] = c
	}
	//
	return coeffs, nil
}
