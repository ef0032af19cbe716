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
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via
// "go install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qadic",
	Short: "A calculator for precision-tracked q-adic arithmetic.",
	Long: `A calculator (and general toolbox) for exact rational and
	 precision-tracked q-adic field arithmetic.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("qadic ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(), and only needs to happen
// once.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("prime", "p", "5", "prime of the field")
	rootCmd.PersistentFlags().UintP("prec", "N", 10, "default working precision")
	rootCmd.PersistentFlags().String("label", "a", "display symbol for the generator")
	rootCmd.PersistentFlags().String("modulus", "", "defining polynomial coefficients, constant first (comma separated)")
	rootCmd.PersistentFlags().String("config", "", "TOML file with named field presets")
	rootCmd.PersistentFlags().String("field", "", "name of a field preset from the config file")
	rootCmd.PersistentFlags().Bool("json", false, "emit machine-readable JSON output")
}
