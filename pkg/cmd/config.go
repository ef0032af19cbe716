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

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-qadic/pkg/qadic"
)

// FieldPreset is one named field description from a TOML config file.
type FieldPreset struct {
	// Prime written in decimal, so arbitrarily large primes survive TOML.
	Prime string `toml:"prime"`
	// Precision is the default working precision.
	Precision uint `toml:"precision"`
	// Label is the display symbol for the generator.
	Label string `toml:"label"`
	// Modulus lists defining polynomial coefficients in decimal, constant
	// term first.  Empty means degree one.
	Modulus []string `toml:"modulus"`
}

// Config is the root of a field preset file.
type Config struct {
	Fields map[string]FieldPreset `toml:"fields"`
}

// fieldFromConfig loads a TOML preset file and constructs the named field
// through the interning registry, so repeated invocations share one context.
func fieldFromConfig(path string, name string) (*qadic.Field, error) {
	var cfg Config
	//
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	//
	preset, ok := cfg.Fields[name]
	//
	if !ok {
		return nil, fmt.Errorf("no field preset %q in %s", name, path)
	}
	//
	log.Debugf("using field preset %q from %s", name, path)
	//
	prime, ok := new(big.Int).SetString(preset.Prime, 10)
	//
	if !ok {
		return nil, fmt.Errorf("preset %q: malformed prime %q", name, preset.Prime)
	}
	//
	if len(preset.Modulus) == 0 {
		return qadic.CachedField(prime, linearModulus(), preset.Precision, preset.Label)
	}
	//
	modulus := make([]*big.Int, len(preset.Modulus))
	//
	for i, s := range preset.Modulus {
		c, ok := new(big.Int).SetString(s, 10)
		//
		if !ok {
			return nil, fmt.Errorf("preset %q: malformed modulus coefficient %q", name, s)
		}
		//
		modulus[i] = c
	}
	//
	return qadic.CachedField(prime, modulus, preset.Precision, preset.Label)
}

// linearModulus is the canonical degree-one defining polynomial x - 1.
func linearModulus() []*big.Int {
	return []*big.Int{big.NewInt(-1), big.NewInt(1)}
}
