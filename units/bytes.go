// Copyright 2026 The HOCON-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package units implements the size-in-bytes scalar parser half of
// spec §4.5 (duration.go carries the package doc); see that file for
// why size-in-bytes uses apd.Decimal while duration uses float64.
package units

import (
	"github.com/cockroachdb/apd/v3"

	"hocon.sh/go/herrors"
)

type magnitude struct {
	letter      string
	decimalName string
	binaryName  string
	power       int
}

var magnitudes = []magnitude{
	{"K", "kilo", "kibi", 1},
	{"M", "mega", "mebi", 2},
	{"G", "giga", "gibi", 3},
	{"T", "tera", "tebi", 4},
	{"P", "peta", "pebi", 5},
	{"E", "exa", "exbi", 6},
	{"Z", "zetta", "zebi", 7},
	{"Y", "yotta", "yobi", 8},
}

var decimalSizeSuffixes, binarySizeSuffixes = buildSizeTables()

func buildSizeTables() (map[string]int, map[string]int) {
	dec := map[string]int{}
	bin := map[string]int{}
	for _, m := range magnitudes {
		dec[m.letter+"B"] = m.power
		dec[m.decimalName] = m.power

		bin[m.letter] = m.power
		bin[m.letter+"i"] = m.power
		bin[m.letter+"iB"] = m.power
		bin[m.binaryName] = m.power
		if m.letter == "K" {
			// lowercase k alone also denotes 1024, the one exception
			// to the letter-case convention (spec §4.5).
			bin["k"] = m.power
		}
	}
	return dec, bin
}

var byteUnitNames = map[string]bool{
	"":      true,
	"b":     true,
	"byte":  true,
	"bytes": true,
	"B":     true,
}

// ParseBytes parses a HOCON size-in-bytes string into an integer byte
// count (spec §4.5). Binary (power-of-1024) and decimal
// (power-of-1000) suffix families are distinguished per the case
// rules in spec §4.5. No unit suffix means bytes.
func ParseBytes(s string) (int64, error) {
	numText, unit, err := splitNumberUnit(s)
	if err != nil {
		return 0, herrors.NewBadValue("invalid size-in-bytes number in %q", s)
	}

	num, _, err := apd.NewFromString(numText)
	if err != nil {
		return 0, herrors.NewBadValue("invalid size-in-bytes number in %q", s)
	}

	mult, err := sizeMultiplier(unit, s)
	if err != nil {
		return 0, err
	}

	var product, rounded apd.Decimal
	if _, err := truncContext.Mul(&product, num, mult); err != nil {
		return 0, herrors.NewBadValue("size-in-bytes %q overflowed", s)
	}
	if _, err := truncContext.Quantize(&rounded, &product, 0); err != nil {
		return 0, herrors.NewBadValue("size-in-bytes %q overflowed", s)
	}
	n, err := rounded.Int64()
	if err != nil {
		return 0, herrors.NewBadValue("size-in-bytes %q overflowed a 64-bit byte count", s)
	}
	return n, nil
}

func sizeMultiplier(unit, original string) (*apd.Decimal, error) {
	if byteUnitNames[unit] {
		one := new(apd.Decimal)
		one.SetInt64(1)
		return one, nil
	}
	if power, ok := binarySizeSuffixes[unit]; ok {
		return powerOf(1024, power), nil
	}
	if power, ok := decimalSizeSuffixes[unit]; ok {
		return powerOf(1000, power), nil
	}
	return nil, herrors.NewBadValue("invalid size-in-bytes unit %q in %q", unit, original)
}

func powerOf(base int64, power int) *apd.Decimal {
	result := new(apd.Decimal)
	result.SetInt64(1)
	b := new(apd.Decimal)
	b.SetInt64(base)
	for i := 0; i < power; i++ {
		var next apd.Decimal
		truncContext.Mul(&next, result, b)
		result = &next
	}
	return result
}
