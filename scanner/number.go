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

package scanner

import (
	"regexp"
	"strconv"

	"hocon.sh/go/token"
)

// jsonNumberRE matches the JSON number grammar (spec §6.1).
var jsonNumberRE = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// classifyNumber reports whether text is a JSON number literal and,
// if so, which of INT/LONG/DOUBLE it belongs to: Int when it fits a
// 32-bit signed integer, Long when it is an integer that fits 64
// bits, Double otherwise (spec §6.1).
func classifyNumber(text string) (token.Token, bool) {
	if !jsonNumberRE.MatchString(text) {
		return 0, false
	}
	isIntegral := !hasAny(text, '.', 'e', 'E')
	if isIntegral {
		if _, err := strconv.ParseInt(text, 10, 32); err == nil {
			return token.INT, true
		}
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			return token.LONG, true
		}
	}
	return token.DOUBLE, true
}

func hasAny(s string, chars ...byte) bool {
	for i := 0; i < len(s); i++ {
		for _, c := range chars {
			if s[i] == c {
				return true
			}
		}
	}
	return false
}
