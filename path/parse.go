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

package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse splits a dotted-key expression into a Path, honoring quoted
// segments. Rejects empty input and leading/trailing/consecutive dots
// that fall outside a quoted segment (spec §3.1).
//
// Grounded on original_source's Path::newPath (path.cc): scan
// character by character, buffering an unquoted run or consuming a
// complete quoted string, splitting on unquoted '.'.
func Parse(expr string) (Path, error) {
	if expr == "" {
		return Path{}, fmt.Errorf("path: empty path expression")
	}

	var keys []string
	var buf strings.Builder
	sawQuoted := false
	hadAnyChar := false

	flush := func() error {
		if buf.Len() == 0 && !sawQuoted {
			return fmt.Errorf("path: %q has a leading, trailing, or repeated '.'", expr)
		}
		keys = append(keys, buf.String())
		buf.Reset()
		sawQuoted = false
		return nil
	}

	i := 0
	n := len(expr)
	for i < n {
		c := expr[i]
		switch {
		case c == '"':
			j, s, err := scanQuoted(expr, i)
			if err != nil {
				return Path{}, err
			}
			buf.WriteString(s)
			sawQuoted = true
			hadAnyChar = true
			i = j
		case c == '.':
			if err := flush(); err != nil {
				return Path{}, err
			}
			i++
		default:
			buf.WriteByte(c)
			hadAnyChar = true
			i++
		}
	}
	if !hadAnyChar {
		return Path{}, fmt.Errorf("path: %q is empty", expr)
	}
	if err := flush(); err != nil {
		return Path{}, err
	}
	return Path{keys: keys}, nil
}

// scanQuoted reads a JSON-quoted string starting at expr[start] == '"'
// and returns the index just past the closing quote and the unescaped
// value.
func scanQuoted(expr string, start int) (int, string, error) {
	j := start + 1
	for j < len(expr) {
		if expr[j] == '\\' {
			j += 2
			continue
		}
		if expr[j] == '"' {
			raw := expr[start : j+1]
			s, err := strconv.Unquote(raw)
			if err != nil {
				return 0, "", fmt.Errorf("path: invalid quoted key %s: %w", raw, err)
			}
			return j + 1, s, nil
		}
		j++
	}
	return 0, "", fmt.Errorf("path: unterminated quoted key in %q", expr)
}
