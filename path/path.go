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

// Package path implements dotted-key configuration paths: parsing,
// quoted rendering, and the small set of structural operations the
// parser, merger and resolver need (spec §3.1). Grounded on the
// identifier-quoting rules of cue/ast/ident.go and the incremental
// path-building discipline of original_source's PathBuilder/Path.
package path

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Path is an ordered, non-empty sequence of key strings.
type Path struct {
	keys []string
}

// New builds a Path directly from keys, with no parsing or quoting
// applied. Panics if keys is empty; a Path always has at least one key.
func New(keys ...string) Path {
	if len(keys) == 0 {
		panic("path: New requires at least one key")
	}
	cp := make([]string, len(keys))
	copy(cp, keys)
	return Path{keys: cp}
}

// isUnquotedChar reports whether r is legal in an unquoted key.
func isUnquotedChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		return true
	}
	return false
}

// needsQuoting reports whether key must be rendered as a quoted JSON
// string: any character outside [A-Za-z0-9_-], or a leading digit/hyphen.
func needsQuoting(key string) bool {
	if key == "" {
		return true
	}
	for _, r := range key {
		if !isUnquotedChar(r) {
			return true
		}
	}
	first := rune(key[0])
	if first >= '0' && first <= '9' {
		return true
	}
	if first == '-' {
		return true
	}
	return false
}

// quoteKey renders key as a JSON-escaped quoted string.
func quoteKey(key string) string {
	return strconv.Quote(key)
}

// String renders the path, joining keys with '.', quoting any key that
// requires it.
func (p Path) String() string {
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('.')
		}
		if needsQuoting(k) {
			b.WriteString(quoteKey(k))
		} else {
			b.WriteString(k)
		}
	}
	return b.String()
}

// Len returns the number of keys in the path.
func (p Path) Len() int { return len(p.keys) }

// Keys returns a copy of the path's key sequence.
func (p Path) Keys() []string {
	cp := make([]string, len(p.keys))
	copy(cp, p.keys)
	return cp
}

// Last returns the final key.
func (p Path) Last() string {
	if len(p.keys) == 0 {
		return ""
	}
	return p.keys[len(p.keys)-1]
}

// First returns the first key.
func (p Path) First() string {
	if len(p.keys) == 0 {
		return ""
	}
	return p.keys[0]
}

// Parent returns the path with the last key removed. The empty Path
// (zero value) is returned if p has only one key.
func (p Path) Parent() Path {
	if len(p.keys) <= 1 {
		return Path{}
	}
	return Path{keys: append([]string(nil), p.keys[:len(p.keys)-1]...)}
}

// Prepend returns a new Path with key as the first element.
func (p Path) Prepend(key string) Path {
	keys := make([]string, 0, len(p.keys)+1)
	keys = append(keys, key)
	keys = append(keys, p.keys...)
	return Path{keys: keys}
}

// Append returns a new Path with key as the last element.
func (p Path) Append(key string) Path {
	keys := make([]string, 0, len(p.keys)+1)
	keys = append(keys, p.keys...)
	keys = append(keys, key)
	return Path{keys: keys}
}

// Join concatenates two paths.
func (p Path) Join(other Path) Path {
	keys := make([]string, 0, len(p.keys)+len(other.keys))
	keys = append(keys, p.keys...)
	keys = append(keys, other.keys...)
	return Path{keys: keys}
}

// Subpath returns the slice of keys [from, to).
func (p Path) Subpath(from, to int) Path {
	if from < 0 {
		from = 0
	}
	if to > len(p.keys) {
		to = len(p.keys)
	}
	if from >= to {
		return Path{}
	}
	return Path{keys: append([]string(nil), p.keys[from:to]...)}
}

// IsEmpty reports whether the path has no keys.
func (p Path) IsEmpty() bool { return len(p.keys) == 0 }

// Equal reports structural equality by key sequence.
func (p Path) Equal(o Path) bool {
	if len(p.keys) != len(o.keys) {
		return false
	}
	for i, k := range p.keys {
		if k != o.keys[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal.
func (p Path) Hash() uint64 {
	h := fnv.New64a()
	for _, k := range p.keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// HasPrefix reports whether p starts with the keys of prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix.keys) > len(p.keys) {
		return false
	}
	for i, k := range prefix.keys {
		if p.keys[i] != k {
			return false
		}
	}
	return true
}
