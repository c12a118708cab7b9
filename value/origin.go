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

// Package value implements the closed AbstractValue variant set (spec
// §3.3): Null, Boolean, Int, Long, Double, String, List, Object,
// Reference, Concatenation, DelayedMerge and DelayedMergeObject, each
// carrying an Origin. Grounded on internal/core/adt's tagged-variant
// dispatch (adt.go, fields.go) and equality.go's structural-equality
// rules, adapted to HOCON's simpler (non-unifying) value model.
package value

import (
	"fmt"
	"strings"
)

// Origin is the immutable source-location record carried by every
// Value (spec §3.2). It is informational only: never part of
// equality or hash (see Equal in equality.go).
type Origin struct {
	Description string
	Filename    string
	Line        int // -1 if unknown
	Comments    []string
}

// UnknownOrigin is the Origin used for values constructed
// programmatically rather than parsed from text.
var UnknownOrigin = Origin{Description: "hocon.Value", Line: -1}

// NewOrigin builds an Origin for a parsed value at filename:line.
func NewOrigin(description, filename string, line int) Origin {
	return Origin{Description: description, Filename: filename, Line: line}
}

// WithComments returns a copy of o with comments attached.
func (o Origin) WithComments(comments []string) Origin {
	o.Comments = comments
	return o
}

func (o Origin) String() string {
	if o.Filename != "" && o.Line > 0 {
		return fmt.Sprintf("%s: %d", o.Filename, o.Line)
	}
	if o.Filename != "" {
		return o.Filename
	}
	if o.Description != "" {
		return o.Description
	}
	return "<unknown>"
}

// MergeOrigins combines two origins into one whose description
// collapses a common filename span, e.g. "file.conf: 1-5" from lines
// 1 and 5 (spec §3.2).
func MergeOrigins(a, b Origin) Origin {
	if a.Filename == b.Filename && a.Filename != "" {
		lo, hi := a.Line, b.Line
		if lo < 0 {
			lo = b.Line
		}
		if hi < 0 {
			hi = a.Line
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		desc := a.Filename
		switch {
		case lo <= 0:
			// no usable line info, fall through to filename only
		case lo == hi:
			desc = fmt.Sprintf("%s: %d", a.Filename, lo)
		default:
			desc = fmt.Sprintf("%s: %d-%d", a.Filename, lo, hi)
		}
		return Origin{Description: desc, Filename: a.Filename, Line: lo, Comments: mergeComments(a.Comments, b.Comments)}
	}
	return Origin{
		Description: strings.Join([]string{a.String(), b.String()}, ", "),
		Line:        -1,
		Comments:    mergeComments(a.Comments, b.Comments),
	}
}

func mergeComments(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
