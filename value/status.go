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

package value

// Resolved reports whether v contains no Reference, Concatenation, or
// DelayedMerge/DelayedMergeObject node anywhere in its tree (spec
// §3.3: "A resolved tree contains no Reference / Concatenation /
// DelayedMerge / DelayedMergeObject nodes").
func Resolved(v Value) bool {
	switch t := v.(type) {
	case *NullValue, *BoolValue, *IntValue, *LongValue, *DoubleValue, *StringValue:
		return true
	case *List:
		for _, e := range t.Elems {
			if !Resolved(e) {
				return false
			}
		}
		return true
	case *Object:
		for _, k := range t.Keys {
			if !Resolved(t.Vals[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IgnoresFallbacks reports whether v can never accept a fallback value
// during merge -- either it is a fully concrete non-Object, or it is
// an Object all of whose values ignore fallbacks in turn (spec §4.3).
// merge.WithFallback still merges two Objects field by field; for an
// Object primary this only decides whether a non-Object fallback is
// dropped or kept in a merge stack.
func IgnoresFallbacks(v Value) bool {
	switch t := v.(type) {
	case *NullValue, *BoolValue, *IntValue, *LongValue, *DoubleValue, *StringValue, *List:
		return true
	case *Object:
		for _, k := range t.Keys {
			if !IgnoresFallbacks(t.Vals[k]) {
				return false
			}
		}
		return true
	default:
		// Reference, Concat, DelayedMerge, DelayedMergeObject: cannot
		// be known to ignore a fallback until resolved.
		return false
	}
}

// TextOf returns the textual transform of v used when folding a
// Concatenation into a single String (spec §4.2): numbers render
// their original text, null/true/false render their literal spelling,
// strings render verbatim. ok is false for List/Object/unresolved
// kinds, which cannot appear in a string fold.
func TextOf(v Value) (string, bool) {
	switch t := v.(type) {
	case *NullValue:
		return "null", true
	case *BoolValue:
		if t.Val {
			return "true", true
		}
		return "false", true
	case *IntValue:
		return t.Text, true
	case *LongValue:
		return t.Text, true
	case *DoubleValue:
		return t.Text, true
	case *StringValue:
		return t.Val, true
	default:
		return "", false
	}
}
