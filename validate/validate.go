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

// Package validate implements checkValid (spec §4.8): comparing a
// resolved configuration against a reference configuration that
// describes the shape callers expect, reporting every path that is
// missing or holds a value of the wrong kind. Grounded on
// original_source's SimpleConfig::checkValid (config.cc) walking two
// trees in lockstep, with github.com/mpvl/unique standing in for its
// final sort-and-dedup pass over the collected problems.
package validate

import (
	"sort"

	"github.com/mpvl/unique"

	"hocon.sh/go/herrors"
	"hocon.sh/go/path"
	"hocon.sh/go/token"
	"hocon.sh/go/value"
)

// CheckValid walks reference and actual together and returns a
// *herrors.ValidationFailed listing every path present in reference
// that actual is missing, holds the wrong kind of value for, or -- for
// a List -- holds an element of the wrong kind for (spec §4.8). actual
// must already be resolved (value.Resolved); reference need not be,
// since only its shape and concrete leaf kinds are consulted.
//
// With no restrictPaths, the whole of reference is checked. Given one
// or more restrictPaths, only the subtree reference holds at each of
// those paths is checked -- every other branch of reference is
// ignored entirely, not merely unreported (spec §4.8, grounded on
// original_source's `checkValid(reference, restrictToPaths)` overload:
// include/configcpp/detail/simple_config.h and the "validationWithRoot"
// case in test/validation_test.cc, which restricts to {"a", "b"} and
// gets none of the reference's other top-level problems back).
func CheckValid(reference, actual value.Value, restrictPaths ...path.Path) error {
	if !value.Resolved(actual) {
		return herrors.NewNotResolved("checkValid: actual configuration is not fully resolved")
	}
	var problems []herrors.Problem
	if len(restrictPaths) == 0 {
		walk(path.Path{}, reference, actual, &problems)
	} else {
		for _, p := range restrictPaths {
			refVal, ok := lookup(reference, p)
			if !ok {
				// reference itself doesn't reach this path: nothing to
				// require there, so there is nothing to check.
				continue
			}
			actualVal, ok := lookup(actual, p)
			if !ok {
				problems = append(problems, herrors.Problem{
					Path:         pathString(p),
					Position:     originPosition(refVal),
					ExpectedKind: refVal.Kind().String(),
					Kind:         "missing",
				})
				continue
			}
			walk(p, refVal, actualVal, &problems)
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Slice(problems, func(i, j int) bool { return problemLess(problems[i], problems[j]) })
	deduped := problemSlice(problems)
	unique.Sort(&deduped)
	return herrors.NewValidationFailed([]herrors.Problem(deduped))
}

// lookup descends p within root through nested Objects, the same
// traversal config.lookup and resolve.context.lookup perform, kept as
// its own small copy here since validate has no dependency on either
// of those packages.
func lookup(root value.Value, p path.Path) (value.Value, bool) {
	cur := root
	for _, key := range p.Keys() {
		obj, ok := cur.(*value.Object)
		if !ok {
			return nil, false
		}
		next, ok := obj.Get(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func walk(at path.Path, ref, actual value.Value, problems *[]herrors.Problem) {
	refObj, refIsObj := ref.(*value.Object)
	if !refIsObj {
		checkKind(at, ref, actual, problems)
		return
	}
	actualObj, actualIsObj := actual.(*value.Object)
	if !actualIsObj {
		*problems = append(*problems, herrors.Problem{
			Path:         pathString(at),
			Position:     originPosition(actual),
			ExpectedKind: value.ObjectKind.String(),
			GotKind:      actual.Kind().String(),
			Kind:         "wrong-type",
		})
		return
	}
	refObj.Range(func(k string, refVal value.Value) bool {
		childPath := at.Append(k)
		actualVal, ok := actualObj.Get(k)
		if !ok {
			*problems = append(*problems, herrors.Problem{
				Path:         pathString(childPath),
				Position:     originPosition(refVal),
				ExpectedKind: refVal.Kind().String(),
				Kind:         "missing",
			})
			return true
		}
		walk(childPath, refVal, actualVal, problems)
		return true
	})
}

func checkKind(at path.Path, ref, actual value.Value, problems *[]herrors.Problem) {
	if ref.Kind() == value.NullKind {
		// A null in the reference means "any type is acceptable here",
		// mirroring typesafe-config's convention for optional settings.
		return
	}
	if ref.Kind() != actual.Kind() {
		if ref.Kind().IsNumeric() && actual.Kind().IsNumeric() {
			return
		}
		*problems = append(*problems, herrors.Problem{
			Path:         pathString(at),
			Position:     originPosition(actual),
			ExpectedKind: ref.Kind().String(),
			GotKind:      actual.Kind().String(),
			Kind:         "wrong-type",
		})
		return
	}
	refList, ok := ref.(*value.List)
	if !ok || refList.Len() == 0 {
		return
	}
	actualList, ok := actual.(*value.List)
	if !ok {
		return
	}
	wantElem := refList.Elems[0].Kind()
	for _, e := range actualList.Elems {
		if e.Kind() == wantElem || (wantElem.IsNumeric() && e.Kind().IsNumeric()) {
			continue
		}
		*problems = append(*problems, herrors.Problem{
			Path:         pathString(at),
			Position:     originPosition(e),
			ExpectedKind: wantElem.String(),
			GotKind:      e.Kind().String(),
			Kind:         "wrong-element-type",
		})
		return
	}
}

func pathString(p path.Path) string {
	if p.IsEmpty() {
		return "<root>"
	}
	return p.String()
}

func originPosition(v value.Value) token.Position {
	if v == nil {
		return token.NoPos
	}
	o := v.Origin()
	return token.Position{Filename: o.Filename, Line: o.Line}
}

func problemLess(a, b herrors.Problem) bool {
	if a.Path != b.Path {
		return a.Path < b.Path
	}
	return a.Kind < b.Kind
}

// problemSlice adapts []herrors.Problem to unique.Sort's interface,
// which needs Len/Less/Swap (sort.Interface) plus Truncate; entries
// that neither Less orders are treated as duplicates.
type problemSlice []herrors.Problem

func (s problemSlice) Len() int           { return len(s) }
func (s problemSlice) Less(i, j int) bool { return problemLess(s[i], s[j]) }
func (s problemSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s *problemSlice) Truncate(n int)    { *s = (*s)[:n] }
