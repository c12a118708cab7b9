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

package resolve

import (
	"strings"

	"hocon.sh/go/herrors"
	"hocon.sh/go/merge"
	"hocon.sh/go/render"
	"hocon.sh/go/value"
)

// describeForError renders a fully-resolved piece for inclusion in a
// "cannot concatenate" error (spec §8 scenario 8: the message must
// name the offending pieces, e.g. "abc"). Falls back to the bare Kind
// name if rendering fails.
func describeForError(v value.Value) string {
	s, err := render.Render(v, render.Options{JSON: true})
	if err != nil {
		return v.Kind().String()
	}
	return s
}

func isScalarLike(v value.Value) bool {
	switch v.Kind() {
	case value.NullKind, value.BoolKind, value.IntKind, value.LongKind, value.DoubleKind, value.StringKind:
		return true
	}
	return false
}

// foldResolved finishes folding a Concatenation node once every piece
// has been substituted (spec §4.2, §4.4). A Reference can still
// appear here only when Options.AllowUnresolved left it in place, in
// which case the node stays a Concatenation.
func foldResolved(origin value.Origin, pieces []value.Value, gaps []int) (value.Value, error) {
	allScalar := true
	anyReference := false
	anyList := false
	anyObject := false
	for _, p := range pieces {
		switch {
		case isScalarLike(p):
		case p.Kind() == value.ReferenceKind:
			allScalar = false
			anyReference = true
		case p.Kind() == value.ListKind:
			allScalar = false
			anyList = true
		case p.Kind() == value.ObjectKind:
			allScalar = false
			anyObject = true
		default:
			allScalar = false
		}
	}

	if anyReference {
		return value.NewConcatWithGaps(origin, pieces, gaps), nil
	}
	if allScalar {
		var b strings.Builder
		for i, p := range pieces {
			if i > 0 && i-1 < len(gaps) {
				b.WriteString(strings.Repeat(" ", gaps[i-1]))
			}
			text, _ := value.TextOf(p)
			b.WriteString(text)
		}
		return value.NewString(origin, b.String()), nil
	}
	if anyList && anyObject {
		return nil, herrors.NewWrongType("", "list or object", "mixed", "cannot concatenate a list with an object")
	}
	if anyList {
		var elems []value.Value
		for _, p := range pieces {
			l, ok := p.(*value.List)
			if !ok {
				return nil, herrors.NewWrongType("", "list", p.Kind().String(),
					"cannot concatenate a list with a non-list value: %s and %s", describeForError(pieces[0]), describeForError(p))
			}
			elems = append(elems, l.Elems...)
		}
		return value.NewList(origin, elems), nil
	}
	// anyObject: merge left to right, rightmost wins, same rule as the
	// parser applies to object literals concatenated on one line.
	result, ok := pieces[0].(*value.Object)
	if !ok {
		return nil, herrors.NewWrongType("", "object", pieces[0].Kind().String(),
			"cannot concatenate an object with a non-object value: %s and %s", describeForError(pieces[0]), describeForError(pieces[len(pieces)-1]))
	}
	for _, p := range pieces[1:] {
		obj, ok := p.(*value.Object)
		if !ok {
			return nil, herrors.NewWrongType("", "object", p.Kind().String(),
				"cannot concatenate an object with a non-object value: %s and %s", describeForError(result), describeForError(p))
		}
		result = merge.WithFallback(obj, result).(*value.Object)
	}
	return result.WithOrigin(origin), nil
}
