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
	"testing"

	"github.com/go-quicktest/qt"

	"hocon.sh/go/herrors"
	"hocon.sh/go/path"
	"hocon.sh/go/value"
)

func ref(t *testing.T, expr string, optional bool) *value.Reference {
	t.Helper()
	p, err := path.Parse(expr)
	qt.Assert(t, qt.IsNil(err))
	return value.NewReference(value.UnknownOrigin, p, optional)
}

func obj(fields map[string]value.Value, order ...string) *value.Object {
	return value.NewObject(value.UnknownOrigin, order, fields)
}

func TestResolveSimpleReference(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": value.NewInt(value.UnknownOrigin, 1, "1"),
		"b": ref(t, "a", false),
	}, "a", "b")

	got, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	bv, _ := o.Get("b")
	qt.Assert(t, qt.Equals(bv.(*value.IntValue).Val, int32(1)))
	qt.Assert(t, qt.IsTrue(value.Resolved(got)))
}

func TestResolveMissingRequiredSubstitutionErrors(t *testing.T) {
	root := obj(map[string]value.Value{
		"b": ref(t, "a", false),
	}, "b")
	_, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNotNil(err))
	_, ok := err.(*herrors.UnresolvedSubstitution)
	qt.Assert(t, qt.IsTrue(ok))
}

func TestResolveOptionalMissingSubstitutionOmitsField(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": value.NewInt(value.UnknownOrigin, 1, "1"),
		"b": ref(t, "missing", true),
	}, "a", "b")

	got, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	qt.Assert(t, qt.DeepEquals(o.Keys, []string{"a"}))
}

func TestResolveCycleErrors(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": ref(t, "b", false),
		"b": ref(t, "a", false),
	}, "a", "b")

	_, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNotNil(err))
}

func TestResolveUseSystemEnvironment(t *testing.T) {
	t.Setenv("HOCON_TEST_VAR", "hello")
	root := obj(map[string]value.Value{
		"a": ref(t, "HOCON_TEST_VAR", false),
	}, "a")

	got, err := Resolve(root, Options{UseSystemEnvironment: true})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	av, _ := o.Get("a")
	qt.Assert(t, qt.Equals(av.(*value.StringValue).Val, "hello"))
}

func TestResolveAllowUnresolvedLeavesReference(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": ref(t, "missing", false),
	}, "a")

	got, err := Resolve(root, Options{AllowUnresolved: true})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	av, _ := o.Get("a")
	_, ok := av.(*value.Reference)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsFalse(value.Resolved(got)))
}

func TestResolveConcatenationFoldsScalarsWithSpacing(t *testing.T) {
	pieces := []value.Value{
		value.NewBool(value.UnknownOrigin, true),
		value.NewString(value.UnknownOrigin, "xyz"),
		value.NewInt(value.UnknownOrigin, 123, "123"),
		value.NewString(value.UnknownOrigin, "foo"),
	}
	concat := value.NewConcatWithGaps(value.UnknownOrigin, pieces, []int{1, 1, 1})

	got, err := Resolve(concat, Options{})
	qt.Assert(t, qt.IsNil(err))
	s, ok := got.(*value.StringValue)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s.Val, "true xyz 123 foo"))
}

func TestResolveConcatenationOfReferenceAndScalarKeepsReference(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": value.NewString(value.UnknownOrigin, "x"),
		"b": value.NewConcatWithGaps(value.UnknownOrigin, []value.Value{
			ref(t, "a", false),
			value.NewString(value.UnknownOrigin, "y"),
		}, []int{0}),
	}, "a", "b")

	got, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	bv, _ := o.Get("b")
	qt.Assert(t, qt.Equals(bv.(*value.StringValue).Val, "xy"))
}

func TestResolveListConcatenation(t *testing.T) {
	pieces := []value.Value{
		value.NewList(value.UnknownOrigin, []value.Value{value.NewInt(value.UnknownOrigin, 1, "1")}),
		value.NewList(value.UnknownOrigin, []value.Value{value.NewInt(value.UnknownOrigin, 2, "2")}),
	}
	concat := value.NewConcat(value.UnknownOrigin, pieces)
	got, err := Resolve(concat, Options{})
	qt.Assert(t, qt.IsNil(err))
	l := got.(*value.List)
	qt.Assert(t, qt.HasLen(l.Elems, 2))
}

func TestResolveObjectConcatenationMergesRightmostWins(t *testing.T) {
	pieces := []value.Value{
		obj(map[string]value.Value{"a": value.NewInt(value.UnknownOrigin, 1, "1")}, "a"),
		obj(map[string]value.Value{"a": value.NewInt(value.UnknownOrigin, 2, "2")}, "a"),
	}
	concat := value.NewConcat(value.UnknownOrigin, pieces)
	got, err := Resolve(concat, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	av, _ := o.Get("a")
	qt.Assert(t, qt.Equals(av.(*value.IntValue).Val, int32(2)))
}

// TestResolveSelfReferentialMergeStackSkipsCurrentLayer reproduces spec
// §8 scenario 4: "a : [1, 2], a : ${a} [3,4], a : ${a} [5,6]" resolves
// ${a} in each layer to the merge of the layers below it, not the
// whole (still-unresolved) stack, yielding [1,2,3,4,5,6].
func TestResolveSelfReferentialMergeStackSkipsCurrentLayer(t *testing.T) {
	list := func(nums ...int32) *value.List {
		elems := make([]value.Value, len(nums))
		for i, n := range nums {
			elems[i] = value.NewInt(value.UnknownOrigin, n, "")
		}
		return value.NewList(value.UnknownOrigin, elems)
	}
	concat := func(tail *value.List) *value.Concat {
		return value.NewConcat(value.UnknownOrigin, []value.Value{ref(t, "a", false), tail})
	}

	stack := []value.Value{concat(list(5, 6)), concat(list(3, 4)), list(1, 2)}
	root := obj(map[string]value.Value{
		"a": value.NewDelayedMerge(value.UnknownOrigin, stack),
	}, "a")

	got, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	av, _ := o.Get("a")
	l, ok := av.(*value.List)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(l.Elems, 6))
	for i, want := range []int32{1, 2, 3, 4, 5, 6} {
		qt.Assert(t, qt.Equals(l.Elems[i].(*value.IntValue).Val, want))
	}
}

// TestResolvePlusEqualsWithNoPriorValue reproduces spec §8 scenario 7:
// `a += 2` desugars to `a = ${?a} [2]`; with nothing preceding it the
// optional self-reference resolves to nothing and is dropped from the
// concatenation, leaving just [2].
func TestResolvePlusEqualsWithNoPriorValue(t *testing.T) {
	concat := value.NewConcat(value.UnknownOrigin, []value.Value{
		ref(t, "a", true),
		value.NewList(value.UnknownOrigin, []value.Value{value.NewInt(value.UnknownOrigin, 2, "2")}),
	})
	root := obj(map[string]value.Value{"a": concat}, "a")

	got, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	av, _ := o.Get("a")
	l, ok := av.(*value.List)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(l.Elems, 1))
	qt.Assert(t, qt.Equals(l.Elems[0].(*value.IntValue).Val, int32(2)))
}

// TestResolvePlusEqualsAppendsToPriorValue covers `a = [], a += 2`:
// the duplicate key builds a DelayedMerge of [Concat(${?a},[2]), []],
// and ${?a} must see the empty list below it, not the whole stack.
func TestResolvePlusEqualsAppendsToPriorValue(t *testing.T) {
	concat := value.NewConcat(value.UnknownOrigin, []value.Value{
		ref(t, "a", true),
		value.NewList(value.UnknownOrigin, []value.Value{value.NewInt(value.UnknownOrigin, 2, "2")}),
	})
	empty := value.NewList(value.UnknownOrigin, nil)
	root := obj(map[string]value.Value{
		"a": value.NewDelayedMerge(value.UnknownOrigin, []value.Value{concat, empty}),
	}, "a")

	got, err := Resolve(root, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	av, _ := o.Get("a")
	l, ok := av.(*value.List)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(l.Elems, 1))
	qt.Assert(t, qt.Equals(l.Elems[0].(*value.IntValue).Val, int32(2)))
}

// TestResolveConcatenationDropsAbsentOptionalPiece covers the §8
// boundary case: an optional substitution resolving to nothing inside
// a Concatenation has its piece dropped rather than stringified.
func TestResolveConcatenationDropsAbsentOptionalPiece(t *testing.T) {
	concat := value.NewConcatWithGaps(value.UnknownOrigin, []value.Value{
		ref(t, "missing", true),
		value.NewString(value.UnknownOrigin, "foo"),
	}, []int{1})

	got, err := Resolve(concat, Options{})
	qt.Assert(t, qt.IsNil(err))
	s, ok := got.(*value.StringValue)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s.Val, "foo"))
}

func TestResolveReferenceThroughDelayedMergeObject(t *testing.T) {
	// Simulate a duplicate-key merge still pending at resolve time:
	// {a: {x: 1}} merged with fallback {a: {x: 2, y: 3}}, then a
	// sibling reference reads a.y which only the fallback layer has.
	merged := obj(map[string]value.Value{
		"a": value.NewDelayedMergeObject(value.UnknownOrigin, []value.Value{
			obj(map[string]value.Value{"x": value.NewInt(value.UnknownOrigin, 1, "1")}, "x"),
			obj(map[string]value.Value{
				"x": value.NewInt(value.UnknownOrigin, 2, "2"),
				"y": value.NewInt(value.UnknownOrigin, 3, "3"),
			}, "x", "y"),
		}),
		"b": ref(t, "a.y", false),
	}, "a", "b")

	got, err := Resolve(merged, Options{})
	qt.Assert(t, qt.IsNil(err))
	o := got.(*value.Object)
	bv, _ := o.Get("b")
	qt.Assert(t, qt.Equals(bv.(*value.IntValue).Val, int32(3)))
}

// TestResolveChildOnlyResolvesRouteToTarget covers spec §4.4 "Partial
// resolution / restrictedToChild": resolving only a.b must not touch
// the unrelated sibling's reference, but must fully resolve whatever
// it finds once it reaches a.b itself.
func TestResolveChildOnlyResolvesRouteToTarget(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": obj(map[string]value.Value{
			"b": ref(t, "c", false),
		}, "b"),
		"c": value.NewInt(value.UnknownOrigin, 7, "7"),
		"sibling": ref(t, "missing", false),
	}, "a", "c", "sibling")

	target, err := path.Parse("a.b")
	qt.Assert(t, qt.IsNil(err))

	got, err := ResolveChild(root, Options{}, target)
	qt.Assert(t, qt.IsNil(err))

	o := got.(*value.Object)
	av, _ := o.Get("a")
	ab, _ := av.(*value.Object).Get("b")
	qt.Assert(t, qt.Equals(ab.(*value.IntValue).Val, int32(7)))

	siblingVal, _ := o.Get("sibling")
	_, stillRef := siblingVal.(*value.Reference)
	qt.Assert(t, qt.IsTrue(stillRef))
}

// TestResolveChildLeavesListsUntouched covers the spec's explicit
// "Lists short-circuit" rule: a list not on the way to the target is
// returned exactly as found, even though it holds an unresolved
// reference that would otherwise fail to resolve.
func TestResolveChildLeavesListsUntouched(t *testing.T) {
	root := obj(map[string]value.Value{
		"a": value.NewInt(value.UnknownOrigin, 1, "1"),
		"other": value.NewList(value.UnknownOrigin, []value.Value{ref(t, "missing", false)}),
	}, "a", "other")

	target, err := path.Parse("a")
	qt.Assert(t, qt.IsNil(err))

	got, err := ResolveChild(root, Options{}, target)
	qt.Assert(t, qt.IsNil(err))

	o := got.(*value.Object)
	otherVal, _ := o.Get("other")
	l, ok := otherVal.(*value.List)
	qt.Assert(t, qt.IsTrue(ok))
	_, stillRef := l.Elems[0].(*value.Reference)
	qt.Assert(t, qt.IsTrue(stillRef))
}
