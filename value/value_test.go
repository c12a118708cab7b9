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

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-quicktest/qt"

	"hocon.sh/go/path"
)

func mustDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	qt.Assert(t, qt.IsNil(err))
	return d
}

func TestEqualNumericCrossKind(t *testing.T) {
	i := NewInt(UnknownOrigin, 3, "3")
	l := NewLong(UnknownOrigin, 3, "3")
	d := NewDouble(UnknownOrigin, mustDecimal(t, "3.0"), "3.0")
	qt.Assert(t, qt.IsTrue(Equal(i, l)))
	qt.Assert(t, qt.IsTrue(Equal(i, d)))
	qt.Assert(t, qt.IsTrue(Equal(l, d)))
}

func TestEqualIgnoresOrigin(t *testing.T) {
	a := NewString(NewOrigin("a", "a.conf", 1), "x")
	b := NewString(NewOrigin("b", "b.conf", 99), "x")
	qt.Assert(t, qt.IsTrue(Equal(a, b)))
}

func TestEqualObjectSizeMismatchIsUnequal(t *testing.T) {
	a := NewObject(UnknownOrigin, []string{"x"}, map[string]Value{"x": NewBool(UnknownOrigin, true)})
	b := NewObject(UnknownOrigin, []string{"x", "y"}, map[string]Value{
		"x": NewBool(UnknownOrigin, true),
		"y": NewBool(UnknownOrigin, false),
	})
	qt.Assert(t, qt.IsFalse(Equal(a, b)))
	qt.Assert(t, qt.IsFalse(Equal(b, a)))
}

func TestEqualList(t *testing.T) {
	a := NewList(UnknownOrigin, []Value{NewInt(UnknownOrigin, 1, "1"), NewInt(UnknownOrigin, 2, "2")})
	b := NewList(UnknownOrigin, []Value{NewInt(UnknownOrigin, 1, "1"), NewInt(UnknownOrigin, 2, "2")})
	c := NewList(UnknownOrigin, []Value{NewInt(UnknownOrigin, 2, "2"), NewInt(UnknownOrigin, 1, "1")})
	qt.Assert(t, qt.IsTrue(Equal(a, b)))
	qt.Assert(t, qt.IsFalse(Equal(a, c)))
}

func TestEqualReference(t *testing.T) {
	p, err := path.Parse("a.b")
	qt.Assert(t, qt.IsNil(err))
	r1 := NewReference(UnknownOrigin, p, true)
	r2 := NewReference(UnknownOrigin, p, true)
	r3 := NewReference(UnknownOrigin, p, false)
	qt.Assert(t, qt.IsTrue(Equal(r1, r2)))
	qt.Assert(t, qt.IsFalse(Equal(r1, r3)))
}

func TestHashConsistentWithEqual(t *testing.T) {
	i := NewInt(UnknownOrigin, 5, "5")
	l := NewLong(UnknownOrigin, 5, "5")
	qt.Assert(t, qt.IsTrue(Equal(i, l)))
	qt.Assert(t, qt.Equals(Hash(i), Hash(l)))
}

func TestResolved(t *testing.T) {
	resolvedObj := NewObject(UnknownOrigin, []string{"a"}, map[string]Value{"a": NewBool(UnknownOrigin, true)})
	qt.Assert(t, qt.IsTrue(Resolved(resolvedObj)))

	p, _ := path.Parse("x")
	unresolvedObj := NewObject(UnknownOrigin, []string{"a"}, map[string]Value{"a": NewReference(UnknownOrigin, p, false)})
	qt.Assert(t, qt.IsFalse(Resolved(unresolvedObj)))
}

func TestIgnoresFallbacks(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IgnoresFallbacks(NewString(UnknownOrigin, "x"))))
	qt.Assert(t, qt.IsTrue(IgnoresFallbacks(NewList(UnknownOrigin, nil))))

	p, _ := path.Parse("x")
	qt.Assert(t, qt.IsFalse(IgnoresFallbacks(NewReference(UnknownOrigin, p, false))))

	nested := NewObject(UnknownOrigin, []string{"a"}, map[string]Value{"a": NewReference(UnknownOrigin, p, false)})
	qt.Assert(t, qt.IsFalse(IgnoresFallbacks(nested)))
}

func TestTextOf(t *testing.T) {
	cases := []struct {
		v    Value
		text string
		ok   bool
	}{
		{NewNull(UnknownOrigin), "null", true},
		{NewBool(UnknownOrigin, true), "true", true},
		{NewBool(UnknownOrigin, false), "false", true},
		{NewInt(UnknownOrigin, 7, "7"), "7", true},
		{NewString(UnknownOrigin, "hi"), "hi", true},
		{NewList(UnknownOrigin, nil), "", false},
	}
	for _, c := range cases {
		s, ok := TextOf(c.v)
		qt.Assert(t, qt.Equals(ok, c.ok))
		if ok {
			qt.Assert(t, qt.Equals(s, c.text))
		}
	}
}

func TestObjectBuilderPreservesFirstSeenOrder(t *testing.T) {
	b := NewObjectBuilder()
	b.Set("b", NewInt(UnknownOrigin, 1, "1"))
	b.Set("a", NewInt(UnknownOrigin, 2, "2"))
	b.Set("b", NewInt(UnknownOrigin, 3, "3")) // overwrite, keeps position
	obj := b.Build(UnknownOrigin)
	qt.Assert(t, qt.DeepEquals(obj.Keys, []string{"b", "a"}))
	v, ok := obj.Get("b")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v.(*IntValue).Val, int32(3)))
}

func TestObjectWithKeyAndWithoutKey(t *testing.T) {
	o := EmptyObject(UnknownOrigin)
	o2 := o.WithKey("a", NewBool(UnknownOrigin, true))
	qt.Assert(t, qt.Equals(o.Len(), 0)) // original untouched
	qt.Assert(t, qt.Equals(o2.Len(), 1))

	o3 := o2.WithoutKey("a")
	qt.Assert(t, qt.Equals(o3.Len(), 0))
	qt.Assert(t, qt.Equals(o2.Len(), 1)) // o2 untouched
}

func TestFlattenSplicesNestedStacks(t *testing.T) {
	inner := NewDelayedMerge(UnknownOrigin, []Value{NewInt(UnknownOrigin, 1, "1"), NewInt(UnknownOrigin, 2, "2")})
	outer := []Value{inner, NewInt(UnknownOrigin, 3, "3")}
	flat := Flatten(outer)
	qt.Assert(t, qt.HasLen(flat, 3))
	qt.Assert(t, qt.Equals(flat[0].(*IntValue).Val, int32(1)))
	qt.Assert(t, qt.Equals(flat[1].(*IntValue).Val, int32(2)))
	qt.Assert(t, qt.Equals(flat[2].(*IntValue).Val, int32(3)))
}

func TestMergeOriginsSameFile(t *testing.T) {
	a := NewOrigin("a", "x.conf", 1)
	b := NewOrigin("b", "x.conf", 5)
	merged := MergeOrigins(a, b)
	qt.Assert(t, qt.Equals(merged.Description, "x.conf: 1-5"))
}

func TestKindIsNumericAndUnmergeable(t *testing.T) {
	qt.Assert(t, qt.IsTrue(IntKind.IsNumeric()))
	qt.Assert(t, qt.IsTrue(DoubleKind.IsNumeric()))
	qt.Assert(t, qt.IsFalse(StringKind.IsNumeric()))

	qt.Assert(t, qt.IsTrue(ReferenceKind.IsUnmergeable()))
	qt.Assert(t, qt.IsTrue(ConcatKind.IsUnmergeable()))
	qt.Assert(t, qt.IsFalse(ObjectKind.IsUnmergeable()))
}
