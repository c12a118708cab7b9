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

// List is an ordered sequence of Values, resolved iff every element
// is resolved (spec §3.3).
type List struct {
	Org   Origin
	Elems []Value
}

func NewList(o Origin, elems []Value) *List {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return &List{Org: o, Elems: cp}
}

func (v *List) Kind() Kind     { return ListKind }
func (v *List) Origin() Origin { return v.Org }
func (v *List) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*List) hoconValue() {}

// Len returns the number of elements.
func (v *List) Len() int { return len(v.Elems) }

// ListBuilder assembles a List incrementally. It is strictly local to
// the parser and never escapes as a Value itself (spec §9 "Mutable
// builders for parse").
type ListBuilder struct {
	elems []Value
}

func (b *ListBuilder) Append(v Value) { b.elems = append(b.elems, v) }

func (b *ListBuilder) Len() int { return len(b.elems) }

func (b *ListBuilder) Build(o Origin) *List {
	return NewList(o, b.elems)
}
