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

// Concat is a Concatenation node: at least two value pieces appearing
// on the same logical line, with at least one piece unmergeable
// (Reference or DelayedMerge*) -- otherwise construction would have
// folded the pieces into a plain String/List/Object (spec §3.3, §4.2).
// Gaps[i] records the horizontal whitespace between Pieces[i] and
// Pieces[i+1] as scanned, so the resolver can reproduce exact spacing
// if every piece turns out to be scalar once substitutions settle
// (spec §4.2 scenario 1). A nil Gaps means the concatenation did not
// come from adjacent source text (e.g. the `+=` desugaring); if its
// pieces all resolve to scalars they are folded to text with no
// whitespace between them.
type Concat struct {
	Org    Origin
	Pieces []Value
	Gaps   []int
}

func NewConcat(o Origin, pieces []Value) *Concat {
	cp := make([]Value, len(pieces))
	copy(cp, pieces)
	return &Concat{Org: o, Pieces: cp}
}

// NewConcatWithGaps is NewConcat plus the inter-piece whitespace widths
// recorded by the scanner/parser.
func NewConcatWithGaps(o Origin, pieces []Value, gaps []int) *Concat {
	cp := make([]Value, len(pieces))
	copy(cp, pieces)
	g := make([]int, len(gaps))
	copy(g, gaps)
	return &Concat{Org: o, Pieces: cp, Gaps: g}
}

func (v *Concat) Kind() Kind     { return ConcatKind }
func (v *Concat) Origin() Origin { return v.Org }
func (v *Concat) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*Concat) hoconValue() {}

// DelayedMerge is a non-Object fallback stack containing at least one
// unmergeable element (spec §3.3). Stack[0] is the primary (most
// specific, evaluated first); later elements are progressively weaker
// fallbacks.
type DelayedMerge struct {
	Org   Origin
	Stack []Value
}

func NewDelayedMerge(o Origin, stack []Value) *DelayedMerge {
	cp := make([]Value, len(stack))
	copy(cp, stack)
	return &DelayedMerge{Org: o, Stack: cp}
}

func (v *DelayedMerge) Kind() Kind     { return DelayedMergeKind }
func (v *DelayedMerge) Origin() Origin { return v.Org }
func (v *DelayedMerge) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*DelayedMerge) hoconValue() {}

// DelayedMergeObject is an Object fallback stack containing at least
// one unmergeable element; its bottom element is an Object (spec
// §3.3), which is what distinguishes it from DelayedMerge. The
// resolver resolves the stack before looking up a field inside it.
type DelayedMergeObject struct {
	Org   Origin
	Stack []Value
}

func NewDelayedMergeObject(o Origin, stack []Value) *DelayedMergeObject {
	cp := make([]Value, len(stack))
	copy(cp, stack)
	return &DelayedMergeObject{Org: o, Stack: cp}
}

func (v *DelayedMergeObject) Kind() Kind     { return DelayedMergeObjectKind }
func (v *DelayedMergeObject) Origin() Origin { return v.Org }
func (v *DelayedMergeObject) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*DelayedMergeObject) hoconValue() {}

// Flatten splices any nested DelayedMerge/DelayedMergeObject appearing
// anywhere in stack into this stack, keeping merge stacks flat (spec
// §4.3 "Stacks in DelayedMerge* are kept flat"). It is applied by the
// merge package whenever a new stack is built.
func Flatten(stack []Value) []Value {
	out := make([]Value, 0, len(stack))
	for _, v := range stack {
		switch t := v.(type) {
		case *DelayedMerge:
			out = append(out, t.Stack...)
		case *DelayedMergeObject:
			out = append(out, t.Stack...)
		default:
			out = append(out, v)
		}
	}
	return out
}
