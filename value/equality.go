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

import "github.com/cockroachdb/apd/v3"

// Equal reports structural equality per spec §3.3: Origin is ignored;
// numeric kinds are compared by numeric value (so Int(1) == Long(1) ==
// Double(1.0)); Objects of unequal size are unconditionally unequal.
//
// This fixes the Open Question in spec.md §9: the original C++
// VariantEquals falls through its size-mismatch branch instead of
// returning immediately (original_source/.../variant_utils.h); this
// implementation returns false as soon as sizes differ, as CUE's own
// internal/core/adt/equality.go does for struct arcs.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if da, ok := decimalOf(a); ok {
		if db, ok := decimalOf(b); ok {
			return da.Cmp(db) == 0
		}
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *NullValue:
		return true
	case *BoolValue:
		return av.Val == b.(*BoolValue).Val
	case *StringValue:
		return av.Val == b.(*StringValue).Val
	case *List:
		bv := b.(*List)
		if len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		// Maps of unequal size are unequal -- checked first and
		// unconditionally (see Open Question note above).
		if len(av.Keys) != len(bv.Keys) {
			return false
		}
		for _, k := range av.Keys {
			bval, ok := bv.Vals[k]
			if !ok {
				return false
			}
			if !Equal(av.Vals[k], bval) {
				return false
			}
		}
		return true
	case *Reference:
		bv := b.(*Reference)
		return av.Optional == bv.Optional && av.Path.Equal(bv.Path)
	case *Concat:
		bv := b.(*Concat)
		if len(av.Pieces) != len(bv.Pieces) {
			return false
		}
		for i := range av.Pieces {
			if !Equal(av.Pieces[i], bv.Pieces[i]) {
				return false
			}
		}
		return true
	case *DelayedMerge:
		bv := b.(*DelayedMerge)
		return stacksEqual(av.Stack, bv.Stack)
	case *DelayedMergeObject:
		bv := b.(*DelayedMergeObject)
		return stacksEqual(av.Stack, bv.Stack)
	}
	return false
}

func stacksEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// decimalOf extracts the numeric value of Int/Long/Double as an
// apd.Decimal, so equality and comparisons can treat all three
// uniformly (spec §3.3 "Numeric equality uses numeric value").
func decimalOf(v Value) (*apd.Decimal, bool) {
	switch t := v.(type) {
	case *IntValue:
		d := new(apd.Decimal)
		d.SetInt64(int64(t.Val))
		return d, true
	case *LongValue:
		d := new(apd.Decimal)
		d.SetInt64(t.Val)
		return d, true
	case *DoubleValue:
		return t.Val, true
	}
	return nil, false
}

// Hash is consistent with Equal: structurally equal values (including
// numerically-equal numbers of different kinds) hash identically.
func Hash(v Value) uint64 {
	h := fnvOffset
	if d, ok := decimalOf(v); ok {
		var reduced apd.Decimal
		reduced.Reduce(d)
		return hashString(h, "num:"+reduced.Text('f'))
	}
	switch t := v.(type) {
	case *NullValue:
		return hashString(h, "null")
	case *BoolValue:
		if t.Val {
			return hashString(h, "bool:true")
		}
		return hashString(h, "bool:false")
	case *StringValue:
		return hashString(h, "str:"+t.Val)
	case *List:
		for _, e := range t.Elems {
			h = hashCombine(h, Hash(e))
		}
		return h
	case *Object:
		// Equal ignores key order, so fields are summed, not chained.
		var sum uint64
		for _, k := range t.Keys {
			sum += hashCombine(hashString(fnvOffset, k), Hash(t.Vals[k]))
		}
		return hashCombine(h, sum)
	case *Reference:
		return hashString(h, t.String())
	case *Concat:
		for _, p := range t.Pieces {
			h = hashCombine(h, Hash(p))
		}
		return h
	case *DelayedMerge:
		for _, p := range t.Stack {
			h = hashCombine(h, Hash(p))
		}
		return h
	case *DelayedMergeObject:
		for _, p := range t.Stack {
			h = hashCombine(h, Hash(p))
		}
		return h
	}
	return h
}

const fnvOffset = uint64(14695981039346656037)
const fnvPrime = uint64(1099511628211)

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

func hashCombine(h uint64, other uint64) uint64 {
	h ^= other
	h *= fnvPrime
	return h
}
