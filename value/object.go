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

// Object is an insertion-ordered map from key to Value, resolved iff
// every value is resolved (spec §3.3). Keys preserves insertion order;
// Vals is keyed lookup. Duplicate-key overwrite-with-merge is decided
// by the caller (parser/merge), not by Object itself.
type Object struct {
	Org  Origin
	Keys []string
	Vals map[string]Value
}

// EmptyObject is the identity element for withFallback (spec §8
// invariant: "Null-object identity").
func EmptyObject(o Origin) *Object {
	return &Object{Org: o, Keys: nil, Vals: map[string]Value{}}
}

func NewObject(o Origin, keys []string, vals map[string]Value) *Object {
	k := make([]string, len(keys))
	copy(k, keys)
	v := make(map[string]Value, len(vals))
	for key, val := range vals {
		v[key] = val
	}
	return &Object{Org: o, Keys: k, Vals: v}
}

func (v *Object) Kind() Kind     { return ObjectKind }
func (v *Object) Origin() Origin { return v.Org }
func (v *Object) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*Object) hoconValue() {}

// Len returns the number of keys.
func (v *Object) Len() int { return len(v.Keys) }

// Get returns the value at key and whether it is present.
func (v *Object) Get(key string) (Value, bool) {
	val, ok := v.Vals[key]
	return val, ok
}

// Range iterates keys in insertion order, stopping early if fn
// returns false.
func (v *Object) Range(fn func(key string, val Value) bool) {
	for _, k := range v.Keys {
		if !fn(k, v.Vals[k]) {
			return
		}
	}
}

// WithKey returns a new Object with key set to val, appended at the
// end if new, replaced in place (same position) if already present.
func (v *Object) WithKey(key string, val Value) *Object {
	_, existed := v.Vals[key]
	keys := v.Keys
	if !existed {
		keys = append(append([]string(nil), v.Keys...), key)
	} else {
		keys = append([]string(nil), v.Keys...)
	}
	vals := make(map[string]Value, len(v.Vals)+1)
	for k, val2 := range v.Vals {
		vals[k] = val2
	}
	vals[key] = val
	return &Object{Org: v.Org, Keys: keys, Vals: vals}
}

// WithoutKey returns a new Object with key removed, if present.
func (v *Object) WithoutKey(key string) *Object {
	if _, ok := v.Vals[key]; !ok {
		return v
	}
	keys := make([]string, 0, len(v.Keys)-1)
	for _, k := range v.Keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	vals := make(map[string]Value, len(v.Vals)-1)
	for k, val := range v.Vals {
		if k != key {
			vals[k] = val
		}
	}
	return &Object{Org: v.Org, Keys: keys, Vals: vals}
}

// ObjectBuilder assembles an Object incrementally. Strictly local to
// the parser: it becomes an immutable Object only at Build, and is
// never itself exposed as a Value (spec §9 "Mutable builders for parse").
type ObjectBuilder struct {
	keys []string
	vals map[string]Value
}

func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{vals: map[string]Value{}}
}

// Set stores val at key, appending key to the insertion order only the
// first time it is seen. Later calls with the same key overwrite the
// value but keep the original position, matching HOCON's "duplicate
// key merges with earlier" semantics operating on a fixed slot.
func (b *ObjectBuilder) Set(key string, val Value) {
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = val
}

// Get returns the value currently set at key, used by the parser to
// read back a value it must merge a new assignment into.
func (b *ObjectBuilder) Get(key string) (Value, bool) {
	v, ok := b.vals[key]
	return v, ok
}

func (b *ObjectBuilder) Len() int { return len(b.keys) }

func (b *ObjectBuilder) Build(o Origin) *Object {
	return NewObject(o, b.keys, b.vals)
}
