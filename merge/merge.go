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

// Package merge implements HOCON's asymmetric fallback composition
// ("withFallback", spec §4.3): primary wins, fallback only supplies
// what primary omits. Grounded on the merge-stack discipline described
// in original_source's AbstractConfigValue::withFallback family
// (config_concatenation.cc, config_delayed_merge.cc,
// simple_config_object.cc) and adapted to operate over the closed
// value.Value variant set instead of C++ virtual dispatch.
package merge

import "hocon.sh/go/value"

// WithFallback composes primary over fallback. Two Objects merge
// recursively, field by field. Otherwise, if primary ignores fallbacks
// outright (spec §3.3, value.IgnoresFallbacks) fallback is discarded
// entirely. If either side is unmergeable (still carries a Reference
// or a pending merge), the result is a flat DelayedMerge or
// DelayedMergeObject stack that the resolver will collapse once both
// sides are concrete; any other pairing of concrete values has primary
// replace fallback outright.
func WithFallback(primary, fallback value.Value) value.Value {
	po, primaryIsObj := primary.(*value.Object)
	fo, fallbackIsObj := fallback.(*value.Object)
	if primaryIsObj && fallbackIsObj {
		return mergeObjects(po, fo)
	}
	if value.IgnoresFallbacks(primary) {
		return primary
	}
	if primary.Kind().IsUnmergeable() || fallback.Kind().IsUnmergeable() {
		return delay(primary, fallback)
	}
	return primary
}

// delay builds the flat merge stack standing in for a fallback
// composition that can't be resolved yet. It picks the Object variant
// when the bottom element of the flattened stack is an Object
// (spec §3.3), and DelayedMerge otherwise.
func delay(primary, fallback value.Value) value.Value {
	stack := value.Flatten([]value.Value{primary, fallback})
	origin := value.MergeOrigins(primary.Origin(), fallback.Origin())
	if looksLikeObject(stack[len(stack)-1]) {
		return value.NewDelayedMergeObject(origin, stack)
	}
	return value.NewDelayedMerge(origin, stack)
}

func looksLikeObject(v value.Value) bool {
	switch v.(type) {
	case *value.Object, *value.DelayedMergeObject:
		return true
	}
	return false
}

// mergeObjects merges two concrete objects: primary's keys keep their
// order and values, recursively merged against any same-named
// fallback field; fallback-only keys are appended afterward in
// fallback's order (spec §4.3 "object merge").
func mergeObjects(primary, fallback *value.Object) *value.Object {
	origin := value.MergeOrigins(primary.Org, fallback.Org)
	b := value.NewObjectBuilder()
	primary.Range(func(k string, v value.Value) bool {
		if fv, ok := fallback.Get(k); ok {
			b.Set(k, WithFallback(v, fv))
		} else {
			b.Set(k, v)
		}
		return true
	})
	fallback.Range(func(k string, v value.Value) bool {
		if _, ok := primary.Get(k); !ok {
			b.Set(k, v)
		}
		return true
	})
	return b.Build(origin)
}
