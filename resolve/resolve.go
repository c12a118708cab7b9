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

// Package resolve turns an unresolved value.Value tree into a fully
// resolved one by substituting every Reference with the value found
// at its path and collapsing every DelayedMerge/DelayedMergeObject and
// Concatenation node left behind (spec §4.4). Grounded on the
// fixpoint, cycle-detecting walk of original_source's ResolveContext
// (config_resolve_context.cc/.h, resolver.cc), re-expressed as a
// straightforward recursive tree walk over the closed value.Value
// variant set instead of C++'s visitor machinery.
package resolve

import (
	"os"

	"hocon.sh/go/herrors"
	"hocon.sh/go/merge"
	"hocon.sh/go/path"
	"hocon.sh/go/token"
	"hocon.sh/go/value"
)

// Options controls how Resolve substitutes references (spec §4.4).
type Options struct {
	// UseSystemEnvironment makes a single-segment substitution that
	// cannot be found in the document fall back to the matching
	// process environment variable.
	UseSystemEnvironment bool
	// AllowUnresolved leaves any substitution that cannot be found as
	// a Reference node instead of raising an UnresolvedSubstitution
	// error. Required substitutions used by a partial/staged resolve.
	AllowUnresolved bool
}

// context carries the state shared across one Resolve call: the full
// original tree substitutions are looked up against, and the set of
// paths currently being substituted or resolved, so a reference cycle
// (a = ${b}, b = ${a}) is reported instead of looping forever.
type context struct {
	opts     Options
	root     value.Value
	inFlight map[string]bool

	// replacements holds, per dotted path key, a LIFO stack of the
	// merge-stack layers still below the layer currently being
	// resolved for that path (spec §4.4 "self-referential
	// substitutions in merge stacks" / "skipping"). While resolveStack
	// is working through a DelayedMerge[Object] for path P, a
	// Reference to P encountered anywhere inside the layer being
	// resolved must not re-enter the whole stack (that would either
	// loop forever or falsely report a cycle); it must instead resolve
	// to the merge of the layers below the current one.
	replacements map[string][][]value.Value

	// restrictTo is non-nil while resolution is restricted to the
	// branches on the way to a single target path (spec §4.4 "Partial
	// resolution / restrictedToChild", grounded on original_source's
	// ResolveContext::isRestrictedToChild/unrestricted as exercised by
	// simple_config_list.cc and config_concatenation.cc). nil means
	// every branch is resolved, the ordinary full-document Resolve.
	restrictTo *path.Path
}

// Resolve walks root, replacing every Reference with the value at its
// path (looked up against root itself, so substitutions can reach any
// sibling, ancestor, or the document root) and collapsing every
// DelayedMerge/DelayedMergeObject/Concatenation node once its pieces
// are concrete (spec §4.4). The returned tree satisfies
// value.Resolved unless opts.AllowUnresolved left references in place.
func Resolve(root value.Value, opts Options) (value.Value, error) {
	ctx := &context{opts: opts, root: root, inFlight: map[string]bool{}, replacements: map[string][][]value.Value{}}
	return ctx.resolve(root, path.Path{})
}

// ResolveChild resolves root the way Resolve does, but restricted to
// the branches on the way to target: an Object field whose path is
// not a prefix of target is left exactly as found, unresolved,
// instead of being walked (spec §4.4 "Partial resolution /
// restrictedToChild"). Once the walk reaches target itself, the
// subtree rooted there is resolved in full, same as an ordinary
// Resolve would. Useful for a caller that only wants a single path
// out of a large document and would rather not pay to resolve
// branches it will never read.
func ResolveChild(root value.Value, opts Options, target path.Path) (value.Value, error) {
	ctx := &context{opts: opts, root: root, inFlight: map[string]bool{}, replacements: map[string][][]value.Value{}, restrictTo: &target}
	return ctx.resolve(root, path.Path{})
}

func (c *context) resolve(v value.Value, at path.Path) (value.Value, error) {
	switch t := v.(type) {
	case *value.NullValue, *value.BoolValue, *value.IntValue, *value.LongValue, *value.DoubleValue, *value.StringValue:
		return v, nil
	case *value.List:
		return c.resolveList(t, at)
	case *value.Object:
		return c.resolveObject(t, at)
	case *value.Reference:
		return c.resolveReference(t, at)
	case *value.Concat:
		return c.resolveConcat(t, at)
	case *value.DelayedMerge:
		return c.resolveStack(t.Stack, t.Org, at)
	case *value.DelayedMergeObject:
		return c.resolveStack(t.Stack, t.Org, at)
	default:
		return nil, herrors.NewBugOrBroken("resolve: unhandled value kind %s", v.Kind())
	}
}

func (c *context) resolveList(l *value.List, at path.Path) (value.Value, error) {
	if c.restrictTo != nil {
		// Lists hold no object children a restricted walk could still
		// be routing through on its way to target, so there is nothing
		// to do but leave the list exactly as found (spec §4.4).
		return l, nil
	}
	out := make([]value.Value, 0, len(l.Elems))
	for _, e := range l.Elems {
		r, err := c.resolve(e, at)
		if err != nil {
			return nil, err
		}
		if isAbsent(r) {
			continue
		}
		out = append(out, r)
	}
	return value.NewList(l.Org, out), nil
}

func (c *context) resolveObject(o *value.Object, at path.Path) (value.Value, error) {
	b := value.NewObjectBuilder()
	var rangeErr error
	o.Range(func(k string, v value.Value) bool {
		childPath := path.New(k)
		if !at.IsEmpty() {
			childPath = at.Append(k)
		}
		if c.restrictTo != nil && !c.restrictTo.HasPrefix(childPath) {
			// Not on the way to the restricted target: leave this
			// field exactly as found, unresolved (spec §4.4).
			b.Set(k, v)
			return true
		}
		restore := c.restrictTo
		if c.restrictTo != nil && childPath.Equal(*c.restrictTo) {
			// Reached the target itself: resolve its subtree in full.
			c.restrictTo = nil
		}
		// Mark the field itself in flight, so a self-reference inside it
		// that no merge stack covers finds no earlier value.
		key := childPath.String()
		wasInFlight := c.inFlight[key]
		c.inFlight[key] = true
		r, err := c.resolve(v, childPath)
		if !wasInFlight {
			delete(c.inFlight, key)
		}
		c.restrictTo = restore
		if err != nil {
			rangeErr = err
			return false
		}
		if isAbsent(r) {
			return true
		}
		b.Set(k, r)
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return b.Build(o.Org), nil
}

// isAbsent reports whether a resolved value is the internal sentinel
// standing in for an optional substitution that found nothing -- such
// a value is dropped from its enclosing Object/List/Concatenation
// entirely, rather than kept as an explicit null (spec §4.4 "optional
// substitutions"). The sentinel's Description is a package-private
// string no parsed document can ever produce, so this never mistakes
// a user-written `null` for one.
func isAbsent(v value.Value) bool {
	n, ok := v.(*value.NullValue)
	return ok && n.Org.Description == absentMarker
}

const absentMarker = "hocon: absent optional substitution"

func (c *context) resolveReference(ref *value.Reference, at path.Path) (value.Value, error) {
	key := ref.Path.String()

	if reps := c.replacements[key]; len(reps) > 0 {
		below := reps[len(reps)-1]
		if len(below) == 0 {
			// The bottom-most layer of a self-referential merge stack
			// has nothing further to fall back to: a = ${a} with no
			// earlier "a" is unresolvable, not a value.
			if ref.Optional {
				return value.NewNull(value.Origin{Description: absentMarker, Line: -1}), nil
			}
			pos := token.Position{Filename: ref.Org.Filename, Line: ref.Org.Line}
			return nil, herrors.NewUnresolvedSubstitution(
				pos, key,
				"self-referential substitution ${%s} has no earlier value to fall back to", key)
		}
		resolved, err := c.resolveStack(below, ref.Org, ref.Path)
		if err != nil {
			return nil, err
		}
		return resolved.WithOrigin(ref.Org), nil
	}

	if c.inFlight[key] {
		// A self-reference to a path being resolved that no tracked merge
		// stack covers (e.g. a bare `a = ${?a} [2]`, where `+=` desugaring
		// leaves no earlier layer at all) has no earlier value to fall
		// back to, same as the empty-`below` case above.
		if ref.Optional {
			return value.NewNull(value.Origin{Description: absentMarker, Line: -1}), nil
		}
		pos := token.Position{Filename: ref.Org.Filename, Line: ref.Org.Line}
		return nil, herrors.NewUnresolvedSubstitution(
			pos, key,
			"self-referential substitution ${%s} has no earlier value to fall back to", key)
	}

	found, ok := c.lookup(c.root, ref.Path)
	if !ok && c.opts.UseSystemEnvironment && ref.Path.Len() == 1 {
		if envVal, present := os.LookupEnv(ref.Path.First()); present {
			found = value.NewString(ref.Org, envVal)
			ok = true
		}
	}
	if !ok {
		if ref.Optional {
			return value.NewNull(value.Origin{Description: absentMarker, Line: -1}), nil
		}
		if c.opts.AllowUnresolved {
			return ref, nil
		}
		pos := token.Position{Filename: ref.Org.Filename, Line: ref.Org.Line}
		return nil, herrors.NewUnresolvedSubstitution(
			pos, key,
			"could not resolve substitution ${%s} to a value", key)
	}

	c.inFlight[key] = true
	resolved, err := c.resolve(found, ref.Path)
	delete(c.inFlight, key)
	if err != nil {
		return nil, err
	}
	return resolved.WithOrigin(ref.Org), nil
}

// resolveConcat resolves every piece of a Concatenation and drops any
// piece that resolved to nothing (an optional substitution that found
// no value), as spec §4.4 and §8's "boundary cases" require, before
// re-running the fold rules on whatever pieces remain. A concatenation
// that drops down to nothing at all (every piece was an absent
// optional reference) resolves to the same absent sentinel, so its
// enclosing Object/List/Concatenation omits it in turn.
func (c *context) resolveConcat(concat *value.Concat, at path.Path) (value.Value, error) {
	if c.restrictTo != nil {
		// Folding a concatenation needs every piece's concrete value,
		// so a restricted walk passing through one unrestricts itself
		// for it, same as original_source's config_concatenation.cc
		// ("to concat into a string we have to do a full resolve, so
		// unrestrict the context").
		restore := c.restrictTo
		c.restrictTo = nil
		defer func() { c.restrictTo = restore }()
	}
	var resolvedPieces []value.Value
	var gaps []int
	for i, p := range concat.Pieces {
		r, err := c.resolve(p, at)
		if err != nil {
			return nil, err
		}
		if isAbsent(r) {
			continue
		}
		if len(resolvedPieces) > 0 {
			gap := 0
			if i > 0 && i-1 < len(concat.Gaps) {
				gap = concat.Gaps[i-1]
			}
			gaps = append(gaps, gap)
		}
		resolvedPieces = append(resolvedPieces, r)
	}
	if len(resolvedPieces) == 0 {
		return value.NewNull(value.Origin{Description: absentMarker, Line: -1}), nil
	}
	return foldResolved(concat.Org, resolvedPieces, gaps)
}

// resolveStack resolves every element of a DelayedMerge[Object] stack
// and composes them left to right (stack[0] is primary) via
// merge.WithFallback, which is guaranteed to collapse fully now that
// every element is concrete (spec §4.3, §4.4).
func (c *context) resolveStack(stack []value.Value, origin value.Origin, at path.Path) (value.Value, error) {
	key := at.String()
	resolved := make([]value.Value, len(stack))
	for i, v := range stack {
		// Any reference to `at` (this merge's own path) encountered
		// while resolving layer i must see only the layers below i,
		// never this layer or anything above it (spec §4.4 "skipping").
		c.replacements[key] = append(c.replacements[key], stack[i+1:])
		r, err := c.resolve(v, at)
		c.replacements[key] = c.replacements[key][:len(c.replacements[key])-1]
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}
	result := resolved[0]
	for _, fallback := range resolved[1:] {
		result = merge.WithFallback(result, fallback)
	}
	return result.WithOrigin(origin), nil
}

// lookup finds p within root, descending through Object fields. A
// DelayedMerge/DelayedMergeObject encountered partway through (an
// unresolved duplicate-key merge sitting above the path being looked
// up) is resolved on the spot, at the path it actually sits at, so the
// remaining segments can still be followed and so any self-reference
// nested inside it keys into c.replacements under the same path
// resolveObject would have used for it; the caller re-resolves
// whatever value is ultimately found, so doing this resolution twice
// along shared paths is harmless.
func (c *context) lookup(root value.Value, p path.Path) (value.Value, bool) {
	cur := root
	at := path.Path{}
	for _, key := range p.Keys() {
		if cur.Kind() == value.DelayedMergeKind || cur.Kind() == value.DelayedMergeObjectKind {
			resolved, err := c.resolve(cur, at)
			if err != nil {
				return nil, false
			}
			cur = resolved
		}
		obj, ok := cur.(*value.Object)
		if !ok {
			return nil, false
		}
		next, ok := obj.Get(key)
		if !ok {
			return nil, false
		}
		cur = next
		if at.IsEmpty() {
			at = path.New(key)
		} else {
			at = at.Append(key)
		}
	}
	return cur, true
}
