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

// Package config is the public façade: parsing a document into a
// Config, resolving it, and reading typed values back out along
// dotted-key paths (spec §4.7). Grounded on original_source's
// SimpleConfig (config.cc/simple_config.cc) for the accessor surface,
// and on cue-lang/cue's top-level cue.Value for the idiom of a small
// immutable wrapper type offering chained typed getters over an
// internal tree.
package config

import (
	"os"
	"path/filepath"
	"time"

	"hocon.sh/go/herrors"
	"hocon.sh/go/merge"
	"hocon.sh/go/parser"
	"hocon.sh/go/path"
	"hocon.sh/go/render"
	"hocon.sh/go/resolve"
	"hocon.sh/go/units"
	"hocon.sh/go/validate"
	"hocon.sh/go/value"
)

// Config wraps a value.Value tree, resolved or not, as the entry point
// for the rest of this module.
type Config struct {
	root value.Value
}

// ParseString parses src (named filename for diagnostics) into an
// unresolved Config.
func ParseString(filename, src string, opts ...parser.Option) (*Config, error) {
	v, err := parser.ParseString(filename, src, opts...)
	if err != nil {
		return nil, err
	}
	return &Config{root: v}, nil
}

// ParseFile reads and parses filename into an unresolved Config, with
// its directory set as the base for any `include` statement it
// contains (spec §4.6).
func ParseFile(filename string, opts ...parser.Option) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, herrors.NewIO(err, "reading %s", filename)
	}
	allOpts := append(append([]parser.Option(nil), parser.WithBaseDir(filepath.Dir(filename))), opts...)
	v, err := parser.ParseBytes(filename, data, allOpts...)
	if err != nil {
		return nil, err
	}
	return &Config{root: v}, nil
}

// FromValue wraps an already-built value.Value tree, e.g. one produced
// by WithFallback composition, as a Config.
func FromValue(v value.Value) *Config { return &Config{root: v} }

// Root returns the Config's underlying value tree.
func (c *Config) Root() value.Value { return c.root }

// ResolveOptions is a thin rename of resolve.Options kept at this
// package's surface so callers never need to import the resolve
// package directly.
type ResolveOptions = resolve.Options

// Resolve substitutes every `${...}` reference in c and collapses
// every pending merge, returning a new, fully resolved Config (spec
// §4.4). c itself is left unmodified.
func (c *Config) Resolve(opts ResolveOptions) (*Config, error) {
	v, err := resolve.Resolve(c.root, opts)
	if err != nil {
		return nil, err
	}
	return &Config{root: v}, nil
}

// MustResolve is Resolve with the default options (no environment
// fallback, no tolerance for unresolved substitutions).
func (c *Config) MustResolve() (*Config, error) {
	return c.Resolve(ResolveOptions{})
}

// ResolveOnlyPath resolves c the way Resolve does, but restricted to
// the branches on the way to expr (spec §4.4 "Partial resolution /
// restrictedToChild"): every other branch is returned exactly as
// parsed, unresolved. Useful for a caller that only needs a single
// setting out of a large document and would rather not pay to resolve
// the rest of it.
func (c *Config) ResolveOnlyPath(expr string, opts ResolveOptions) (*Config, error) {
	p, err := path.Parse(expr)
	if err != nil {
		return nil, herrors.NewBadPath("%s", err.Error())
	}
	v, err := resolve.ResolveChild(c.root, opts, p)
	if err != nil {
		return nil, err
	}
	return &Config{root: v}, nil
}

// WithFallback returns a new Config whose values come from c first,
// falling back to other wherever c is silent (spec §4.3). Either side
// may still be unresolved; Resolve can be deferred until after the
// composition, same as the underlying merge package.
func (c *Config) WithFallback(other *Config) *Config {
	return &Config{root: merge.WithFallback(c.root, other.root)}
}

// WithOnlyPath returns a Config containing only the subtree at p
// (spec §4.7 "scoped view"), or an empty object if p is absent.
func (c *Config) WithOnlyPath(p path.Path) *Config {
	v, ok := lookup(c.root, p)
	if !ok {
		return &Config{root: value.EmptyObject(value.UnknownOrigin)}
	}
	return &Config{root: rewrap(p, v)}
}

// WithoutPath returns a Config with the value at p removed, or c
// unchanged if p was not present.
func (c *Config) WithoutPath(p path.Path) *Config {
	obj, ok := c.root.(*value.Object)
	if !ok {
		return c
	}
	root, changed := withoutPath(obj, p.Keys())
	if !changed {
		return c
	}
	return &Config{root: root}
}

func withoutPath(o *value.Object, keys []string) (*value.Object, bool) {
	head := keys[0]
	existing, ok := o.Get(head)
	if !ok {
		return o, false
	}
	if len(keys) == 1 {
		return o.WithoutKey(head), true
	}
	childObj, ok := existing.(*value.Object)
	if !ok {
		return o, false
	}
	newChild, changed := withoutPath(childObj, keys[1:])
	if !changed {
		return o, false
	}
	return o.WithKey(head, newChild), true
}

func rewrap(p path.Path, leaf value.Value) value.Value {
	keys := p.Keys()
	v := leaf
	for i := len(keys) - 1; i >= 0; i-- {
		v = value.NewObject(value.UnknownOrigin, []string{keys[i]}, map[string]value.Value{keys[i]: v})
	}
	return v
}

// HasPath reports whether expr resolves to a present, non-null value.
func (c *Config) HasPath(expr string) bool {
	p, err := path.Parse(expr)
	if err != nil {
		return false
	}
	v, ok := lookup(c.root, p)
	if !ok {
		return false
	}
	_, isNull := v.(*value.NullValue)
	return !isNull
}

// CheckValid compares c (which must be resolved) against reference
// and returns a *herrors.ValidationFailed describing every missing or
// mistyped path (spec §4.8). With no restrictPaths every path in
// reference is checked; given one or more, only the subtree reference
// holds at each of those paths is checked, and every other branch of
// reference is ignored.
func (c *Config) CheckValid(reference *Config, restrictPaths ...path.Path) error {
	return validate.CheckValid(reference.root, c.root, restrictPaths...)
}

// Render serializes c (spec §4.9).
func (c *Config) Render(opts render.Options) (string, error) {
	return render.Render(c.root, opts)
}

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

// pathSegmentString renders the path reached so far for a WrongType
// error raised partway through a lookup, "<root>" when nothing has
// been descended into yet.
func pathSegmentString(p path.Path) string {
	if p.IsEmpty() {
		return "<root>"
	}
	return p.String()
}

func (c *Config) get(expr string) (value.Value, error) {
	p, err := path.Parse(expr)
	if err != nil {
		return nil, herrors.NewBadPath("%s", err.Error())
	}
	cur := c.root
	for i, key := range p.Keys() {
		obj, ok := cur.(*value.Object)
		if !ok {
			seg := pathSegmentString(p.Subpath(0, i))
			return nil, herrors.NewWrongType(seg, "object", cur.Kind().String(),
				"%s: expecting an object, found %s", seg, cur.Kind())
		}
		next, ok := obj.Get(key)
		if !ok {
			return nil, herrors.NewMissing(expr, "no configuration setting found for key %q", expr)
		}
		cur = next
	}
	if _, isNull := cur.(*value.NullValue); isNull {
		return nil, herrors.NewNull(expr)
	}
	return cur, nil
}

// GetString returns the string at expr, folding a concrete non-string
// scalar to its text form the same way a Concatenation would (spec
// §4.7 "GetString accepts any resolved scalar").
func (c *Config) GetString(expr string) (string, error) {
	v, err := c.get(expr)
	if err != nil {
		return "", err
	}
	if s, ok := value.TextOf(v); ok {
		return s, nil
	}
	return "", herrors.NewWrongType(expr, "string", v.Kind().String(), "%s: expecting a string, found %s", expr, v.Kind())
}

// GetBoolean returns the boolean at expr.
func (c *Config) GetBoolean(expr string) (bool, error) {
	v, err := c.get(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(*value.BoolValue)
	if !ok {
		return false, herrors.NewWrongType(expr, "boolean", v.Kind().String(), "%s: expecting a boolean, found %s", expr, v.Kind())
	}
	return b.Val, nil
}

// GetInt returns the int32 at expr, numerically coercing a Long or
// Double setting the same way Int/Long/Double coerce against each
// other elsewhere (spec §4.7 "numeric coercion").
func (c *Config) GetInt(expr string) (int32, error) {
	v, err := c.get(expr)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case *value.IntValue:
		return t.Val, nil
	case *value.LongValue:
		return int32(t.Val), nil
	case *value.DoubleValue:
		i, err := t.Val.Int64()
		if err != nil {
			return 0, herrors.NewBadValue("%s: %s does not fit in an int", expr, t.Text)
		}
		return int32(i), nil
	}
	return 0, herrors.NewWrongType(expr, "int", v.Kind().String(), "%s: expecting a number, found %s", expr, v.Kind())
}

// GetLong returns the int64 at expr, numerically coercing an Int or
// Double setting (spec §4.7 "numeric coercion").
func (c *Config) GetLong(expr string) (int64, error) {
	v, err := c.get(expr)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case *value.IntValue:
		return int64(t.Val), nil
	case *value.LongValue:
		return t.Val, nil
	case *value.DoubleValue:
		i, err := t.Val.Int64()
		if err != nil {
			return 0, herrors.NewBadValue("%s: %s does not fit in a long", expr, t.Text)
		}
		return i, nil
	}
	return 0, herrors.NewWrongType(expr, "long", v.Kind().String(), "%s: expecting a number, found %s", expr, v.Kind())
}

// GetDouble returns the float64 at expr, accepting any numeric kind.
func (c *Config) GetDouble(expr string) (float64, error) {
	v, err := c.get(expr)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case *value.IntValue:
		return float64(t.Val), nil
	case *value.LongValue:
		return float64(t.Val), nil
	case *value.DoubleValue:
		f, err := t.Val.Float64()
		if err != nil {
			return 0, herrors.NewBadValue("%s: %s does not fit in a float64", expr, t.Text)
		}
		return f, nil
	}
	return 0, herrors.NewWrongType(expr, "number", v.Kind().String(), "%s: expecting a number, found %s", expr, v.Kind())
}

// GetDuration parses the string or bare-number setting at expr as a
// HOCON duration (spec §4.5).
func (c *Config) GetDuration(expr string) (time.Duration, error) {
	s, err := c.GetString(expr)
	if err != nil {
		return 0, err
	}
	return units.ParseDuration(s)
}

// GetBytes parses the string or bare-number setting at expr as a HOCON
// size-in-bytes (spec §4.5).
func (c *Config) GetBytes(expr string) (int64, error) {
	s, err := c.GetString(expr)
	if err != nil {
		return 0, err
	}
	return units.ParseBytes(s)
}

// GetConfig returns the Object at expr as a nested Config.
func (c *Config) GetConfig(expr string) (*Config, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, herrors.NewWrongType(expr, "object", v.Kind().String(), "%s: expecting an object, found %s", expr, v.Kind())
	}
	return &Config{root: obj}, nil
}

// GetObject returns the raw Object value at expr (spec §4.7
// `getObject`), for callers that want the value tree itself rather
// than a wrapped Config.
func (c *Config) GetObject(expr string) (*value.Object, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*value.Object)
	if !ok {
		return nil, herrors.NewWrongType(expr, "object", v.Kind().String(), "%s: expecting an object, found %s", expr, v.Kind())
	}
	return obj, nil
}

// GetList returns the raw elements of the List at expr (spec §4.7
// `getList`), unconverted.
func (c *Config) GetList(expr string) ([]value.Value, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, herrors.NewWrongType(expr, "list", v.Kind().String(), "%s: expecting a list, found %s", expr, v.Kind())
	}
	return l.Elems, nil
}

// GetStringList returns the elements of the List at expr as strings.
func (c *Config) GetStringList(expr string) ([]string, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, herrors.NewWrongType(expr, "list", v.Kind().String(), "%s: expecting a list, found %s", expr, v.Kind())
	}
	out := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		s, ok := value.TextOf(e)
		if !ok {
			return nil, herrors.NewWrongType(expr, "string", e.Kind().String(), "%s[%d]: expecting a string, found %s", expr, i, e.Kind())
		}
		out[i] = s
	}
	return out, nil
}

// GetBooleanList returns the elements of the List at expr as bools.
func (c *Config) GetBooleanList(expr string) ([]bool, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, herrors.NewWrongType(expr, "list", v.Kind().String(), "%s: expecting a list, found %s", expr, v.Kind())
	}
	out := make([]bool, len(l.Elems))
	for i, e := range l.Elems {
		b, ok := e.(*value.BoolValue)
		if !ok {
			return nil, herrors.NewWrongType(expr, "boolean", e.Kind().String(), "%s[%d]: expecting a boolean, found %s", expr, i, e.Kind())
		}
		out[i] = b.Val
	}
	return out, nil
}

// GetIntList returns the elements of the List at expr as int32s,
// numerically coercing Long/Double elements (spec §4.7).
func (c *Config) GetIntList(expr string) ([]int32, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, herrors.NewWrongType(expr, "list", v.Kind().String(), "%s: expecting a list, found %s", expr, v.Kind())
	}
	out := make([]int32, len(l.Elems))
	for i, e := range l.Elems {
		n, ok := intOf(e)
		if !ok {
			return nil, herrors.NewWrongType(expr, "int", e.Kind().String(), "%s[%d]: expecting a number, found %s", expr, i, e.Kind())
		}
		out[i] = int32(n)
	}
	return out, nil
}

// GetLongList returns the elements of the List at expr as int64s,
// numerically coercing Int/Double elements (spec §4.7).
func (c *Config) GetLongList(expr string) ([]int64, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, herrors.NewWrongType(expr, "list", v.Kind().String(), "%s: expecting a list, found %s", expr, v.Kind())
	}
	out := make([]int64, len(l.Elems))
	for i, e := range l.Elems {
		n, ok := intOf(e)
		if !ok {
			return nil, herrors.NewWrongType(expr, "long", e.Kind().String(), "%s[%d]: expecting a number, found %s", expr, i, e.Kind())
		}
		out[i] = n
	}
	return out, nil
}

// GetDoubleList returns the elements of the List at expr as float64s,
// accepting any numeric kind (spec §4.7).
func (c *Config) GetDoubleList(expr string) ([]float64, error) {
	v, err := c.get(expr)
	if err != nil {
		return nil, err
	}
	l, ok := v.(*value.List)
	if !ok {
		return nil, herrors.NewWrongType(expr, "list", v.Kind().String(), "%s: expecting a list, found %s", expr, v.Kind())
	}
	out := make([]float64, len(l.Elems))
	for i, e := range l.Elems {
		switch t := e.(type) {
		case *value.IntValue:
			out[i] = float64(t.Val)
		case *value.LongValue:
			out[i] = float64(t.Val)
		case *value.DoubleValue:
			f, err := t.Val.Float64()
			if err != nil {
				return nil, herrors.NewBadValue("%s[%d]: %s does not fit in a float64", expr, i, t.Text)
			}
			out[i] = f
		default:
			return nil, herrors.NewWrongType(expr, "number", e.Kind().String(), "%s[%d]: expecting a number, found %s", expr, i, e.Kind())
		}
	}
	return out, nil
}

// intOf numerically coerces a scalar Int/Long/Double value to int64,
// the shared core of GetIntList/GetLongList element coercion.
func intOf(v value.Value) (int64, bool) {
	switch t := v.(type) {
	case *value.IntValue:
		return int64(t.Val), true
	case *value.LongValue:
		return t.Val, true
	case *value.DoubleValue:
		i, err := t.Val.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
