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

// Package render serializes a value.Value tree back to text, either
// as strict JSON or as HOCON (spec §4.9). Grounded on
// original_source's ConfigRenderOptions/render() family
// (config_render_options.cc, simple_config_object.cc's render
// methods), with indentation handled the way cue/format builds up
// output incrementally rather than via encoding/json's reflection.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"hocon.sh/go/herrors"
	"hocon.sh/go/path"
	"hocon.sh/go/value"
)

// Options controls the rendered form (spec §4.9).
type Options struct {
	// JSON renders strict JSON: quoted keys, no comments, no bare
	// top-level object braces omitted.
	JSON bool
	// Comments includes each value's attached Origin comments as
	// preceding '#' lines. Ignored when JSON is set.
	Comments bool
	// OriginComments additionally emits a "# <origin>" trailer comment
	// documenting where each value came from. Ignored when JSON is set.
	OriginComments bool
	// Indent is the number of spaces per nesting level. 2 if zero.
	Indent int
}

func (o Options) indent() int {
	if o.Indent <= 0 {
		return 2
	}
	return o.Indent
}

// Render serializes v per opts. v must be fully resolved
// (value.Resolved) except that, in HOCON mode, an unresolved Reference
// is tolerated and rendered back as "${path}"/"${?path}" -- useful for
// round-tripping a document that was only partially resolved. In JSON
// mode a Reference is an error.
func Render(v value.Value, opts Options) (string, error) {
	var b strings.Builder
	r := &renderer{opts: opts, b: &b}
	if err := r.value(v, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

type renderer struct {
	opts Options
	b    *strings.Builder
}

func (r *renderer) pad(depth int) {
	r.b.WriteString(strings.Repeat(" ", depth*r.opts.indent()))
}

func (r *renderer) value(v value.Value, depth int) error {
	switch t := v.(type) {
	case *value.NullValue:
		r.b.WriteString("null")
	case *value.BoolValue:
		if t.Val {
			r.b.WriteString("true")
		} else {
			r.b.WriteString("false")
		}
	case *value.IntValue:
		r.b.WriteString(t.Text)
	case *value.LongValue:
		r.b.WriteString(t.Text)
	case *value.DoubleValue:
		r.b.WriteString(t.Text)
	case *value.StringValue:
		r.b.WriteString(strconv.Quote(t.Val))
	case *value.List:
		return r.list(t, depth)
	case *value.Object:
		return r.object(t, depth)
	case *value.Reference:
		if r.opts.JSON {
			return herrors.NewWrongType("", "resolved value", "reference", "cannot render an unresolved substitution as JSON")
		}
		r.b.WriteString(t.String())
	case *value.Concat, *value.DelayedMerge, *value.DelayedMergeObject:
		return herrors.NewNotResolved("cannot render an unresolved %s node", v.Kind())
	default:
		return herrors.NewBugOrBroken("render: unhandled value kind %s", v.Kind())
	}
	return nil
}

func (r *renderer) list(l *value.List, depth int) error {
	if l.Len() == 0 {
		r.b.WriteString("[]")
		return nil
	}
	r.b.WriteString("[\n")
	for i, e := range l.Elems {
		r.pad(depth + 1)
		if err := r.value(e, depth+1); err != nil {
			return err
		}
		if i < len(l.Elems)-1 {
			r.b.WriteByte(',')
		}
		r.b.WriteByte('\n')
	}
	r.pad(depth)
	r.b.WriteByte(']')
	return nil
}

func (r *renderer) object(o *value.Object, depth int) error {
	if o.Len() == 0 {
		r.b.WriteString("{}")
		return nil
	}
	r.b.WriteString("{\n")
	keys := o.Keys
	for i, k := range keys {
		fv, _ := o.Get(k)
		r.renderComments(fv, depth+1)
		r.pad(depth + 1)
		r.key(k)
		r.b.WriteString(" : ")
		if err := r.value(fv, depth+1); err != nil {
			return err
		}
		if i < len(keys)-1 {
			r.b.WriteByte(',')
		}
		if r.opts.OriginComments && !r.opts.JSON {
			fmt.Fprintf(r.b, " # %s", fv.Origin().String())
		}
		r.b.WriteByte('\n')
	}
	r.pad(depth)
	r.b.WriteByte('}')
	return nil
}

func (r *renderer) renderComments(v value.Value, depth int) {
	if r.opts.JSON || !r.opts.Comments {
		return
	}
	for _, c := range v.Origin().Comments {
		r.pad(depth)
		r.b.WriteString("# ")
		r.b.WriteString(c)
		r.b.WriteByte('\n')
	}
}

func (r *renderer) key(k string) {
	if r.opts.JSON || needsQuoting(k) {
		r.b.WriteString(strconv.Quote(k))
		return
	}
	r.b.WriteString(k)
}

// needsQuoting mirrors path's own key-quoting rule so a rendered key
// round-trips back through Parse unambiguously (spec §3.1).
func needsQuoting(k string) bool {
	_, err := path.Parse(k)
	if err != nil {
		return true
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return true
		}
	}
	return len(k) == 0 || (k[0] >= '0' && k[0] <= '9') || k[0] == '-'
}

// SortedKeys returns an object's keys sorted lexically, useful for a
// caller that wants deterministic output independent of source order
// (spec §4.9 is otherwise insertion-order-preserving by default).
func SortedKeys(o *value.Object) []string {
	keys := append([]string(nil), o.Keys...)
	sort.Strings(keys)
	return keys
}
