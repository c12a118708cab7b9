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
	"github.com/cockroachdb/apd/v3"

	"hocon.sh/go/path"
)

// Value is the interface satisfied by every variant in the closed
// AbstractValue set. Concrete types dispatch on a Kind tag rather than
// through virtual method chains (spec §9 "Visitor dispatch").
type Value interface {
	Kind() Kind
	Origin() Origin
	// WithOrigin returns a shallow copy of the value with Origin
	// replaced. Used by the merger when combining origins.
	WithOrigin(Origin) Value

	hoconValue() // unexported marker: closes the variant set to this package
}

// --- Null ---

type NullValue struct {
	Org Origin
}

func NewNull(o Origin) *NullValue { return &NullValue{Org: o} }

func (v *NullValue) Kind() Kind          { return NullKind }
func (v *NullValue) Origin() Origin      { return v.Org }
func (v *NullValue) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*NullValue) hoconValue() {}

// --- Boolean ---

type BoolValue struct {
	Org Origin
	Val bool
}

func NewBool(o Origin, val bool) *BoolValue { return &BoolValue{Org: o, Val: val} }

func (v *BoolValue) Kind() Kind     { return BoolKind }
func (v *BoolValue) Origin() Origin { return v.Org }
func (v *BoolValue) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*BoolValue) hoconValue() {}

// --- Int (32-bit) ---

type IntValue struct {
	Org  Origin
	Val  int32
	Text string // original textual form, for round-trip rendering
}

func NewInt(o Origin, val int32, text string) *IntValue {
	return &IntValue{Org: o, Val: val, Text: text}
}

func (v *IntValue) Kind() Kind     { return IntKind }
func (v *IntValue) Origin() Origin { return v.Org }
func (v *IntValue) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*IntValue) hoconValue() {}

// --- Long (64-bit) ---

type LongValue struct {
	Org  Origin
	Val  int64
	Text string
}

func NewLong(o Origin, val int64, text string) *LongValue {
	return &LongValue{Org: o, Val: val, Text: text}
}

func (v *LongValue) Kind() Kind     { return LongKind }
func (v *LongValue) Origin() Origin { return v.Org }
func (v *LongValue) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*LongValue) hoconValue() {}

// --- Double ---

// DoubleValue keeps an exact apd.Decimal plus the original source text
// so a number round-trips through parse/render without drifting
// (spec §3.3 "numbers preserve their original textual form"), the
// same reason internal/core/convert keeps decimals for CUE's own
// numbers. This is independent of units.ParseDuration/ParseBytes,
// which operate on raw accessor strings and pick float64 vs apd.Decimal
// per spec §4.5's own rounding requirements (see units package docs).
type DoubleValue struct {
	Org  Origin
	Val  *apd.Decimal
	Text string
}

func NewDouble(o Origin, val *apd.Decimal, text string) *DoubleValue {
	return &DoubleValue{Org: o, Val: val, Text: text}
}

func (v *DoubleValue) Kind() Kind     { return DoubleKind }
func (v *DoubleValue) Origin() Origin { return v.Org }
func (v *DoubleValue) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*DoubleValue) hoconValue() {}

// --- String ---

type StringValue struct {
	Org Origin
	Val string
}

func NewString(o Origin, val string) *StringValue { return &StringValue{Org: o, Val: val} }

func (v *StringValue) Kind() Kind     { return StringKind }
func (v *StringValue) Origin() Origin { return v.Org }
func (v *StringValue) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*StringValue) hoconValue() {}

// --- Reference (unresolved substitution) ---

// Reference is a `${path}` or `${?path}` substitution expression
// (spec §3.3). It is never resolved in place; the resolver produces a
// replacement value.
type Reference struct {
	Org      Origin
	Path     path.Path
	Optional bool
}

func NewReference(o Origin, p path.Path, optional bool) *Reference {
	return &Reference{Org: o, Path: p, Optional: optional}
}

func (v *Reference) Kind() Kind     { return ReferenceKind }
func (v *Reference) Origin() Origin { return v.Org }
func (v *Reference) WithOrigin(o Origin) Value {
	cp := *v
	cp.Org = o
	return &cp
}
func (*Reference) hoconValue() {}

// String renders the substitution expression, e.g. "${?a.b}".
func (v *Reference) String() string {
	if v.Optional {
		return "${?" + v.Path.String() + "}"
	}
	return "${" + v.Path.String() + "}"
}
