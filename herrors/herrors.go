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

// Package herrors defines the error taxonomy shared across the
// tokenizer, parser, merger, resolver, accessors and validator (spec
// §7). Every exported error type implements the Error interface below,
// modeled on cue/errors: a primary Position, a human Msg, and an
// optional dotted Path into the value tree.
package herrors

import (
	"fmt"
	"sort"
	"strings"

	"hocon.sh/go/token"
)

// Error is the common interface satisfied by every concept-tagged
// error in this package.
type Error interface {
	error
	Position() token.Position
	Path() []string
	Msg() (format string, args []interface{})
}

// Message is an embeddable mixin carrying a printf-style format and its
// arguments, allowing callers to defer rendering. Mirrors cue/errors.Message.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef builds a Message.
func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

func (m *Message) Msg() (string, []interface{}) { return m.format, m.args }

func (m *Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

type base struct {
	Message
	pos  token.Position
	path []string
}

func (b *base) Position() token.Position { return b.pos }
func (b *base) Path() []string           { return b.path }

// Parse is a syntax error encountered by the tokenizer or parser (spec §7).
type Parse struct{ base }

// NewParse creates a Parse error at pos.
func NewParse(pos token.Position, format string, args ...interface{}) *Parse {
	return &Parse{base{Message: NewMessagef(format, args...), pos: pos}}
}

func (e *Parse) Error() string { return fmt.Sprintf("%s: %s", e.pos, e.Message.Error()) }

// UnresolvedSubstitution is a Parse subkind raised by the resolver when a
// required substitution path cannot be found (spec §4.4, §7).
type UnresolvedSubstitution struct {
	base
	SubPath string
}

func NewUnresolvedSubstitution(pos token.Position, path string, format string, args ...interface{}) *UnresolvedSubstitution {
	return &UnresolvedSubstitution{base: base{Message: NewMessagef(format, args...), pos: pos}, SubPath: path}
}

func (e *UnresolvedSubstitution) Error() string {
	return fmt.Sprintf("%s: %s", e.pos, e.Message.Error())
}

// Missing is returned by accessors when a path has no setting (spec §4.7, §7).
type Missing struct {
	base
	Wanted string
}

func NewMissing(path string, format string, args ...interface{}) *Missing {
	return &Missing{base: base{Message: NewMessagef(format, args...), path: []string{path}}, Wanted: path}
}

func (e *Missing) Error() string { return e.Message.Error() }

// Null is returned by accessors when a path resolves to the Null value
// (distinct from Missing per spec §4.7).
type Null struct{ base }

func NewNull(path string) *Null {
	return &Null{base{Message: NewMessagef("%s is null", path), path: []string{path}}}
}

func (e *Null) Error() string { return e.Message.Error() }

// WrongType is a runtime type mismatch, raised by accessors, the
// concatenation folder, and the validator (spec §4.2, §4.7, §4.8).
type WrongType struct {
	base
	Expected, Got string
}

func NewWrongType(path string, expected, got string, format string, args ...interface{}) *WrongType {
	return &WrongType{
		base:     base{Message: NewMessagef(format, args...), path: pathOrNil(path)},
		Expected: expected,
		Got:      got,
	}
}

func (e *WrongType) Error() string { return e.Message.Error() }

func pathOrNil(p string) []string {
	if p == "" {
		return nil
	}
	return []string{p}
}

// BadValue is a syntactically parsed value that failed a semantic
// check, such as an unparsable duration or byte-size string (spec §4.5, §7).
type BadValue struct{ base }

func NewBadValue(format string, args ...interface{}) *BadValue {
	return &BadValue{base{Message: NewMessagef(format, args...)}}
}

func (e *BadValue) Error() string { return e.Message.Error() }

// BadPath is an invalid dotted-key path expression (spec §3.1, §7).
type BadPath struct{ base }

func NewBadPath(format string, args ...interface{}) *BadPath {
	return &BadPath{base{Message: NewMessagef(format, args...)}}
}

func (e *BadPath) Error() string { return e.Message.Error() }

// IO wraps a source-retrieval failure (spec §4.6, §7).
type IO struct {
	base
	Cause error
}

func NewIO(cause error, format string, args ...interface{}) *IO {
	return &IO{base: base{Message: NewMessagef(format, args...)}, Cause: cause}
}

func (e *IO) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message.Error(), e.Cause)
	}
	return e.Message.Error()
}

func (e *IO) Unwrap() error { return e.Cause }

// FileNotFound is a specialization of IO for missing required includes
// (spec §4.6).
type FileNotFound struct{ IO }

func NewFileNotFound(format string, args ...interface{}) *FileNotFound {
	return &FileNotFound{IO{base: base{Message: NewMessagef(format, args...)}}}
}

// NotResolved is raised when an operation (validate, some accessors)
// requires a prior Resolve and the tree still contains unresolved nodes
// (spec §4.4, §4.8, §7).
type NotResolved struct{ base }

func NewNotResolved(format string, args ...interface{}) *NotResolved {
	return &NotResolved{base{Message: NewMessagef(format, args...)}}
}

func (e *NotResolved) Error() string { return e.Message.Error() }

// BugOrBroken signals an invariant violation. Per spec §7 it should
// never be handled by a caller; it exists to make "this should be
// impossible" states loud instead of silent.
type BugOrBroken struct{ base }

func NewBugOrBroken(format string, args ...interface{}) *BugOrBroken {
	return &BugOrBroken{base{Message: NewMessagef(format, args...)}}
}

func (e *BugOrBroken) Error() string { return "bug or broken: " + e.Message.Error() }

// UnsupportedOperation is raised when a mutation is attempted on an
// immutable value (spec §7).
type UnsupportedOperation struct{ base }

func NewUnsupportedOperation(format string, args ...interface{}) *UnsupportedOperation {
	return &UnsupportedOperation{base{Message: NewMessagef(format, args...)}}
}

func (e *UnsupportedOperation) Error() string { return e.Message.Error() }

// TokenizerProblem surfaces a Problem token that the parser advanced past.
type TokenizerProblem struct{ base }

func NewTokenizerProblem(pos token.Position, what string) *TokenizerProblem {
	return &TokenizerProblem{base{Message: NewMessagef("%s", what), pos: pos}}
}

func (e *TokenizerProblem) Error() string { return fmt.Sprintf("%s: %s", e.pos, e.Message.Error()) }

// Problem is one structural difference found by the Validator (spec §4.8).
type Problem struct {
	Path         string
	Position     token.Position
	ExpectedKind string
	GotKind      string
	Kind         string // "missing", "wrong-type", "wrong-element-type"
}

func (p Problem) String() string {
	switch p.Kind {
	case "missing":
		return fmt.Sprintf("%s: %s: should have %s", p.Position, p.Path, p.ExpectedKind)
	case "wrong-element-type":
		return fmt.Sprintf("%s: %s: wrong element type, expecting %s, got %s", p.Position, p.Path, p.ExpectedKind, p.GotKind)
	default:
		return fmt.Sprintf("%s: %s: wrong type, expecting %s, got %s", p.Position, p.Path, p.ExpectedKind, p.GotKind)
	}
}

// ValidationFailed aggregates every Problem found by checkValid
// (spec §4.8), sorted by (line ascending, path ascending).
type ValidationFailed struct {
	base
	Problems []Problem
}

func NewValidationFailed(problems []Problem) *ValidationFailed {
	sorted := make([]Problem, len(problems))
	copy(sorted, problems)
	sort.SliceStable(sorted, func(i, j int) bool {
		if li, lj := sorted[i].Position.Line, sorted[j].Position.Line; li != lj {
			return li < lj
		}
		return sorted[i].Path < sorted[j].Path
	})
	return &ValidationFailed{
		base:     base{Message: NewMessagef("%d problem(s) found", len(sorted))},
		Problems: sorted,
	}
}

func (e *ValidationFailed) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

// List collects parse/tokenizer errors as they're found, mirroring
// cue/errors.List: an accumulator that is itself an error.
type List struct {
	errs []Error
}

func (l *List) Add(e Error) { l.errs = append(l.errs, e) }

func (l *List) AddNewf(pos token.Position, format string, args ...interface{}) {
	l.Add(NewParse(pos, format, args...))
}

func (l *List) Len() int { return len(l.errs) }

func (l *List) Errs() []Error { return l.errs }

func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	lines := make([]string, len(l.errs))
	for i, e := range l.errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Wrap attaches a causing error to parent, returning a combined error
// whose message concatenates both, mirroring cue/errors.Wrap.
func Wrap(parent Error, child error) error {
	if child == nil {
		return parent
	}
	return fmt.Errorf("%w: %v", parent, child)
}
