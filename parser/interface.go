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

// Package parser turns a token stream into a single unresolved
// value.Value tree (spec §4.2). Grounded on cue/parser/parser.go's
// shape: a parser struct wrapping one token of lookahead over a
// scanner, a comment-attachment state machine, and entry points built
// from functional Options.
package parser

import (
	"hocon.sh/go/value"
)

// Flavor selects the HOCON or strict-JSON grammar (spec §4.2, §6.2).
type Flavor int

const (
	HOCON Flavor = iota
	JSON
)

// Option configures a parse call.
type Option func(*config)

type config struct {
	flavor   Flavor
	includer Includer
	baseDir  string
}

// WithFlavor selects the JSON or HOCON grammar. HOCON is the default.
func WithFlavor(f Flavor) Option {
	return func(c *config) { c.flavor = f }
}

// WithIncluder supplies the collaborator that resolves `include`
// statements (spec §4.6). Without one, a required(...) include fails
// with a FileNotFound error and any other include is skipped.
func WithIncluder(inc Includer) Option {
	return func(c *config) { c.includer = inc }
}

// WithBaseDir sets the directory `include` paths are resolved
// relative to (spec §4.6).
func WithBaseDir(dir string) Option {
	return func(c *config) { c.baseDir = dir }
}

// IncludeKind identifies where an `include` target was found.
type IncludeKind int

const (
	IncludeFile IncludeKind = iota
	IncludeResource
	IncludeURL
)

// Includer resolves an `include` statement to a fallback value tree
// (spec §4.6). Required is true for `include required(...)`.
type Includer interface {
	Resolve(kind IncludeKind, name string, required bool, baseDir string) (value.Value, error)
}

// ParseFunc is the shape of a function that can parse a nested
// document; include.FileIncluder takes one of these so it can recurse
// back into this package without this package importing include.
type ParseFunc func(filename string, src []byte, baseDir string) (value.Value, error)

// ParseBytes parses src (from a source named filename, for error
// messages and Origins) into a single unresolved value tree.
func ParseBytes(filename string, src []byte, opts ...Option) (value.Value, error) {
	cfg := config{flavor: HOCON}
	for _, o := range opts {
		o(&cfg)
	}
	p := newParser(filename, src, cfg)
	v, err := p.parseRoot()
	if err != nil {
		return nil, err
	}
	if p.errs.Len() > 0 {
		return nil, p.errs.Err()
	}
	return v, nil
}

// ParseString is a convenience wrapper around ParseBytes.
func ParseString(filename, src string, opts ...Option) (value.Value, error) {
	return ParseBytes(filename, []byte(src), opts...)
}

// AsParseFunc adapts ParseBytes (with the given base options, minus
// BaseDir which is supplied per-call) into a parser.ParseFunc for use
// by an Includer implementation.
func AsParseFunc(opts ...Option) ParseFunc {
	return func(filename string, src []byte, baseDir string) (value.Value, error) {
		allOpts := append(append([]Option(nil), opts...), WithBaseDir(baseDir))
		return ParseBytes(filename, src, allOpts...)
	}
}
