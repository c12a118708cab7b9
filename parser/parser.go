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

package parser

import (
	"hocon.sh/go/herrors"
	"hocon.sh/go/scanner"
	"hocon.sh/go/token"
)

type parser struct {
	file    *token.File
	scanner scanner.Scanner
	errs    herrors.List

	cfg config

	pos           token.Position
	tok           token.Token
	lit           string
	spacesBefore  int
	newlineRun    int // consecutive NEWLINE tokens swallowed before the current token
	pendingComments []string
}

func newParser(filename string, src []byte, cfg config) *parser {
	p := &parser{cfg: cfg}
	p.file = token.NewFile(filename, len(src))
	mode := scanner.ScanComments
	if cfg.flavor == JSON {
		mode |= scanner.JSONMode
	}
	p.scanner.Init(p.file, src, mode)
	p.next()
	return p
}

// next advances to the next substantive token, transparently
// accumulating comments and counting the run of newlines swallowed so
// callers can tell a single line break (attach pending comments) from
// a blank line (discard them) per spec §4.2 "Comment attachment".
func (p *parser) next() {
	p.pendingComments = nil
	newlines := 0
	for {
		pos, tok, lit, spaces := p.scanner.Scan()
		switch tok {
		case token.COMMENT:
			if newlines >= 2 {
				p.pendingComments = nil
			}
			p.pendingComments = append(p.pendingComments, lit)
			newlines = 0
			continue
		case token.PROBLEM:
			p.errs.Add(herrors.NewTokenizerProblem(pos, lit))
			continue
		case token.NEWLINE:
			newlines++
			if newlines >= 2 {
				p.pendingComments = nil
			}
		}
		if tok == token.NEWLINE {
			continue
		}
		p.pos, p.tok, p.lit, p.spacesBefore = pos, tok, lit, spaces
		p.newlineRun = newlines
		return
	}
}

// skipSeparators consumes a run of commas between fields/elements.
// Newlines are already swallowed transparently by next(), which also
// acts as a separator per spec §4.2 ("newline acts as comma") -- the
// object/array body loops below never require either.
func (p *parser) skipSeparators() {
	for p.tok == token.COMMA {
		p.next()
	}
}

func (p *parser) errorf(format string, args ...interface{}) {
	p.errs.AddNewf(p.pos, format, args...)
}

func (p *parser) takeComments() []string {
	c := p.pendingComments
	p.pendingComments = nil
	return c
}

func (p *parser) expect(tok token.Token) bool {
	if p.tok != tok {
		p.errorf("expected %s, found %s %q", tok, p.tok, p.lit)
		return false
	}
	p.next()
	return true
}
