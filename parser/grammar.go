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
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"hocon.sh/go/herrors"
	"hocon.sh/go/path"
	"hocon.sh/go/render"
	"hocon.sh/go/token"
	"hocon.sh/go/value"
)

func (p *parser) originHere() value.Origin {
	return value.NewOrigin("", p.pos.Filename, p.pos.Line)
}

// parseRoot parses an entire document. HOCON allows the outermost
// object braces to be omitted; a document whose first token is '['
// parses as a root array instead (spec §4.2 "Root braces omission").
func (p *parser) parseRoot() (value.Value, error) {
	p.skipSeparators()
	if p.tok == token.EOF {
		return value.EmptyObject(p.originHere()), nil
	}
	if p.tok == token.LBRACKET {
		return p.parseArray()
	}
	if p.tok == token.LBRACE {
		return p.parseObject()
	}
	if p.cfg.flavor == JSON {
		return nil, herrors.NewParse(p.pos, "JSON documents must start with '{' or '['")
	}
	body, err := p.parseObjectBody(token.EOF)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (p *parser) parseObject() (value.Value, error) {
	origin := p.originHere()
	p.next() // consume '{'
	body, err := p.parseObjectBody(token.RBRACE)
	if err != nil {
		return nil, err
	}
	if p.tok != token.RBRACE {
		p.errorf("expected '}', found %s %q", p.tok, p.lit)
	} else {
		p.next()
	}
	return body.WithOrigin(origin), nil
}

// parseObjectBody parses fields until end (RBRACE or EOF for a
// brace-less root), handling `include` statements inline (spec §4.6).
func (p *parser) parseObjectBody(end token.Token) (*value.Object, error) {
	origin := p.originHere()
	b := value.NewObjectBuilder()
	p.skipSeparators()
	for p.tok != end && p.tok != token.EOF {
		var err error
		if p.tok == token.UNQUOTED_TEXT && p.lit == "include" {
			err = p.parseInclude(b)
		} else {
			err = p.parseField(b)
		}
		if err != nil {
			return nil, err
		}
		p.skipSeparators()
	}
	return b.Build(origin), nil
}

// isKeyToken reports whether t can appear as one piece of a key path
// expression (spec §3.1, §4.2: bareword, quoted segment, or a literal
// that merely looks like a keyword/number when unquoted).
func isKeyToken(t token.Token) bool {
	switch t {
	case token.QUOTED_STRING, token.UNQUOTED_TEXT, token.TRUE, token.FALSE, token.NULL,
		token.INT, token.LONG, token.DOUBLE:
		return true
	}
	return false
}

// parseKeyPath reassembles the key expression preceding a field's
// separator into a path.Path. Pieces must be contiguous (no
// whitespace between them); a quoted piece is re-quoted before being
// handed to path.Parse so a literal '.' inside it is not mistaken for
// a path separator.
func (p *parser) parseKeyPath() (path.Path, token.Position, error) {
	startPos := p.pos
	var raw strings.Builder
	n := 0
	for isKeyToken(p.tok) {
		if n > 0 && p.spacesBefore > 0 {
			break
		}
		if p.tok == token.QUOTED_STRING {
			raw.WriteString(strconv.Quote(p.lit))
		} else {
			raw.WriteString(p.lit)
		}
		n++
		p.next()
	}
	if n == 0 {
		return path.Path{}, startPos, herrors.NewParse(startPos, "expected a key, found %s %q", p.tok, p.lit)
	}
	pp, err := path.Parse(raw.String())
	if err != nil {
		return path.Path{}, startPos, herrors.NewBadPath("%s", err.Error())
	}
	return pp, startPos, nil
}

// parseField parses one "key <sep> value" entry (or "key { ... }"
// sugar), desugars dotted keys into nested objects, desugars `+=` into
// a self-referential list concatenation, and merges the result into b
// following the duplicate-key merge rule (spec §3.1, §4.2, §4.3).
func (p *parser) parseField(b *value.ObjectBuilder) error {
	comments := p.takeComments()
	keyPath, _, err := p.parseKeyPath()
	if err != nil {
		return err
	}

	var val value.Value
	switch {
	case p.tok == token.LBRACE:
		val, err = p.parseObject()
	case p.tok.IsKeySeparator():
		if p.cfg.flavor == JSON && p.tok != token.COLON {
			return herrors.NewParse(p.pos, "JSON fields must use ':', found %s", p.tok)
		}
		plusEquals := p.tok == token.PLUS_EQUALS
		p.next()
		val, err = p.parseConcatenation()
		if err == nil && plusEquals {
			val = desugarPlusEquals(keyPath, val)
		}
	default:
		return herrors.NewParse(p.pos, "expected ':', '=', '+=' or '{' after key %q, found %s", keyPath.String(), p.tok)
	}
	if err != nil {
		return err
	}
	if len(comments) > 0 {
		val = val.WithOrigin(val.Origin().WithComments(comments))
	}
	p.assign(b, keyPath.Keys(), val)
	return nil
}

// desugarPlusEquals rewrites `key += v` into the concatenation
// `${?key} [v]`, HOCON's definition of array append (spec §4.2, §4.3).
func desugarPlusEquals(keyPath path.Path, val value.Value) value.Value {
	origin := val.Origin()
	ref := value.NewReference(origin, keyPath, true)
	list := value.NewList(origin, []value.Value{val})
	return value.NewConcat(origin, []value.Value{ref, list})
}

// assign installs val at the dotted key keys within b, creating
// intermediate nested objects as needed and merging with any value
// already at the final key per the duplicate-key rule (spec §3.1,
// §4.3): the new value is primary, the previous one is its fallback.
func (p *parser) assign(b *value.ObjectBuilder, keys []string, val value.Value) {
	head := keys[0]
	if len(keys) == 1 {
		if existing, ok := b.Get(head); ok {
			val = mergeAssign(val, existing)
		}
		b.Set(head, val)
		return
	}
	child := value.NewObjectBuilder()
	if existing, ok := b.Get(head); ok {
		if childObj, ok := existing.(*value.Object); ok {
			childObj.Range(func(k string, v value.Value) bool {
				child.Set(k, v)
				return true
			})
		}
		// A non-Object value at an intermediate key is simply
		// shadowed by the nested assignment, matching the
		// "later-wins for the concrete leaf" rule.
	}
	p.assign(child, keys[1:], val)
	b.Set(head, child.Build(val.Origin()))
}

// parseInclude parses `include [required] ( <resource> )` or the
// bare-string short form `include "path"` (spec §4.6), asking the
// configured Includer to resolve it and merging the resulting tree as
// a fallback beneath whatever this object already defines at this
// point -- later fields in the same object still take priority.
func (p *parser) parseInclude(b *value.ObjectBuilder) error {
	pos := p.pos
	p.next() // consume "include"

	required := false
	if p.tok == token.UNQUOTED_TEXT && p.lit == "required" {
		required = true
		p.next()
		if !p.expect(token.LPAREN) {
			return herrors.NewParse(p.pos, "expected '(' after \"required\"")
		}
	}

	kind := IncludeFile
	if p.tok == token.UNQUOTED_TEXT && (p.lit == "file" || p.lit == "classpath" || p.lit == "url") {
		switch p.lit {
		case "classpath":
			kind = IncludeResource
		case "url":
			kind = IncludeURL
		}
		p.next()
		if !p.expect(token.LPAREN) {
			return herrors.NewParse(p.pos, "expected '(' after include qualifier")
		}
	}

	if p.tok != token.QUOTED_STRING {
		return herrors.NewParse(p.pos, "expected a quoted resource name in include statement, found %s", p.tok)
	}
	name := p.lit
	p.next()

	if kind != IncludeFile || required {
		if !p.expect(token.RPAREN) {
			return herrors.NewParse(p.pos, "expected ')' to close include statement")
		}
	}

	if p.cfg.includer == nil {
		if required {
			return herrors.NewFileNotFound("include %q: no Includer configured", name)
		}
		return nil
	}
	included, err := p.cfg.includer.Resolve(kind, name, required, p.cfg.baseDir)
	if err != nil {
		if required {
			return herrors.NewIO(err, "required include %q failed", name)
		}
		p.errs.Add(herrors.NewParse(pos, "optional include %q failed: %v", name, err))
		return nil
	}
	if included == nil {
		return nil
	}
	includedObj, ok := included.(*value.Object)
	if !ok {
		return herrors.NewWrongType("", "object", included.Kind().String(), "include %q must resolve to an object", name)
	}
	includedObj.Range(func(k string, v value.Value) bool {
		if existing, ok := b.Get(k); ok {
			b.Set(k, mergeAssign(existing, v))
		} else {
			b.Set(k, v)
		}
		return true
	})
	return nil
}

func (p *parser) parseArray() (value.Value, error) {
	origin := p.originHere()
	p.next() // consume '['
	lb := &value.ListBuilder{}
	p.skipSeparators()
	for p.tok != token.RBRACKET && p.tok != token.EOF {
		elem, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		lb.Append(elem)
		p.skipSeparators()
	}
	if p.tok != token.RBRACKET {
		p.errorf("expected ']', found %s %q", p.tok, p.lit)
	} else {
		p.next()
	}
	return lb.Build(origin), nil
}

func isValueStartToken(t token.Token) bool {
	switch t {
	case token.LBRACE, token.LBRACKET, token.QUOTED_STRING, token.UNQUOTED_TEXT,
		token.TRUE, token.FALSE, token.NULL, token.INT, token.LONG, token.DOUBLE, token.SUBSTITUTION:
		return true
	}
	return false
}

// parseConcatenation parses a run of value pieces on the same logical
// line and folds them per spec §4.2: a run of only concrete scalars
// folds into a single String; a run containing a Reference folds its
// maximal scalar sub-runs and leaves the rest as a Concatenation node;
// a run of only Lists or only Objects folds by concatenation/merge.
func (p *parser) parseConcatenation() (value.Value, error) {
	origin := p.originHere()
	var pieces []value.Value
	var gaps []int // gaps[i] = spaces before pieces[i+1]

	for isValueStartToken(p.tok) {
		if len(pieces) > 0 && p.newlineRun > 0 {
			break
		}
		gap := p.spacesBefore
		piece, err := p.parseConcatPiece()
		if err != nil {
			return nil, err
		}
		if len(pieces) > 0 {
			gaps = append(gaps, gap)
		}
		pieces = append(pieces, piece)
	}
	if len(pieces) == 0 {
		return nil, herrors.NewParse(p.pos, "expected a value, found %s %q", p.tok, p.lit)
	}
	if len(pieces) == 1 {
		return pieces[0], nil
	}
	return foldConcatenation(origin, pieces, gaps)
}

func (p *parser) parseConcatPiece() (value.Value, error) {
	switch p.tok {
	case token.LBRACE:
		return p.parseObject()
	case token.LBRACKET:
		return p.parseArray()
	case token.SUBSTITUTION:
		return p.parseSubstitution()
	case token.QUOTED_STRING:
		v := value.NewString(p.originHere(), p.lit)
		p.next()
		return v, nil
	case token.UNQUOTED_TEXT:
		if p.cfg.flavor == JSON {
			return nil, herrors.NewParse(p.pos, "unquoted strings are not allowed in JSON, found %q", p.lit)
		}
		v := value.NewString(p.originHere(), p.lit)
		p.next()
		return v, nil
	case token.TRUE:
		v := value.NewBool(p.originHere(), true)
		p.next()
		return v, nil
	case token.FALSE:
		v := value.NewBool(p.originHere(), false)
		p.next()
		return v, nil
	case token.NULL:
		v := value.NewNull(p.originHere())
		p.next()
		return v, nil
	case token.INT:
		n, err := strconv.ParseInt(p.lit, 10, 32)
		if err != nil {
			return nil, herrors.NewBadValue("invalid integer %q", p.lit)
		}
		v := value.NewInt(p.originHere(), int32(n), p.lit)
		p.next()
		return v, nil
	case token.LONG:
		n, err := strconv.ParseInt(p.lit, 10, 64)
		if err != nil {
			return nil, herrors.NewBadValue("invalid integer %q", p.lit)
		}
		v := value.NewLong(p.originHere(), n, p.lit)
		p.next()
		return v, nil
	case token.DOUBLE:
		d, _, err := apd.NewFromString(p.lit)
		if err != nil {
			return nil, herrors.NewBadValue("invalid number %q", p.lit)
		}
		v := value.NewDouble(p.originHere(), d, p.lit)
		p.next()
		return v, nil
	default:
		return nil, herrors.NewParse(p.pos, "unexpected token %s %q in value", p.tok, p.lit)
	}
}

func (p *parser) parseSubstitution() (value.Value, error) {
	origin := p.originHere()
	raw := p.lit
	optional := strings.HasPrefix(raw, "?")
	if optional {
		raw = raw[1:]
	}
	pp, err := path.Parse(raw)
	if err != nil {
		p.next()
		return nil, herrors.NewBadPath("invalid substitution path %q: %s", raw, err.Error())
	}
	p.next()
	return value.NewReference(origin, pp, optional), nil
}

// isScalarLike reports whether v's Kind can take part in a text fold:
// a concrete leaf, never a List, Object, or Reference.
func isScalarLike(v value.Value) bool {
	switch v.Kind() {
	case value.NullKind, value.BoolKind, value.IntKind, value.LongKind, value.DoubleKind, value.StringKind:
		return true
	}
	return false
}

func foldConcatenation(origin value.Origin, pieces []value.Value, gaps []int) (value.Value, error) {
	allScalar := true
	anyReference := false
	anyList := false
	anyObject := false
	for _, p := range pieces {
		switch {
		case isScalarLike(p):
		case p.Kind() == value.ReferenceKind:
			allScalar = false
			anyReference = true
		case p.Kind() == value.ListKind:
			allScalar = false
			anyList = true
		case p.Kind() == value.ObjectKind:
			allScalar = false
			anyObject = true
		default:
			allScalar = false
		}
	}

	if allScalar {
		return foldScalarText(origin, pieces, gaps), nil
	}

	if anyList || anyObject {
		if anyReference {
			// Can't fold until the reference resolves; keep the
			// pieces as written, collapsing only adjacent scalar runs.
			outPieces, outGaps := collapseScalarRuns(pieces, gaps)
			return value.NewConcatWithGaps(origin, outPieces, outGaps), nil
		}
		if anyList && anyObject {
			return nil, herrors.NewWrongType("", "list or object", "mixed", "cannot concatenate a list with an object")
		}
		if anyList {
			return foldLists(origin, pieces)
		}
		return foldObjects(origin, pieces)
	}

	// Only scalars and references: fold scalar runs, leave references.
	outPieces, outGaps := collapseScalarRuns(pieces, gaps)
	return value.NewConcatWithGaps(origin, outPieces, outGaps), nil
}

// foldScalarText concatenates the text form of every piece, preserving
// the exact run of horizontal whitespace recorded between them (spec
// §4.2 scenario 1).
func foldScalarText(origin value.Origin, pieces []value.Value, gaps []int) value.Value {
	var b strings.Builder
	for i, p := range pieces {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gaps[i-1]))
		}
		text, _ := value.TextOf(p)
		b.WriteString(text)
	}
	return value.NewString(origin, b.String())
}

// collapseScalarRuns folds every maximal run of scalar-like pieces
// into a single String, leaving List/Object/Reference pieces as-is,
// for use inside a Concatenation that cannot be fully resolved at
// parse time (spec §4.2: "Strings adjacent to an unresolved piece are
// still folded together"). It returns the collapsed pieces alongside
// the gap recorded between each pair of them, so the result can still
// be re-folded exactly once the remaining references resolve.
func collapseScalarRuns(pieces []value.Value, gaps []int) ([]value.Value, []int) {
	var out []value.Value
	var outGaps []int
	i := 0
	for i < len(pieces) {
		if i > 0 {
			outGaps = append(outGaps, gaps[i-1])
		}
		if !isScalarLike(pieces[i]) {
			out = append(out, pieces[i])
			i++
			continue
		}
		j := i
		for j < len(pieces) && isScalarLike(pieces[j]) {
			j++
		}
		if j == i+1 {
			out = append(out, pieces[i])
		} else {
			out = append(out, foldScalarText(pieces[i].Origin(), pieces[i:j], gaps[i:j-1]))
		}
		i = j
	}
	return out, outGaps
}

// describeForError renders a fully-concrete piece for inclusion in a
// "cannot concatenate" error, e.g. the "abc" in spec §8 scenario 8's
// expected message. Falls back to the bare Kind name if rendering
// fails (never expected for the concrete scalars/lists/objects this
// is called on, since a Reference piece short-circuits before
// reaching it).
func describeForError(v value.Value) string {
	s, err := render.Render(v, render.Options{JSON: true})
	if err != nil {
		return v.Kind().String()
	}
	return s
}

func foldLists(origin value.Origin, pieces []value.Value) (value.Value, error) {
	var elems []value.Value
	for _, p := range pieces {
		l, ok := p.(*value.List)
		if !ok {
			return nil, herrors.NewWrongType("", "list", p.Kind().String(),
				"cannot concatenate a list with a non-list value: %s and %s", describeForError(pieces[0]), describeForError(p))
		}
		elems = append(elems, l.Elems...)
	}
	return value.NewList(origin, elems), nil
}

// foldObjects merges a run of object literals on one line left to
// right, the rightmost taking priority over the ones before it (spec
// §4.2, mirroring the duplicate-key merge rule of §4.3).
func foldObjects(origin value.Origin, pieces []value.Value) (value.Value, error) {
	result, ok := pieces[0].(*value.Object)
	if !ok {
		return nil, herrors.NewWrongType("", "object", pieces[0].Kind().String(),
			"cannot concatenate an object with a non-object value: %s and %s", describeForError(pieces[0]), describeForError(pieces[len(pieces)-1]))
	}
	for _, p := range pieces[1:] {
		obj, ok := p.(*value.Object)
		if !ok {
			return nil, herrors.NewWrongType("", "object", p.Kind().String(),
				"cannot concatenate an object with a non-object value: %s and %s", describeForError(result), describeForError(p))
		}
		result = mergeAssign(obj, result).(*value.Object)
	}
	return result.WithOrigin(origin), nil
}
