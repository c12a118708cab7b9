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

package scanner

import (
	"testing"

	"github.com/go-quicktest/qt"

	"hocon.sh/go/token"
)

type gotTok struct {
	tok token.Token
	lit string
}

func scanAll(src string, mode Mode) []gotTok {
	var s Scanner
	s.Init(token.NewFile("test", len(src)), []byte(src), mode)
	var out []gotTok
	for {
		_, tok, lit, _ := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.NEWLINE {
			continue
		}
		out = append(out, gotTok{tok, lit})
	}
	return out
}

func TestScanPunctuation(t *testing.T) {
	got := scanAll(`{}[](),:=`, 0)
	want := []gotTok{
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.LBRACKET, "["},
		{token.RBRACKET, "]"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.COMMA, ","},
		{token.COLON, ":"},
		{token.EQUALS, "="},
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestScanPlusEquals(t *testing.T) {
	got := scanAll(`a += 1`, 0)
	qt.Assert(t, qt.HasLen(got, 3))
	qt.Assert(t, qt.Equals(got[1].tok, token.PLUS_EQUALS))
}

func TestScanJSONModeRejectsEqualsKeepsUnquoted(t *testing.T) {
	got := scanAll(`foo`, JSONMode)
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.Equals(got[0].tok, token.UNQUOTED_TEXT))

	got = scanAll(`=`, JSONMode)
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.Equals(got[0].tok, token.PROBLEM))
}

func TestScanQuotedString(t *testing.T) {
	got := scanAll(`"hello\nworld"`, 0)
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.Equals(got[0].tok, token.QUOTED_STRING))
	qt.Assert(t, qt.Equals(got[0].lit, "hello\nworld"))
}

func TestScanLiteralKeywords(t *testing.T) {
	got := scanAll(`true false null`, 0)
	want := []token.Token{token.TRUE, token.FALSE, token.NULL}
	qt.Assert(t, qt.HasLen(got, 3))
	for i, tok := range want {
		qt.Assert(t, qt.Equals(got[i].tok, tok))
	}
}

func TestScanNumberClassification(t *testing.T) {
	cases := []struct {
		text string
		tok  token.Token
	}{
		{"42", token.INT},
		{"2147483648", token.LONG}, // overflows int32
		{"3.14", token.DOUBLE},
		{"1e10", token.DOUBLE},
		{"-7", token.INT},
	}
	for _, c := range cases {
		got := scanAll(c.text, 0)
		qt.Assert(t, qt.HasLen(got, 1), qt.Commentf("text=%q", c.text))
		qt.Assert(t, qt.Equals(got[0].tok, c.tok), qt.Commentf("text=%q", c.text))
	}
}

func TestScanUnquotedText(t *testing.T) {
	got := scanAll(`foo-bar_baz`, 0)
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.Equals(got[0].tok, token.UNQUOTED_TEXT))
	qt.Assert(t, qt.Equals(got[0].lit, "foo-bar_baz"))
}

func TestScanSubstitution(t *testing.T) {
	got := scanAll(`${a.b}`, 0)
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.Equals(got[0].tok, token.SUBSTITUTION))
	qt.Assert(t, qt.Equals(got[0].lit, "a.b"))

	got = scanAll(`${?a.b}`, 0)
	qt.Assert(t, qt.Equals(got[0].lit, "?a.b"))
}

func TestScanCommentsSkippedByDefault(t *testing.T) {
	got := scanAll("a = 1 # a comment\nb = 2", 0)
	qt.Assert(t, qt.HasLen(got, 6))
}

func TestScanCommentsEmittedWithMode(t *testing.T) {
	got := scanAll("a = 1 # trailing\n", ScanComments)
	qt.Assert(t, qt.Equals(got[len(got)-1].tok, token.COMMENT))
	qt.Assert(t, qt.Equals(got[len(got)-1].lit, " trailing"))
}

func TestSpacesBeforeReportedForConcatenation(t *testing.T) {
	var s Scanner
	src := `true  "xyz"`
	s.Init(token.NewFile("test", len(src)), []byte(src), 0)
	_, _, _, spaces0 := s.Scan()
	qt.Assert(t, qt.Equals(spaces0, 0))
	_, _, _, spaces1 := s.Scan()
	qt.Assert(t, qt.Equals(spaces1, 2))
}
