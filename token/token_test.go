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

package token

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestTokenString(t *testing.T) {
	qt.Assert(t, qt.Equals(LBRACE.String(), "{"))
	qt.Assert(t, qt.Equals(LPAREN.String(), "("))
	qt.Assert(t, qt.Equals(RPAREN.String(), ")"))
	qt.Assert(t, qt.Equals(PLUS_EQUALS.String(), "+="))
	qt.Assert(t, qt.StringContains(Token(9999).String(), "token("))
}

func TestIsKeySeparator(t *testing.T) {
	for _, tok := range []Token{COLON, EQUALS, PLUS_EQUALS} {
		qt.Assert(t, qt.IsTrue(tok.IsKeySeparator()), qt.Commentf("%s", tok))
	}
	for _, tok := range []Token{COMMA, LBRACE, UNQUOTED_TEXT} {
		qt.Assert(t, qt.IsFalse(tok.IsKeySeparator()), qt.Commentf("%s", tok))
	}
}

func TestFilePosition(t *testing.T) {
	// "ab\ncd\nef" -- lines start at byte offsets 0, 3, 6.
	f := NewFile("test.conf", 8)
	f.AddLine(3)
	f.AddLine(6)

	pos := f.Position(0)
	qt.Assert(t, qt.Equals(pos.Line, 1))
	qt.Assert(t, qt.Equals(pos.Column, 1))

	pos = f.Position(4)
	qt.Assert(t, qt.Equals(pos.Line, 2))
	qt.Assert(t, qt.Equals(pos.Column, 2))

	pos = f.Position(7)
	qt.Assert(t, qt.Equals(pos.Line, 3))
	qt.Assert(t, qt.Equals(pos.Column, 2))
}

func TestNoPosIsInvalid(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	qt.Assert(t, qt.Equals(NoPos.String(), "-"))
}

func TestPositionCompare(t *testing.T) {
	a := Position{Filename: "a.conf", Line: 1}
	b := Position{Filename: "a.conf", Line: 2}
	c := Position{Filename: "b.conf", Line: 1}

	qt.Assert(t, qt.Equals(a.Compare(b), -1))
	qt.Assert(t, qt.Equals(b.Compare(a), 1))
	qt.Assert(t, qt.Equals(a.Compare(a), 0))
	qt.Assert(t, qt.Equals(a.Compare(c), -1))
}
