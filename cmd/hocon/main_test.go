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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	qt.Assert(t, qt.IsNil(os.WriteFile(p, []byte(contents), 0o644)))
	return p
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGetCommandPrintsValue(t *testing.T) {
	f := writeTemp(t, "conf.conf", `a : { b : "hello" }`)
	out, err := runCmd(t, "get", f, "a.b")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, "hello\n"))
}

func TestRenderCommandJSON(t *testing.T) {
	f := writeTemp(t, "conf.conf", `a : 1`)
	out, err := runCmd(t, "render", f, "--json")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, "{\n  \"a\" : 1\n}\n"))
}

func TestParseCommandFailsOnUnresolvedSubstitution(t *testing.T) {
	f := writeTemp(t, "conf.conf", `a : ${missing}`)
	_, err := runCmd(t, "parse", f)
	qt.Assert(t, qt.IsNotNil(err))
}

// TestValidateCommandRestrictFlagScopesCheck exercises --restrict: the
// subject is missing "untouched" entirely, which would fail an
// unrestricted validate, but passes once checking is scoped to "a".
func TestValidateCommandRestrictFlagScopesCheck(t *testing.T) {
	ref := writeTemp(t, "ref.conf", `a : 1, untouched : 2`)
	subject := writeTemp(t, "subject.conf", `a : 5`)

	out, err := runCmd(t, "validate", subject, ref, "--restrict", "a")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out, "valid\n"))
}
