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

// Package include implements parser.Includer for `include` statements
// (spec §4.6): resolving a file/classpath/url reference to a fallback
// value tree by recursively invoking the parser. Grounded on
// original_source's FileNameSource/file_reader.h discipline of probing
// a base name plus its recognized extensions before giving up, and on
// cue/cue/load's pattern of keeping a parseFunc as a plain field rather
// than importing the parser package's internals.
package include

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"hocon.sh/go/herrors"
	"hocon.sh/go/parser"
	"hocon.sh/go/value"
)

// candidateSuffixes are tried in order against a bare include name
// that has no recognized extension of its own (spec §4.6 "omitted
// extension").
var candidateSuffixes = []string{"", ".conf", ".json", ".properties"}

// FileIncluder resolves `include` statements against the local
// filesystem and, for `include url(...)`, over HTTP.
type FileIncluder struct {
	Parse      parser.ParseFunc
	HTTPClient *http.Client
}

// NewFileIncluder builds a FileIncluder that re-parses included
// documents with opts (so flavor, a nested Includer, etc. are
// inherited consistently down the include chain).
func NewFileIncluder(opts ...parser.Option) *FileIncluder {
	return &FileIncluder{
		Parse:      parser.AsParseFunc(opts...),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *FileIncluder) Resolve(kind parser.IncludeKind, name string, required bool, baseDir string) (value.Value, error) {
	switch kind {
	case parser.IncludeURL:
		return f.resolveURL(name, required)
	case parser.IncludeFile, parser.IncludeResource:
		return f.resolveFile(name, required, baseDir)
	default:
		return nil, herrors.NewBugOrBroken("include: unrecognized include kind %d", int(kind))
	}
}

func (f *FileIncluder) resolveFile(name string, required bool, baseDir string) (value.Value, error) {
	base := name
	if !filepath.IsAbs(base) {
		base = filepath.Join(baseDir, name)
	}

	hasKnownExt := false
	for _, suf := range candidateSuffixes[1:] {
		if filepath.Ext(base) == suf {
			hasKnownExt = true
			break
		}
	}

	var lastErr error
	tried := candidateSuffixes
	if hasKnownExt {
		tried = candidateSuffixes[:1]
	}
	for _, suf := range tried {
		path := base + suf
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return f.Parse(path, data, filepath.Dir(path))
	}

	if required {
		return nil, herrors.NewFileNotFound("include %q: no candidate file found (tried %v): %v", name, withSuffixes(base, tried), lastErr)
	}
	return nil, nil
}

func withSuffixes(base string, suffixes []string) []string {
	out := make([]string, len(suffixes))
	for i, s := range suffixes {
		out[i] = base + s
	}
	return out
}

func (f *FileIncluder) resolveURL(rawURL string, required bool) (value.Value, error) {
	resp, err := f.HTTPClient.Get(rawURL)
	if err != nil {
		if required {
			return nil, herrors.NewIO(err, "include url(%q) failed", rawURL)
		}
		return nil, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		if required {
			return nil, herrors.NewIO(nil, "include url(%q) returned status %d", rawURL, resp.StatusCode)
		}
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if required {
			return nil, herrors.NewIO(err, "include url(%q): reading body failed", rawURL)
		}
		return nil, nil
	}
	return f.Parse(rawURL, body, "")
}
