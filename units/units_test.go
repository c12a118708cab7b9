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

package units

import (
	"testing"
	"time"

	"github.com/go-quicktest/qt"
)

var durationTests = []struct {
	in   string
	want time.Duration
	ok   bool
}{
	{"10ms", 10 * time.Millisecond, true},
	{"10", 10 * time.Millisecond, true}, // no suffix means milliseconds
	{"1s", time.Second, true},
	{"2 seconds", 2 * time.Second, true},
	{"1m", time.Minute, true},
	{"1h", time.Hour, true},
	{"1d", 24 * time.Hour, true},
	{"500ns", 500 * time.Nanosecond, true},
	{"1.5s", 1500 * time.Millisecond, true},
	{"1bogus", 0, false},
	{"", 0, false},
}

func TestParseDuration(t *testing.T) {
	for _, tt := range durationTests {
		got, err := ParseDuration(tt.in)
		if !tt.ok {
			qt.Assert(t, qt.IsNotNil(err), qt.Commentf("ParseDuration(%q)", tt.in))
			continue
		}
		qt.Assert(t, qt.IsNil(err), qt.Commentf("ParseDuration(%q)", tt.in))
		qt.Assert(t, qt.Equals(got, tt.want), qt.Commentf("ParseDuration(%q)", tt.in))
	}
}

var bytesTests = []struct {
	in   string
	want int64
	ok   bool
}{
	{"1024", 1024, true},
	{"1k", 1024, true},
	{"1K", 1024, true},
	{"1KiB", 1024, true},
	{"1Ki", 1024, true},
	{"1KB", 1000, true},
	{"1kilo", 1000, true},
	{"1M", 1024 * 1024, true},
	{"1MB", 1000 * 1000, true},
	{"10 bytes", 10, true},
	{"10b", 10, true},
	{"", 0, false},
	{"10 nonsense", 0, false},
}

func TestParseBytes(t *testing.T) {
	for _, tt := range bytesTests {
		got, err := ParseBytes(tt.in)
		if !tt.ok {
			qt.Assert(t, qt.IsNotNil(err), qt.Commentf("ParseBytes(%q)", tt.in))
			continue
		}
		qt.Assert(t, qt.IsNil(err), qt.Commentf("ParseBytes(%q)", tt.in))
		qt.Assert(t, qt.Equals(got, tt.want), qt.Commentf("ParseBytes(%q)", tt.in))
	}
}

func TestParseDurationExactFractionalRounding(t *testing.T) {
	// spec §8 scenario 10: the decimal literal is strictly less than
	// true 1/60, but the nearest float64 to it multiplies out to
	// exactly 1e9 in double arithmetic -- the expected result tracks
	// that float64 round-trip, not exact-decimal truncation (which
	// would give 999999999).
	got, err := ParseDuration("0.01666666666666666666666m")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, time.Duration(1_000_000_000)))
}
