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
	"hocon.sh/go/merge"
	"hocon.sh/go/value"
)

// mergeAssign combines a newly-parsed value with whatever the same key
// already held: the new value is primary, the old one its fallback
// (spec §4.3 "duplicate keys"). Defined here, rather than calling
// merge.WithFallback directly at every call site, so the parser's
// duplicate-key and include-statement logic read the same way.
func mergeAssign(newVal, oldVal value.Value) value.Value {
	return merge.WithFallback(newVal, oldVal)
}
