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

package path

// Builder incrementally assembles a Path one key at a time, used by
// the parser to track the current object nesting depth while it
// walks a document. Grounded on original_source's PathBuilder
// (path_builder.h/.cc), which the C++ parser pushes/pops as it enters
// and leaves nested objects.
type Builder struct {
	keys []string
}

// Push appends key to the path under construction.
func (b *Builder) Push(key string) { b.keys = append(b.keys, key) }

// PushPath appends every key of p.
func (b *Builder) PushPath(p Path) { b.keys = append(b.keys, p.keys...) }

// Pop removes the most recently pushed key.
func (b *Builder) Pop() {
	if len(b.keys) > 0 {
		b.keys = b.keys[:len(b.keys)-1]
	}
}

// Len reports the current depth.
func (b *Builder) Len() int { return len(b.keys) }

// Result returns the Path built so far. Panics if nothing was pushed.
func (b *Builder) Result() Path {
	return New(b.keys...)
}
