/*
 * Copyright 2025 The Go-Spring Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package pathtmpl tokenizes, matches, and emits URL path templates of
// the form "/seg/{var}/seg/{rest+}". The tokenizer is a single-pass
// scanner tracking the last significant character to localize malformed
// input, the same technique barky.SplitPath uses to scan "foo.bar[0]"
// style keys, applied here to a different grammar ({name}/{name+}
// variables rather than dot/bracket notation), so the code is written
// fresh rather than adapted line-by-line.
package pathtmpl

// Token is either a string literal or a path variable.
type Token struct {
	IsVar  bool
	Text   string // literal text, original case (IsVar == false)
	lower  string // literal text, lowercased for case-insensitive matching
	Name   string // variable name (IsVar == true)
	Greedy bool   // variable binds the remainder across segments
}

// Segment is an ordered list of Tokens between "/" separators. A
// segment has at most one greedy variable, which must appear in the
// final segment of the template.
type Segment []Token

// Template is a tokenized path template.
type Template struct {
	Segments     []Segment
	LeadingSlash bool
}
