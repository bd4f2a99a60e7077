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

// Package shape is the intermediate tree that mediates between
// structured Go values and the flat (key, value) pairs carried on the
// wire by the query, header, and path surface codecs. A Shape is one of
// three immutable variants: Dict (a mapping of non-empty string keys to
// child Shapes), String (a decoded leaf value), or Null (present but
// empty). Arrays have no variant of their own: they are represented as
// a Dict whose keys are the contiguous 1-based decimal strings "1".."N"
// (see RawShape / AsRaw for the lossy inverse of that convention).
package shape

import "sort"

// Kind identifies which of the three Shape variants a value holds.
type Kind int8

const (
	KindDict Kind = iota
	KindString
	KindNull
)

// Shape is a finite, immutable tree. The zero Shape is a Null leaf.
type Shape struct {
	kind string
	dict map[string]Shape
	str  string
}

var nullShape = Shape{kind: "null"}

// Dict builds a Dict Shape from entries. The caller's map is copied;
// mutating it afterward does not affect the returned Shape.
func Dict(entries map[string]Shape) Shape {
	cp := make(map[string]Shape, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return Shape{kind: "dict", dict: cp}
}

// String builds a String leaf Shape carrying the already percent-decoded
// value s.
func String(s string) Shape {
	return Shape{kind: "string", str: s}
}

// Null builds the Null leaf Shape, denoting "present, empty".
func Null() Shape {
	return nullShape
}

// Kind reports which variant s holds.
func (s Shape) Kind() Kind {
	switch s.kind {
	case "dict":
		return KindDict
	case "string":
		return KindString
	default:
		return KindNull
	}
}

// IsDict reports whether s is a Dict.
func (s Shape) IsDict() bool { return s.kind == "dict" }

// IsNull reports whether s is a Null leaf.
func (s Shape) IsNull() bool { return s.kind == "" || s.kind == "null" }

// StringValue returns the leaf string and true if s is a String Shape.
func (s Shape) StringValue() (string, bool) {
	if s.kind != "string" {
		return "", false
	}
	return s.str, true
}

// Get looks up a direct child of a Dict Shape. ok is false if s is not a
// Dict or key is absent.
func (s Shape) Get(key string) (Shape, bool) {
	if s.kind != "dict" {
		return Shape{}, false
	}
	v, ok := s.dict[key]
	return v, ok
}

// Len reports the number of direct children of a Dict Shape, or 0 for
// leaves.
func (s Shape) Len() int {
	if s.kind != "dict" {
		return 0
	}
	return len(s.dict)
}

// Keys returns the direct child keys of a Dict Shape in ascending ASCII
// order. It returns nil for leaves.
func (s Shape) Keys() []string {
	if s.kind != "dict" {
		return nil
	}
	keys := make([]string, 0, len(s.dict))
	for k := range s.dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Range calls fn for every direct child of a Dict Shape in ascending
// ASCII key order. Range is a no-op for leaves.
func (s Shape) Range(fn func(key string, child Shape)) {
	for _, k := range s.Keys() {
		fn(k, s.dict[k])
	}
}

// Equal reports whether a and b are structurally equal: same variant,
// same leaf value, or (for Dict) the same set of keys each mapping to
// structurally equal children. Dict comparison ignores insertion order.
func Equal(a, b Shape) bool {
	if a.kind != b.kind {
		// Treat the empty zero-value and the "null" tag as the same thing.
		if a.IsNull() && b.IsNull() {
			return true
		}
		return false
	}
	switch a.kind {
	case "dict":
		if len(a.dict) != len(b.dict) {
			return false
		}
		for k, av := range a.dict {
			bv, ok := b.dict[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case "string":
		return a.str == b.str
	default:
		return true
	}
}
