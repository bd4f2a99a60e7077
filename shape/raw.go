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

package shape

import "strconv"

// RawKind distinguishes the two RawShape variants.
type RawKind int8

const (
	RawArray RawKind = iota
	RawOther
)

// RawShape is the lossy companion of Shape that makes the array/dict
// duality explicit: a Dict whose keys are exactly "1".."N" renders as a
// RawArray instead of a RawOther-wrapped Dict. It exists purely as a
// read-side convenience (e.g. for callers inspecting a decoded Shape
// without committing to a typed record); the engine itself always works
// in terms of Shape's array-as-dict convention.
type RawShape struct {
	Kind  RawKind
	Array []RawShape
	Dict  Shape
}

// AsRaw converts s to its RawShape form. If s is a Dict whose key set is
// exactly the contiguous decimal range "1".."N" (for some N = s.Len()),
// it is rendered as a RawArray in ascending index order; otherwise it is
// returned unchanged, wrapped as RawOther.
func AsRaw(s Shape) RawShape {
	if s.kind != "dict" {
		return RawShape{Kind: RawOther, Dict: s}
	}
	n := len(s.dict)
	arr := make([]RawShape, n)
	for i := 1; i <= n; i++ {
		child, ok := s.dict[strconv.Itoa(i)]
		if !ok {
			return RawShape{Kind: RawOther, Dict: s}
		}
		arr[i-1] = AsRaw(child)
	}
	return RawShape{Kind: RawArray, Array: arr}
}
