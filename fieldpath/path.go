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

// Package fieldpath tracks the location of a fault inside a value graph
// being encoded or decoded by the shape engine. Every shapeerr encode
// and decode error carries a Path so callers can localize the failure to a field
// name or a list index without having to re-walk the value themselves.
package fieldpath

import (
	"strconv"
	"strings"
)

// ElemType distinguishes a named field segment from a numeric list index
// segment within a Path.
type ElemType int8

const (
	Field ElemType = iota // a named key in a record or map
	Index                 // a numeric position in a list
)

// Elem is a single segment of a Path. For Field elements Name holds the
// key; for Index elements Name holds the decimal index.
type Elem struct {
	Type ElemType
	Name string
}

// Path is an ordered sequence of Elem from the root of the value graph
// down to the location of a fault. Path is built incrementally while the
// encoder or decoder walks a value; it is never parsed back from a
// string, so unlike the key-path syntax the parser (shapeparse) deals
// with, there is no inverse "split" operation here.
type Path []Elem

// Child returns a new Path with a named field segment appended. The
// receiver is left unmodified.
func (p Path) Child(name string) Path {
	return append(append(Path(nil), p...), Elem{Field, name})
}

// Indexed returns a new Path with a numeric index segment appended. The
// receiver is left unmodified.
func (p Path) Indexed(i int) Path {
	return append(append(Path(nil), p...), Elem{Index, strconv.Itoa(i)})
}

// String renders the path using dot notation for fields and bracket
// notation for indices, e.g. "ids[1].firstly".
func (p Path) String() string {
	var sb strings.Builder
	for i, e := range p {
		switch e.Type {
		case Field:
			if i > 0 {
				sb.WriteString(".")
			}
			sb.WriteString(e.Name)
		case Index:
			sb.WriteString("[")
			sb.WriteString(e.Name)
			sb.WriteString("]")
		}
	}
	if sb.Len() == 0 {
		return "<root>"
	}
	return sb.String()
}
