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

// Package shapevisit is the reflection-free visitor contract every
// target record type implements. A record contributes a keyed container
// by implementing Encodable/Decodable; the engine never inspects a Go
// value's runtime type to discover its fields, it only ever calls
// methods the type itself wrote (or that were generated for it).
package shapevisit

import (
	"encoding/base64"
	"strconv"
	"time"
)

// valueKind tags the closed set of shapes a Value can take.
type valueKind int8

const (
	kindNull valueKind = iota
	kindScalar
	kindRecord
	kindList
	kindMap
)

// Value is what a record contributes for a single field: a scalar
// already serialized to its wire text, a nested record, an ordered
// list of Values, or a string-keyed map of Values. It is the
// reflection-free stand-in for "any" in the encoder walk.
type Value struct {
	kind   valueKind
	scalar string
	record Encodable
	list   []Value
	m      map[string]Value
}

// Null is a present-but-empty field value.
func Null() Value { return Value{kind: kindNull} }

// Str wraps a string scalar, emitted verbatim (subject to the surface
// codec's percent-encoding).
func Str(s string) Value { return Value{kind: kindScalar, scalar: s} }

// Bool wraps a boolean scalar, emitted as "true"/"false".
func Bool(b bool) Value {
	if b {
		return Value{kind: kindScalar, scalar: "true"}
	}
	return Value{kind: kindScalar, scalar: "false"}
}

// Int wraps an integer scalar, emitted in canonical decimal form.
func Int(i int64) Value { return Value{kind: kindScalar, scalar: strconv.FormatInt(i, 10)} }

// Float wraps a floating point scalar, emitted without exponent
// notation when possible.
func Float(f float64) Value {
	return Value{kind: kindScalar, scalar: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Time wraps a timestamp, emitted as ISO-8601 with millisecond precision
// and a literal "Z" suffix, in UTC.
func Time(t time.Time) Value {
	return Value{kind: kindScalar, scalar: t.UTC().Format("2006-01-02T15:04:05.000") + "Z"}
}

// Bytes wraps binary data, emitted as standard padded Base64.
func Bytes(b []byte) Value {
	return Value{kind: kindScalar, scalar: base64.StdEncoding.EncodeToString(b)}
}

// Record wraps a nested record contributing its own keyed container.
func Record(e Encodable) Value { return Value{kind: kindRecord, record: e} }

// List wraps an ordered, indexed container.
func List(items []Value) Value { return Value{kind: kindList, list: items} }

// Map wraps a string-keyed container whose entries are data, not field
// names: entries are never run through a key transform.
func Map(entries map[string]Value) Value { return Value{kind: kindMap, m: entries} }

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool { return v.kind == kindNull }

// Scalar returns the serialized scalar text and true if v wraps a
// scalar.
func (v Value) Scalar() (string, bool) {
	if v.kind != kindScalar {
		return "", false
	}
	return v.scalar, true
}

// AsRecord returns the nested Encodable and true if v wraps a record.
func (v Value) AsRecord() (Encodable, bool) {
	if v.kind != kindRecord {
		return nil, false
	}
	return v.record, true
}

// AsList returns the wrapped list and true if v wraps a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != kindList {
		return nil, false
	}
	return v.list, true
}

// AsMap returns the wrapped map and true if v wraps a map.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != kindMap {
		return nil, false
	}
	return v.m, true
}

// FieldSet accumulates the (name, Value) contributions a record makes
// from its EncodeFields method. Absent optional fields simply never
// call Field; a present-but-empty field calls Field with Null(), which
// is treated as distinct from missing.
type FieldSet struct {
	order   []string
	entries map[string]Value
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{entries: make(map[string]Value)}
}

// Field records a contribution. Calling Field twice for the same name
// overwrites the previous value.
func (w *FieldSet) Field(name string, v Value) {
	if _, ok := w.entries[name]; !ok {
		w.order = append(w.order, name)
	}
	w.entries[name] = v
}

// Entries returns the accumulated (name, Value) pairs. Order is not
// meaningful: the encoder walk re-sorts by ASCII field name.
func (w *FieldSet) Entries() map[string]Value {
	return w.entries
}

// Encodable is implemented by any record type that can contribute a
// keyed container to the encoder walk.
type Encodable interface {
	EncodeFields(w *FieldSet)
}

// Decodable is implemented by any record type that can be reconstructed
// from a keyed container by the decoder walk.
type Decodable interface {
	DecodeFields(r FieldReader) error
}

// FieldReader is the read side of the visitor contract, bound by the
// decoder walk (shapedec) to one Shape Dict under a particular key
// decode / map / list strategy. A Decodable's DecodeFields method calls
// back into it to pull typed values out by field name.
type FieldReader interface {
	// String returns the required string field name. A missing required
	// string defaults to "" rather than raising KeyNotFound.
	String(name string) (string, error)
	// OptionalString returns the field if present, or ok=false if
	// absent. A present-but-Null field returns ("", true, nil).
	OptionalString(name string) (value string, ok bool, err error)
	Bool(name string) (bool, error)
	Int64(name string) (int64, error)
	Float64(name string) (float64, error)
	Time(name string) (time.Time, error)
	// Bytes returns the required binary field name. A missing required
	// binary blob defaults to an empty slice.
	Bytes(name string) ([]byte, error)

	// Self returns the current node itself as a scalar string. It is
	// used from inside a List or Map callback when the element is a
	// bare scalar rather than a nested record, so there is no field
	// name to read it by.
	Self() (string, error)

	// Record descends into a nested record field, invoking decode on
	// the sub-reader it constructs. ok is false if the field is absent.
	Record(name string, decode func(FieldReader) error) (ok bool, err error)
	// List decodes an indexed container, calling decode once per
	// element in ascending index order.
	List(name string, decode func(i int, r FieldReader) error) error
	// Map decodes a string-keyed container, calling decode once per
	// entry. Duplicate keys (possible under SplitEntries) overwrite.
	Map(name string, decode func(key string, r FieldReader) error) error
}
