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

// Package shapedec is the decoder walk: it reconstructs a typed record
// from a shape.Shape tree by driving the shapevisit.FieldReader
// contract. Field access is styled after weiwenchen2022/structof's
// Struct/Field wrappers, a small typed façade around a single node, but
// with the reflective FieldByName/Kind lookups replaced by direct map
// access, since the Shape tree (unlike a Go struct) is already just
// string-keyed data: there is nothing left to reflect on. Scalar
// coercion is delegated to github.com/spf13/cast, which already
// distinguishes "could not parse" from "wrong shape" the way
// TypeMismatch needs.
package shapedec

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/shapekit/shapecodec/fieldpath"
	"github.com/shapekit/shapecodec/shape"
	"github.com/shapekit/shapecodec/shapeerr"
	"github.com/shapekit/shapecodec/shapekey"
	"github.com/shapekit/shapecodec/shapevisit"
)

// Config parameterizes the decoder walk over the key-decode (for
// ShapePrefix grouping), map-layout, and list-layout strategies.
type Config struct {
	Key  shapekey.DecodeStrategy
	Map  shapekey.MapLayout
	List shapekey.ListLayout
}

// timeLayout is the millisecond-precision ISO-8601 form with a literal
// "Z" suffix, always UTC.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Decode reconstructs target from node under cfg.
func Decode(node shape.Shape, cfg Config, target shapevisit.Decodable) error {
	return target.DecodeFields(newReader(node, nil, cfg))
}

type reader struct {
	node shape.Shape
	path fieldpath.Path
	cfg  Config
}

func newReader(node shape.Shape, path fieldpath.Path, cfg Config) *reader {
	return &reader{node: node, path: path, cfg: cfg}
}

// child resolves a field name against r.node's container.
func (r *reader) child(name string) (shape.Shape, bool) {
	if shapekey.IsShapePrefix(r.cfg.Key) {
		if c, ok := r.node.Get(name); ok {
			// An exact key match always wins over a prefix-grouped sibling.
			return c, true
		}
		entries := make(map[string]shape.Shape)
		found := false
		for _, k := range r.node.Keys() {
			if k == name || !strings.HasPrefix(k, name) {
				continue
			}
			found = true
			suffix := k[len(name):]
			child, _ := r.node.Get(k)
			entries[suffix] = child
		}
		if !found {
			return shape.Shape{}, false
		}
		return shape.Dict(entries), true
	}
	return r.node.Get(name)
}

func (r *reader) String(name string) (string, error) {
	c, ok := r.child(name)
	if !ok || c.IsNull() {
		// A missing or null required string defaults to "" instead of
		// raising KeyNotFound/ValueNotFound.
		return "", nil
	}
	s, ok := c.StringValue()
	if !ok {
		return "", shapeerr.NewTypeMismatch(r.path.Child(name), "string", kindName(c))
	}
	return s, nil
}

func (r *reader) OptionalString(name string) (string, bool, error) {
	c, ok := r.child(name)
	if !ok {
		return "", false, nil
	}
	if c.IsNull() {
		return "", true, nil
	}
	s, ok := c.StringValue()
	if !ok {
		return "", true, shapeerr.NewTypeMismatch(r.path.Child(name), "string", kindName(c))
	}
	return s, true, nil
}

func (r *reader) Bool(name string) (bool, error) {
	s, err := r.requiredScalar(name, "bool")
	if err != nil {
		return false, err
	}
	b, err := cast.ToBoolE(s)
	if err != nil {
		return false, shapeerr.NewTypeMismatch(r.path.Child(name), "bool", s)
	}
	return b, nil
}

func (r *reader) Int64(name string) (int64, error) {
	s, err := r.requiredScalar(name, "int64")
	if err != nil {
		return 0, err
	}
	i, err := cast.ToInt64E(s)
	if err != nil {
		return 0, shapeerr.NewTypeMismatch(r.path.Child(name), "int64", s)
	}
	return i, nil
}

func (r *reader) Float64(name string) (float64, error) {
	s, err := r.requiredScalar(name, "float64")
	if err != nil {
		return 0, err
	}
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, shapeerr.NewTypeMismatch(r.path.Child(name), "float64", s)
	}
	return f, nil
}

func (r *reader) Time(name string) (time.Time, error) {
	s, err := r.requiredScalar(name, "time")
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, shapeerr.NewDataCorrupted(r.path.Child(name), "invalid timestamp", err)
	}
	return t, nil
}

func (r *reader) Bytes(name string) ([]byte, error) {
	c, ok := r.child(name)
	if !ok || c.IsNull() {
		// Missing required binary blobs default to empty bytes.
		return []byte{}, nil
	}
	s, ok := c.StringValue()
	if !ok {
		return nil, shapeerr.NewTypeMismatch(r.path.Child(name), "bytes", kindName(c))
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, shapeerr.NewDataCorrupted(r.path.Child(name), "invalid base64", err)
	}
	return b, nil
}

// requiredScalar resolves a required non-string, non-bytes scalar field,
// raising KeyNotFound / ValueNotFound (these types are not covered by
// the string/bytes defaulting exception).
func (r *reader) requiredScalar(name, expected string) (string, error) {
	c, ok := r.child(name)
	if !ok {
		return "", shapeerr.NewKeyNotFound(r.path, name)
	}
	if c.IsNull() {
		return "", shapeerr.NewValueNotFound(r.path.Child(name), expected)
	}
	s, ok := c.StringValue()
	if !ok {
		return "", shapeerr.NewTypeMismatch(r.path.Child(name), expected, kindName(c))
	}
	return s, nil
}

// Self returns r's own node as a scalar string, for list/map elements
// that are bare scalars rather than nested records.
func (r *reader) Self() (string, error) {
	if r.node.IsNull() {
		return "", nil
	}
	s, ok := r.node.StringValue()
	if !ok {
		return "", shapeerr.NewTypeMismatch(r.path, "string", kindName(r.node))
	}
	return s, nil
}

func (r *reader) Record(name string, decode func(shapevisit.FieldReader) error) (bool, error) {
	c, ok := r.child(name)
	if !ok || c.IsNull() {
		return false, nil
	}
	return true, decode(newReader(c, r.path.Child(name), r.cfg))
}

func (r *reader) List(name string, decode func(i int, r shapevisit.FieldReader) error) error {
	c, ok := r.child(name)
	if !ok || c.IsNull() {
		return nil
	}
	items, err := resolveListItems(c, r.cfg.List, r.path.Child(name))
	if err != nil {
		return err
	}
	for i, item := range items {
		idx := i + 1
		sub := newReader(item, r.path.Child(name).Indexed(idx), r.cfg)
		if err := decode(idx, sub); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) Map(name string, decode func(key string, r shapevisit.FieldReader) error) error {
	c, ok := r.child(name)
	if !ok || c.IsNull() {
		return nil
	}
	base := r.path.Child(name)

	if shapekey.IsSingleEntry(r.cfg.Map) {
		for _, k := range c.Keys() {
			v, _ := c.Get(k)
			sub := newReader(v, base.Child(k), r.cfg)
			if err := decode(k, sub); err != nil {
				return err
			}
		}
		return nil
	}

	keyTag, valueTag, _ := shapekey.SplitEntriesOf(r.cfg.Map)
	items, err := resolveListItems(c, r.cfg.List, base)
	if err != nil {
		return err
	}
	for i, item := range items {
		entryPath := base.Indexed(i + 1)
		keyChild, ok := item.Get(keyTag)
		if !ok {
			return shapeerr.NewKeyNotFound(entryPath, keyTag)
		}
		mk, ok := keyChild.StringValue()
		if !ok {
			return shapeerr.NewTypeMismatch(entryPath.Child(keyTag), "string", kindName(keyChild))
		}
		valChild, ok := item.Get(valueTag)
		if !ok {
			valChild = shape.Null()
		}
		sub := newReader(valChild, entryPath.Child(valueTag), r.cfg)
		if err := decode(mk, sub); err != nil {
			return err
		}
	}
	return nil
}

// resolveListItems extracts the ordered Shape items of a list laid out
// under node per layout.
func resolveListItems(node shape.Shape, layout shapekey.ListLayout, path fieldpath.Path) ([]shape.Shape, error) {
	dict := node
	if itemTag, ok := shapekey.CollapseByIndexAndItemTagOf(layout); ok {
		sub, ok := node.Get(itemTag)
		if !ok {
			return nil, nil
		}
		dict = sub
		path = path.Child(itemTag)
	}
	n := dict.Len()
	items := make([]shape.Shape, n)
	for i := 1; i <= n; i++ {
		item, ok := dict.Get(strconv.Itoa(i))
		if !ok {
			return nil, shapeerr.NewKeyNotFound(path.Indexed(i), strconv.Itoa(i))
		}
		items[i-1] = item
	}
	return items, nil
}

func kindName(s shape.Shape) string {
	switch s.Kind() {
	case shape.KindDict:
		return "dict"
	case shape.KindString:
		return "string"
	default:
		return "null"
	}
}
