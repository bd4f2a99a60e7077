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

// Package urlpath is the templated URL path surface codec. A path
// template binds a flat set of named variables, not an arbitrary nested
// shape, so this package reuses shapeenc/shapedec only for the values
// themselves (a variable may still be a dotted composite key if the
// caller's record nests), and reuses pathtmpl for the structural work
// of tokenizing, matching, and emitting the template. Unlike query and
// header, path values are never percent-encoded here: that
// responsibility belongs to whatever HTTP layer sits above this engine.
package urlpath

import (
	"github.com/shapekit/shapecodec/pathtmpl"
	"github.com/shapekit/shapecodec/shape"
	"github.com/shapekit/shapecodec/shapedec"
	"github.com/shapekit/shapecodec/shapeenc"
	"github.com/shapekit/shapecodec/shapekey"
	"github.com/shapekit/shapecodec/shapeparse"
	"github.com/shapekit/shapecodec/shapevisit"
)

func encodeConfig() shapeenc.Config {
	return shapeenc.Config{
		Key:       shapekey.AsSeparator('.'),
		Map:       shapekey.SingleEntry(),
		Transform: shapekey.NoTransform,
	}
}

func decodeConfig() shapedec.Config {
	return shapedec.Config{
		Key:  shapekey.AsSeparatorDecode('.'),
		Map:  shapekey.SingleEntry(),
		List: shapekey.CollapseByIndex(),
	}
}

func parseConfig() shapeparse.Config {
	return shapeparse.Config{
		Key:       shapekey.AsSeparatorDecode('.'),
		Transform: shapekey.NoDecodeTransform,
	}
}

// Compile tokenizes a path template of the form "/users/{id}/{rest+}".
func Compile(tmpl string) (*pathtmpl.Template, error) {
	return pathtmpl.Tokenize(tmpl)
}

// Encode renders value's fields as the named variables of tmpl and
// substitutes them in, producing a concrete path. value must encode to
// a flat record: any field that is itself a container (list, map,
// nested record) is addressed by its composed dotted key, which then
// must appear in tmpl under that same name.
func Encode(tmpl *pathtmpl.Template, value shapevisit.Value) (string, error) {
	pairs, err := shapeenc.Encode(value, encodeConfig())
	if err != nil {
		return "", err
	}
	values := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if p.Value != nil {
			values[p.Key] = *p.Value
		}
	}
	return pathtmpl.Emit(tmpl, values)
}

// Decode matches path against tmpl and reconstructs target from the
// bound variables.
func Decode(path string, tmpl *pathtmpl.Template, target shapevisit.Decodable) error {
	tree, err := parse(path, tmpl)
	if err != nil {
		return err
	}
	return shapedec.Decode(tree, decodeConfig(), target)
}

// DecodeRaw matches path against tmpl the same way Decode does, but
// returns the untyped shape.RawShape tree instead of populating a
// target record. It is for callers that need to inspect an arbitrary
// matched path (a proxy, a generic logging middleware) without a fixed
// Go type to decode into.
func DecodeRaw(path string, tmpl *pathtmpl.Template) (shape.RawShape, error) {
	tree, err := parse(path, tmpl)
	if err != nil {
		return shape.RawShape{}, err
	}
	return shape.AsRaw(tree), nil
}

func parse(path string, tmpl *pathtmpl.Template) (shape.Shape, error) {
	bindings, err := pathtmpl.Match(path, tmpl)
	if err != nil {
		return shape.Shape{}, err
	}
	pairs := make([]shapeparse.Pair, 0, len(bindings))
	for _, b := range bindings {
		v := b.Value
		pairs = append(pairs, shapeparse.Pair{Key: b.Name, Value: &v})
	}
	return shapeparse.Parse(pairs, parseConfig())
}
