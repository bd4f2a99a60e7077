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

// Package header is the HTTP header surface codec. It differs from
// query in four ways: nested keys are joined with "-" rather than ".",
// field names are capitalized on encode and uncapitalized on decode,
// the wire form is an ordered list of (name, value) pairs rather than a
// single string (a header multimap, not a delimited string), and its
// default percent-encoding allowed set is the narrower
// "&' ()-._A-Za-z0-9", since header field values forbid many characters
// a query value permits.
package header

import (
	"github.com/shapekit/shapecodec/percentenc"
	"github.com/shapekit/shapecodec/shape"
	"github.com/shapekit/shapecodec/shapedec"
	"github.com/shapekit/shapecodec/shapeenc"
	"github.com/shapekit/shapecodec/shapekey"
	"github.com/shapekit/shapecodec/shapeparse"
	"github.com/shapekit/shapecodec/shapevisit"
)

// KV is a single emitted or consumed header field. A nil Value denotes
// a present-but-empty (Null) field, distinct from the field being
// absent altogether: the field simply does not appear in the []KV at
// all in that case.
type KV struct {
	Name  string
	Value *string
}

func encodeConfig() shapeenc.Config {
	return shapeenc.Config{
		Key:       shapekey.AsSeparator('-'),
		Map:       shapekey.SingleEntry(),
		Transform: shapekey.CapitalizeFirst,
	}
}

func decodeConfig() shapedec.Config {
	return shapedec.Config{
		Key:  shapekey.AsSeparatorDecode('-'),
		Map:  shapekey.SingleEntry(),
		List: shapekey.CollapseByIndex(),
	}
}

func parseConfig() shapeparse.Config {
	return shapeparse.Config{
		Key:       shapekey.AsSeparatorDecode('-'),
		Transform: shapekey.UncapitalizeFirst,
		DecodeValue: func(s string) (string, error) {
			return percentenc.Decode(s)
		},
	}
}

// Encode walks value into an ordered list of header fields. allowed, if
// nil, defaults to percentenc.DefaultHeaderAllowedChars; pass a non-nil
// *percentenc.AllowedChars explicitly to emit values raw by supplying a
// set that accepts every byte.
func Encode(value shapevisit.Value, allowed *percentenc.AllowedChars) ([]KV, error) {
	if allowed == nil {
		allowed = percentenc.DefaultHeaderAllowedChars
	}
	pairs, err := shapeenc.Encode(value, encodeConfig())
	if err != nil {
		return nil, err
	}
	out := make([]KV, 0, len(pairs))
	for _, p := range pairs {
		if p.Value == nil {
			out = append(out, KV{Name: p.Key})
			continue
		}
		v := percentenc.Encode(*p.Value, allowed)
		out = append(out, KV{Name: p.Key, Value: &v})
	}
	return out, nil
}

// Decode reconstructs target from an ordered list of header fields. A
// nil Value is carried through as Null, the same as an absent value on
// the wire. Present field values are always percent-decoded on intake
// regardless of how they were produced.
func Decode(fields []KV, target shapevisit.Decodable) error {
	tree, err := parse(fields)
	if err != nil {
		return err
	}
	return shapedec.Decode(tree, decodeConfig(), target)
}

// DecodeRaw parses fields the same way Decode does, but returns the
// untyped shape.RawShape tree instead of populating a target record.
// It is for callers that need to inspect an arbitrary header set (a
// proxy, a generic logging middleware) without a fixed Go type to
// decode into.
func DecodeRaw(fields []KV) (shape.RawShape, error) {
	tree, err := parse(fields)
	if err != nil {
		return shape.RawShape{}, err
	}
	return shape.AsRaw(tree), nil
}

func parse(fields []KV) (shape.Shape, error) {
	pairs := make([]shapeparse.Pair, 0, len(fields))
	for _, f := range fields {
		pairs = append(pairs, shapeparse.Pair{Key: f.Name, Value: f.Value})
	}
	return shapeparse.Parse(pairs, parseConfig())
}
