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

// Package query is the URL query string surface codec. It wires the
// shape engine with a "." key separator, a single-entry map layout, and
// index-collapsed lists, then adds the two things unique to the query
// wire form: a stable secondary sort of emitted keys and optional
// percent-encoding of values.
package query

import (
	"sort"
	"strings"

	"github.com/shapekit/shapecodec/percentenc"
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
		DecodeValue: func(s string) (string, error) {
			return percentenc.Decode(s)
		},
	}
}

// Encode renders value as a query string (no leading "?"). allowed, if
// non-nil, percent-encodes every value against that set; a nil allowed
// emits values raw. Keys are always written as composed.
func Encode(value shapevisit.Value, allowed *percentenc.AllowedChars) (string, error) {
	pairs, err := shapeenc.Encode(value, encodeConfig())
	if err != nil {
		return "", err
	}

	// Emitted pairs are ordered by a case-insensitive primary sort on the
	// key, with the original key as a case-sensitive tie-break, so "ID"
	// and "id" sort adjacently but deterministically.
	sort.SliceStable(pairs, func(i, j int) bool {
		li, lj := strings.ToLower(pairs[i].Key), strings.ToLower(pairs[j].Key)
		if li != lj {
			return li < lj
		}
		return pairs[i].Key < pairs[j].Key
	})

	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		if p.Value != nil {
			sb.WriteByte('=')
			sb.WriteString(percentenc.Encode(*p.Value, allowed))
		}
	}
	return sb.String(), nil
}

// Decode parses a query string (with or without a leading "?") into
// target. Keys and values are always percent-decoded on intake,
// regardless of whether Encode was asked to percent-encode them.
func Decode(s string, target shapevisit.Decodable) error {
	tree, err := parse(s)
	if err != nil {
		return err
	}
	return shapedec.Decode(tree, decodeConfig(), target)
}

// DecodeRaw parses a query string the same way Decode does, but returns
// the untyped shape.RawShape tree instead of populating a target record.
// It is for callers that need to inspect an arbitrary query string (a
// proxy, a generic logging middleware) without a fixed Go type to
// decode into.
func DecodeRaw(s string) (shape.RawShape, error) {
	tree, err := parse(s)
	if err != nil {
		return shape.RawShape{}, err
	}
	return shape.AsRaw(tree), nil
}

func parse(s string) (shape.Shape, error) {
	s = strings.TrimPrefix(s, "?")

	var pairs []shapeparse.Pair
	for _, raw := range strings.Split(s, "&") {
		if raw == "" {
			continue
		}
		key := raw
		var value *string
		if idx := strings.IndexByte(raw, '='); idx >= 0 {
			key = raw[:idx]
			v := raw[idx+1:]
			value = &v
		}
		decodedKey, err := percentenc.Decode(key)
		if err != nil {
			return shape.Shape{}, err
		}
		pairs = append(pairs, shapeparse.Pair{Key: decodedKey, Value: value})
	}

	return shapeparse.Parse(pairs, parseConfig())
}
