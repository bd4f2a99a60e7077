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

// Package shapeparse is the inverse of shapeenc: it consumes a flat
// list of (key, value-or-missing) pairs and reassembles a shape.Shape
// tree. The tree-building and conflict-detection algorithm is adapted
// from barky.Storage.Set, which inserts one flattened "foo.bar[0]"
// style key at a time and rejects the case where a key is used both as
// a leaf and as a container; this package reaches the same tree by
// partitioning the whole pair list by shared prefix and recursing,
// rather than inserting one key at a time.
package shapeparse

import (
	"strings"

	"github.com/shapekit/shapecodec/fieldpath"
	"github.com/shapekit/shapecodec/shape"
	"github.com/shapekit/shapecodec/shapeerr"
	"github.com/shapekit/shapecodec/shapekey"
)

// Pair is one input (key, value-or-missing) entry. A nil Value denotes
// a missing value, which becomes shape.Null().
type Pair struct {
	Key   string
	Value *string
}

// Config parameterizes the parser over the key-decode strategy and key
// decode transform. DecodeValue, if non-nil, is applied to every
// present value before it is stored in the Shape (query and header set
// it to percent-decoding); urlpath leaves it nil since path values are
// not percent-decoded by this engine.
type Config struct {
	Key         shapekey.DecodeStrategy
	Transform   shapekey.DecodeTransform
	DecodeValue func(string) (string, error)
}

// Parse reassembles pairs into a Shape under cfg.
func Parse(pairs []Pair, cfg Config) (shape.Shape, error) {
	if cfg.Transform == nil {
		cfg.Transform = shapekey.NoDecodeTransform
	}
	root := shape.NewMutableDict()

	if sep, ok := shapekey.AsSeparatorOf(cfg.Key); ok {
		if err := insertAsSeparator(root, pairs, sep, cfg, nil); err != nil {
			return shape.Shape{}, err
		}
		return root.Finalize(), nil
	}

	// Flat and ShapePrefix both insert pairs verbatim at the parser
	// stage: ShapePrefix defers all grouping to the decoder walk (E),
	// which has the target field names available to disambiguate.
	if err := insertFlat(root, pairs, cfg, nil); err != nil {
		return shape.Shape{}, err
	}
	return root.Finalize(), nil
}

func insertFlat(node *shape.MutableNode, pairs []Pair, cfg Config, path fieldpath.Path) error {
	for _, p := range pairs {
		name := cfg.Transform(p.Key)
		if name == "" {
			return shapeerr.NewDataCorrupted(path, "empty field name", nil)
		}
		v, err := decodeLeaf(p.Value, cfg)
		if err != nil {
			return err
		}
		if err := node.SetLeaf(name, v); err != nil {
			return shapeerr.NewDataCorrupted(path.Child(name), "property conflict", err)
		}
	}
	return nil
}

func insertAsSeparator(node *shape.MutableNode, pairs []Pair, sep byte, cfg Config, path fieldpath.Path) error {
	groups := make(map[string][]Pair)
	groupOrder := make([]string, 0)

	for _, p := range pairs {
		idx := strings.IndexByte(p.Key, sep)
		if idx < 0 {
			name := cfg.Transform(p.Key)
			if name == "" {
				return shapeerr.NewDataCorrupted(path, "empty field name", nil)
			}
			v, err := decodeLeaf(p.Value, cfg)
			if err != nil {
				return err
			}
			if err := node.SetLeaf(name, v); err != nil {
				return shapeerr.NewDataCorrupted(path.Child(name), "property conflict", err)
			}
			continue
		}
		prefix, suffix := p.Key[:idx], p.Key[idx+1:]
		if _, seen := groups[prefix]; !seen {
			groupOrder = append(groupOrder, prefix)
		}
		groups[prefix] = append(groups[prefix], Pair{Key: suffix, Value: p.Value})
	}

	for _, prefix := range groupOrder {
		name := cfg.Transform(prefix)
		if name == "" {
			return shapeerr.NewDataCorrupted(path, "empty field name", nil)
		}
		child, err := node.Child(name)
		if err != nil {
			return shapeerr.NewDataCorrupted(path.Child(name), "property conflict", err)
		}
		if err := insertAsSeparator(child, groups[prefix], sep, cfg, path.Child(name)); err != nil {
			return err
		}
	}
	return nil
}

func decodeLeaf(value *string, cfg Config) (shape.Shape, error) {
	if value == nil {
		return shape.Null(), nil
	}
	s := *value
	if cfg.DecodeValue != nil {
		decoded, err := cfg.DecodeValue(s)
		if err != nil {
			return shape.Shape{}, shapeerr.NewDataCorrupted(nil, "percent-decode failed", err)
		}
		s = decoded
	}
	return shape.String(s), nil
}
