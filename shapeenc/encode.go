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

// Package shapeenc is the encoder walk: it drives a shapevisit.Value
// graph through a visitor contract and emits a flat, ordered list of
// (composed key, value-or-null) pairs. The recursion is the same shape
// as barky.FlattenValue's "compose key, recurse, emit leaf" walk, but
// the switch on reflect.Kind is replaced by a switch on which
// shapevisit.Value accessor succeeds, since the engine is
// reflection-free by design.
package shapeenc

import (
	"sort"
	"strconv"

	"github.com/shapekit/shapecodec/fieldpath"
	"github.com/shapekit/shapecodec/shapeerr"
	"github.com/shapekit/shapecodec/shapekey"
	"github.com/shapekit/shapecodec/shapevisit"
)

// Config parameterizes the encoder walk over the key-composition,
// map-layout, and key-transform strategies.
type Config struct {
	Key       shapekey.EncodeStrategy
	Map       shapekey.MapLayout
	Transform shapekey.EncodeTransform
}

// Pair is one emitted (key, value) entry. A nil Value denotes Null
// (present, empty), distinct from the pair being absent altogether.
type Pair struct {
	Key   string
	Value *string
}

// Encode walks root and returns its flat (key, value) pairs in
// canonical per-container order: keyed containers sorted by ASCII field
// name, indexed containers in ascending index order.
//
// root must resolve to a record or a map; anything else at the root
// fails with shapeerr.NotContainerRoot (scalar/Null) or
// shapeerr.UnkeyedRoot (list).
func Encode(root shapevisit.Value, cfg Config) ([]Pair, error) {
	if cfg.Transform == nil {
		cfg.Transform = shapekey.NoTransform
	}
	if _, ok := root.AsRecord(); !ok {
		if _, ok := root.AsMap(); !ok {
			if _, ok := root.AsList(); ok {
				return nil, shapeerr.NewEncodeError(shapeerr.UnkeyedRoot, nil, "a list cannot be the encode root")
			}
			return nil, shapeerr.NewEncodeError(shapeerr.NotContainerRoot, nil, "root value must be a record or a map")
		}
	}
	var out []Pair
	if err := walk("", root, nil, cfg, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(base string, v shapevisit.Value, path fieldpath.Path, cfg Config, out *[]Pair) error {
	if v.IsNull() {
		*out = append(*out, Pair{Key: base, Value: nil})
		return nil
	}
	if s, ok := v.Scalar(); ok {
		val := s
		*out = append(*out, Pair{Key: base, Value: &val})
		return nil
	}
	if rec, ok := v.AsRecord(); ok {
		return walkRecord(base, rec, path, cfg, out)
	}
	if list, ok := v.AsList(); ok {
		return walkList(base, list, path, cfg, out)
	}
	if m, ok := v.AsMap(); ok {
		return walkMap(base, m, path, cfg, out)
	}
	return shapeerr.NewEncodeError(shapeerr.NotContainerRoot, path, "value is none of record, list, map, scalar, or null")
}

func walkRecord(base string, rec shapevisit.Encodable, path fieldpath.Path, cfg Config, out *[]Pair) error {
	fs := shapevisit.NewFieldSet()
	rec.EncodeFields(fs)
	entries := fs.Entries()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := cfg.Key.Compose(base, cfg.Transform(name))
		if err := walk(key, entries[name], path.Child(name), cfg, out); err != nil {
			return err
		}
	}
	return nil
}

func walkList(base string, list []shapevisit.Value, path fieldpath.Path, cfg Config, out *[]Pair) error {
	for i, item := range list {
		idx := i + 1
		key := cfg.Key.Compose(base, strconv.Itoa(idx))
		if err := walk(key, item, path.Indexed(idx), cfg, out); err != nil {
			return err
		}
	}
	return nil
}

func walkMap(base string, m map[string]shapevisit.Value, path fieldpath.Path, cfg Config, out *[]Pair) error {
	mapKeys := make([]string, 0, len(m))
	for k := range m {
		mapKeys = append(mapKeys, k)
	}
	sort.Strings(mapKeys)

	if shapekey.IsSingleEntry(cfg.Map) {
		for _, mk := range mapKeys {
			key := cfg.Key.Compose(base, mk)
			if err := walk(key, m[mk], path.Child(mk), cfg, out); err != nil {
				return err
			}
		}
		return nil
	}

	keyTag, valueTag, _ := shapekey.SplitEntriesOf(cfg.Map)
	for i, mk := range mapKeys {
		idx := i + 1
		entryBase := cfg.Key.Compose(base, strconv.Itoa(idx))
		entryPath := path.Indexed(idx)

		keyField := cfg.Key.Compose(entryBase, cfg.Transform(keyTag))
		keyVal := mk
		*out = append(*out, Pair{Key: keyField, Value: &keyVal})

		valueField := cfg.Key.Compose(entryBase, cfg.Transform(valueTag))
		if err := walk(valueField, m[mk], entryPath.Child(valueTag), cfg, out); err != nil {
			return err
		}
	}
	return nil
}
