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

// Package codecconfig loads named strategy presets from a config file,
// the way a Go-Spring application loads its property sources from
// yaml/toml/properties files rather than hard-coding them. A preset
// selects the key separator, map layout, list layout, and key transform
// without touching code, and resolves them into the shapekey values
// that shapeenc, shapeparse, and shapedec configs take. The query,
// header, and urlpath surface codecs do not read presets: they always
// use their own fixed configurations.
package codecconfig

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"

	"github.com/shapekit/shapecodec/shapekey"
)

// Preset is the on-disk, string-only description of a strategy bundle.
// Separator is a single byte such as "." or "-"; Transform is one of
// "none", "capitalize", "uncapitalize"; MapLayout is "single" or
// "split"; ListLayout is "index" or "itemtag".
type Preset struct {
	Separator      string            `yaml:"separator" toml:"separator"`
	Transform      string            `yaml:"transform" toml:"transform"`
	MapLayoutName  string            `yaml:"map_layout" toml:"map_layout"`
	ListLayoutName string            `yaml:"list_layout" toml:"list_layout"`
	Tags           map[string]string `yaml:"tags" toml:"tags"`
}

// Presets is a named collection of Preset, as loaded from a single
// config file (one file may describe several named strategy bundles,
// e.g. "legacy" and "default").
type Presets map[string]Preset

// Load reads path and unmarshals it into Presets according to its file
// extension: ".yaml"/".yml" via gopkg.in/yaml.v2, ".toml" via
// pelletier/go-toml, ".properties" via magiconair/properties. Any other
// extension is rejected rather than guessed at.
func Load(path string, data []byte) (Presets, error) {
	presets, err := load(path, data)
	if err != nil {
		return nil, err
	}
	log.Printf("codecconfig: loaded %d preset(s) from %s", len(presets), path)
	return presets, nil
}

func load(path string, data []byte) (Presets, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		var p Presets
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("codecconfig: parsing yaml preset file %q: %w", path, err)
		}
		return p, nil
	case ".toml":
		var p Presets
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("codecconfig: parsing toml preset file %q: %w", path, err)
		}
		return p, nil
	case ".properties":
		props, err := properties.LoadString(string(data))
		if err != nil {
			return nil, fmt.Errorf("codecconfig: parsing properties preset file %q: %w", path, err)
		}
		return presetsFromProperties(props), nil
	default:
		return nil, fmt.Errorf("codecconfig: unsupported preset file extension %q", ext)
	}
}

// presetsFromProperties reads a flat "name.field=value" properties file
// into Presets. magiconair/properties exposes the flattened keys
// directly, so the grouping by preset name is done here rather than by
// a struct tag, since the library has no notion of nested structs.
func presetsFromProperties(props *properties.Properties) Presets {
	out := make(Presets)
	for _, key := range props.Keys() {
		val, _ := props.Get(key)
		dot := strings.IndexByte(key, '.')
		if dot < 0 {
			continue
		}
		name, field := key[:dot], key[dot+1:]
		preset := out[name]
		switch field {
		case "separator":
			preset.Separator = val
		case "transform":
			preset.Transform = val
		case "map_layout":
			preset.MapLayoutName = val
		case "list_layout":
			preset.ListLayoutName = val
		default:
			if strings.HasPrefix(field, "tags.") {
				if preset.Tags == nil {
					preset.Tags = make(map[string]string)
				}
				preset.Tags[strings.TrimPrefix(field, "tags.")] = val
			}
		}
		out[name] = preset
	}
	return out
}

// EncodeStrategy resolves the preset's separator and transform into the
// shapekey types the encoder walk consumes.
func (p Preset) EncodeStrategy() (shapekey.EncodeStrategy, shapekey.EncodeTransform, error) {
	if p.Separator == "" {
		return nil, nil, fmt.Errorf("codecconfig: preset has no separator")
	}
	transform, err := p.encodeTransform()
	if err != nil {
		return nil, nil, err
	}
	return shapekey.AsSeparator(p.Separator[0]), transform, nil
}

// DecodeStrategy resolves the preset's separator and transform into the
// shapekey types the decoder walk consumes.
func (p Preset) DecodeStrategy() (shapekey.DecodeStrategy, shapekey.DecodeTransform, error) {
	if p.Separator == "" {
		return nil, nil, fmt.Errorf("codecconfig: preset has no separator")
	}
	transform, err := p.decodeTransform()
	if err != nil {
		return nil, nil, err
	}
	return shapekey.AsSeparatorDecode(p.Separator[0]), transform, nil
}

// MapLayout resolves the preset's map layout, reading Tags["key"] and
// Tags["value"] when the layout is "split".
func (p Preset) MapLayout() (shapekey.MapLayout, error) {
	switch p.MapLayoutName {
	case "", "single":
		return shapekey.SingleEntry(), nil
	case "split":
		key, value := p.Tags["key"], p.Tags["value"]
		if key == "" || value == "" {
			return nil, fmt.Errorf("codecconfig: split map layout requires tags.key and tags.value")
		}
		return shapekey.SplitEntries(key, value), nil
	default:
		return nil, fmt.Errorf("codecconfig: unknown map layout %q", p.MapLayoutName)
	}
}

// ListLayout resolves the preset's list layout, reading Tags["item"]
// when the layout is "itemtag".
func (p Preset) ListLayout() (shapekey.ListLayout, error) {
	switch p.ListLayoutName {
	case "", "index":
		return shapekey.CollapseByIndex(), nil
	case "itemtag":
		item := p.Tags["item"]
		if item == "" {
			return nil, fmt.Errorf("codecconfig: itemtag list layout requires tags.item")
		}
		return shapekey.CollapseByIndexAndItemTag(item), nil
	default:
		return nil, fmt.Errorf("codecconfig: unknown list layout %q", p.ListLayoutName)
	}
}

func (p Preset) encodeTransform() (shapekey.EncodeTransform, error) {
	switch p.Transform {
	case "", "none":
		return shapekey.NoTransform, nil
	case "capitalize":
		return shapekey.CapitalizeFirst, nil
	case "uncapitalize":
		return nil, fmt.Errorf("codecconfig: %q is a decode-only transform", p.Transform)
	default:
		return nil, fmt.Errorf("codecconfig: unknown transform %q", p.Transform)
	}
}

func (p Preset) decodeTransform() (shapekey.DecodeTransform, error) {
	switch p.Transform {
	case "", "none":
		return shapekey.NoDecodeTransform, nil
	case "uncapitalize":
		return shapekey.UncapitalizeFirst, nil
	case "capitalize":
		return nil, fmt.Errorf("codecconfig: %q is an encode-only transform", p.Transform)
	default:
		return nil, fmt.Errorf("codecconfig: unknown transform %q", p.Transform)
	}
}
