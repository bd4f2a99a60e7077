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

package shapedec_test

import (
	"testing"

	"github.com/shapekit/shapecodec/internal/assert"
	"github.com/shapekit/shapecodec/shape"
	"github.com/shapekit/shapecodec/shapedec"
	"github.com/shapekit/shapecodec/shapeerr"
	"github.com/shapekit/shapecodec/shapekey"
	"github.com/shapekit/shapecodec/shapevisit"
)

type target struct {
	Name string
	Age  int64
}

func (t *target) DecodeFields(r shapevisit.FieldReader) error {
	var err error
	if t.Name, err = r.String("Name"); err != nil {
		return err
	}
	t.Age, err = r.Int64("Age")
	return err
}

func cfg() shapedec.Config {
	return shapedec.Config{Key: shapekey.AsSeparatorDecode('.'), Map: shapekey.SingleEntry(), List: shapekey.CollapseByIndex()}
}

func TestMissingRequiredStringDefaultsToEmpty(t *testing.T) {
	tree := shape.Dict(map[string]shape.Shape{"Age": shape.String("5")})
	var out target
	err := shapedec.Decode(tree, cfg(), &out)
	assert.That(t, err).Nil()
	assert.That(t, out.Name).Equal("")
	assert.That(t, out.Age).Equal(int64(5))
}

func TestMissingRequiredIntRaisesKeyNotFound(t *testing.T) {
	tree := shape.Dict(map[string]shape.Shape{"Name": shape.String("ada")})
	var out target
	err := shapedec.Decode(tree, cfg(), &out)
	assert.That(t, err).NotNil()
	de, ok := shapeerr.AsDecodeError(err)
	assert.That(t, ok).True()
	assert.That(t, de.Kind).Equal(shapeerr.KeyNotFound)
}

func TestNullIntRaisesValueNotFound(t *testing.T) {
	tree := shape.Dict(map[string]shape.Shape{"Name": shape.String("ada"), "Age": shape.Null()})
	var out target
	err := shapedec.Decode(tree, cfg(), &out)
	assert.That(t, err).NotNil()
	de, ok := shapeerr.AsDecodeError(err)
	assert.That(t, ok).True()
	assert.That(t, de.Kind).Equal(shapeerr.ValueNotFound)
}

func TestShapePrefixExactMatchWinsOverPrefixGroup(t *testing.T) {
	tree := shape.Dict(map[string]shape.Shape{
		"Name":       shape.String("exact"),
		"NameSuffix": shape.String("grouped"),
		"Age":        shape.String("1"),
	})
	c := shapedec.Config{Key: shapekey.ShapePrefix(), Map: shapekey.SingleEntry(), List: shapekey.CollapseByIndex()}
	var out target
	err := shapedec.Decode(tree, c, &out)
	assert.That(t, err).Nil()
	assert.That(t, out.Name).Equal("exact")
}
