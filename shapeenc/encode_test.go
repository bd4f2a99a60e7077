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

package shapeenc_test

import (
	"testing"

	"github.com/shapekit/shapecodec/internal/assert"
	"github.com/shapekit/shapecodec/shapeenc"
	"github.com/shapekit/shapecodec/shapeerr"
	"github.com/shapekit/shapecodec/shapekey"
	"github.com/shapekit/shapecodec/shapevisit"
)

type flatRecord struct {
	B string
	A string
}

func (f *flatRecord) EncodeFields(w *shapevisit.FieldSet) {
	w.Field("B", shapevisit.Str(f.B))
	w.Field("A", shapevisit.Str(f.A))
}

func cfg() shapeenc.Config {
	return shapeenc.Config{Key: shapekey.AsSeparator('.'), Map: shapekey.SingleEntry(), Transform: shapekey.NoTransform}
}

func TestFieldsAreSortedByAsciiName(t *testing.T) {
	pairs, err := shapeenc.Encode(shapevisit.Record(&flatRecord{B: "2", A: "1"}), cfg())
	assert.That(t, err).Nil()
	assert.That(t, len(pairs)).Equal(2)
	assert.That(t, pairs[0].Key).Equal("A")
	assert.That(t, pairs[1].Key).Equal("B")
}

func TestScalarRootIsRejected(t *testing.T) {
	_, err := shapeenc.Encode(shapevisit.Str("x"), cfg())
	assert.That(t, err).NotNil()
	ee, ok := err.(*shapeerr.EncodeError)
	assert.That(t, ok).True()
	assert.That(t, ee.Kind).Equal(shapeerr.NotContainerRoot)
}

func TestListRootIsRejected(t *testing.T) {
	_, err := shapeenc.Encode(shapevisit.List([]shapevisit.Value{shapevisit.Str("x")}), cfg())
	assert.That(t, err).NotNil()
	ee, ok := err.(*shapeerr.EncodeError)
	assert.That(t, ok).True()
	assert.That(t, ee.Kind).Equal(shapeerr.UnkeyedRoot)
}

func TestSplitEntriesMapLayoutEmitsTwoPairsPerEntry(t *testing.T) {
	c := cfg()
	c.Map = shapekey.SplitEntries("key", "value")
	pairs, err := shapeenc.Encode(shapevisit.Map(map[string]shapevisit.Value{"color": shapevisit.Str("red")}), c)
	assert.That(t, err).Nil()
	assert.That(t, len(pairs)).Equal(2)
	assert.That(t, pairs[0].Key).Equal("1.key")
	assert.That(t, pairs[1].Key).Equal("1.value")
}

func TestNullFieldEmitsNilValue(t *testing.T) {
	pairs, err := shapeenc.Encode(shapevisit.Map(map[string]shapevisit.Value{"x": shapevisit.Null()}), cfg())
	assert.That(t, err).Nil()
	assert.That(t, len(pairs)).Equal(1)
	assert.That(t, pairs[0].Value).Nil()
}
