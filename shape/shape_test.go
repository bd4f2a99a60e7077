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

package shape_test

import (
	"testing"

	"github.com/shapekit/shapecodec/internal/assert"
	"github.com/shapekit/shapecodec/shape"
)

func TestDictGetAndKeys(t *testing.T) {
	d := shape.Dict(map[string]shape.Shape{
		"b": shape.String("2"),
		"a": shape.String("1"),
	})
	assert.That(t, d.Keys()).Equal([]string{"a", "b"})

	v, ok := d.Get("a")
	assert.That(t, ok).True()
	s, ok := v.StringValue()
	assert.That(t, ok).True()
	assert.That(t, s).Equal("1")

	_, ok = d.Get("missing")
	assert.That(t, ok).False()
}

func TestNullIsDistinctFromAbsent(t *testing.T) {
	n := shape.Null()
	assert.That(t, n.IsNull()).True()
	_, ok := n.StringValue()
	assert.That(t, ok).False()
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	a := shape.Dict(map[string]shape.Shape{"x": shape.String("1"), "y": shape.String("2")})
	b := shape.Dict(map[string]shape.Shape{"y": shape.String("2"), "x": shape.String("1")})
	assert.That(t, shape.Equal(a, b)).True()
}

func TestEqualTreatsZeroValueAsNull(t *testing.T) {
	assert.That(t, shape.Equal(shape.Shape{}, shape.Null())).True()
}

func TestMutableNodeRejectsLeafContainerConflict(t *testing.T) {
	root := shape.NewMutableDict()
	assert.That(t, root.SetLeaf("a", shape.String("1"))).Nil()
	_, err := root.Child("a")
	assert.That(t, err).NotNil()
}

func TestAsRawRendersContiguousDecimalKeysAsArray(t *testing.T) {
	d := shape.Dict(map[string]shape.Shape{
		"1": shape.String("x"),
		"2": shape.String("y"),
	})
	raw := shape.AsRaw(d)
	assert.That(t, raw.Kind).Equal(shape.RawArray)
	assert.That(t, len(raw.Array)).Equal(2)
	s0, _ := raw.Array[0].Dict.StringValue()
	s1, _ := raw.Array[1].Dict.StringValue()
	assert.That(t, s0).Equal("x")
	assert.That(t, s1).Equal("y")
}

func TestAsRawLeavesNonContiguousDictAsOther(t *testing.T) {
	d := shape.Dict(map[string]shape.Shape{
		"1": shape.String("x"),
		"3": shape.String("y"),
	})
	raw := shape.AsRaw(d)
	assert.That(t, raw.Kind).Equal(shape.RawOther)
	assert.That(t, shape.Equal(raw.Dict, d)).True()
}

func TestAsRawLeavesScalarAsOther(t *testing.T) {
	raw := shape.AsRaw(shape.String("ada"))
	assert.That(t, raw.Kind).Equal(shape.RawOther)
	s, ok := raw.Dict.StringValue()
	assert.That(t, ok).True()
	assert.That(t, s).Equal("ada")
}

func TestAsRawRecursesIntoNestedArrays(t *testing.T) {
	d := shape.Dict(map[string]shape.Shape{
		"1": shape.Dict(map[string]shape.Shape{
			"1": shape.String("nested"),
		}),
	})
	raw := shape.AsRaw(d)
	assert.That(t, raw.Kind).Equal(shape.RawArray)
	assert.That(t, raw.Array[0].Kind).Equal(shape.RawArray)
	s, _ := raw.Array[0].Array[0].Dict.StringValue()
	assert.That(t, s).Equal("nested")
}

func TestMutableNodeFinalize(t *testing.T) {
	root := shape.NewMutableDict()
	_ = root.SetLeaf("name", shape.String("ada"))
	child, err := root.Child("tags")
	assert.That(t, err).Nil()
	_ = child.SetLeaf("1", shape.String("x"))

	got := root.Finalize()
	v, ok := got.Get("name")
	assert.That(t, ok).True()
	s, _ := v.StringValue()
	assert.That(t, s).Equal("ada")

	tagsNode, ok := got.Get("tags")
	assert.That(t, ok).True()
	item, ok := tagsNode.Get("1")
	assert.That(t, ok).True()
	s, _ = item.StringValue()
	assert.That(t, s).Equal("x")
}
