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

package header_test

import (
	"testing"
	"time"

	"github.com/shapekit/shapecodec/header"
	"github.com/shapekit/shapecodec/internal/assert"
	"github.com/shapekit/shapecodec/shape"
	"github.com/shapekit/shapecodec/shapevisit"
)

type location struct {
	City    string
	Zip     string
	Aliases []string
}

func (l *location) EncodeFields(w *shapevisit.FieldSet) {
	w.Field("city", shapevisit.Str(l.City))
	w.Field("zip", shapevisit.Str(l.Zip))
	if l.Aliases != nil {
		items := make([]shapevisit.Value, len(l.Aliases))
		for i, a := range l.Aliases {
			items[i] = shapevisit.Str(a)
		}
		w.Field("aliases", shapevisit.List(items))
	}
}

func (l *location) DecodeFields(r shapevisit.FieldReader) error {
	var err error
	if l.City, err = r.String("city"); err != nil {
		return err
	}
	if l.Zip, err = r.String("zip"); err != nil {
		return err
	}
	return r.List("aliases", func(i int, fr shapevisit.FieldReader) error {
		s, err := fr.Self()
		if err != nil {
			return err
		}
		l.Aliases = append(l.Aliases, s)
		return nil
	})
}

type record struct {
	Nested location
}

func (r *record) EncodeFields(w *shapevisit.FieldSet) {
	w.Field("nested", shapevisit.Record(&r.Nested))
}

func (r *record) DecodeFields(fr shapevisit.FieldReader) error {
	_, err := fr.Record("nested", func(sub shapevisit.FieldReader) error {
		return r.Nested.DecodeFields(sub)
	})
	return err
}

func TestHeaderFieldNamesAreCapitalized(t *testing.T) {
	l := &location{City: "Berlin", Zip: "10115"}
	fields, err := header.Encode(shapevisit.Record(l), nil)
	assert.That(t, err).Nil()
	assert.That(t, len(fields)).Equal(2)
	assert.That(t, fields[0].Name).Equal("City")
	assert.That(t, fields[1].Name).Equal("Zip")
}

func TestHeaderNestedRecordWithList(t *testing.T) {
	rec := &record{Nested: location{City: "Oslo", Zip: "0150", Aliases: []string{"christiania", "tigerstaden"}}}
	fields, err := header.Encode(shapevisit.Record(rec), nil)
	assert.That(t, err).Nil()

	var out record
	assert.That(t, header.Decode(fields, &out)).Nil()
	assert.That(t, out.Nested.City).Equal("Oslo")
	assert.That(t, out.Nested.Aliases).Equal([]string{"christiania", "tigerstaden"})
}

func TestHeaderRoundTripPercentEncodesReservedChars(t *testing.T) {
	l := &location{City: "São Paulo, BR", Zip: "01000"}
	fields, err := header.Encode(shapevisit.Record(l), nil)
	assert.That(t, err).Nil()

	var out location
	assert.That(t, header.Decode(fields, &out)).Nil()
	assert.That(t, out.City).Equal("São Paulo, BR")
}

type noteRecord struct {
	Note string
}

func (n *noteRecord) EncodeFields(w *shapevisit.FieldSet) {
	w.Field("note", shapevisit.Null())
}

func (n *noteRecord) DecodeFields(fr shapevisit.FieldReader) error {
	v, ok, err := fr.OptionalString("note")
	if err != nil {
		return err
	}
	if ok {
		n.Note = v
	}
	return nil
}

func TestHeaderEncodesNullFieldAsValuelessKV(t *testing.T) {
	rec := &noteRecord{}
	fields, err := header.Encode(shapevisit.Record(rec), nil)
	assert.That(t, err).Nil()
	assert.That(t, len(fields)).Equal(1)
	assert.That(t, fields[0].Name).Equal("Note")
	assert.That(t, fields[0].Value).Nil()

	var out noteRecord
	assert.That(t, header.Decode(fields, &out)).Nil()
	assert.That(t, out.Note).Equal("")
}

type reading struct {
	Active bool
	Count  int64
	Ratio  float64
	When   time.Time
	Blob   []byte
}

func (r *reading) EncodeFields(w *shapevisit.FieldSet) {
	w.Field("active", shapevisit.Bool(r.Active))
	w.Field("count", shapevisit.Int(r.Count))
	w.Field("ratio", shapevisit.Float(r.Ratio))
	w.Field("when", shapevisit.Time(r.When))
	w.Field("blob", shapevisit.Bytes(r.Blob))
}

func (r *reading) DecodeFields(fr shapevisit.FieldReader) error {
	var err error
	if r.Active, err = fr.Bool("active"); err != nil {
		return err
	}
	if r.Count, err = fr.Int64("count"); err != nil {
		return err
	}
	if r.Ratio, err = fr.Float64("ratio"); err != nil {
		return err
	}
	if r.When, err = fr.Time("when"); err != nil {
		return err
	}
	r.Blob, err = fr.Bytes("blob")
	return err
}

// TestHeaderMixedPrimitivesRoundTrip reproduces the mixed-primitives
// scenario (bool, int, float, timestamp, base64 blob) through a single
// surface codec round trip.
func TestHeaderMixedPrimitivesRoundTrip(t *testing.T) {
	in := &reading{
		Active: true,
		Count:  42,
		Ratio:  3.5,
		When:   time.Date(2024, 1, 2, 3, 4, 5, 600_000_000, time.UTC),
		Blob:   []byte("hello"),
	}
	fields, err := header.Encode(shapevisit.Record(in), nil)
	assert.That(t, err).Nil()

	var out reading
	assert.That(t, header.Decode(fields, &out)).Nil()
	assert.That(t, out.Active).Equal(true)
	assert.That(t, out.Count).Equal(int64(42))
	assert.That(t, out.Ratio).Equal(3.5)
	assert.That(t, out.When.Equal(in.When)).True()
	assert.That(t, out.Blob).Equal(in.Blob)
}

func TestHeaderDecodeRawWithoutTypedTarget(t *testing.T) {
	l := &location{City: "Rome", Zip: "00100"}
	fields, err := header.Encode(shapevisit.Record(l), nil)
	assert.That(t, err).Nil()

	raw, err := header.DecodeRaw(fields)
	assert.That(t, err).Nil()
	assert.That(t, raw.Kind).Equal(shape.RawOther)

	city, ok := raw.Dict.Get("city")
	assert.That(t, ok).True()
	s, _ := city.StringValue()
	assert.That(t, s).Equal("Rome")
}
