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

package pathtmpl_test

import (
	"testing"

	"github.com/shapekit/shapecodec/internal/assert"
	"github.com/shapekit/shapecodec/pathtmpl"
)

func TestTokenizeRejectsEmptySegment(t *testing.T) {
	_, err := pathtmpl.Tokenize("/a//b")
	assert.That(t, err).NotNil()
	perr, ok := err.(*pathtmpl.Error)
	assert.That(t, ok).True()
	assert.That(t, perr.Kind).Equal(pathtmpl.EmptySegment)
}

func TestTokenizeRejectsAdjoiningVariables(t *testing.T) {
	_, err := pathtmpl.Tokenize("/a/{x}{y}")
	assert.That(t, err).NotNil()
	perr, ok := err.(*pathtmpl.Error)
	assert.That(t, ok).True()
	assert.That(t, perr.Kind).Equal(pathtmpl.AdjoiningVariables)
}

func TestTokenizeRejectsGreedyNotLast(t *testing.T) {
	_, err := pathtmpl.Tokenize("/{rest+}/b")
	assert.That(t, err).NotNil()
}

func TestTokenizeRejectsMultipleGreedy(t *testing.T) {
	_, err := pathtmpl.Tokenize("/{a+}/{b+}")
	assert.That(t, err).NotNil()
}

func TestMatchAndEmitRoundTrip(t *testing.T) {
	tmpl, err := pathtmpl.Tokenize("/users/{id}/posts/{postId}")
	assert.That(t, err).Nil()

	bindings, err := pathtmpl.Match("/users/42/posts/7", tmpl)
	assert.That(t, err).Nil()
	got := map[string]string{}
	for _, b := range bindings {
		got[b.Name] = b.Value
	}
	assert.That(t, got).Equal(map[string]string{"id": "42", "postId": "7"})

	rendered, err := pathtmpl.Emit(tmpl, got)
	assert.That(t, err).Nil()
	assert.That(t, rendered).Equal("/users/42/posts/7")
}

func TestEmitFailsOnMissingValue(t *testing.T) {
	tmpl, err := pathtmpl.Tokenize("/users/{id}")
	assert.That(t, err).Nil()
	_, err = pathtmpl.Emit(tmpl, map[string]string{})
	assert.That(t, err).NotNil()
}

func TestMatchRejectsLeadingSlashMismatch(t *testing.T) {
	tmpl, err := pathtmpl.Tokenize("users/{id}")
	assert.That(t, err).Nil()
	_, err = pathtmpl.Match("/users/42", tmpl)
	assert.That(t, err).NotNil()
}
