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

package pathtmpl

import (
	"strings"

	"github.com/shapekit/shapecodec/fieldpath"
	"github.com/shapekit/shapecodec/shapeerr"
)

// Emit renders tmpl by substituting each variable token with the value
// stored under its name in values. A missing value raises ValueNotFound,
// the same DecodingError kind the decode direction uses, since rendering
// a template is, from the caller's point of view, just another place a
// required value can be absent.
func Emit(tmpl *Template, values map[string]string) (string, error) {
	var sb strings.Builder
	if tmpl.LeadingSlash {
		sb.WriteString("/")
	}
	for si, seg := range tmpl.Segments {
		if si > 0 {
			sb.WriteString("/")
		}
		for _, tok := range seg {
			if !tok.IsVar {
				sb.WriteString(tok.Text)
				continue
			}
			v, ok := values[tok.Name]
			if !ok {
				return "", shapeerr.NewValueNotFound(fieldpath.Path{{Type: fieldpath.Field, Name: tok.Name}}, "string")
			}
			sb.WriteString(v)
		}
	}
	return sb.String(), nil
}
