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
	"fmt"
	"strings"
)

// Tokenize parses a path template into a Template, enforcing: no
// adjoining variables, at most one greedy variable which must be the
// last token of the last non-empty segment, and no empty segment except
// a leading one caused by a leading "/".
func Tokenize(tmpl string) (*Template, error) {
	leadingSlash := strings.HasPrefix(tmpl, "/")
	raw := tmpl
	if leadingSlash {
		raw = raw[1:]
	}
	if raw == "" {
		return &Template{LeadingSlash: leadingSlash}, nil
	}

	parts := strings.Split(raw, "/")
	segments := make([]Segment, len(parts))
	greedyCount := 0

	for i, part := range parts {
		if part == "" {
			return nil, &Error{Kind: EmptySegment, Reason: fmt.Sprintf("empty segment at position %d", i)}
		}
		seg, err := tokenizeSegment(part)
		if err != nil {
			return nil, err
		}
		for _, t := range seg {
			if t.Greedy {
				greedyCount++
			}
		}
		segments[i] = seg
	}

	if greedyCount > 1 {
		return nil, &Error{Kind: InvalidMultiSegmentTokens, Reason: "at most one greedy variable is allowed"}
	}
	if greedyCount == 1 {
		lastSeg := segments[len(segments)-1]
		lastTok := lastSeg[len(lastSeg)-1]
		if !lastTok.IsVar || !lastTok.Greedy {
			return nil, &Error{Kind: InvalidMultiSegmentTokens, Reason: "greedy variable must be the last token of the last segment"}
		}
	}

	return &Template{Segments: segments, LeadingSlash: leadingSlash}, nil
}

func tokenizeSegment(s string) (Segment, error) {
	var toks Segment
	lastWasVar := false
	i := 0
	for i < len(s) {
		if s[i] == '{' {
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return nil, &Error{Kind: InvalidMultiSegmentTokens, Reason: fmt.Sprintf("unclosed '{' in segment %q", s)}
			}
			end += i
			inner := s[i+1 : end]
			greedy := strings.HasSuffix(inner, "+")
			name := inner
			if greedy {
				name = inner[:len(inner)-1]
			}
			if name == "" {
				return nil, &Error{Kind: InvalidMultiSegmentTokens, Reason: fmt.Sprintf("empty variable name in segment %q", s)}
			}
			if lastWasVar {
				return nil, &Error{Kind: AdjoiningVariables, Reason: fmt.Sprintf("adjoining variables in segment %q", s)}
			}
			toks = append(toks, Token{IsVar: true, Name: name, Greedy: greedy})
			lastWasVar = true
			i = end + 1
			continue
		}

		end := strings.IndexByte(s[i:], '{')
		var lit string
		if end < 0 {
			lit = s[i:]
			i = len(s)
		} else {
			lit = s[i : i+end]
			i += end
		}
		toks = append(toks, Token{IsVar: false, Text: lit, lower: strings.ToLower(lit)})
		lastWasVar = false
	}
	return toks, nil
}

func segHasGreedy(seg Segment) bool {
	for _, t := range seg {
		if t.Greedy {
			return true
		}
	}
	return false
}
