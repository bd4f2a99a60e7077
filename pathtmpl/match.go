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

// Binding is a single variable → raw value pair produced by Match. The
// value is never percent-decoded here: that decoding is left to the
// HTTP layer above this engine.
type Binding struct {
	Name  string
	Value string
}

// Match binds path against tmpl, walking both in lockstep segment by
// segment. It does not percent-decode anything.
func Match(path string, tmpl *Template) ([]Binding, error) {
	hasLeading := strings.HasPrefix(path, "/")
	if hasLeading != tmpl.LeadingSlash {
		return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: "leading slash does not match template"}
	}
	raw := path
	if hasLeading {
		raw = raw[1:]
	}
	var pathSegs []string
	if raw != "" {
		pathSegs = strings.Split(raw, "/")
	}

	var bindings []Binding
	pi := 0
	for si, seg := range tmpl.Segments {
		isLast := si == len(tmpl.Segments)-1
		if pi >= len(pathSegs) {
			return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: "path has too few segments"}
		}
		if isLast && segHasGreedy(seg) {
			b, err := matchGreedySegment(seg, pathSegs[pi], pathSegs[pi+1:])
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, b...)
			pi = len(pathSegs)
			continue
		}
		b, err := matchSegment(seg, pathSegs[pi])
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b...)
		pi++
	}
	if pi != len(pathSegs) {
		return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: "path has too many segments"}
	}
	return bindings, nil
}

func matchSegment(seg Segment, s string) ([]Binding, error) {
	var bindings []Binding
	lower := strings.ToLower(s)
	pos := 0
	for ti, tok := range seg {
		if !tok.IsVar {
			if !strings.HasPrefix(lower[pos:], tok.lower) {
				return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: fmt.Sprintf("expected literal %q at %q", tok.Text, s[pos:])}
			}
			pos += len(tok.lower)
			continue
		}
		if ti == len(seg)-1 {
			bindings = append(bindings, Binding{Name: tok.Name, Value: s[pos:]})
			pos = len(s)
			continue
		}
		next := seg[ti+1]
		idx := strings.Index(lower[pos:], next.lower)
		if idx < 0 {
			return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: fmt.Sprintf("literal %q not found for variable %q", next.Text, tok.Name)}
		}
		bindings = append(bindings, Binding{Name: tok.Name, Value: s[pos : pos+idx]})
		pos += idx
	}
	if pos != len(s) {
		return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: fmt.Sprintf("trailing characters %q", s[pos:])}
	}
	return bindings, nil
}

// matchGreedySegment matches every token of seg except its trailing
// greedy variable against firstSeg, then binds the greedy variable to
// whatever remains of firstSeg joined with the rest of the path
// segments by "/".
func matchGreedySegment(seg Segment, firstSeg string, rest []string) ([]Binding, error) {
	var bindings []Binding
	lower := strings.ToLower(firstSeg)
	pos := 0
	for ti := 0; ti < len(seg)-1; ti++ {
		tok := seg[ti]
		if !tok.IsVar {
			if !strings.HasPrefix(lower[pos:], tok.lower) {
				return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: fmt.Sprintf("expected literal %q at %q", tok.Text, firstSeg[pos:])}
			}
			pos += len(tok.lower)
			continue
		}
		next := seg[ti+1]
		idx := strings.Index(lower[pos:], next.lower)
		if idx < 0 {
			return nil, &Error{Kind: PathDoesNotMatchTemplate, Reason: fmt.Sprintf("literal %q not found for variable %q", next.Text, tok.Name)}
		}
		bindings = append(bindings, Binding{Name: tok.Name, Value: firstSeg[pos : pos+idx]})
		pos += idx
	}

	greedyTok := seg[len(seg)-1]
	tail := firstSeg[pos:]
	if len(rest) > 0 {
		tail = tail + "/" + strings.Join(rest, "/")
	}
	bindings = append(bindings, Binding{Name: greedyTok.Name, Value: tail})
	return bindings, nil
}
