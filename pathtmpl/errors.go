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

import "fmt"

// ErrorKind enumerates the ways a template can fail to tokenize or a
// concrete path can fail to match a tokenized template.
type ErrorKind int8

const (
	EmptySegment ErrorKind = iota
	AdjoiningVariables
	InvalidMultiSegmentTokens
	PathDoesNotMatchTemplate
)

func (k ErrorKind) String() string {
	switch k {
	case EmptySegment:
		return "EmptySegment"
	case AdjoiningVariables:
		return "AdjoiningVariables"
	case InvalidMultiSegmentTokens:
		return "InvalidMultiSegmentTokens"
	case PathDoesNotMatchTemplate:
		return "PathDoesNotMatchTemplate"
	default:
		return "Unknown"
	}
}

// Error is raised by Tokenize and Match.
type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}
