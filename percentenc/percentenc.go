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

// Package percentenc implements the single percent-encoding pass shared
// by the query and header surface codecs. Unlike net/url.QueryEscape,
// it never substitutes "+" for space: the query wire form this engine
// produces has no +-for-space convention. It also lets the caller
// supply exactly which characters pass through unescaped, rather than
// hard-coding RFC 3986's unreserved set.
package percentenc

import (
	"fmt"
	"strings"
)

// AllowedChars is a caller-supplied set of bytes that pass through an
// Encode call unescaped. A nil *AllowedChars means "emit raw": if no
// set is supplied, values are emitted unescaped.
type AllowedChars struct {
	allowed [256]bool
}

// NewAllowedChars builds an AllowedChars from the literal bytes of
// chars.
func NewAllowedChars(chars string) *AllowedChars {
	a := &AllowedChars{}
	for i := 0; i < len(chars); i++ {
		a.allowed[chars[i]] = true
	}
	return a
}

// DefaultHeaderAllowedChars is the header surface codec's default
// allowed set: "&' ()-._A-Za-z0-9".
var DefaultHeaderAllowedChars = NewAllowedChars("&' ()-._ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// Encode percent-encodes every byte of s not present in allowed. A nil
// allowed returns s unchanged.
func Encode(s string, allowed *AllowedChars) string {
	if allowed == nil {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if allowed.allowed[c] {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "%%%02X", c)
		}
	}
	return sb.String()
}

// Decode reverses a single percent-encoding pass: every "%XX" triplet
// becomes the byte it encodes. It is applied on intake regardless of
// which allowed set (if any) produced the input.
func Decode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			sb.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("incomplete percent-encoding at offset %d", i)
		}
		hi, ok1 := hexDigit(s[i+1])
		lo, ok2 := hexDigit(s[i+2])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("invalid percent-encoding %q at offset %d", s[i:i+3], i)
		}
		sb.WriteByte(byte(hi<<4 | lo))
		i += 2
	}
	return sb.String(), nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
