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

// Package shapeerr defines the error taxonomy of the shape engine: the
// encode-side and decode-side error kinds, each carrying enough
// structure for a caller to localize and distinguish the fault without
// string-matching the message.
package shapeerr

import (
	"errors"
	"fmt"

	"github.com/shapekit/shapecodec/fieldpath"
)

// Format formats a message and wraps err, if non-nil, using the
// "<message>: %w" idiom. Adapted from util.FormatError.
func Format(err error, format string, args ...any) error {
	if err == nil {
		return fmt.Errorf(format, args...)
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrap wraps err with additional context, showing a hierarchical
// relationship between the new message and the original error. Adapted
// from util.WrapError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return fmt.Errorf(format, args...)
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s << %w", msg, err)
}

// EncodeKind enumerates the ways an encode walk can fail.
type EncodeKind int8

const (
	NotContainerRoot EncodeKind = iota
	UnkeyedRoot
	NonStringMapKey
)

func (k EncodeKind) String() string {
	switch k {
	case NotContainerRoot:
		return "NotContainerRoot"
	case UnkeyedRoot:
		return "UnkeyedRoot"
	case NonStringMapKey:
		return "NonStringMapKey"
	default:
		return "Unknown"
	}
}

// EncodeError is raised by the encoder walk (shapeenc).
type EncodeError struct {
	Kind EncodeKind
	Path fieldpath.Path
	Msg  string
}

func (e *EncodeError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("encode error at %s: %s: %s", e.Path, e.Kind, e.Msg)
	}
	return fmt.Sprintf("encode error at %s: %s", e.Path, e.Kind)
}

// NewEncodeError constructs an EncodeError.
func NewEncodeError(kind EncodeKind, path fieldpath.Path, msg string) *EncodeError {
	return &EncodeError{Kind: kind, Path: path, Msg: msg}
}

// DecodeKind enumerates the ways a decode walk or parse can fail.
type DecodeKind int8

const (
	KeyNotFound DecodeKind = iota
	ValueNotFound
	TypeMismatch
	DataCorrupted
)

func (k DecodeKind) String() string {
	switch k {
	case KeyNotFound:
		return "KeyNotFound"
	case ValueNotFound:
		return "ValueNotFound"
	case TypeMismatch:
		return "TypeMismatch"
	case DataCorrupted:
		return "DataCorrupted"
	default:
		return "Unknown"
	}
}

// DecodeError is raised by the parser (shapeparse) and the decoder walk
// (shapedec). It always carries the Path of the field that faulted.
type DecodeError struct {
	Kind     DecodeKind
	Path     fieldpath.Path
	Key      string // KeyNotFound: the missing key
	Expected string // ValueNotFound / TypeMismatch: the expected kind
	Found    string // TypeMismatch: what was actually found
	Reason   string // DataCorrupted: why decoding the raw value failed
	Cause    error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KeyNotFound:
		return fmt.Sprintf("decode error at %s: key %q not found", e.Path, e.Key)
	case ValueNotFound:
		return fmt.Sprintf("decode error at %s: value not found, expected %s", e.Path, e.Expected)
	case TypeMismatch:
		return fmt.Sprintf("decode error at %s: type mismatch, expected %s, found %s", e.Path, e.Expected, e.Found)
	case DataCorrupted:
		if e.Cause != nil {
			return fmt.Sprintf("decode error at %s: data corrupted: %s: %v", e.Path, e.Reason, e.Cause)
		}
		return fmt.Sprintf("decode error at %s: data corrupted: %s", e.Path, e.Reason)
	default:
		return fmt.Sprintf("decode error at %s: %s", e.Path, e.Kind)
	}
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// NewKeyNotFound constructs a KeyNotFound DecodeError.
func NewKeyNotFound(path fieldpath.Path, key string) *DecodeError {
	return &DecodeError{Kind: KeyNotFound, Path: path, Key: key}
}

// NewValueNotFound constructs a ValueNotFound DecodeError.
func NewValueNotFound(path fieldpath.Path, expected string) *DecodeError {
	return &DecodeError{Kind: ValueNotFound, Path: path, Expected: expected}
}

// NewTypeMismatch constructs a TypeMismatch DecodeError.
func NewTypeMismatch(path fieldpath.Path, expected, found string) *DecodeError {
	return &DecodeError{Kind: TypeMismatch, Path: path, Expected: expected, Found: found}
}

// NewDataCorrupted constructs a DataCorrupted DecodeError.
func NewDataCorrupted(path fieldpath.Path, reason string, cause error) *DecodeError {
	return &DecodeError{Kind: DataCorrupted, Path: path, Reason: reason, Cause: cause}
}

// AsDecodeError reports whether err is (or wraps) a *DecodeError.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
