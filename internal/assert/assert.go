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

// Package assert provides fluent assertion helpers for this module's
// own tests. When an assertion fails, the test continues running
// (call t.Helper()'s caller still sees t.Errorf, not t.Fatalf) so a
// single test function can report every mismatch it finds.
package assert

import (
	"fmt"
	"reflect"
	"strings"
)

// TestingT is the subset of *testing.T this package needs, so it can be
// used from any test without importing "testing" into package code.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// Assertion wraps a test context and a value for fluent assertions.
type Assertion struct {
	t TestingT
	v any
}

// That creates an Assertion for the given value v and test context t.
func That(t TestingT, v any) *Assertion {
	return &Assertion{t: t, v: v}
}

func (a *Assertion) fail(msg string, extra ...string) {
	a.t.Helper()
	if len(extra) > 0 {
		msg = msg + "\n  " + strings.Join(extra, "\n  ")
	}
	a.t.Errorf("%s", msg)
}

// True asserts that the wrapped value is the boolean true.
func (a *Assertion) True(msg ...string) *Assertion {
	a.t.Helper()
	if b, _ := a.v.(bool); !b {
		a.fail("expected true, got false", msg...)
	}
	return a
}

// False asserts that the wrapped value is the boolean false.
func (a *Assertion) False(msg ...string) *Assertion {
	a.t.Helper()
	if b, _ := a.v.(bool); b {
		a.fail("expected false, got true", msg...)
	}
	return a
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Nil asserts that the wrapped value is nil.
func (a *Assertion) Nil(msg ...string) *Assertion {
	a.t.Helper()
	if !isNil(a.v) {
		a.fail(fmt.Sprintf("expected nil, got (%T) %v", a.v, a.v), msg...)
	}
	return a
}

// NotNil asserts that the wrapped value is not nil.
func (a *Assertion) NotNil(msg ...string) *Assertion {
	a.t.Helper()
	if isNil(a.v) {
		a.fail("expected non-nil value, got nil", msg...)
	}
	return a
}

// Equal asserts that the wrapped value is reflect.DeepEqual to expect.
func (a *Assertion) Equal(expect any, msg ...string) *Assertion {
	a.t.Helper()
	if !reflect.DeepEqual(a.v, expect) {
		a.fail(fmt.Sprintf("expected equal values\n  actual:   (%T) %v\n  expected: (%T) %v", a.v, a.v, expect, expect), msg...)
	}
	return a
}

// NotEqual asserts that the wrapped value is not reflect.DeepEqual to expect.
func (a *Assertion) NotEqual(expect any, msg ...string) *Assertion {
	a.t.Helper()
	if reflect.DeepEqual(a.v, expect) {
		a.fail(fmt.Sprintf("expected different values, both are (%T) %v", a.v, a.v), msg...)
	}
	return a
}

// Error asserts that the wrapped value is a non-nil error whose message
// contains substr.
func (a *Assertion) Error(substr string, msg ...string) *Assertion {
	a.t.Helper()
	err, ok := a.v.(error)
	if !ok || err == nil {
		a.fail(fmt.Sprintf("expected an error containing %q, got (%T) %v", substr, a.v, a.v), msg...)
		return a
	}
	if !strings.Contains(err.Error(), substr) {
		a.fail(fmt.Sprintf("expected error %q to contain %q", err.Error(), substr), msg...)
	}
	return a
}
