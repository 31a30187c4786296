// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package eureka

import (
	"errors"
	"fmt"
)

// Kinds of store failure, match them with errors.Is
var (
	// ErrNotFound is returned when a config file or removal target does not exist
	ErrNotFound = errors.New("not found")
	// ErrIO is returned when the underlying filesystem operation fails
	ErrIO = errors.New("i/o failure")
	// ErrEnvironment is returned when the home directory cannot be resolved
	ErrEnvironment = errors.New("environment unresolved")
	// ErrEncoding is returned when a config file does not hold valid UTF-8 text
	ErrEncoding = errors.New("invalid encoding")
)

// Error is a store failure tied to a path
type Error struct {
	Kind error  // One of ErrNotFound, ErrIO, ErrEnvironment, ErrEncoding
	Path string // The path the operation touched, if any
	msg  string
	err  error // The original error, may be nil
}

var _ error = &Error{}

// Error returns the message, followed by the original error when there is one
func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

// Unwrap returns both the kind and the original error
func (e *Error) Unwrap() []error {
	if e.err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.err}
}

func newError(kind error, path string, err error, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Path: path,
		msg:  fmt.Sprintf(format, args...),
		err:  err,
	}
}
