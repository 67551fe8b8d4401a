// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     errors
// Description: Coded errors with severity, cause and details
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package errors provides the coded error type used by pwdgen. Every error
// carries a Code so callers can branch on the kind of failure without
// matching messages, and an optional cause that stays reachable through
// the standard errors.Is / errors.As helpers.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is a coded error with optional cause and details
type Error struct {
	message  string
	cause    error
	code     Code
	severity Severity
	details  map[string]interface{}
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		message:  message,
		code:     code,
		severity: SeverityForCode(code),
		details:  make(map[string]interface{}),
	}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a message. A wrapped *Error keeps its code and
// severity, any other error gets CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}

	var coded *Error
	if stderrors.As(err, &coded) {
		wrapped.code = coded.code
		wrapped.severity = coded.severity
		for k, v := range coded.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// WrapWithCode wraps err and sets the code explicitly
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.code = code
	wrapped.severity = SeverityForCode(code)
	return wrapped
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code, so sentinel
// values can be compared with errors.Is regardless of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// WithDetail adds a key-value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Message returns the message without the cause
func (e *Error) Message() string {
	return e.message
}

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// HasCode reports whether err or any error in its chain carries code
func HasCode(err error, code Code) bool {
	for err != nil {
		if coded, ok := err.(*Error); ok && coded.code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the first *Error in the chain, or CodeUnknown
func GetCode(err error) Code {
	var coded *Error
	if stderrors.As(err, &coded) {
		return coded.code
	}
	return CodeUnknown
}

// RootCause returns the innermost error of the chain
func RootCause(err error) error {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
