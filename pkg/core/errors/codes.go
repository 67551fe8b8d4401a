// ============================================================================
// pwdgen - Passwort-Generator
// ============================================================================
//
// Package:     errors
// Description: Error codes and severities used across pwdgen
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package errors

// Code classifies an error independently of its message
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Generation
	CodeInvalidComplexity Code = "INVALID_COMPLEXITY"
	CodeInvalidLength     Code = "INVALID_LENGTH"
	CodeInvalidNumber     Code = "INVALID_NUMBER"

	// Clipboard
	CodeClipboardUnavailable Code = "CLIPBOARD_UNAVAILABLE"
	CodeEmptyCopyRequest     Code = "EMPTY_COPY_REQUEST"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the code
func (c Code) Category() string {
	switch c {
	case CodeInvalidComplexity, CodeInvalidLength, CodeInvalidNumber:
		return "generation"
	case CodeClipboardUnavailable, CodeEmptyCopyRequest:
		return "clipboard"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Severity ranks how much an error disturbs the user
type Severity int

const (
	// SeverityLow is recovered locally without the user noticing more than a hint
	SeverityLow Severity = iota
	// SeverityMedium fails a single action but leaves the application usable
	SeverityMedium
	// SeverityHigh prevents the application from starting
	SeverityHigh
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// SeverityForCode returns the default severity for a code
func SeverityForCode(code Code) Severity {
	switch code {
	case CodeEmptyCopyRequest:
		return SeverityLow
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
