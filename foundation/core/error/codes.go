// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the Lox front end, grouped
//              by category, plus helpers to classify them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial error code definitions
// - 2026-10-19 v0.2.0: Lexical, syntax and runtime codes for the Lox pipeline

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source processing
	CodeLexical       Code = "LOX_LEXICAL"
	CodeSyntax        Code = "LOX_SYNTAX"
	CodeRuntime       Code = "LOX_RUNTIME"
	CodeInputTooLarge Code = "LOX_INPUT_TOO_LARGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeRuntime, CodeInputTooLarge,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeInputTooLarge:
		return "source"
	case CodeRuntime:
		return "runtime"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsSourceError reports whether the code describes a problem in user source text
// rather than in the tool itself.
func (c Code) IsSourceError() bool {
	switch c {
	case CodeLexical, CodeSyntax, CodeRuntime, CodeInputTooLarge:
		return true
	default:
		return false
	}
}
