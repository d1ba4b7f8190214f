// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validation, categorization and the
//              severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive code tests
// - 2026-10-19 v0.2.0: Lox code set

package error

import (
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeLexical, "LOX_LEXICAL"},
		{CodeSyntax, "LOX_SYNTAX"},
		{CodeRuntime, "LOX_RUNTIME"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		code Code
		want bool
	}{
		{CodeSyntax, true},
		{CodeInputTooLarge, true},
		{CodeInvalidConfig, true},
		{Code("SOMETHING_ELSE"), false},
		{Code(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeLexical, "source"},
		{CodeSyntax, "source"},
		{CodeRuntime, "runtime"},
		{CodeConfigError, "configuration"},
		{CodeNotFound, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Code.Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsSourceError(t *testing.T) {
	if !CodeRuntime.IsSourceError() {
		t.Error("CodeRuntime.IsSourceError() = false, want true")
	}
	if CodeInternal.IsSourceError() {
		t.Error("CodeInternal.IsSourceError() = true, want false")
	}
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		sev       Severity
		wantStr   string
		wantAlert bool
	}{
		{SeverityLow, "low", false},
		{SeverityMedium, "medium", false},
		{SeverityHigh, "high", true},
		{SeverityCritical, "critical", true},
		{Severity(42), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.wantStr, func(t *testing.T) {
			if got := tt.sev.String(); got != tt.wantStr {
				t.Errorf("Severity.String() = %v, want %v", got, tt.wantStr)
			}
			if got := tt.sev.ShouldAlert(); got != tt.wantAlert {
				t.Errorf("Severity.ShouldAlert() = %v, want %v", got, tt.wantAlert)
			}
		})
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeLexical, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
