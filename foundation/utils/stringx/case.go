// File: case.go
// Title: String Case Conversion Utilities
// Description: Case conversion for identifiers rendered in machine-readable
//              output, such as token kind names in JSON.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.2.0: Kept snake_case only, fixed multi-byte predecessor check

package stringx

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string to snake_case.
// Example: "BangEqual" -> "bang_equal", "EOF" -> "eof"
func ToSnakeCase(s string) string {
	if s == "" {
		return s
	}

	var result strings.Builder
	prev := rune(-1)
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if prev != -1 && !unicode.IsUpper(prev) && prev != '_' {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r) || r == '-':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
		prev = r
	}

	return strings.ReplaceAll(result.String(), "__", "_")
}
