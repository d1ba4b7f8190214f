// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small Unicode-aware string helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-19 v0.3.0: Trimmed to the helpers used by the Lox tools

// Package stringx provides string helpers that the standard library lacks.
//
// All functions count runes, not bytes, so source text containing
// multi-byte characters is never cut in the middle of a character.
//
//	loxstringx.Truncate("a very long expression", 10, "...") // "a very ..."
//	loxstringx.ToSnakeCase("GreaterEqual")                   // "greater_equal"
//	line, ok := loxstringx.LineAt(source, 3)
package stringx
