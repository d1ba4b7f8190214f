// File: doc.go
// Title: Lox Scanner Documentation
// Description: Package documentation for the Lox scanner.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package scanner turns Lox source text into tokens.
//
// Scanning is total: unknown characters and unterminated strings are
// reported to a diag.Reporter and scanning carries on, so one pass finds
// every lexical error. The token slice always ends with exactly one EOF.
//
//	var r diag.Reporter
//	tokens := scanner.New("1 + 2", &r).ScanTokens()
//	if r.HasErrors() {
//		return r.Err()
//	}
package scanner
