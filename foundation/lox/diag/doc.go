// File: doc.go
// Title: Lox Diagnostics Documentation
// Description: Package documentation for diagnostic collection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package diag collects line-tagged lexical, syntax and runtime errors.
//
// A Reporter is passed to the scanner and the parser instead of a global
// error sink, so every run owns its diagnostics and tests can inspect them.
//
//	var r diag.Reporter
//	r.Lexical(3, "Unexpected character.")
//	fmt.Println(r.Err()) // [3] | Error: Unexpected character.
package diag
