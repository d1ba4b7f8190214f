// File: doc.go
// Title: Lox Token Model Documentation
// Description: Package documentation for the Lox token model.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package token defines the vocabulary shared by the Lox scanner and parser:
// token kinds, the literal value union and the immutable Token record.
//
// Tokens are plain values. They are produced once by the scanner, copied
// freely and never modified afterwards.
//
//	tok := token.New(token.Number, "1.5", token.NumberValue(1.5), 1)
//	fmt.Println(tok) // Number 1.5 1.5 1
package token
