// File: token.go
// Title: Lox Token
// Description: Defines the immutable token record emitted by the scanner.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import (
	"fmt"
)

// Token is one lexical unit of Lox source
type Token struct {
	Kind    Kind   // Lexical category
	Lexeme  string // Exact source text; empty for EOF
	Literal Value  // Parsed value for String and Number tokens, None otherwise
	Line    int    // 1-based line where the token ends
}

// New creates a token
func New(kind Kind, lexeme string, literal Value, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// NewEOF creates the end-of-input marker for the given line
func NewEOF(line int) Token {
	return Token{Kind: EOF, Line: line}
}

// String renders "<kind> <lexeme> <literal> <line>"
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s %d", t.Kind, t.Lexeme, t.Literal, t.Line)
}

// IsEOF reports whether t marks the end of input
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
