// File: reporter.go
// Title: Lox Diagnostic Reporter
// Description: Implements the Reporter collecting diagnostics raised by
//              the scanner, the parser and the evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diag

import (
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Reporter collects diagnostics in the order they are reported.
// The zero value is ready to use. A Reporter is not safe for concurrent use.
type Reporter struct {
	// Handler, if set, is called with every diagnostic as it is reported
	Handler func(Diagnostic)

	list List
}

// NewReporter returns a Reporter that also forwards to handler, which may be nil
func NewReporter(handler func(Diagnostic)) *Reporter {
	return &Reporter{Handler: handler}
}

// Report records d
func (r *Reporter) Report(d Diagnostic) {
	r.list = append(r.list, d)
	if r.Handler != nil {
		r.Handler(d)
	}
}

// Lexical records a scanner error on line
func (r *Reporter) Lexical(line int, message string) {
	r.Report(Diagnostic{Kind: Lexical, Line: line, Message: message})
}

// Syntax records a parser error positioned on tok
func (r *Reporter) Syntax(tok loxtoken.Token, message string) {
	r.Report(Diagnostic{Kind: Syntax, Line: tok.Line, Where: AtToken(tok), Message: message})
}

// Runtime records an evaluation error positioned on tok
func (r *Reporter) Runtime(tok loxtoken.Token, message string) {
	r.Report(Diagnostic{Kind: Runtime, Line: tok.Line, Where: AtToken(tok), Message: message})
}

// HasErrors reports whether anything was recorded
func (r *Reporter) HasErrors() bool {
	return len(r.list) > 0
}

// Count returns the number of recorded diagnostics
func (r *Reporter) Count() int {
	return len(r.list)
}

// Diagnostics returns a copy of the recorded diagnostics
func (r *Reporter) Diagnostics() List {
	if len(r.list) == 0 {
		return nil
	}
	out := make(List, len(r.list))
	copy(out, r.list)
	return out
}

// Err returns the recorded diagnostics as a List error, or nil
func (r *Reporter) Err() error {
	if len(r.list) == 0 {
		return nil
	}
	return r.Diagnostics()
}

// Reset discards recorded diagnostics; the handler is kept
func (r *Reporter) Reset() {
	r.list = nil
}
