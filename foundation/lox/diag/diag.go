// File: diag.go
// Title: Lox Diagnostics
// Description: Defines the Diagnostic record, its rendering and the List
//              error type that groups the diagnostics of one run.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diag

import (
	"fmt"
	"strings"

	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Kind classifies a diagnostic by the stage that raised it
type Kind int

const (
	Lexical Kind = iota
	Syntax
	Runtime
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Diagnostic is one human-readable error tied to a source line
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string // "", " at end" or " at '<lexeme>'"
	Message string
}

// AtToken returns the location phrase for an error positioned on tok
func AtToken(tok loxtoken.Token) string {
	if tok.IsEOF() {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

// String renders "[<line>] | Error<where>: <message>"
func (d Diagnostic) String() string {
	return fmt.Sprintf("[%d] | Error%s: %s", d.Line, d.Where, d.Message)
}

// Error implements the error interface
func (d Diagnostic) Error() string {
	return d.String()
}

// List is the ordered set of diagnostics from one run. A non-empty List
// is an error.
type List []Diagnostic

// Error joins the diagnostics with newlines
func (l List) Error() string {
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Filter returns the diagnostics of the given kind
func (l List) Filter(kind Kind) List {
	var out List
	for _, d := range l {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Lexical returns the lexical diagnostics
func (l List) Lexical() List {
	return l.Filter(Lexical)
}

// Syntax returns the syntax diagnostics
func (l List) Syntax() List {
	return l.Filter(Syntax)
}

// Has reports whether any diagnostic has the given kind
func (l List) Has(kind Kind) bool {
	for _, d := range l {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
