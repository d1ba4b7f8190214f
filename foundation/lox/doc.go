// File: doc.go
// Title: Lox Front End Package Documentation
// Description: Package documentation for the Lox expression front end and
//              its engine facade.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package lox implements the front end of the Lox language for single
expressions: source text is scanned into tokens, parsed into an expression
tree and handed to visitors.

Package: lox
Title: Lox Expression Front End
Description: Coordinates scanning, parsing and tree visitors behind one
             Engine with size limits, timing and coded errors.
Author: msto63
Version: v0.1.0
Created: 2026-10-19
Modified: 2026-10-19

Key Features:
  • Total scanner that reports every lexical error in one pass
  • Recursive descent parser with the classic Lox precedence ladder
  • Visitor protocol with prefix printer, tree printer and evaluator
  • Diagnostics in the form "[line] | Error at 'x': message"
  • Coded errors (LOX_LEXICAL, LOX_SYNTAX, LOX_RUNTIME) that still carry
    the full diagnostic list

# Subpackages

	token        token kinds, literal values and tokens
	diag         diagnostics and the Reporter collecting them
	scanner      source text to tokens
	ast          expression nodes, visitors and printers
	parser       tokens to expression tree
	interpreter  expression tree to value

# Usage

	engine := lox.NewEngine(lox.Options{Logger: logger})

	printed, err := engine.Print("1 + 2 * 3")
	// printed == "(+ 1 (* 2 3))"

	result, err := engine.Parse("(1 + 2")
	if err != nil {
		var diags diag.List
		if errors.As(err, &diags) {
			for _, d := range diags {
				fmt.Println(d) // [1] | Error at end: Expect ')' after expression.
			}
		}
	}

A failed run still returns its Result, so tokens and diagnostics can be
shown alongside the error. Options can be loaded from a configuration file
with OptionsFromConfig, which reads lox.trim_strings, lox.max_source_length
and lox.max_depth.
*/
package lox
