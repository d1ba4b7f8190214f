// File: doc.go
// Title: Lox Parser Package Documentation
// Description: Package documentation for the recursive descent parser that
//              turns Lox tokens into expression trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

/*
Package parser converts a token sequence produced by the scanner into an
expression tree.

Grammar, lowest precedence first:

	expression -> equality
	equality   -> comparison ( ( "!=" | "==" ) comparison )*
	comparison -> term ( ( ">" | ">=" | "<" | "<=" ) term )*
	term       -> factor ( ( "-" | "+" ) factor )*
	factor     -> unary ( ( "/" | "*" ) unary )*
	unary      -> ( "!" | "-" ) unary | primary
	primary    -> NUMBER | STRING | "true" | "false" | "nil"
	            | "(" expression ")"

Binary levels are left associative; unary is right recursive. The whole
token sequence must form one expression.

A syntax error is reported once to the diagnostic reporter, tagged with the
offending token, and Parse returns ErrParse without a tree:

	var reporter diag.Reporter
	expr, err := parser.New(tokens, &reporter, parser.Options{}).Parse()
	if err != nil {
		fmt.Println(reporter.Diagnostics())
	}

Nesting of groups and unary operators is bounded by Options.MaxDepth.
Synchronize skips to the next statement boundary and is provided for
statement-level callers.
*/
package parser
