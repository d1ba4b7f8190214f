// File: doc.go
// Title: Lox Interpreter Package Documentation
// Description: Package documentation for the expression evaluator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package interpreter evaluates Lox expression trees.
//
// The Interpreter is an ast.Visitor; it adds evaluation without touching
// the node types. Division follows IEEE 754, so 1 / 0 is +Inf rather than
// an error. Equality never fails and compares values of any type; NaN is
// not equal to itself.
//
//	value, err := interpreter.Evaluate(expr)
//	var rerr *interpreter.RuntimeError
//	if errors.As(err, &rerr) {
//		fmt.Println(rerr.Diagnostic())
//	}
package interpreter
