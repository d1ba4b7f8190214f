// File: doc.go
// Title: Lox Expression AST Documentation
// Description: Package documentation for the expression tree and its visitors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package ast defines the Lox expression tree and the visitor protocol.
//
// There are four node types: Binary, Grouping, Literal and Unary. Each
// node owns its children and is never modified after construction. New
// algorithms over the tree are written as a Visitor; the nodes dispatch
// to the matching Visit method in Accept and need no changes.
//
// The package ships several visitors:
//
//   - Printer renders the fully parenthesized prefix form, e.g. (+ 1 (* 2 3))
//   - TreePrinter renders an indented outline for humans
//   - Collector gathers literals and operators
//   - ToMap converts a tree into maps ready for JSON or YAML encoding
//
// Visitors that only need structure can use Walk, Depth and Count, which
// rely on Children instead of per-type code.
package ast
