// File: printer.go
// Title: Lox AST Printers
// Description: Implements the prefix-form Printer used as the canonical
//              rendering of a tree, and the indented TreePrinter used by
//              the command line for human inspection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"strconv"
	"strings"

	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Printer renders expressions in fully parenthesized prefix form.
// It holds no state, so one value may be shared.
type Printer struct{}

// Print renders expr, or "" for nil
func (p Printer) Print(expr Expr) string {
	if expr == nil {
		return ""
	}
	return expr.Accept(p).(string)
}

func (p Printer) VisitBinaryExpr(expr *Binary) interface{} {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

func (p Printer) VisitGroupingExpr(expr *Grouping) interface{} {
	return p.parenthesize("group", expr.Expression)
}

func (p Printer) VisitLiteralExpr(expr *Literal) interface{} {
	return expr.Value.String()
}

func (p Printer) VisitUnaryExpr(expr *Unary) interface{} {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteString(" ")
		sb.WriteString(e.Accept(p).(string))
	}
	sb.WriteString(")")
	return sb.String()
}

// Print renders expr in prefix form
func Print(expr Expr) string {
	return Printer{}.Print(expr)
}

// TreePrinter renders an indented outline, one node per line:
//
//	Binary +
//	  Literal 1
//	  Binary *
//	    Literal 2
//	    Literal 3
type TreePrinter struct {
	Indent string // per level, two spaces when empty

	sb    strings.Builder
	depth int
}

// NewTreePrinter creates a tree printer with the default indent
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{Indent: "  "}
}

// Print renders expr and resets the printer for reuse
func (tp *TreePrinter) Print(expr Expr) string {
	tp.sb.Reset()
	tp.depth = 0
	if expr != nil {
		expr.Accept(tp)
	}
	return tp.sb.String()
}

func (tp *TreePrinter) line(text string) {
	indent := tp.Indent
	if indent == "" {
		indent = "  "
	}
	tp.sb.WriteString(strings.Repeat(indent, tp.depth))
	tp.sb.WriteString(text)
	tp.sb.WriteString("\n")
}

func (tp *TreePrinter) nested(children ...Expr) {
	tp.depth++
	for _, child := range children {
		child.Accept(tp)
	}
	tp.depth--
}

func (tp *TreePrinter) VisitBinaryExpr(expr *Binary) interface{} {
	tp.line("Binary " + expr.Operator.Lexeme)
	tp.nested(expr.Left, expr.Right)
	return nil
}

func (tp *TreePrinter) VisitGroupingExpr(expr *Grouping) interface{} {
	tp.line("Grouping")
	tp.nested(expr.Expression)
	return nil
}

func (tp *TreePrinter) VisitLiteralExpr(expr *Literal) interface{} {
	text := expr.Value.String()
	if expr.Value.Type() == loxtoken.StringType {
		text = strconv.Quote(text)
	}
	tp.line("Literal " + text)
	return nil
}

func (tp *TreePrinter) VisitUnaryExpr(expr *Unary) interface{} {
	tp.line("Unary " + expr.Operator.Lexeme)
	tp.nested(expr.Right)
	return nil
}
