// File: visitor.go
// Title: Lox AST Visitor Protocol
// Description: Defines the Visitor interface and the general purpose
//              visitors built on it: BaseVisitor, Collector and the
//              structural helpers Walk, Depth and Count.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Visitor is implemented by every algorithm over the expression tree.
// Each method returns the algorithm's own result type.
type Visitor interface {
	VisitBinaryExpr(expr *Binary) interface{}
	VisitGroupingExpr(expr *Grouping) interface{}
	VisitLiteralExpr(expr *Literal) interface{}
	VisitUnaryExpr(expr *Unary) interface{}
}

// BaseVisitor visits every child and returns nil. Embed it to override
// only the methods a visitor cares about; the embedding visitor must set
// Self so children are dispatched back to it.
type BaseVisitor struct {
	Self Visitor
}

func (bv *BaseVisitor) self() Visitor {
	if bv.Self != nil {
		return bv.Self
	}
	return bv
}

func (bv *BaseVisitor) VisitBinaryExpr(expr *Binary) interface{} {
	expr.Left.Accept(bv.self())
	expr.Right.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitGroupingExpr(expr *Grouping) interface{} {
	expr.Expression.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitLiteralExpr(expr *Literal) interface{} {
	return nil
}

func (bv *BaseVisitor) VisitUnaryExpr(expr *Unary) interface{} {
	expr.Right.Accept(bv.self())
	return nil
}

// Collector gathers the literals and operators of a tree in source order
type Collector struct {
	BaseVisitor

	Literals  []loxtoken.Value
	Operators []loxtoken.Token
	Counts    map[string]int // node type -> occurrences
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	c := &Collector{Counts: make(map[string]int)}
	c.Self = c
	return c
}

// Reset clears collected data
func (c *Collector) Reset() {
	c.Literals = nil
	c.Operators = nil
	c.Counts = make(map[string]int)
}

func (c *Collector) VisitBinaryExpr(expr *Binary) interface{} {
	c.Counts["binary"]++
	expr.Left.Accept(c)
	c.Operators = append(c.Operators, expr.Operator)
	expr.Right.Accept(c)
	return nil
}

func (c *Collector) VisitGroupingExpr(expr *Grouping) interface{} {
	c.Counts["grouping"]++
	return c.BaseVisitor.VisitGroupingExpr(expr)
}

func (c *Collector) VisitLiteralExpr(expr *Literal) interface{} {
	c.Counts["literal"]++
	c.Literals = append(c.Literals, expr.Value)
	return nil
}

func (c *Collector) VisitUnaryExpr(expr *Unary) interface{} {
	c.Counts["unary"]++
	c.Operators = append(c.Operators, expr.Operator)
	return c.BaseVisitor.VisitUnaryExpr(expr)
}

// Collect runs a Collector over expr
func Collect(expr Expr) *Collector {
	c := NewCollector()
	if expr != nil {
		expr.Accept(c)
	}
	return c
}

// Walk calls fn for expr and its descendants in depth-first pre-order.
// When fn returns false the node's children are skipped.
func Walk(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	for _, child := range expr.Children() {
		Walk(child, fn)
	}
}

// Count returns the number of nodes in the tree
func Count(expr Expr) int {
	n := 0
	Walk(expr, func(Expr) bool {
		n++
		return true
	})
	return n
}

// Depth returns the length of the longest root-to-leaf path; a single
// literal has depth 1 and nil has depth 0
func Depth(expr Expr) int {
	if expr == nil {
		return 0
	}
	deepest := 0
	for _, child := range expr.Children() {
		if d := Depth(child); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Validate checks expr for structural errors; nil is an error
func Validate(expr Expr) error {
	if expr == nil {
		return errNilExpr
	}
	return expr.Validate()
}
