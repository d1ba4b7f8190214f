// File: nodes.go
// Title: Lox Expression Node Definitions
// Description: Defines the expression node types, their constructors and
//              structural validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"errors"
	"fmt"

	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

var errNilExpr = errors.New("expression is required")

// Expr is implemented by every expression node
type Expr interface {
	// Accept dispatches to the Visit method matching the node type
	Accept(visitor Visitor) interface{}

	// Children returns the direct sub-expressions in source order.
	// The slice is fresh; the nodes are shared and must not be modified.
	Children() []Expr

	// String returns the parenthesized prefix form
	String() string

	// Validate checks the node and its subtree for structural errors
	Validate() error

	exprNode()
}

// Binary is an infix operation such as a + b
type Binary struct {
	Left     Expr
	Operator loxtoken.Token
	Right    Expr
}

// Grouping is a parenthesized expression
type Grouping struct {
	Expression Expr
}

// Literal is a number, string, boolean or nil
type Literal struct {
	Value loxtoken.Value
}

// Unary is a prefix operation such as -a or !a
type Unary struct {
	Operator loxtoken.Token
	Right    Expr
}

// NewBinary creates a binary node
func NewBinary(left Expr, operator loxtoken.Token, right Expr) *Binary {
	return &Binary{Left: left, Operator: operator, Right: right}
}

// NewGrouping creates a grouping node
func NewGrouping(expression Expr) *Grouping {
	return &Grouping{Expression: expression}
}

// NewLiteral creates a literal node
func NewLiteral(value loxtoken.Value) *Literal {
	return &Literal{Value: value}
}

// NewUnary creates a unary node
func NewUnary(operator loxtoken.Token, right Expr) *Unary {
	return &Unary{Operator: operator, Right: right}
}

// Binary

func (b *Binary) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(b)
}

func (b *Binary) Children() []Expr {
	return []Expr{b.Left, b.Right}
}

func (b *Binary) String() string {
	return Print(b)
}

func (b *Binary) Validate() error {
	if b.Left == nil {
		return fmt.Errorf("binary %q: left operand is required", b.Operator.Lexeme)
	}
	if b.Right == nil {
		return fmt.Errorf("binary %q: right operand is required", b.Operator.Lexeme)
	}
	if !IsBinaryOperator(b.Operator.Kind) {
		return fmt.Errorf("binary: %s is not a binary operator", b.Operator.Kind)
	}
	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (b *Binary) exprNode() {}

// Grouping

func (g *Grouping) Accept(visitor Visitor) interface{} {
	return visitor.VisitGroupingExpr(g)
}

func (g *Grouping) Children() []Expr {
	return []Expr{g.Expression}
}

func (g *Grouping) String() string {
	return Print(g)
}

func (g *Grouping) Validate() error {
	if g.Expression == nil {
		return fmt.Errorf("grouping: expression is required")
	}
	return g.Expression.Validate()
}

func (g *Grouping) exprNode() {}

// Literal

func (l *Literal) Accept(visitor Visitor) interface{} {
	return visitor.VisitLiteralExpr(l)
}

func (l *Literal) Children() []Expr {
	return nil
}

func (l *Literal) String() string {
	return Print(l)
}

func (l *Literal) Validate() error {
	return nil
}

func (l *Literal) exprNode() {}

// Unary

func (u *Unary) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryExpr(u)
}

func (u *Unary) Children() []Expr {
	return []Expr{u.Right}
}

func (u *Unary) String() string {
	return Print(u)
}

func (u *Unary) Validate() error {
	if u.Right == nil {
		return fmt.Errorf("unary %q: operand is required", u.Operator.Lexeme)
	}
	if !IsUnaryOperator(u.Operator.Kind) {
		return fmt.Errorf("unary: %s is not a unary operator", u.Operator.Kind)
	}
	if err := u.Right.Validate(); err != nil {
		return fmt.Errorf("operand: %w", err)
	}
	return nil
}

func (u *Unary) exprNode() {}

// IsBinaryOperator reports whether kind may appear in a Binary node
func IsBinaryOperator(kind loxtoken.Kind) bool {
	switch kind {
	case loxtoken.BangEqual, loxtoken.EqualEqual,
		loxtoken.Greater, loxtoken.GreaterEqual, loxtoken.Less, loxtoken.LessEqual,
		loxtoken.Minus, loxtoken.Plus, loxtoken.Slash, loxtoken.Star:
		return true
	default:
		return false
	}
}

// IsUnaryOperator reports whether kind may appear in a Unary node
func IsUnaryOperator(kind loxtoken.Kind) bool {
	return kind == loxtoken.Bang || kind == loxtoken.Minus
}

// NodeType returns the lower-case name of the node's type
func NodeType(expr Expr) string {
	switch expr.(type) {
	case *Binary:
		return "binary"
	case *Grouping:
		return "grouping"
	case *Literal:
		return "literal"
	case *Unary:
		return "unary"
	default:
		return "unknown"
	}
}
