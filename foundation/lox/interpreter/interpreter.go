// File: interpreter.go
// Title: Lox Expression Evaluator
// Description: Implements a visitor that evaluates an expression tree to a
//              single value using Lox semantics: arithmetic on numbers,
//              string concatenation with '+', comparisons on numbers,
//              equality on any values and nil/false falsiness. Type
//              mismatches become runtime diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package interpreter

import (
	"fmt"

	loxlog "github.com/msto63/lox/foundation/core/log"
	loxast "github.com/msto63/lox/foundation/lox/ast"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Runtime error messages
const (
	MsgOperandNumber          = "Operand must be a number."
	MsgOperandsNumbers        = "Operands must be numbers."
	MsgOperandsNumbersStrings = "Operands must be two numbers or two strings."
)

// RuntimeError is a type error raised while evaluating an operator
type RuntimeError struct {
	Token   loxtoken.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Diagnostic().String()
}

// Diagnostic converts the error into a runtime diagnostic
func (e *RuntimeError) Diagnostic() loxdiag.Diagnostic {
	return loxdiag.Diagnostic{
		Kind:    loxdiag.Runtime,
		Line:    e.Token.Line,
		Where:   loxdiag.AtToken(e.Token),
		Message: e.Message,
	}
}

// Options configures an Interpreter
type Options struct {
	Logger *loxlog.Logger
}

// Interpreter evaluates expression trees. It keeps no state between
// evaluations.
type Interpreter struct {
	reporter *loxdiag.Reporter
	logger   *loxlog.Logger
}

// result carries a value or the first runtime error out of a Visit method
type result struct {
	value loxtoken.Value
	err   error
}

// New creates an interpreter. Runtime errors are also sent to reporter
// when it is not nil.
func New(reporter *loxdiag.Reporter, opts Options) *Interpreter {
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}
	return &Interpreter{
		reporter: reporter,
		logger:   opts.Logger.WithField("component", "lox-interpreter"),
	}
}

// Evaluate is a convenience wrapper around a throwaway Interpreter
func Evaluate(expr loxast.Expr) (loxtoken.Value, error) {
	return New(nil, Options{Logger: loxlog.Discard()}).Evaluate(expr)
}

// Evaluate computes the value of expr. Evaluation stops at the first
// runtime error, which is returned as *RuntimeError.
func (in *Interpreter) Evaluate(expr loxast.Expr) (loxtoken.Value, error) {
	if expr == nil {
		return loxtoken.None(), fmt.Errorf("evaluate: expression is required")
	}

	res := in.eval(expr)
	if res.err != nil {
		if rerr, ok := res.err.(*RuntimeError); ok && in.reporter != nil {
			in.reporter.Report(rerr.Diagnostic())
		}
		in.logger.Debug("evaluation failed", loxlog.Fields{"error": res.err.Error()})
		return loxtoken.None(), res.err
	}

	in.logger.Debug("evaluation completed", loxlog.Fields{
		"type":  res.value.Type().String(),
		"value": res.value.String(),
	})
	return res.value, nil
}

func (in *Interpreter) eval(expr loxast.Expr) result {
	return expr.Accept(in).(result)
}

func (in *Interpreter) VisitLiteralExpr(expr *loxast.Literal) interface{} {
	return result{value: expr.Value}
}

func (in *Interpreter) VisitGroupingExpr(expr *loxast.Grouping) interface{} {
	return in.eval(expr.Expression)
}

func (in *Interpreter) VisitUnaryExpr(expr *loxast.Unary) interface{} {
	right := in.eval(expr.Right)
	if right.err != nil {
		return right
	}

	switch expr.Operator.Kind {
	case loxtoken.Bang:
		return result{value: loxtoken.BoolValue(!IsTruthy(right.value))}
	case loxtoken.Minus:
		n, ok := right.value.AsNumber()
		if !ok {
			return fail(expr.Operator, MsgOperandNumber)
		}
		return result{value: loxtoken.NumberValue(-n)}
	}

	return fail(expr.Operator, fmt.Sprintf("Unknown unary operator %s.", expr.Operator.Lexeme))
}

func (in *Interpreter) VisitBinaryExpr(expr *loxast.Binary) interface{} {
	left := in.eval(expr.Left)
	if left.err != nil {
		return left
	}
	right := in.eval(expr.Right)
	if right.err != nil {
		return right
	}

	op := expr.Operator
	switch op.Kind {
	case loxtoken.EqualEqual:
		return result{value: loxtoken.BoolValue(left.value.Equal(right.value))}
	case loxtoken.BangEqual:
		return result{value: loxtoken.BoolValue(!left.value.Equal(right.value))}
	case loxtoken.Plus:
		if a, b, ok := numbers(left.value, right.value); ok {
			return result{value: loxtoken.NumberValue(a + b)}
		}
		as, aok := left.value.AsString()
		bs, bok := right.value.AsString()
		if aok && bok {
			return result{value: loxtoken.StringValue(as + bs)}
		}
		return fail(op, MsgOperandsNumbersStrings)
	}

	a, b, ok := numbers(left.value, right.value)
	if !ok {
		return fail(op, MsgOperandsNumbers)
	}

	switch op.Kind {
	case loxtoken.Minus:
		return result{value: loxtoken.NumberValue(a - b)}
	case loxtoken.Star:
		return result{value: loxtoken.NumberValue(a * b)}
	case loxtoken.Slash:
		return result{value: loxtoken.NumberValue(a / b)}
	case loxtoken.Greater:
		return result{value: loxtoken.BoolValue(a > b)}
	case loxtoken.GreaterEqual:
		return result{value: loxtoken.BoolValue(a >= b)}
	case loxtoken.Less:
		return result{value: loxtoken.BoolValue(a < b)}
	case loxtoken.LessEqual:
		return result{value: loxtoken.BoolValue(a <= b)}
	}

	return fail(op, fmt.Sprintf("Unknown binary operator %s.", op.Lexeme))
}

// IsTruthy reports Lox truthiness: nil and false are falsy, everything
// else is truthy
func IsTruthy(v loxtoken.Value) bool {
	if v.IsNone() {
		return false
	}
	if b, ok := v.AsBool(); ok {
		return b
	}
	return true
}

func numbers(left, right loxtoken.Value) (float64, float64, bool) {
	a, aok := left.AsNumber()
	b, bok := right.AsNumber()
	return a, b, aok && bok
}

func fail(tok loxtoken.Token, message string) result {
	return result{err: &RuntimeError{Token: tok, Message: message}}
}
