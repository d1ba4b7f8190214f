// File: encode.go
// Title: Lox AST Map Encoding
// Description: Converts expression trees into nested maps that encode
//              directly to JSON or YAML.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-20
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-20 v0.1.1: Non-finite numbers encode as strings

package ast

// MapEncoder is the visitor behind ToMap
type MapEncoder struct{}

// ToMap converts expr into a map with a "type" key and per-type fields.
// Nil yields nil.
func ToMap(expr Expr) map[string]interface{} {
	if expr == nil {
		return nil
	}
	return expr.Accept(MapEncoder{}).(map[string]interface{})
}

func (e MapEncoder) VisitBinaryExpr(expr *Binary) interface{} {
	return map[string]interface{}{
		"type":     "binary",
		"operator": expr.Operator.Lexeme,
		"line":     expr.Operator.Line,
		"left":     expr.Left.Accept(e),
		"right":    expr.Right.Accept(e),
	}
}

func (e MapEncoder) VisitGroupingExpr(expr *Grouping) interface{} {
	return map[string]interface{}{
		"type":       "grouping",
		"expression": expr.Expression.Accept(e),
	}
}

func (e MapEncoder) VisitLiteralExpr(expr *Literal) interface{} {
	return map[string]interface{}{
		"type":       "literal",
		"value_type": expr.Value.Type().String(),
		"value":      expr.Value.Encodable(),
	}
}

func (e MapEncoder) VisitUnaryExpr(expr *Unary) interface{} {
	return map[string]interface{}{
		"type":     "unary",
		"operator": expr.Operator.Lexeme,
		"line":     expr.Operator.Line,
		"right":    expr.Right.Accept(e),
	}
}
