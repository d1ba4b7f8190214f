// File: ast_test.go
// Title: Lox Expression AST Tests
// Description: Tests for node dispatch, children order, printers, the
//              collector, structural helpers, validation and map encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

func op(kind loxtoken.Kind, lexeme string) loxtoken.Token {
	return loxtoken.New(kind, lexeme, loxtoken.None(), 1)
}

func num(n float64) *Literal {
	return NewLiteral(loxtoken.NumberValue(n))
}

// -123 * (45.67)
func sampleTree() Expr {
	return NewBinary(
		NewUnary(op(loxtoken.Minus, "-"), num(123)),
		op(loxtoken.Star, "*"),
		NewGrouping(num(45.67)),
	)
}

// kindVisitor records which Visit method was called
type kindVisitor struct{}

func (kindVisitor) VisitBinaryExpr(*Binary) interface{}     { return "binary" }
func (kindVisitor) VisitGroupingExpr(*Grouping) interface{} { return "grouping" }
func (kindVisitor) VisitLiteralExpr(*Literal) interface{}   { return "literal" }
func (kindVisitor) VisitUnaryExpr(*Unary) interface{}       { return "unary" }

func TestAcceptDispatch(t *testing.T) {
	tests := []struct {
		expr Expr
		want string
	}{
		{NewBinary(num(1), op(loxtoken.Plus, "+"), num(2)), "binary"},
		{NewGrouping(num(1)), "grouping"},
		{num(1), "literal"},
		{NewUnary(op(loxtoken.Bang, "!"), num(1)), "unary"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.expr.Accept(kindVisitor{}); got != tt.want {
				t.Errorf("Accept() = %v, want %v", got, tt.want)
			}
			if got := NodeType(tt.expr); got != tt.want {
				t.Errorf("NodeType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChildrenOrder(t *testing.T) {
	left, right := num(1), num(2)
	inner := num(3)
	operand := num(4)

	tests := []struct {
		name string
		expr Expr
		want []Expr
	}{
		{"binary", NewBinary(left, op(loxtoken.Plus, "+"), right), []Expr{left, right}},
		{"grouping", NewGrouping(inner), []Expr{inner}},
		{"literal", num(5), nil},
		{"unary", NewUnary(op(loxtoken.Minus, "-"), operand), []Expr{operand}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.expr.Children()
			if len(got) != len(tt.want) {
				t.Fatalf("len(Children()) = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Children()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"sample", sampleTree(), "(* (- 123) (group 45.67))"},
		{"nil literal", NewLiteral(loxtoken.None()), "nil"},
		{"bool literal", NewLiteral(loxtoken.BoolValue(false)), "false"},
		{"string literal", NewLiteral(loxtoken.StringValue("hi")), "hi"},
		{"nested unary", NewUnary(op(loxtoken.Bang, "!"), NewUnary(op(loxtoken.Bang, "!"), NewLiteral(loxtoken.BoolValue(true)))), "(! (! true))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.expr); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	if Print(nil) != "" {
		t.Error("Print(nil) should be empty")
	}
}

func TestPrinterIsIdempotent(t *testing.T) {
	tree := sampleTree()
	p := Printer{}

	first := p.Print(tree)
	second := p.Print(tree)
	if first != second {
		t.Errorf("Print() not idempotent: %q then %q", first, second)
	}
}

func TestTreePrinter(t *testing.T) {
	tree := NewBinary(
		num(1),
		op(loxtoken.Plus, "+"),
		NewGrouping(NewLiteral(loxtoken.StringValue("a b"))),
	)

	want := strings.Join([]string{
		"Binary +",
		"  Literal 1",
		"  Grouping",
		`    Literal "a b"`,
		"",
	}, "\n")

	tp := NewTreePrinter()
	if got := tp.Print(tree); got != want {
		t.Errorf("Print() =\n%s\nwant\n%s", got, want)
	}
	if got := tp.Print(tree); got != want {
		t.Errorf("second Print() differs:\n%s", got)
	}

	custom := &TreePrinter{Indent: "\t"}
	if got := custom.Print(NewGrouping(num(1))); got != "Grouping\n\tLiteral 1\n" {
		t.Errorf("custom indent Print() = %q", got)
	}
}

func TestCollector(t *testing.T) {
	c := Collect(sampleTree())

	if len(c.Literals) != 2 || c.Literals[0].String() != "123" || c.Literals[1].String() != "45.67" {
		t.Errorf("Literals = %v", c.Literals)
	}

	var ops []string
	for _, o := range c.Operators {
		ops = append(ops, o.Lexeme)
	}
	if strings.Join(ops, " ") != "- *" {
		t.Errorf("Operators = %v, want [- *]", ops)
	}

	want := map[string]int{"binary": 1, "unary": 1, "grouping": 1, "literal": 2}
	for k, v := range want {
		if c.Counts[k] != v {
			t.Errorf("Counts[%s] = %d, want %d", k, c.Counts[k], v)
		}
	}

	c.Reset()
	if len(c.Literals) != 0 || len(c.Counts) != 0 {
		t.Error("Reset() left data behind")
	}
}

func TestBaseVisitorReachesEveryNode(t *testing.T) {
	// A BaseVisitor with no overrides walks the whole tree without panicking
	var bv BaseVisitor
	if got := sampleTree().Accept(&bv); got != nil {
		t.Errorf("Accept() = %v, want nil", got)
	}
}

func TestWalkCountDepth(t *testing.T) {
	tree := sampleTree()

	if got := Count(tree); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := Depth(tree); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}
	if Depth(nil) != 0 || Count(nil) != 0 || Depth(num(1)) != 1 {
		t.Error("Depth/Count edge cases wrong")
	}

	var visited []string
	Walk(tree, func(e Expr) bool {
		visited = append(visited, NodeType(e))
		return NodeType(e) != "unary"
	})
	want := "binary unary grouping literal"
	if got := strings.Join(visited, " "); got != want {
		t.Errorf("Walk() order = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		expr    Expr
		wantErr string
	}{
		{"valid", sampleTree(), ""},
		{"nil root", nil, "expression is required"},
		{"missing left", NewBinary(nil, op(loxtoken.Plus, "+"), num(1)), "left operand is required"},
		{"bad binary operator", NewBinary(num(1), op(loxtoken.Bang, "!"), num(2)), "not a binary operator"},
		{"bad unary operator", NewUnary(op(loxtoken.Star, "*"), num(1)), "not a unary operator"},
		{"empty grouping", NewGrouping(nil), "grouping: expression is required"},
		{"nested error", NewGrouping(NewUnary(op(loxtoken.Minus, "-"), nil)), "operand is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expr)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestToMap(t *testing.T) {
	tree := NewBinary(
		NewLiteral(loxtoken.StringValue("a")),
		op(loxtoken.EqualEqual, "=="),
		NewUnary(op(loxtoken.Bang, "!"), NewLiteral(loxtoken.None())),
	)

	data, err := json.Marshal(ToMap(tree))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	want := `{"left":{"type":"literal","value":"a","value_type":"string"},"line":1,"operator":"==",` +
		`"right":{"line":1,"operator":"!","right":{"type":"literal","value":null,"value_type":"nil"},"type":"unary"},"type":"binary"}`
	if string(data) != want {
		t.Errorf("json =\n%s\nwant\n%s", data, want)
	}

	if ToMap(nil) != nil {
		t.Error("ToMap(nil) should be nil")
	}

	overflow, err := json.Marshal(ToMap(NewLiteral(loxtoken.NumberValue(math.Inf(1)))))
	if err != nil {
		t.Fatalf("json.Marshal() of an infinite literal error = %v", err)
	}
	if want := `{"type":"literal","value":"+Inf","value_type":"number"}`; string(overflow) != want {
		t.Errorf("json = %s, want %s", overflow, want)
	}

	grouping := ToMap(NewGrouping(num(2)))
	if grouping["type"] != "grouping" {
		t.Errorf("type = %v, want grouping", grouping["type"])
	}
}
