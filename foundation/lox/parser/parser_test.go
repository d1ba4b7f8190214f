// File: parser_test.go
// Title: Lox Parser Unit Tests
// Description: Tests precedence, associativity, grouping, syntax error
//              reporting, the nesting bound and synchronization of the
//              recursive descent parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser test suite

package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	loxlog "github.com/msto63/lox/foundation/core/log"
	loxast "github.com/msto63/lox/foundation/lox/ast"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxscanner "github.com/msto63/lox/foundation/lox/scanner"
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

func parseSource(t *testing.T, source string, opts Options) (loxast.Expr, loxdiag.List, error) {
	t.Helper()

	tokens, lexical := loxscanner.Scan(source, loxscanner.WithLogger(loxlog.Discard()))
	if len(lexical) > 0 {
		t.Fatalf("unexpected lexical errors for %q: %v", source, lexical)
	}

	if opts.Logger == nil {
		opts.Logger = loxlog.Discard()
	}
	var reporter loxdiag.Reporter
	expr, err := New(tokens, &reporter, opts).Parse()
	return expr, reporter.Diagnostics(), err
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"precedence", "1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"left associative term", "1 - 2 - 3", "(- (- 1 2) 3)"},
		{"left associative factor", "8 / 4 / 2", "(/ (/ 8 4) 2)"},
		{"grouping", "(1 + 2)", "(group (+ 1 2))"},
		{"grouping overrides precedence", "(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"unary", "-123 * (45.67)", "(* (- 123) (group 45.67))"},
		{"right recursive unary", "!!true", "(! (! true))"},
		{"comparison below equality", "1 < 2 == 3 >= 4", "(== (< 1 2) (>= 3 4))"},
		{"equality chain", "1 == 2 != 3", "(!= (== 1 2) 3)"},
		{"literals", "nil == false", "(== nil false)"},
		{"string literal", `"a" + "b"`, "(+ a b)"},
		{"nested groups", "((1))", "(group (group 1))"},
		{"unary binds tighter than factor", "-1 * -2", "(* (- 1) (- 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, diags, err := parseSource(t, tt.source, Options{})
			if err != nil {
				t.Fatalf("Parse() error = %v, diagnostics = %v", err, diags)
			}
			if got := loxast.Print(expr); got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
			if err := loxast.Validate(expr); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"unclosed group", "(1 + 2", "[1] | Error at end: Expect ')' after expression."},
		{"empty input", "", "[1] | Error at end: Expect expression."},
		{"missing right operand", "1 +", "[1] | Error at end: Expect expression."},
		{"operator without left operand", "* 2", "[1] | Error at '*': Expect expression."},
		{"empty group", "()", "[1] | Error at ')': Expect expression."},
		{"trailing token", "1 2", "[1] | Error at '2': Expect end of expression."},
		{"trailing paren", "1)", "[1] | Error at ')': Expect end of expression."},
		{"keyword in expression", "1 + and", "[1] | Error at 'and': Expect expression."},
		{"error line", "1 +\n\n*", "[3] | Error at '*': Expect expression."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, diags, err := parseSource(t, tt.source, Options{})
			if expr != nil {
				t.Errorf("Parse() returned partial tree %s", loxast.Print(expr))
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse() error = %v, want ErrParse", err)
			}
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
			}
			if got := diags[0].String(); got != tt.want {
				t.Errorf("diagnostic = %q, want %q", got, tt.want)
			}
			if diags[0].Kind != loxdiag.Syntax {
				t.Errorf("diagnostic kind = %v, want Syntax", diags[0].Kind)
			}
		})
	}
}

func TestParser_MaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)

	if _, _, err := parseSource(t, deep, Options{MaxDepth: 20}); err != nil {
		t.Errorf("depth 10 within limit 20: error = %v", err)
	}

	_, diags, err := parseSource(t, deep, Options{MaxDepth: 5})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Parse() error = %v, want ErrParse", err)
	}
	if len(diags) != 1 || diags[0].Message != MsgNestingTooDeep {
		t.Errorf("diagnostics = %v, want single %q", diags, MsgNestingTooDeep)
	}

	unary := strings.Repeat("-", 400) + "1"
	if _, diags, err := parseSource(t, unary, Options{}); err == nil || diags[0].Message != MsgNestingTooDeep {
		t.Errorf("400 unary operators: error = %v, diagnostics = %v", err, diags)
	}
}

func TestParser_ReparseIsStable(t *testing.T) {
	tokens, _ := loxscanner.Scan("1 + 2 * 3", loxscanner.WithLogger(loxlog.Discard()))
	p := New(tokens, nil, Options{Logger: loxlog.Discard()})

	first, err := p.Parse()
	if err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}
	second, err := p.Parse()
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}
	if loxast.Print(first) != loxast.Print(second) {
		t.Errorf("reparse differs: %s vs %s", loxast.Print(first), loxast.Print(second))
	}
}

func TestParser_MissingEOF(t *testing.T) {
	tokens := []loxtoken.Token{
		loxtoken.New(loxtoken.Number, "1", loxtoken.NumberValue(1), 2),
		loxtoken.New(loxtoken.Plus, "+", loxtoken.None(), 2),
	}

	expr, diags := Parse(tokens, Options{Logger: loxlog.Discard()})
	if expr != nil {
		t.Errorf("Parse() = %s, want nil", loxast.Print(expr))
	}
	if len(diags) != 1 || diags[0].String() != "[2] | Error at end: Expect expression." {
		t.Errorf("diagnostics = %v", diags)
	}
	if len(tokens) != 2 {
		t.Error("caller's token slice was modified")
	}

	if _, diags := Parse(nil, Options{Logger: loxlog.Discard()}); len(diags) != 1 {
		t.Errorf("Parse(nil) diagnostics = %v, want 1", diags)
	}
}

func TestParser_Synchronize(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   loxtoken.Kind
	}{
		{"stops after semicolon", "1 + ; 2", loxtoken.Number},
		{"stops before statement keyword", "1 + 2 print 3", loxtoken.Print},
		{"stops before var", "( ) var", loxtoken.Var},
		{"runs to end", "1 + 2", loxtoken.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := loxscanner.Scan(tt.source, loxscanner.WithLogger(loxlog.Discard()))
			p := New(tokens, nil, Options{Logger: loxlog.Discard()})
			p.Synchronize()
			if got := p.Current().Kind; got != tt.want {
				t.Errorf("Current() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := loxlog.NewWithConfig(loxlog.Config{
		Level:  loxlog.LevelDebug,
		Format: loxlog.FormatLogfmt,
		Output: &buf,
	})

	tokens, _ := loxscanner.Scan("1 + 2", loxscanner.WithLogger(loxlog.Discard()))
	if _, err := New(tokens, nil, Options{Logger: logger}).Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"parse completed", `component="lox-parser"`, "nodes=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
