// File: lox_test.go
// Title: Lox Engine Tests
// Description: Tests the engine facade: printing, error codes, diagnostic
//              recovery, input limits, evaluation and configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine test suite

package lox

import (
	"errors"
	"strings"
	"sync"
	"testing"

	loxconfig "github.com/msto63/lox/foundation/core/config"
	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

func newTestEngine(opts ...Options) *Engine {
	o := Options{}
	if len(opts) > 0 {
		o = opts[0]
	}
	o.Logger = loxlog.Discard()
	return NewEngine(o)
}

func TestEngine_Print(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		source string
		want   string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 - 2 - 3", "(- (- 1 2) 3)"},
		{"(1 + 2)", "(group (+ 1 2))"},
		{"-123 * (45.67)", "(* (- 123) (group 45.67))"},
		{"// leading comment\n123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got, err := engine.Print(tt.source)
			if err != nil {
				t.Fatalf("Print() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Print() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_ParseErrors(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name     string
		source   string
		wantCode loxerror.Code
		want     []string
	}{
		{
			name:     "unclosed group",
			source:   "(1 + 2",
			wantCode: loxerror.CodeSyntax,
			want:     []string{"[1] | Error at end: Expect ')' after expression."},
		},
		{
			name:     "lexical errors keep collecting",
			source:   "1 @ 2 #",
			wantCode: loxerror.CodeLexical,
			want: []string{
				"[1] | Error: Unexpected character.",
				"[1] | Error: Unexpected character.",
				"[1] | Error at '2': Expect end of expression.",
			},
		},
		{
			name:     "lexical error alone fails the run",
			source:   "1 + 2 $",
			wantCode: loxerror.CodeLexical,
			want:     []string{"[1] | Error: Unexpected character."},
		},
		{
			name:     "unterminated string",
			source:   "\"abc",
			wantCode: loxerror.CodeLexical,
			want: []string{
				"[1] | Error: Unterminated string.",
				"[1] | Error at end: Expect expression.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Parse(tt.source)
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if result == nil || result.Expr != nil {
				t.Fatalf("Parse() result = %+v, want result without tree", result)
			}
			if result.Success() {
				t.Error("Success() = true")
			}
			if !loxerror.HasCode(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", loxerror.GetCode(err), tt.wantCode)
			}

			var diags loxdiag.List
			if !errors.As(err, &diags) {
				t.Fatalf("errors.As(diag.List) failed for %v", err)
			}
			if len(diags) != len(tt.want) {
				t.Fatalf("got %d diagnostics, want %d: %v", len(diags), len(tt.want), diags)
			}
			for i, want := range tt.want {
				if got := diags[i].String(); got != want {
					t.Errorf("diagnostic %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestEngine_Scan(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Scan("and or\n\"x\"")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	kinds := []loxtoken.Kind{loxtoken.And, loxtoken.Or, loxtoken.String, loxtoken.EOF}
	if len(result.Tokens) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(result.Tokens), len(kinds))
	}
	for i, kind := range kinds {
		if result.Tokens[i].Kind != kind {
			t.Errorf("token %d = %v, want %v", i, result.Tokens[i].Kind, kind)
		}
	}
	if last := result.Tokens[len(result.Tokens)-1]; last.Line != 2 {
		t.Errorf("EOF line = %d, want 2", last.Line)
	}

	_, err = engine.Scan("?")
	if !loxerror.HasCode(err, loxerror.CodeLexical) {
		t.Errorf("Scan(\"?\") error = %v, want LOX_LEXICAL", err)
	}
}

func TestEngine_Evaluate(t *testing.T) {
	engine := newTestEngine()

	result, err := engine.Evaluate(`"lox" + "!"`)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if got := result.Value.String(); got != "lox!" {
		t.Errorf("Value = %q, want lox!", got)
	}

	result, err = engine.Evaluate(`1 + nil`)
	if !loxerror.HasCode(err, loxerror.CodeRuntime) {
		t.Fatalf("Evaluate() error = %v, want LOX_RUNTIME", err)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Kind != loxdiag.Runtime {
		t.Errorf("Diagnostics = %v", result.Diagnostics)
	}

	if _, err := engine.Evaluate("1 +"); !loxerror.HasCode(err, loxerror.CodeSyntax) {
		t.Errorf("Evaluate(\"1 +\") error = %v, want LOX_SYNTAX", err)
	}
}

func TestEngine_InputLimits(t *testing.T) {
	engine := newTestEngine(Options{MaxSourceLength: 8})

	_, err := engine.Parse("1 + 2 + 3 + 4")
	if !loxerror.HasCode(err, loxerror.CodeInputTooLarge) {
		t.Errorf("error = %v, want LOX_INPUT_TOO_LARGE", err)
	}

	_, err = engine.Parse("\"\xff\"")
	if !loxerror.HasCode(err, loxerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}

	deep := newTestEngine(Options{MaxDepth: 3})
	if _, err := deep.Parse("((((1))))"); !loxerror.HasCode(err, loxerror.CodeSyntax) {
		t.Errorf("deep nesting error = %v, want LOX_SYNTAX", err)
	}
}

func TestEngine_TrimStrings(t *testing.T) {
	plain := newTestEngine()
	trimmed := newTestEngine(Options{TrimStrings: true})

	r1, _ := plain.Scan(`"  padded  "`)
	r2, _ := trimmed.Scan(`"  padded  "`)

	if got := r1.Tokens[0].Literal.String(); got != "  padded  " {
		t.Errorf("untrimmed literal = %q", got)
	}
	if got := r2.Tokens[0].Literal.String(); got != "padded" {
		t.Errorf("trimmed literal = %q", got)
	}
}

func TestEngine_Handler(t *testing.T) {
	var streamed []string
	engine := newTestEngine(Options{Handler: func(d loxdiag.Diagnostic) {
		streamed = append(streamed, d.String())
	}})

	_, _ = engine.Parse("1 @ +")
	if len(streamed) != 2 {
		t.Fatalf("streamed %d diagnostics, want 2: %v", len(streamed), streamed)
	}
	if !strings.Contains(streamed[1], "Expect expression.") {
		t.Errorf("second diagnostic = %q", streamed[1])
	}
}

func TestEngine_Validate(t *testing.T) {
	engine := newTestEngine()

	if err := engine.Validate("!(1 >= 2)"); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := engine.Validate("1 +"); err == nil {
		t.Error("Validate(\"1 +\") error = nil")
	}
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := newTestEngine()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := engine.Print("1 + 2 * 3")
			if err != nil {
				errs <- err
				return
			}
			if got != "(+ 1 (* 2 3))" {
				errs <- errors.New("unexpected output " + got)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := loxconfig.LoadFromString(`
[lox]
trim_strings = true
max_depth = 32
`, loxconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	opts := OptionsFromConfig(cfg)
	if !opts.TrimStrings || opts.MaxDepth != 32 || opts.MaxSourceLength != DefaultMaxSourceLength {
		t.Errorf("OptionsFromConfig() = %+v", opts)
	}

	engine := newTestEngine(opts)
	if got := engine.Options().MaxDepth; got != 32 {
		t.Errorf("engine MaxDepth = %d, want 32", got)
	}
}
