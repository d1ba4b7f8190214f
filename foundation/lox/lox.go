// File: lox.go
// Title: Lox Front End Engine
// Description: Provides the high-level API of the Lox front end. The Engine
//              wires scanner, parser and the tree visitors together, guards
//              the input size and turns diagnostics into coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package lox

import (
	"time"
	"unicode/utf8"

	loxconfig "github.com/msto63/lox/foundation/core/config"
	loxerror "github.com/msto63/lox/foundation/core/error"
	loxlog "github.com/msto63/lox/foundation/core/log"
	loxast "github.com/msto63/lox/foundation/lox/ast"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxinterpreter "github.com/msto63/lox/foundation/lox/interpreter"
	loxparser "github.com/msto63/lox/foundation/lox/parser"
	loxscanner "github.com/msto63/lox/foundation/lox/scanner"
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// DefaultMaxSourceLength is the largest accepted source, in bytes
const DefaultMaxSourceLength = 1 << 20

// Configuration keys read by OptionsFromConfig
const (
	KeyTrimStrings     = "lox.trim_strings"
	KeyMaxSourceLength = "lox.max_source_length"
	KeyMaxDepth        = "lox.max_depth"
)

// Engine runs the front end over source texts. Every call builds its own
// scanner, parser and reporter, so an Engine may be shared between
// goroutines.
type Engine struct {
	logger  *loxlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *loxlog.Logger

	// MaxSourceLength limits the source size in bytes (default: 1 MiB)
	MaxSourceLength int

	// TrimStrings strips surrounding whitespace from string literal values
	TrimStrings bool

	// MaxDepth bounds expression nesting (default: parser.DefaultMaxDepth)
	MaxDepth int

	// Handler receives each diagnostic as soon as it is reported
	Handler func(loxdiag.Diagnostic)
}

// Result is the outcome of one run. On failure Tokens and Diagnostics are
// still filled in as far as the run got; Expr is nil.
type Result struct {
	Source      string
	Tokens      []loxtoken.Token
	Expr        loxast.Expr
	Value       loxtoken.Value
	Diagnostics loxdiag.List
	Duration    time.Duration
}

// Success reports whether the run produced no diagnostics
func (r *Result) Success() bool {
	return len(r.Diagnostics) == 0
}

// NewEngine creates an engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:          loxlog.GetDefault(),
		MaxSourceLength: DefaultMaxSourceLength,
		MaxDepth:        loxparser.DefaultMaxDepth,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		if provided.MaxDepth > 0 {
			options.MaxDepth = provided.MaxDepth
		}
		options.TrimStrings = provided.TrimStrings
		options.Handler = provided.Handler
	}

	logger := options.Logger.WithField("component", "lox-engine")
	logger.Debug("lox engine initialized", loxlog.Fields{
		"maxSourceLength": options.MaxSourceLength,
		"maxDepth":        options.MaxDepth,
		"trimStrings":     options.TrimStrings,
	})

	return &Engine{logger: logger, options: options}
}

// OptionsFromConfig reads the lox.* keys of cfg. Missing keys keep the
// engine defaults.
func OptionsFromConfig(cfg *loxconfig.Config) Options {
	return Options{
		TrimStrings:     cfg.GetBool(KeyTrimStrings, false),
		MaxSourceLength: cfg.GetInt(KeyMaxSourceLength, DefaultMaxSourceLength),
		MaxDepth:        cfg.GetInt(KeyMaxDepth, loxparser.DefaultMaxDepth),
	}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

// Scan tokenizes source. Lexical errors fail the run with CodeLexical.
func (e *Engine) Scan(source string) (*Result, error) {
	timer := e.logger.StartTimer("lox_scan")
	result := &Result{Source: source}

	if err := e.validateInput(source); err != nil {
		result.Duration = timer.StopWithError(err)
		return result, err
	}

	reporter := e.newReporter()
	result.Tokens = e.scan(source, reporter)
	result.Diagnostics = reporter.Diagnostics()
	result.Duration = timer.WithField("tokens", len(result.Tokens)).Stop()

	return result, e.wrapDiagnostics(result.Diagnostics, "scan failed", "lox.scan")
}

// Parse scans and parses source into one expression. Parsing goes ahead
// after lexical errors to collect more diagnostics, but any diagnostic
// fails the run and leaves Expr nil.
func (e *Engine) Parse(source string) (*Result, error) {
	timer := e.logger.StartTimer("lox_parse")
	result := &Result{Source: source}

	if err := e.validateInput(source); err != nil {
		result.Duration = timer.StopWithError(err)
		return result, err
	}

	reporter := e.newReporter()
	e.parse(source, reporter, result, timer)
	result.Duration = timer.WithField("errors", len(result.Diagnostics)).Stop()

	return result, e.wrapDiagnostics(result.Diagnostics, "parse failed", "lox.parse")
}

// Print parses source and renders the tree in prefix form
func (e *Engine) Print(source string) (string, error) {
	result, err := e.Parse(source)
	if err != nil {
		return "", err
	}
	return loxast.Print(result.Expr), nil
}

// Evaluate parses source and evaluates the expression. A type error
// fails the run with CodeRuntime.
func (e *Engine) Evaluate(source string) (*Result, error) {
	timer := e.logger.StartTimer("lox_evaluate")
	result := &Result{Source: source}

	if err := e.validateInput(source); err != nil {
		result.Duration = timer.StopWithError(err)
		return result, err
	}

	reporter := e.newReporter()
	e.parse(source, reporter, result, timer)
	if result.Expr != nil {
		in := loxinterpreter.New(reporter, loxinterpreter.Options{Logger: e.logger})
		if value, err := in.Evaluate(result.Expr); err == nil {
			result.Value = value
		}
		result.Diagnostics = reporter.Diagnostics()
	}
	result.Duration = timer.WithField("errors", len(result.Diagnostics)).Stop()

	return result, e.wrapDiagnostics(result.Diagnostics, "evaluation failed", "lox.evaluate")
}

// Validate checks that source is a well-formed expression
func (e *Engine) Validate(source string) error {
	result, err := e.Parse(source)
	if err != nil {
		return err
	}
	return loxast.Validate(result.Expr)
}

func (e *Engine) newReporter() *loxdiag.Reporter {
	return loxdiag.NewReporter(e.options.Handler)
}

func (e *Engine) scan(source string, reporter *loxdiag.Reporter) []loxtoken.Token {
	return loxscanner.New(source, reporter,
		loxscanner.WithLogger(e.logger),
		loxscanner.WithTrimStrings(e.options.TrimStrings),
	).ScanTokens()
}

func (e *Engine) parse(source string, reporter *loxdiag.Reporter, result *Result, timer *loxlog.Timer) {
	result.Tokens = e.scan(source, reporter)
	timer.Checkpoint("scanned", loxlog.Fields{"tokens": len(result.Tokens)})

	expr, err := loxparser.New(result.Tokens, reporter, loxparser.Options{
		Logger:   e.logger,
		MaxDepth: e.options.MaxDepth,
	}).Parse()
	timer.Checkpoint("parsed")

	result.Diagnostics = reporter.Diagnostics()
	if err == nil && !reporter.HasErrors() {
		result.Expr = expr
	}
}

// validateInput enforces the source size limit and rejects invalid UTF-8
func (e *Engine) validateInput(source string) error {
	if len(source) > e.options.MaxSourceLength {
		return loxerror.Newf("source exceeds maximum length: %d > %d", len(source), e.options.MaxSourceLength).
			WithCode(loxerror.CodeInputTooLarge).
			WithOperation("lox.validate_input").
			WithDetail("length", len(source)).
			WithDetail("limit", e.options.MaxSourceLength)
	}
	if !utf8.ValidString(source) {
		return loxerror.New("source is not valid UTF-8").
			WithCode(loxerror.CodeInvalidInput).
			WithOperation("lox.validate_input")
	}
	return nil
}

// wrapDiagnostics turns a non-empty diagnostic list into a coded error.
// The code follows the first diagnostic; errors.As recovers the list.
func (e *Engine) wrapDiagnostics(diags loxdiag.List, message, operation string) error {
	if len(diags) == 0 {
		return nil
	}

	code := loxerror.CodeSyntax
	switch diags[0].Kind {
	case loxdiag.Lexical:
		code = loxerror.CodeLexical
	case loxdiag.Runtime:
		code = loxerror.CodeRuntime
	}

	e.logger.Debug(message, loxlog.Fields{
		"errors": len(diags),
		"code":   code.String(),
	})

	return loxerror.Wrap(diags, message).
		WithCode(code).
		WithOperation(operation).
		WithDetail("errors", len(diags)).
		WithDetail("lexical", len(diags.Lexical())).
		WithDetail("syntax", len(diags.Syntax()))
}
