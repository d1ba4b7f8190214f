// File: parser.go
// Title: Lox Recursive Descent Parser
// Description: Implements the parsing phase of the Lox front end. Converts
//              a token sequence into an expression tree following the
//              precedence ladder expression > equality > comparison > term
//              > factor > unary > primary. Syntax errors are reported
//              through the diagnostic reporter and abort the parse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"

	loxlog "github.com/msto63/lox/foundation/core/log"
	loxast "github.com/msto63/lox/foundation/lox/ast"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Syntax error messages
const (
	MsgExpectExpression = "Expect expression."
	MsgExpectRightParen = "Expect ')' after expression."
	MsgExpectEnd        = "Expect end of expression."
	MsgNestingTooDeep   = "Expression nesting too deep."
)

// DefaultMaxDepth bounds grouping and unary nesting
const DefaultMaxDepth = 256

// ErrParse is returned when the token sequence is not a valid expression.
// The details are in the reporter's diagnostics.
var ErrParse = errors.New("parse error")

// Options configures parser behavior
type Options struct {
	Logger   *loxlog.Logger
	MaxDepth int // 0 selects DefaultMaxDepth
}

// Parser implements recursive descent parsing over a fixed token slice
type Parser struct {
	tokens   []loxtoken.Token
	current  int
	depth    int
	reporter *loxdiag.Reporter
	logger   *loxlog.Logger
	options  Options
}

// New creates a parser for tokens. A missing trailing EOF is supplied so
// the cursor is always bounded. A nil reporter discards diagnostics.
func New(tokens []loxtoken.Token, reporter *loxdiag.Reporter, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = loxlog.GetDefault()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if reporter == nil {
		reporter = &loxdiag.Reporter{}
	}

	if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOF() {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], loxtoken.NewEOF(line))
	}

	return &Parser{
		tokens:   tokens,
		reporter: reporter,
		logger:   opts.Logger.WithField("component", "lox-parser"),
		options:  opts,
	}
}

// Parse is a convenience wrapper returning the tree and diagnostics for tokens
func Parse(tokens []loxtoken.Token, opts Options) (loxast.Expr, loxdiag.List) {
	var reporter loxdiag.Reporter
	expr, _ := New(tokens, &reporter, opts).Parse()
	return expr, reporter.Diagnostics()
}

// Parse parses a single expression spanning the whole token sequence.
// On a syntax error it returns (nil, ErrParse); no partial tree is produced.
func (p *Parser) Parse() (loxast.Expr, error) {
	p.current = 0
	p.depth = 0

	p.logger.Debug("parse started", loxlog.Fields{"tokens": len(p.tokens)})

	expr, err := p.expression()
	if err == nil && !p.isAtEnd() {
		err = p.error(p.peek(), MsgExpectEnd)
	}
	if err != nil {
		p.logger.Debug("parse failed", loxlog.Fields{
			"position": p.current,
			"errors":   p.reporter.Count(),
		})
		return nil, err
	}

	if p.logger.IsLevelEnabled(loxlog.LevelDebug) {
		p.logger.Debug("parse completed", loxlog.Fields{
			"expression": loxast.Print(expr),
			"nodes":      loxast.Count(expr),
			"depth":      loxast.Depth(expr),
		})
	}

	return expr, nil
}

// Synchronize discards tokens until just after a ';' or just before a
// statement keyword, leaving the parser at a likely statement boundary.
func (p *Parser) Synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == loxtoken.Semicolon {
			return
		}
		if loxtoken.IsStatementStart(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

// Current returns the token under the cursor
func (p *Parser) Current() loxtoken.Token {
	return p.peek()
}

// Grammar rules

func (p *Parser) expression() (loxast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.equality()
}

func (p *Parser) equality() (loxast.Expr, error) {
	return p.binary(p.comparison, loxtoken.BangEqual, loxtoken.EqualEqual)
}

func (p *Parser) comparison() (loxast.Expr, error) {
	return p.binary(p.term, loxtoken.Greater, loxtoken.GreaterEqual, loxtoken.Less, loxtoken.LessEqual)
}

func (p *Parser) term() (loxast.Expr, error) {
	return p.binary(p.factor, loxtoken.Minus, loxtoken.Plus)
}

func (p *Parser) factor() (loxast.Expr, error) {
	return p.binary(p.unary, loxtoken.Slash, loxtoken.Star)
}

// binary parses one left-associative level: operand (op operand)*
func (p *Parser) binary(operand func() (loxast.Expr, error), kinds ...loxtoken.Kind) (loxast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(kinds...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = loxast.NewBinary(expr, operator, right)
	}

	return expr, nil
}

func (p *Parser) unary() (loxast.Expr, error) {
	if p.match(loxtoken.Bang, loxtoken.Minus) {
		operator := p.previous()

		if err := p.enter(); err != nil {
			return nil, err
		}
		right, err := p.unary()
		p.leave()
		if err != nil {
			return nil, err
		}
		return loxast.NewUnary(operator, right), nil
	}

	return p.primary()
}

func (p *Parser) primary() (loxast.Expr, error) {
	switch {
	case p.match(loxtoken.False):
		return loxast.NewLiteral(loxtoken.BoolValue(false)), nil
	case p.match(loxtoken.True):
		return loxast.NewLiteral(loxtoken.BoolValue(true)), nil
	case p.match(loxtoken.Nil):
		return loxast.NewLiteral(loxtoken.None()), nil
	case p.match(loxtoken.Number, loxtoken.String):
		return loxast.NewLiteral(p.previous().Literal), nil
	case p.match(loxtoken.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(loxtoken.RightParen, MsgExpectRightParen); err != nil {
			return nil, err
		}
		return loxast.NewGrouping(expr), nil
	}

	return nil, p.error(p.peek(), MsgExpectExpression)
}

// Nesting bound

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.options.MaxDepth {
		return p.error(p.peek(), MsgNestingTooDeep)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Cursor helpers

func (p *Parser) match(kinds ...loxtoken.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind loxtoken.Kind, message string) (loxtoken.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return loxtoken.Token{}, p.error(p.peek(), message)
}

func (p *Parser) check(kind loxtoken.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() loxtoken.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == loxtoken.EOF
}

func (p *Parser) peek() loxtoken.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() loxtoken.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) error(tok loxtoken.Token, message string) error {
	p.reporter.Syntax(tok, message)
	return ErrParse
}
