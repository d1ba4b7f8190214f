// File: scanner.go
// Title: Lox Lexical Scanner
// Description: Implements the scanner state machine. The scanner walks the
//              source rune by rune with a start and current cursor, emits
//              one token per lexeme and reports lexical errors without
//              stopping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	loxlog "github.com/msto63/lox/foundation/core/log"
	loxdiag "github.com/msto63/lox/foundation/lox/diag"
	loxtoken "github.com/msto63/lox/foundation/lox/token"
)

// Lexical error messages
const (
	MsgUnexpectedCharacter = "Unexpected character."
	MsgUnterminatedString  = "Unterminated string."
)

// Scanner converts one source text into tokens
type Scanner struct {
	source   []rune
	tokens   []loxtoken.Token
	reporter *loxdiag.Reporter
	logger   *loxlog.Logger

	start   int
	current int
	line    int

	trimStrings bool
}

// Option configures a Scanner
type Option func(*Scanner)

// WithTrimStrings strips surrounding whitespace from string literal values.
// The lexeme is never altered.
func WithTrimStrings(trim bool) Option {
	return func(s *Scanner) {
		s.trimStrings = trim
	}
}

// WithLogger sets the logger used for scan summaries
func WithLogger(logger *loxlog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a scanner for source. A nil reporter discards diagnostics.
func New(source string, reporter *loxdiag.Reporter, opts ...Option) *Scanner {
	if reporter == nil {
		reporter = &loxdiag.Reporter{}
	}

	s := &Scanner{
		source:   []rune(source),
		reporter: reporter,
		logger:   loxlog.GetDefault(),
		line:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithField("component", "lox-scanner")

	return s
}

// Scan is a convenience wrapper returning the tokens and diagnostics of source
func Scan(source string, opts ...Option) ([]loxtoken.Token, loxdiag.List) {
	var reporter loxdiag.Reporter
	tokens := New(source, &reporter, opts...).ScanTokens()
	return tokens, reporter.Diagnostics()
}

// ScanTokens scans the whole source and returns the tokens, ending with EOF.
// Calling it again returns the same tokens.
func (s *Scanner) ScanTokens() []loxtoken.Token {
	if len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].IsEOF() {
		return s.tokens
	}

	errorsBefore := s.reporter.Count()

	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, loxtoken.NewEOF(s.line))

	if s.logger.IsLevelEnabled(loxlog.LevelTrace) {
		for _, tok := range s.tokens {
			s.logger.Trace("token", loxlog.Fields{"token": tok.String()})
		}
	}
	s.logger.Debug("scan completed", loxlog.Fields{
		"runes":  len(s.source),
		"tokens": len(s.tokens),
		"lines":  s.line,
		"errors": s.reporter.Count() - errorsBefore,
	})

	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(loxtoken.LeftParen)
	case ')':
		s.addToken(loxtoken.RightParen)
	case '{':
		s.addToken(loxtoken.LeftBrace)
	case '}':
		s.addToken(loxtoken.RightBrace)
	case ',':
		s.addToken(loxtoken.Comma)
	case '.':
		s.addToken(loxtoken.Dot)
	case '-':
		s.addToken(loxtoken.Minus)
	case '+':
		s.addToken(loxtoken.Plus)
	case ';':
		s.addToken(loxtoken.Semicolon)
	case '*':
		s.addToken(loxtoken.Star)

	case '!':
		s.addToken(s.choose('=', loxtoken.BangEqual, loxtoken.Bang))
	case '=':
		s.addToken(s.choose('=', loxtoken.EqualEqual, loxtoken.Equal))
	case '<':
		s.addToken(s.choose('=', loxtoken.LessEqual, loxtoken.Less))
	case '>':
		s.addToken(s.choose('=', loxtoken.GreaterEqual, loxtoken.Greater))

	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(loxtoken.Slash)
		}

	case ' ', '\r', '\t':
	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.reporter.Lexical(s.line, MsgUnexpectedCharacter)
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Lexical(s.line, MsgUnterminatedString)
		return
	}

	// closing quote
	s.advance()

	value := string(s.source[s.start+1 : s.current-1])
	if s.trimStrings {
		value = strings.TrimSpace(value)
	}
	s.addLiteral(loxtoken.String, loxtoken.StringValue(value))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	s.addLiteral(loxtoken.Number, loxtoken.NumberValue(parseNumber(s.lexeme())))
}

// parseNumber converts a matched digit run. Out of range values become
// infinities; any other failure means the scanner matched something that
// is not a number.
func parseNumber(text string) float64 {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("scanner: matched invalid number literal %q: %v", text, err))
	}
	return n
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	s.addToken(loxtoken.LookupIdentifier(s.lexeme()))
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the next rune if it equals expected
func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) choose(expected rune, two, one loxtoken.Kind) loxtoken.Kind {
	if s.match(expected) {
		return two
	}
	return one
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

func (s *Scanner) addToken(kind loxtoken.Kind) {
	s.addLiteral(kind, loxtoken.None())
}

func (s *Scanner) addLiteral(kind loxtoken.Kind, literal loxtoken.Value) {
	s.tokens = append(s.tokens, loxtoken.New(kind, s.lexeme(), literal, s.line))
}

// Only ASCII digits start or continue a number
func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}
