// Package lexer implements JMPL's Scanner: source text to a token
// stream.
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/token"
	"golang.org/x/text/unicode/norm"
)

// unicodeAliases maps single-rune unicode operator glyphs onto the
// token kind they're recognized as.
var unicodeAliases = map[rune]token.Kind{
	'∑': token.Summation,
	'∧': token.And,
	'∨': token.Or,
	'∈': token.In,
	'≠': token.NotEqual,
	'≤': token.LessEqual,
	'≥': token.GreaterEqual,
	'→': token.MapsTo,
	'⇒': token.Implies,
}

// Scanner converts a JMPL source string into an ordered token stream.
// Source text is NFC-normalized on construction so precomposed and
// decomposed spellings of the same unicode glyph (e.g. an operator
// followed by a combining mark versus its single precomposed
// codepoint) scan identically.
type Scanner struct {
	source  string
	start   int
	current int
	line    int
	tokens  []token.Token
	errs    []*errors.Diagnostic
}

// New returns a Scanner ready to tokenize src.
func New(src string) *Scanner {
	return &Scanner{
		source: norm.NFC.String(src),
		line:   1,
	}
}

// ScanTokens runs the scanner to completion and returns the full
// token stream, always ending in a synthetic EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.EOF, Lexeme: "", Line: s.line})
	return s.tokens
}

// Errors returns the SYNTAX diagnostics accumulated for unrecognized
// characters. Scanning never stops at the first one.
func (s *Scanner) Errors() []*errors.Diagnostic {
	return s.errs
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	return r
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.current >= len(s.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	next := s.current + size
	if next >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[next:])
	return r
}

// match consumes the next rune and returns true if it equals expected,
// otherwise leaves the scanner position untouched.
func (s *Scanner) match(expected rune) bool {
	if s.atEnd() || s.peek() != expected {
		return false
	}
	_, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	return true
}

func (s *Scanner) addToken(kind token.Kind) {
	s.addTokenLiteral(kind, nil)
}

func (s *Scanner) addTokenLiteral(kind token.Kind, literal any) {
	lexeme := s.source[s.start:s.current]
	s.tokens = append(s.tokens, token.Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: s.line})
}

func (s *Scanner) errorf(msg string) {
	lexeme := s.source[s.start:s.current]
	s.errs = append(s.errs, errors.NewAtLine(errors.Syntax, s.line, "Unexpected character '"+lexeme+"': "+msg))
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case '[':
		s.addToken(token.LeftSquare)
	case ']':
		s.addToken(token.RightSquare)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '+':
		s.addToken(token.Plus)
	case '-':
		if s.match('>') {
			s.addToken(token.MapsTo)
		} else {
			s.addToken(token.Minus)
		}
	case '*':
		s.addToken(token.Asterisk)
	case '^':
		s.addToken(token.Caret)
	case '%':
		s.addToken(token.Percent)
	case ';':
		s.addToken(token.Semicolon)
	case ':':
		if s.match('=') {
			s.addToken(token.Assign)
		} else {
			s.addToken(token.Colon)
		}
	case '|':
		s.addToken(token.Pipe)
	case '#':
		s.addToken(token.Hashtag)
	case '=':
		if s.match('=') {
			s.addToken(token.EqualEqual)
		} else if s.match('>') {
			s.addToken(token.Implies)
		} else {
			s.addToken(token.Equal)
		}
	case '!':
		if s.match('=') {
			s.addToken(token.NotEqual)
		} else {
			s.addToken(token.Not)
		}
	case '¬':
		if s.match('=') {
			s.addToken(token.NotEqual)
		} else {
			s.addToken(token.Not)
		}
	case '<':
		if s.match('=') {
			s.addToken(token.LessEqual)
		} else {
			s.addToken(token.Less)
		}
	case '>':
		if s.match('=') {
			s.addToken(token.GreaterEqual)
		} else {
			s.addToken(token.Greater)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.addToken(token.Slash)
		}
	case ' ', '\r', '\t':
		// whitespace, ignored
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		if kind, ok := unicodeAliases[c]; ok {
			s.addToken(kind)
			return
		}
		if isDigit(c) {
			s.scanNumber()
			return
		}
		if isAlpha(c) {
			s.scanIdentifier()
			return
		}
		s.errorf("scan error")
	}
}

// scanString consumes a double-quoted string literal. Newlines inside
// the literal are permitted and bump the line counter; no escape
// processing is performed.
func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.errorf("unterminated string")
		return
	}
	s.advance() // closing quote
	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.String, value)
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
	lexeme := s.source[s.start:s.current]
	value, _ := strconv.ParseFloat(lexeme, 64)
	s.addTokenLiteral(token.Number, value)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if kind, ok := token.Keywords[text]; ok {
		s.addToken(kind)
		return
	}
	s.addToken(token.Identifier)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
