// Package errors defines JMPL's single error currency: a Diagnostic
// carrying a closed error Kind, the offending token (when known), and
// a message, plus the exact wire formatting required for static and
// runtime errors.
package errors

import (
	"fmt"
	"strings"

	"github.com/Jogll1/J-JMPL/internal/token"
)

// Kind is the closed taxonomy of JMPL error kinds.
type Kind int

const (
	Syntax Kind = iota
	Type
	Variable
	Argument
	Parameter
	Function
	Identifier
	Return
	ZeroDivision
)

var kindWords = map[Kind][]string{
	Syntax:       {"SYNTAX"},
	Type:         {"TYPE"},
	Variable:     {"VARIABLE"},
	Argument:     {"ARGUMENT"},
	Parameter:    {"PARAMETER"},
	Function:     {"FUNCTION"},
	Identifier:   {"IDENTIFIER"},
	Return:       {"RETURN"},
	ZeroDivision: {"ZERO", "DIVISION"},
}

// Name renders the kind as title-cased words with "Error" appended,
// e.g. ZeroDivision -> "ZeroDivisionError".
func (k Kind) Name() string {
	words, ok := kindWords[k]
	if !ok {
		return "UnknownError"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	b.WriteString("Error")
	return b.String()
}

// Diagnostic is a single reported error: a Kind, the source Line it
// occurred on, the offending Lexeme (empty at end of input), and a
// human-readable Message. Static diagnostics (scan/parse/resolve) and
// runtime diagnostics render with slightly different wire formats.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Lexeme  string
	AtEnd   bool
	Message string
	Static  bool
}

// New builds a static Diagnostic anchored on a token (parser/resolver use).
func New(kind Kind, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Line:    tok.Line,
		Lexeme:  tok.Lexeme,
		AtEnd:   tok.Kind == token.EOF,
		Message: message,
		Static:  true,
	}
}

// NewAtLine builds a static Diagnostic anchored only on a line (scanner
// errors encountered before a token exists, e.g. an unrecognized rune).
func NewAtLine(kind Kind, line int, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Line: line, Message: message, Static: true}
}

// NewRuntime builds a runtime Diagnostic anchored on a token.
func NewRuntime(kind Kind, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Line:    tok.Line,
		Lexeme:  tok.Lexeme,
		Message: message,
		Static:  false,
	}
}

// Error implements the error interface, rendering the exact wire
// format JMPL requires:
//
//	Static:  "[line N] KindError at 'LEXEME': MESSAGE."
//	         "[line N] KindError at end: MESSAGE."
//	Runtime: "[line N] KindError: MESSAGE."
func (d *Diagnostic) Error() string {
	if !d.Static {
		return fmt.Sprintf("[line %d] %s: %s.", d.Line, d.Kind.Name(), d.Message)
	}
	if d.AtEnd {
		return fmt.Sprintf("[line %d] %s at end: %s.", d.Line, d.Kind.Name(), d.Message)
	}
	return fmt.Sprintf("[line %d] %s at '%s': %s.", d.Line, d.Kind.Name(), d.Lexeme, d.Message)
}
