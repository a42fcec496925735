// Package parser implements JMPL's recursive-descent Parser, turning a
// token stream into a list of ast.Stmt.
package parser

import (
	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/token"
)

const maxArgs = 254

// parseError unwinds the current declaration/statement on a syntax
// error; it carries no payload because the diagnostic was already
// appended to p.errs before panicking. Recovered by synchronize's
// caller, never surfaced past Parse.
type parseError struct{}

// Parser consumes a flat token slice and produces statements,
// accumulating errors.Diagnostic values instead of aborting on the
// first syntax error.
type Parser struct {
	tokens  []token.Token
	current int
	errs    []*errors.Diagnostic
}

// New returns a Parser over tokens (normally the full output of a
// Scanner, including the trailing EOF token).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns all diagnostics accumulated while parsing.
func (p *Parser) Errors() []*errors.Diagnostic {
	return p.errs
}

// Parse runs the parser to completion, returning every top-level
// statement it could recover. Call Errors() afterwards to check
// whether any statement was malformed.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token     { return p.tokens[p.current] }
func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }
func (p *Parser) atEnd() bool           { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) error(tok token.Token, message string) parseError {
	p.errs = append(p.errs, errors.New(errors.Syntax, tok, message))
	return parseError{}
}

// synchronize discards tokens until just past a statement-ending `;`
// or until a token that can start a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Function, token.Let, token.If, token.Return, token.While:
			return
		}
		p.advance()
	}
}

// --- declarations & statements ---

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(token.Let) {
		return p.letDecl()
	}
	return p.statement()
}

func (p *Parser) letDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")
	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.Let{Name: name, Initialiser: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Function):
		return p.funcDecl()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.Out):
		return p.outStmt()
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.check(token.LeftParen):
		return p.block()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) funcDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect function name.")
	p.consume(token.LeftParen, "Expect '(' after function name.")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "Can't have more than 254 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.Equal, "Expect '=' before function body.")
	body := p.statement()
	// A block body may be closed with `;`, as in `function f() = ( ... );`.
	if _, ok := body.(*ast.Block); ok {
		p.match(token.Semicolon)
	}
	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *Parser) ifStmt() ast.Stmt {
	keyword := p.previous()
	cond := p.expression()
	p.consume(token.Then, "Expect 'then' after if condition.")
	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Keyword: keyword, Condition: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStmt() ast.Stmt {
	keyword := p.previous()
	cond := p.expression()
	p.consume(token.Do, "Expect 'do' after while condition.")
	body := p.statement()
	return &ast.While{Keyword: keyword, Condition: cond, Body: body}
}

func (p *Parser) outStmt() ast.Stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.Output{Keyword: keyword, Expression: value}
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) block() ast.Stmt {
	lparen := p.consume(token.LeftParen, "Expect '('.")
	var stmts []ast.Stmt
	for !p.check(token.RightParen) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RightParen, "Expect ')' after block.")
	return &ast.Block{Statements: stmts, LParen: lparen}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	// An expression statement directly before a block's closing `)` may
	// omit its `;`, as in `( i := i + 1; i )`.
	if !p.check(token.RightParen) {
		p.consume(token.Semicolon, "Expect ';' after expression.")
	}
	return &ast.Expression{Expression: expr}
}

// --- expressions, highest precedence last ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.summation()

	if p.match(token.Assign) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.error(equals, "Invalid assignment target")
		return expr
	}
	return expr
}

func (p *Parser) summation() ast.Expr {
	if !p.match(token.Summation) {
		return p.or()
	}
	name := p.previous()
	p.consume(token.LeftParen, "Expect '(' after '∑'.")
	upper := p.summation()
	p.consume(token.Comma, "Expect ',' after summation upper bound.")
	lower := p.lowerBound()
	p.consume(token.RightParen, "Expect ')' after summation bounds.")
	summand := p.expression()
	return &ast.SequenceOp{Name: name, Upper: upper, Lower: lower, Summand: summand}
}

// lowerBound parses either a `let i = expr` binding or a bare
// assignment expression reusing an existing binding.
func (p *Parser) lowerBound() ast.Stmt {
	if p.match(token.Let) {
		name := p.consume(token.Identifier, "Expect loop variable name.")
		p.consume(token.Equal, "Expect '=' after loop variable name.")
		init := p.expression()
		return &ast.Let{Name: name, Initialiser: init}
	}

	expr := p.expression()
	if _, ok := expr.(*ast.Assign); ok {
		return &ast.Expression{Expression: expr}
	}
	p.error(p.previous(), "Summation lower bound must be a let binding or an assignment.")
	return &ast.Expression{Expression: expr}
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EqualEqual, token.NotEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.exponent()
	for p.match(token.Asterisk, token.Slash) {
		op := p.previous()
		right := p.exponent()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) exponent() ast.Expr {
	expr := p.unary()
	for p.match(token.Caret) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Not, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.error(p.peek(), "Can't have more than 254 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.True):
		return &ast.Literal{Value: true, Tok: p.previous()}
	case p.match(token.False):
		return &ast.Literal{Value: false, Tok: p.previous()}
	case p.match(token.Null):
		return &ast.Literal{Value: nil, Tok: p.previous()}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal, Tok: p.previous()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		lparen := p.previous()
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr, LParen: lparen}
	}
	panic(p.error(p.peek(), "Expect expression."))
}
