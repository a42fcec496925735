// Package resolver implements JMPL's static resolution pass: for
// every Variable/Assign node it computes the
// lexical distance to its binding, recorded in a side-table keyed by
// AST node identity rather than mutating the AST itself. Absence of
// an entry means "resolve against the global environment".
//
// The pass also rejects two static errors the parser cannot catch on
// its own: reading a local variable from inside its own initialiser,
// and a `return` statement outside any function body.
package resolver

import (
	"github.com/Jogll1/J-JMPL/internal/ast"
	"github.com/Jogll1/J-JMPL/internal/errors"
	"github.com/Jogll1/J-JMPL/internal/token"
)

type functionType int

const (
	fnNone functionType = iota
	fnFunction
)

// scope maps a name to whether its binding is fully initialised yet.
// A name present with value false is "declared but not yet defined" —
// the state in which reading it from its own initialiser is an error.
type scope map[string]bool

// Resolver walks a statement list, recording distances into Locals.
type Resolver struct {
	scopes      []scope
	currentFn   functionType
	Locals      map[ast.Expr]int
	errs        []*errors.Diagnostic
}

// New returns a Resolver with an empty scope stack (the global scope
// is implicit: names never found in Locals resolve against globals).
func New() *Resolver {
	return &Resolver{Locals: make(map[ast.Expr]int)}
}

// Errors returns every VARIABLE/RETURN diagnostic found while resolving.
func (r *Resolver) Errors() []*errors.Diagnostic {
	return r.errs
}

// Resolve walks every top-level statement. It never aborts early;
// all errors found across the whole program are collected.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	r.resolveStmts(stmts)
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(n.Statements)
		r.endScope()

	case *ast.Let:
		r.declare(n.Name)
		if n.Initialiser != nil {
			r.resolveExpr(n.Initialiser)
		}
		r.define(n.Name.Lexeme)

	case *ast.Function:
		r.declare(n.Name)
		r.define(n.Name.Lexeme)
		r.resolveFunction(n, fnFunction)

	case *ast.If:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Then)
		if n.Else != nil {
			r.resolveStmt(n.Else)
		}

	case *ast.While:
		r.resolveExpr(n.Condition)
		r.resolveStmt(n.Body)

	case *ast.Return:
		if r.currentFn == fnNone {
			r.errs = append(r.errs, errors.New(errors.Return, n.Keyword, "Can't return from top-level code"))
		}
		if n.Value != nil {
			r.resolveExpr(n.Value)
		}

	case *ast.Output:
		r.resolveExpr(n.Expression)

	case *ast.Expression:
		r.resolveExpr(n.Expression)

	default:
		// unreachable: every Stmt variant is handled above
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosing := r.currentFn
	r.currentFn = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param.Lexeme)
	}
	r.resolveFunctionBody(fn.Body)
	r.endScope()

	r.currentFn = enclosing
}

// resolveFunctionBody resolves a function body's statements
// directly in the current (innermost) scope rather than routing a
// *ast.Block through resolveStmt, which would push a second scope for
// it. executeBlockStmt runs a block body's statements directly in the
// parameter environment without nesting another one, so the scope
// count here must match: one scope per call, not two.
func (r *Resolver) resolveFunctionBody(body ast.Stmt) {
	if block, ok := body.(*ast.Block); ok {
		r.resolveStmts(block.Statements)
		return
	}
	r.resolveStmt(body)
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if ready, ok := r.scopes[len(r.scopes)-1][n.Name.Lexeme]; ok && !ready {
				r.errs = append(r.errs, errors.New(errors.Variable, n.Name, "Can't read local variable in its own initialiser"))
			}
		}
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(n.Value)
		r.resolveLocal(n, n.Name.Lexeme)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Unary:
		r.resolveExpr(n.Right)

	case *ast.Binary:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Logical:
		r.resolveExpr(n.Left)
		r.resolveExpr(n.Right)

	case *ast.Grouping:
		r.resolveExpr(n.Expression)

	case *ast.Call:
		r.resolveExpr(n.Callee)
		for _, a := range n.Args {
			r.resolveExpr(a)
		}

	case *ast.SequenceOp:
		r.resolveExpr(n.Upper)
		// Only the Let form introduces a new environment at runtime
		// (evalSequenceOp); the Assign form reuses an existing binding
		// in place, so it must resolve/execute in the same scope.
		if _, ok := n.Lower.(*ast.Let); ok {
			r.beginScope()
			r.resolveStmt(n.Lower)
			r.resolveExpr(n.Summand)
			r.endScope()
		} else {
			r.resolveStmt(n.Lower)
			r.resolveExpr(n.Summand)
		}

	default:
		// unreachable: every Expr variant is handled above
	}
}

// declare marks name as bound but not yet initialised in the
// innermost scope. No-op at global scope: shadowing detection only
// applies to local scopes; the environment enforces "already defined"
// for globals at runtime via Define's own rule.
func (r *Resolver) declare(tok token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, ok := innermost[tok.Lexeme]; ok {
		r.errs = append(r.errs, errors.New(errors.Variable, tok, "Already a variable with this name in this scope"))
	}
	innermost[tok.Lexeme] = false
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal walks the scope stack from innermost outward, and when
// it finds name, records the distance — the number of enclosing
// scopes between the reference and its binding — for this exact AST
// node. If the name is never found, no entry is recorded and the
// interpreter falls back to the global environment.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
