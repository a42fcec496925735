// Package ast defines JMPL's abstract syntax tree: Expr and Stmt are
// closed sum types, implemented as Go interfaces with an unexported
// marker method rather than the classic accept/visit double dispatch —
// flattening visitor pairs into tagged unions matched directly by the
// consumer (parser output, resolver, interpreter all switch on
// concrete type).
package ast

import "github.com/Jogll1/J-JMPL/internal/token"

// Node is implemented by every AST node, static or expression.
type Node interface {
	// Line returns the source line the node originates from, used for
	// error reporting when no more specific token is at hand.
	Line() int
}

// Expr is any JMPL expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any JMPL statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Literal is a constant value baked into the source: a number,
// string, boolean, or null.
type Literal struct {
	Value any
	Tok   token.Token
}

func (l *Literal) exprNode()   {}
func (l *Literal) Line() int   { return l.Tok.Line }

// Variable references a bound identifier.
type Variable struct {
	Name token.Token
}

func (v *Variable) exprNode() {}
func (v *Variable) Line() int { return v.Name.Line }

// Assign stores Value into the binding named Name.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (a *Assign) exprNode() {}
func (a *Assign) Line() int { return a.Name.Line }

// Unary applies a prefix operator (- or !) to Right.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (u *Unary) exprNode() {}
func (u *Unary) Line() int { return u.Op.Line }

// Binary applies an infix operator to Left and Right.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (b *Binary) exprNode() {}
func (b *Binary) Line() int { return b.Op.Line }

// Logical is `and`/`or`, evaluated with short-circuiting.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (l *Logical) exprNode() {}
func (l *Logical) Line() int { return l.Op.Line }

// Grouping is a parenthesized expression, kept distinct from its
// inner expression so assignment-target validation and AST dumps can
// tell `(x)` apart from `x`.
type Grouping struct {
	Expression Expr
	LParen     token.Token
}

func (g *Grouping) exprNode() {}
func (g *Grouping) Line() int { return g.LParen.Line }

// Call invokes Callee with Args. Paren is the closing `)`, recorded so
// runtime errors (arity mismatch, non-callable callee) can report a
// sensible source location.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (c *Call) exprNode() {}
func (c *Call) Line() int { return c.Paren.Line }

// SequenceOp is the summation expression `∑(upper, lower) summand`.
// Lower is always either a *Let (introducing the loop variable) or an
// *Expression wrapping an *Assign (reusing an existing binding); the
// parser never produces any other Stmt here.
type SequenceOp struct {
	Name    token.Token // the `∑`/SUMMATION token, for error reporting
	Upper   Expr
	Lower   Stmt
	Summand Expr
}

func (s *SequenceOp) exprNode() {}
func (s *SequenceOp) Line() int { return s.Name.Line }
