package ast

import "github.com/warplang/warpc/internal/span"

// Stmt is the tagged union of statement nodes making up a function body.
type Stmt interface {
	Node
	stmtNode()
}

// ReturnStmt is `return expr` or a bare `return`.
type ReturnStmt struct {
	Value Expr // nil for a bare return
	Sp    span.Span
}

func (r *ReturnStmt) Span() span.Span { return r.Sp }
func (*ReturnStmt) stmtNode()         {}

// ExprStmt is an expression evaluated for its side effect — a call or an
// assignment, at statement position.
type ExprStmt struct {
	Value Expr
	Sp    span.Span
}

func (e *ExprStmt) Span() span.Span { return e.Sp }
func (*ExprStmt) stmtNode()         {}

// IfStmt is `if cond { then } else { otherwise }`; Else is nil when the
// clause is absent.
type IfStmt struct {
	Cond      Expr
	Then      []Stmt
	Else      []Stmt
	Sp        span.Span
}

func (i *IfStmt) Span() span.Span { return i.Sp }
func (*IfStmt) stmtNode()         {}
