// Package ast defines the expression and statement trees produced by the
// parser collaborator and walked by the eval package. The parser attaches
// a source Span to every node for diagnostics; the evaluator consults
// spans only when constructing error messages.
package ast

import (
	"github.com/ardnew/exl/evalerr"
	"github.com/ardnew/exl/value"
)

// Pos and Span alias the evalerr position types so a single definition of
// "where in the input" is shared by parse errors and AST nodes.
type (
	Pos  = evalerr.Pos
	Span = evalerr.Span
)

// ExprKind tags the variant of an Expr node.
type ExprKind int

const (
	ExprLiteral ExprKind = iota
	ExprIdentifier
	ExprAdd
	ExprSub
	ExprMul
	ExprDiv
	ExprPow
	ExprRange
	ExprMap
	ExprReduce
)

// Expr is an expression tree node. Only the fields relevant to Kind are
// populated; see the Expr constructors for the intended shape of each
// variant.
type Expr struct {
	Span Span

	kind ExprKind

	// ExprLiteral
	Literal value.Value

	// ExprIdentifier
	Name string

	// ExprAdd/Sub/Mul/Div/Pow/Range
	Left, Right *Expr

	// ExprMap
	MapInput *Expr
	MapParam string
	MapBody  *Expr

	// ExprReduce
	ReduceInput  *Expr
	ReduceSeed   *Expr
	ReduceParam1 string
	ReduceParam2 string
	ReduceBody   *Expr
}

// KindOf reports the node's variant.
func (e *Expr) KindOf() ExprKind { return e.kind }

// NewLiteral builds a Literal node.
func NewLiteral(span Span, v value.Value) *Expr {
	return &Expr{kind: ExprLiteral, Span: span, Literal: v}
}

// NewIdentifier builds an Identifier node.
func NewIdentifier(span Span, name string) *Expr {
	return &Expr{kind: ExprIdentifier, Span: span, Name: name}
}

// NewBinary builds an Add/Sub/Mul/Div/Pow/Range node.
func NewBinary(kind ExprKind, span Span, left, right *Expr) *Expr {
	return &Expr{kind: kind, Span: span, Left: left, Right: right}
}

// NewMap builds a Map node.
func NewMap(span Span, input *Expr, param string, body *Expr) *Expr {
	return &Expr{kind: ExprMap, Span: span, MapInput: input, MapParam: param, MapBody: body}
}

// NewReduce builds a Reduce node.
func NewReduce(span Span, input, seed *Expr, p1, p2 string, body *Expr) *Expr {
	return &Expr{
		kind:         ExprReduce,
		Span:         span,
		ReduceInput:  input,
		ReduceSeed:   seed,
		ReduceParam1: p1,
		ReduceParam2: p2,
		ReduceBody:   body,
	}
}

// StmtKind tags the variant of a Stmt node.
type StmtKind int

const (
	StmtVar StmtKind = iota
	StmtOut
	StmtPrint
)

// Stmt is a top-level statement node.
type Stmt struct {
	Span Span

	skind StmtKind

	// StmtVar
	Name string
	// StmtVar/StmtOut
	Expr *Expr
	// StmtPrint
	Literal string
}

// KindOf reports the node's variant.
func (s *Stmt) KindOf() StmtKind { return s.skind }

// NewVarStmt builds a `var name = expr` statement.
func NewVarStmt(span Span, name string, expr *Expr) *Stmt {
	return &Stmt{skind: StmtVar, Span: span, Name: name, Expr: expr}
}

// NewOutStmt builds an `out expr` statement.
func NewOutStmt(span Span, expr *Expr) *Stmt {
	return &Stmt{skind: StmtOut, Span: span, Expr: expr}
}

// NewPrintStmt builds a `print "literal"` statement.
func NewPrintStmt(span Span, literal string) *Stmt {
	return &Stmt{skind: StmtPrint, Span: span, Literal: literal}
}
