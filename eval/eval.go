// Package eval walks the expression and statement trees produced by the
// parser collaborator, dispatching map/reduce bodies to the concurrency
// runtime and converting value-algebra errors into positioned
// diagnostics.
package eval

import (
	"github.com/ardnew/exl/ast"
	"github.com/ardnew/exl/concurrent"
	"github.com/ardnew/exl/env"
	"github.com/ardnew/exl/evalerr"
	"github.com/ardnew/exl/value"
)

// Evaluator walks expression and statement trees against a shared global
// environment, dispatching map/reduce work to a concurrency runtime.
type Evaluator struct {
	Global  *env.Env
	Runtime *concurrent.Runtime
	// Output receives the text of every Out/Print statement, in program
	// order. The driver wires this to standard output; tests may capture
	// it directly.
	Output func(string)
}

// New returns an Evaluator with a fresh global environment and a runtime
// sized to the host's CPU count.
func New() *Evaluator {
	return &Evaluator{Global: env.New(), Runtime: concurrent.NewRuntime(0)}
}

// NewWithRuntime returns an Evaluator using the given runtime, letting
// callers (notably the driver's --workers flag) override worker count.
func NewWithRuntime(rt *concurrent.Runtime) *Evaluator {
	return &Evaluator{Global: env.New(), Runtime: rt}
}

// Exec executes one statement against the evaluator's global environment.
// A statement that fails leaves any bindings from earlier, successful
// statements untouched; the failing statement's own effects do not
// partially apply.
func (ev *Evaluator) Exec(s *ast.Stmt) error {
	switch s.KindOf() {
	case ast.StmtVar:
		v, err := ev.Eval(s.Expr, ev.Global)
		if err != nil {
			return err
		}

		ev.Global.Set(s.Name, v)

		return nil

	case ast.StmtOut:
		v, err := ev.Eval(s.Expr, ev.Global)
		if err != nil {
			return err
		}

		ev.out(v.AsString())

		return nil

	case ast.StmtPrint:
		ev.out(s.Literal)

		return nil

	default:
		return evalerr.New(evalerr.KindInternal, s.Span, "unreachable statement kind")
	}
}

// threshold is the minimum input size at which map/reduce dispatch to the
// concurrency runtime instead of running sequentially.
func (ev *Evaluator) threshold() int {
	return concurrent.MultithreadThreshold
}

func (ev *Evaluator) out(s string) {
	if ev.Output != nil {
		ev.Output(s)
	}
}

// Eval evaluates an expression tree against the given environment. The
// environment distinction matters only inside map/reduce bodies, which
// run against a fresh per-element environment rather than ev.Global.
func (ev *Evaluator) Eval(e *ast.Expr, scope *env.Env) (value.Value, error) {
	switch e.KindOf() {
	case ast.ExprLiteral:
		return e.Literal, nil

	case ast.ExprIdentifier:
		v, err := scope.Get(e.Name)
		if err != nil {
			return value.Value{}, evalerr.Wrap(evalerr.KindName, e.Span, err, "unknown identifier: "+e.Name)
		}

		return v, nil

	case ast.ExprAdd, ast.ExprSub, ast.ExprMul, ast.ExprDiv, ast.ExprPow:
		return ev.evalArith(e, scope)

	case ast.ExprRange:
		return ev.evalRange(e, scope)

	case ast.ExprMap:
		return ev.evalMap(e, scope)

	case ast.ExprReduce:
		return ev.evalReduce(e, scope)

	default:
		return value.Value{}, evalerr.New(evalerr.KindInternal, e.Span, "unreachable expression kind")
	}
}

func (ev *Evaluator) evalArith(e *ast.Expr, scope *env.Env) (value.Value, error) {
	l, err := ev.Eval(e.Left, scope)
	if err != nil {
		return value.Value{}, err
	}

	r, err := ev.Eval(e.Right, scope)
	if err != nil {
		return value.Value{}, err
	}

	var (
		result value.Value
		opErr  error
	)

	switch e.KindOf() {
	case ast.ExprAdd:
		result, opErr = l.Add(r)
	case ast.ExprSub:
		result, opErr = l.Sub(r)
	case ast.ExprMul:
		result, opErr = l.Mul(r)
	case ast.ExprDiv:
		result, opErr = l.Div(r)
	case ast.ExprPow:
		result, opErr = l.Pow(r)
	}

	if opErr != nil {
		return value.Value{}, classifyArith(opErr, e.Span)
	}

	return result, nil
}

func classifyArith(err error, span ast.Span) error {
	switch err {
	case value.ErrNotScalar:
		return evalerr.Wrap(evalerr.KindType, span, err, err.Error())
	case value.ErrDivByZero, value.ErrOverflow:
		return evalerr.Wrap(evalerr.KindArithmetic, span, err, err.Error())
	default:
		return evalerr.Wrap(evalerr.KindInternal, span, err, err.Error())
	}
}

func (ev *Evaluator) evalRange(e *ast.Expr, scope *env.Env) (value.Value, error) {
	l, err := ev.Eval(e.Left, scope)
	if err != nil {
		return value.Value{}, err
	}

	r, err := ev.Eval(e.Right, scope)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewRange(l.AsInteger(), r.AsInteger()), nil
}
