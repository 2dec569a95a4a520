package eval

import (
	"testing"

	"github.com/ardnew/exl/ast"
	"github.com/ardnew/exl/evalerr"
	"github.com/ardnew/exl/value"
)

func lit(v value.Value) *ast.Expr { return ast.NewLiteral(evalerr.Span{}, v) }

func TestEvalArithmeticPromotion(t *testing.T) {
	ev := New()

	e := ast.NewBinary(ast.ExprAdd, evalerr.Span{}, lit(value.Int(3)), lit(value.Float(1.5)))

	v, err := ev.Eval(e, ev.Global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.AsFloat() != 4.5 {
		t.Errorf("expected 4.5, got %v", v.AsFloat())
	}
}

func TestEvalIdentifierNameError(t *testing.T) {
	ev := New()

	e := ast.NewIdentifier(evalerr.Span{}, "missing")

	_, err := ev.Eval(e, ev.Global)

	derr, ok := evalerr.AsError(err)
	if !ok || derr.Kind() != evalerr.KindName {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestEvalDivByZeroIsArithmeticError(t *testing.T) {
	ev := New()

	e := ast.NewBinary(ast.ExprDiv, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(0)))

	_, err := ev.Eval(e, ev.Global)

	derr, ok := evalerr.AsError(err)
	if !ok || derr.Kind() != evalerr.KindArithmetic {
		t.Fatalf("expected ArithmeticError, got %v", err)
	}
}

func TestExecVarThenOut(t *testing.T) {
	ev := New()

	var out []string
	ev.Output = func(s string) { out = append(out, s) }

	varStmt := ast.NewVarStmt(evalerr.Span{}, "n", lit(value.Int(5)))
	if err := ev.Exec(varStmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outStmt := ast.NewOutStmt(evalerr.Span{}, ast.NewIdentifier(evalerr.Span{}, "n"))
	if err := ev.Exec(outStmt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 || out[0] != "5" {
		t.Errorf("expected output [\"5\"], got %v", out)
	}
}

func TestExecFailedVarLeavesPriorBindingsIntact(t *testing.T) {
	ev := New()

	ok := ast.NewVarStmt(evalerr.Span{}, "n", lit(value.Int(5)))
	if err := ev.Exec(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := ast.NewVarStmt(evalerr.Span{}, "m", ast.NewBinary(ast.ExprDiv, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(0))))
	if err := ev.Exec(bad); err == nil {
		t.Fatalf("expected error from division by zero")
	}

	v, err := ev.Global.Get("n")
	if err != nil || v.AsInteger() != 5 {
		t.Errorf("expected n to remain bound to 5, got %v, err=%v", v.AsInteger(), err)
	}

	if _, err := ev.Global.Get("m"); err == nil {
		t.Errorf("expected m to never have been bound")
	}
}

func TestMapIdentityOnSmallSequence(t *testing.T) {
	ev := New()

	input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(5)))
	body := ast.NewIdentifier(evalerr.Span{}, "x")
	m := ast.NewMap(evalerr.Span{}, input, "x", body)

	result, err := ev.Eval(m, ev.Global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AsString() != "{1, 2, 3, 4, 5}" {
		t.Errorf("expected {1, 2, 3, 4, 5}, got %v", result.AsString())
	}
}

func TestMapAboveThresholdDispatchesAndPreservesOrder(t *testing.T) {
	ev := New()

	input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(100)))
	body := ast.NewBinary(ast.ExprMul, evalerr.Span{}, ast.NewIdentifier(evalerr.Span{}, "x"), ast.NewIdentifier(evalerr.Span{}, "x"))
	m := ast.NewMap(evalerr.Span{}, input, "x", body)

	result, err := ev.Eval(m, ev.Global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Size() != 100 {
		t.Fatalf("expected size 100, got %d", result.Size())
	}

	cur := result
	for i := int64(1); i <= 100; i++ {
		if cur.AsScalar().AsInteger() != i*i {
			t.Fatalf("expected element %d to be %d, got %d", i, i*i, cur.AsScalar().AsInteger())
		}

		cur = cur.Next()
	}
}

func TestReduceSumMatchesSpecScenario(t *testing.T) {
	ev := New()

	input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(100)))
	body := ast.NewBinary(ast.ExprAdd, evalerr.Span{}, ast.NewIdentifier(evalerr.Span{}, "a"), ast.NewIdentifier(evalerr.Span{}, "b"))
	r := ast.NewReduce(evalerr.Span{}, input, lit(value.Int(0)), "a", "b", body)

	result, err := ev.Eval(r, ev.Global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AsInteger() != 5050 {
		t.Errorf("expected 5050, got %v", result.AsInteger())
	}
}

func TestReduceProductMatchesSpecScenario(t *testing.T) {
	ev := New()

	input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(10)))
	body := ast.NewBinary(ast.ExprMul, evalerr.Span{}, ast.NewIdentifier(evalerr.Span{}, "a"), ast.NewIdentifier(evalerr.Span{}, "b"))
	r := ast.NewReduce(evalerr.Span{}, input, lit(value.Int(1)), "a", "b", body)

	result, err := ev.Eval(r, ev.Global)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AsInteger() != 3628800 {
		t.Errorf("expected 3628800, got %v", result.AsInteger())
	}
}

func TestLambdaBodyCannotSeeOuterVariables(t *testing.T) {
	ev := New()
	ev.Global.Set("outer", value.Int(99))

	input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(3)))
	body := ast.NewIdentifier(evalerr.Span{}, "outer")
	m := ast.NewMap(evalerr.Span{}, input, "x", body)

	_, err := ev.Eval(m, ev.Global)

	derr, ok := evalerr.AsError(err)
	if !ok || derr.Kind() != evalerr.KindName {
		t.Fatalf("expected lambda body to fail to resolve outer variable, got %v", err)
	}
}
