package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/exl/ast"
	"github.com/ardnew/exl/evalerr"
	"github.com/ardnew/exl/value"
)

// sequenceStrings renders every element of a sequence Value via AsString,
// for diffing against a hand-built expectation.
func sequenceStrings(v value.Value) []string {
	out := make([]string, 0, v.Size())
	cur := v

	for i := 0; i < v.Size(); i++ {
		out = append(out, cur.AsScalar().AsString())
		cur = cur.Next()
	}

	return out
}

// TestMapIdentityMatchesInputAcrossThreshold exercises spec invariant 3
// (map(seq, x -> x) == seq materialized) both below and above the
// sequential/parallel dispatch threshold, since the two code paths in
// evalMap are otherwise untested against the same property.
func TestMapIdentityMatchesInputAcrossThreshold(t *testing.T) {
	for _, n := range []int64{1, 5, 31, 32, 99, 200} {
		ev := New()

		input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(n)))
		body := ast.NewIdentifier(evalerr.Span{}, "x")
		m := ast.NewMap(evalerr.Span{}, input, "x", body)

		result, err := ev.Eval(m, ev.Global)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		want := sequenceStrings(value.NewRange(1, n))
		got := sequenceStrings(result)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("n=%d: map(seq, x -> x) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

// TestMapElementwiseMatchesFunctionAcrossThreshold exercises spec
// invariant 5 (map(seq, x -> f(x))[i] == f(seq[i])) for a non-identity f,
// again on both sides of the concurrency threshold.
func TestMapElementwiseMatchesFunctionAcrossThreshold(t *testing.T) {
	for _, n := range []int64{1, 10, 32, 75} {
		ev := New()

		input := ast.NewBinary(ast.ExprRange, evalerr.Span{}, lit(value.Int(1)), lit(value.Int(n)))
		body := ast.NewBinary(ast.ExprAdd,
			evalerr.Span{},
			ast.NewBinary(ast.ExprMul, evalerr.Span{}, ast.NewIdentifier(evalerr.Span{}, "x"), ast.NewIdentifier(evalerr.Span{}, "x")),
			lit(value.Int(1)),
		)
		m := ast.NewMap(evalerr.Span{}, input, "x", body)

		result, err := ev.Eval(m, ev.Global)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}

		want := make([]string, n)
		for i := int64(1); i <= n; i++ {
			want[i-1] = value.Int(i*i + 1).AsString()
		}

		if diff := cmp.Diff(want, sequenceStrings(result)); diff != "" {
			t.Errorf("n=%d: map(seq, x -> x*x + 1) mismatch (-want +got):\n%s", n, diff)
		}
	}
}
