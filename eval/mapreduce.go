package eval

import (
	"github.com/ardnew/exl/ast"
	"github.com/ardnew/exl/env"
	"github.com/ardnew/exl/evalerr"
	"github.com/ardnew/exl/value"
)

// evalMap implements §4.E's Map contract: sequential below the threshold,
// dispatched to the concurrency runtime above it. Every worker and every
// sequential iteration builds its own fresh environment containing only
// the bound lambda parameter — it never sees ev.Global.
func (ev *Evaluator) evalMap(e *ast.Expr, scope *env.Env) (value.Value, error) {
	input, err := ev.Eval(e.MapInput, scope)
	if err != nil {
		return value.Value{}, err
	}

	if input.IsScalar() || input.IsNone() {
		return value.Value{}, evalerr.New(evalerr.KindType, e.MapInput.Span, "map requires a non-scalar input")
	}

	n := input.Size()

	elemAt := func(i int) value.Value {
		return input.Slice(i, i+1).AsScalar()
	}

	body := func(i int) (value.Value, error) {
		child := env.NewWith(e.MapParam, elemAt(i))

		v, err := ev.Eval(e.MapBody, child)
		if err != nil {
			return value.Value{}, err
		}

		if !v.IsScalar() {
			return value.Value{}, evalerr.New(evalerr.KindType, e.MapBody.Span, "cannot return vector from lambda body")
		}

		return v, nil
	}

	if n < ev.threshold() {
		items := make([]value.Value, n)

		for i := range n {
			v, err := body(i)
			if err != nil {
				return value.Value{}, err
			}

			items[i] = v
		}

		return value.NewVector(items), nil
	}

	return ev.Runtime.DispatchMap(n, func(lo, hi int) ([]value.Value, error) {
		out := make([]value.Value, 0, hi-lo)

		for i := lo; i < hi; i++ {
			v, err := body(i)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil
	}), nil
}

// evalReduce implements §4.E's Reduce contract. The parallel case folds
// each slice independently from seed, then folds the ordered partial
// results back into one value, again starting from seed — correct only
// when the body is associative with seed as left identity, a requirement
// this package documents but does not enforce.
func (ev *Evaluator) evalReduce(e *ast.Expr, scope *env.Env) (value.Value, error) {
	input, err := ev.Eval(e.ReduceInput, scope)
	if err != nil {
		return value.Value{}, err
	}

	if input.IsScalar() || input.IsNone() {
		return value.Value{}, evalerr.New(evalerr.KindType, e.ReduceInput.Span, "reduce requires a non-scalar input")
	}

	seed, err := ev.Eval(e.ReduceSeed, scope)
	if err != nil {
		return value.Value{}, err
	}

	if !seed.IsScalar() {
		return value.Value{}, evalerr.New(evalerr.KindType, e.ReduceSeed.Span, "reduce seed must be scalar")
	}

	n := input.Size()

	elemAt := func(i int) value.Value {
		return input.Slice(i, i+1).AsScalar()
	}

	step := func(acc value.Value, elem value.Value) (value.Value, error) {
		child := env.NewWith2(e.ReduceParam1, acc, e.ReduceParam2, elem)

		v, err := ev.Eval(e.ReduceBody, child)
		if err != nil {
			return value.Value{}, err
		}

		if !v.IsScalar() {
			return value.Value{}, evalerr.New(evalerr.KindType, e.ReduceBody.Span, "cannot return vector from lambda body")
		}

		return v, nil
	}

	if n < ev.threshold() {
		acc := seed

		for i := range n {
			acc, err = step(acc, elemAt(i))
			if err != nil {
				return value.Value{}, err
			}
		}

		return acc, nil
	}

	return ev.Runtime.DispatchReduce(n, seed,
		func(lo, hi int, localSeed value.Value) (value.Value, error) {
			acc := localSeed

			for i := lo; i < hi; i++ {
				var err error

				acc, err = step(acc, elemAt(i))
				if err != nil {
					return value.Value{}, err
				}
			}

			return acc, nil
		},
		step,
	), nil
}
