// Package concurrent implements the interpreter's work-partitioning
// strategy for map/reduce: slicing an input of size N into a bounded
// number of contiguous slices, dispatching one worker per slice, and
// assembling results in slice order regardless of completion order. It
// wraps the composite computation as a value.Async forced on first
// observation by the caller.
package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ardnew/exl/value"
)

// MultithreadThreshold is the minimum input size at which map/reduce
// dispatch to the worker pool instead of running sequentially on the
// calling goroutine.
const MultithreadThreshold = 32

// Runtime dispatches map/reduce worker tasks. The zero Runtime uses
// runtime.NumCPU() workers; construct with NewRuntime to override.
type Runtime struct {
	workers int
}

// NewRuntime returns a Runtime bounded to the given worker count. A
// non-positive count falls back to runtime.NumCPU(), the Go analog of the
// governing design's hardware_concurrency().
func NewRuntime(workers int) *Runtime {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Runtime{workers: workers}
}

// bounds computes the slice boundaries for an input of size n, with the
// last slice absorbing any remainder so no element is lost when n is not
// a multiple of the slice count.
func (rt *Runtime) bounds(n int) [][2]int {
	k := rt.workers
	if k < 1 {
		k = runtime.NumCPU()
	}

	if k > n {
		k = n
	}

	if k < 1 {
		k = 1
	}

	sliceSize := n / k
	out := make([][2]int, k)

	for i := range k {
		lo := i * sliceSize
		hi := lo + sliceSize

		if i == k-1 {
			hi = n
		}

		out[i] = [2]int{lo, hi}
	}

	return out
}

// MapWorker computes one slice's worth of mapped elements, identified by
// the half-open range [lo, hi) over the original input.
type MapWorker func(lo, hi int) ([]value.Value, error)

// DispatchMap slices an input of size n across the worker pool, runs work
// per slice, and assembles the results in slice order into a Vector. The
// whole computation is wrapped as a value.Async; nothing runs until the
// caller forces the returned value.
func (rt *Runtime) DispatchMap(n int, work MapWorker) value.Value {
	return value.NewAsync(func() (value.Value, error) {
		slices := rt.bounds(n)
		partials := make([][]value.Value, len(slices))

		g, _ := errgroup.WithContext(context.Background())

		for i, b := range slices {
			i, b := i, b

			g.Go(func() error {
				out, err := work(b[0], b[1])
				if err != nil {
					return err
				}

				partials[i] = out

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return value.Value{}, err
		}

		flat := make([]value.Value, 0, n)
		for _, p := range partials {
			flat = append(flat, p...)
		}

		return value.NewVector(flat), nil
	})
}

// ReduceWorker folds one slice, identified by [lo, hi) over the original
// input, starting from seed.
type ReduceWorker func(lo, hi int, seed value.Value) (value.Value, error)

// ReduceFold folds the ordered partial results of every slice back into a
// single value, starting from seed.
type ReduceFold func(acc, partial value.Value) (value.Value, error)

// DispatchReduce slices an input of size n across the worker pool, folds
// each slice locally from seed, then folds the ordered partial results
// back into one value starting again from seed. The whole computation is
// wrapped as a value.Async.
func (rt *Runtime) DispatchReduce(n int, seed value.Value, work ReduceWorker, fold ReduceFold) value.Value {
	return value.NewAsync(func() (value.Value, error) {
		slices := rt.bounds(n)
		partials := make([]value.Value, len(slices))

		g, _ := errgroup.WithContext(context.Background())

		for i, b := range slices {
			i, b := i, b

			g.Go(func() error {
				out, err := work(b[0], b[1], seed)
				if err != nil {
					return err
				}

				partials[i] = out

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return value.Value{}, err
		}

		acc := seed

		for _, p := range partials {
			next, err := fold(acc, p)
			if err != nil {
				return value.Value{}, err
			}

			acc = next
		}

		return acc, nil
	})
}
