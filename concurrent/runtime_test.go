package concurrent

import (
	"testing"

	"github.com/ardnew/exl/value"
)

func TestBoundsAbsorbsRemainderInLastSlice(t *testing.T) {
	rt := NewRuntime(4)

	b := rt.bounds(10)
	if len(b) != 4 {
		t.Fatalf("expected 4 slices, got %d", len(b))
	}

	total := 0
	for i, s := range b {
		if s[0] != total {
			t.Errorf("slice %d: expected lo=%d, got %d", i, total, s[0])
		}

		total = s[1]
	}

	if total != 10 {
		t.Errorf("expected slices to cover all 10 elements, covered %d", total)
	}

	last := b[len(b)-1]
	if last[1]-last[0] < 10/4 {
		t.Errorf("expected last slice to absorb remainder, got width %d", last[1]-last[0])
	}
}

func TestBoundsNeverExceedsN(t *testing.T) {
	rt := NewRuntime(8)

	b := rt.bounds(3)
	if len(b) != 3 {
		t.Fatalf("expected slice count capped at n=3, got %d", len(b))
	}
}

func TestDispatchMapAssemblesInSliceOrder(t *testing.T) {
	rt := NewRuntime(4)
	n := 40

	async := rt.DispatchMap(n, func(lo, hi int) ([]value.Value, error) {
		out := make([]value.Value, 0, hi-lo)
		for i := lo; i < hi; i++ {
			out = append(out, value.Int(int64(i)))
		}

		return out, nil
	})

	if async.Size() != n {
		t.Fatalf("expected size %d, got %d", n, async.Size())
	}

	cur := async

	for i := range n {
		if cur.AsScalar().AsInteger() != int64(i) {
			t.Fatalf("expected element %d to be %d, got %d", i, i, cur.AsScalar().AsInteger())
		}

		cur = cur.Next()
	}
}

func TestDispatchReduceSumInvariantAcrossSliceCounts(t *testing.T) {
	n := 1000
	sum := int64(0)

	for i := range n {
		sum += int64(i)
	}

	for _, workers := range []int{1, 2, 3, 7, 16} {
		rt := NewRuntime(workers)

		async := rt.DispatchReduce(n, value.Int(0),
			func(lo, hi int, seed value.Value) (value.Value, error) {
				acc := seed
				for i := lo; i < hi; i++ {
					var err error

					acc, err = acc.Add(value.Int(int64(i)))
					if err != nil {
						return value.Value{}, err
					}
				}

				return acc, nil
			},
			func(acc, partial value.Value) (value.Value, error) {
				return acc.Add(partial)
			},
		)

		if got := async.AsInteger(); got != sum {
			t.Errorf("workers=%d: expected sum %d, got %d", workers, sum, got)
		}
	}
}

func TestDispatchMapPropagatesWorkerError(t *testing.T) {
	rt := NewRuntime(4)

	async := rt.DispatchMap(40, func(lo, hi int) ([]value.Value, error) {
		return nil, value.ErrDivByZero
	})

	if async.IsScalar() {
		t.Errorf("expected failed async to not report scalar")
	}
}
