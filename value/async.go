package value

import "sync"

// asyncState is the tri-state memoization slot described by §9: pending,
// ready, or failed.
type asyncState uint8

const (
	asyncPending asyncState = iota
	asyncReady
	asyncFailed
)

// Async is a one-shot handle to a background computation. The first
// observer to force it consumes the producer and transitions to a
// terminal state; every later observer, concurrent or not, sees the
// stored result without re-running the producer.
type Async struct {
	mu      sync.Mutex
	state   asyncState
	value   Value
	err     error
	produce func() (Value, error)
}

// Force blocks until the producer has run exactly once, then returns its
// result. Concurrent callers serialize on the mutex; whichever one runs
// the producer does so on behalf of all of them.
func (a *Async) Force() (Value, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == asyncPending {
		v, err := a.produce()
		a.produce = nil

		if err != nil {
			a.state = asyncFailed
			a.err = err
		} else {
			a.state = asyncReady
			a.value = v
		}
	}

	if a.state == asyncFailed {
		return Value{}, a.err
	}

	return a.value, nil
}
