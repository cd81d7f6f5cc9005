package mockserver

import (
	"context"
	"sync"
)

// Result is the pending outcome of a façade call. It settles exactly once,
// either with a value or with an error.
type Result[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newResult[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// Resolved returns an already settled successful result
func Resolved[T any](v T) *Result[T] {
	r := newResult[T]()
	r.settle(v, nil)
	return r
}

// Rejected returns an already settled failed result
func Rejected[T any](err error) *Result[T] {
	r := newResult[T]()
	var zero T
	r.settle(zero, err)
	return r
}

// settle records the outcome; later calls are ignored
func (r *Result[T]) settle(v T, err error) bool {
	settled := false
	r.once.Do(func() {
		r.value = v
		r.err = err
		settled = true
		close(r.done)
	})
	return settled
}

// Await blocks until the result settles or ctx is done. Giving up on the wait
// does not cancel the underlying operation.
func (r *Result[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
