// Package futures provides the deferred-computation primitive consumed by the
// outcomes package: a Future holds a value that will be delivered at some
// later point, settles exactly once, and can be awaited by any number of
// goroutines.  This is the key difference between a Future and a bare channel,
// whose value can only be received once.
package futures

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	// ErrCanceled is the rejection reported when a future is settled by calling Cancel.
	ErrCanceled = errors.New("future canceled")
)

// Awaitable is the capability shared by all deferred computations: anything
// that can deliver a value of type T, or a rejection, once it settles.  The
// outcomes package accepts any Awaitable, not just *Future, so alternative
// deferred implementations interoperate by satisfying this interface.
// Plain values and result values are never Awaitable.
type Awaitable[T any] interface {
	// Await blocks until the computation settles and returns its value or
	// rejection.  It must be safe to call from multiple goroutines and must
	// return the same settlement to all of them.  The context only bounds the
	// wait; it does not cancel the underlying computation.
	Await(ctx context.Context) (T, error)
}

// Future is an in-flight computation that will settle exactly once with a
// value (Resolve) or a rejection (Reject/Cancel).  The first settlement wins
// and all later settlements are silently ignored.  Create one with New and
// settle it manually, or use FromFunc to run a function asynchronously.
type Future[T any] struct {
	isSettled uint32
	settled   chan struct{}

	value T
	err   error
}

// New creates an unsettled Future that must be settled by calling Resolve,
// Reject or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		settled: make(chan struct{}),
	}
}

// FromFunc runs fn on a new goroutine and returns a Future that settles with
// fn's return value or error.
func FromFunc[T any](fn func() (T, error)) *Future[T] {
	f := New[T]()

	go func() {
		v, err := fn()
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(v)
	}()

	return f
}

// Resolved returns a Future already settled with value.
func Resolved[T any](value T) *Future[T] {
	f := New[T]()
	f.Resolve(value)
	return f
}

// Rejected returns a Future already settled with the rejection err.
func Rejected[T any](err error) *Future[T] {
	f := New[T]()
	f.Reject(err)
	return f
}

// Resolve settles this Future with the provided value.  If the future has
// already settled the call is ignored.
func (f *Future[T]) Resolve(value T) {
	f.settle(value, nil)
}

// Reject settles this Future with the provided rejection.  If the future has
// already settled the call is ignored.
func (f *Future[T]) Reject(err error) {
	f.settle(*new(T), err)
}

// Cancel settles this Future with ErrCanceled.  If the future has already
// settled the call is ignored.
func (f *Future[T]) Cancel() {
	f.Reject(ErrCanceled)
}

func (f *Future[T]) settle(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isSettled, 0, 1) {
		f.value = val
		f.err = err
		close(f.settled)
	}
}

// Await blocks until the future settles or ctx is canceled.  Every caller
// observes the same settlement; a context cancellation only abandons the
// wait, it does not settle the future.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.settled:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
