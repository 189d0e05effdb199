package outcomes

import (
	"context"

	"github.com/allynet/ishod/futures"
	"github.com/allynet/ishod/results"
)

// The Try family is the single boundary where raw panics and rejections are
// converted into failure results.  Everywhere else in this package the
// Result discipline is assumed to already hold.

// Try runs fn immediately, in the caller's goroutine, and converts its
// outcome into an immediate Outcome: a returned error or a panic becomes a
// failure, a normal return a success.  No suspension is introduced.
func Try[T any](fn func() (T, error)) Outcome[T] {
	return Of(results.Try(fn))
}

// TryFuture adopts an in-flight computation whose rejection has not yet been
// converted into the Result model.  The returned deferred Outcome settles to
// a success with the computation's value, or to a failure wrapping whatever
// it rejected with; no rejection escapes.
func TryFuture[T any](aw futures.Awaitable[T]) Outcome[T] {
	f := futures.New[results.Result[T]]()

	go func() {
		v, err := aw.Await(context.Background())
		f.Resolve(results.New(v, err))
	}()

	return Defer[T](f)
}

// TryAsync runs fn immediately, in the caller's goroutine, and adopts the
// deferred computation it returns as TryFuture does.  A panic before the
// computation is handed back yields an immediate failure.
func TryAsync[T any](fn func() futures.Awaitable[T]) (o Outcome[T]) {
	defer func() {
		if v := recover(); v != nil {
			o = Err[T](&results.PanicError{Value: v})
		}
	}()

	return TryFuture(fn())
}
