// Package outcomes layers the results combinators over deferred computations.
//
// An Outcome is either an immediate results.Result or a deferred one - a
// result that will be delivered once an in-flight computation settles.  Every
// combinator in this package accepts both forms: given an immediate outcome
// it runs synchronously and returns an immediate outcome, given a deferred
// one it registers a continuation and returns a deferred outcome that settles
// exactly once, after its input settles.  Callers chain combinators without
// branching on which form they hold.
//
// The Try family is the only place where panics and rejections are converted
// into failure results; see Try, TryFuture and TryAsync.
package outcomes

import (
	"context"

	"github.com/allynet/ishod/futures"
	"github.com/allynet/ishod/results"
)

// Deferred is an in-flight computation that settles with a results.Result.
// *futures.Future[results.Result[T]] satisfies it, as does Outcome itself,
// so outcomes compose with each other and with any other deferred
// implementation that has this shape.
type Deferred[T any] interface {
	Await(ctx context.Context) (results.Result[T], error)
}

// Outcome is an immediate results.Result or a deferred one.  The zero
// Outcome is an immediate failure; prefer the Of, Ok, Err and Defer
// constructors.
type Outcome[T any] struct {
	res results.Result[T]
	def Deferred[T]
}

// Of wraps an already-settled result as an immediate Outcome.
func Of[T any](r results.Result[T]) Outcome[T] {
	return Outcome[T]{res: r}
}

// Ok returns an immediate success Outcome wrapping val.
func Ok[T any](val T) Outcome[T] {
	return Of(results.Ok(val))
}

// Err returns an immediate failure Outcome wrapping err.
func Err[T any](err error) Outcome[T] {
	return Of(results.Err[T](err))
}

// Defer wraps an in-flight computation as a deferred Outcome.
func Defer[T any](d Deferred[T]) Outcome[T] {
	return Outcome[T]{def: d}
}

// IsDeferred reports whether o's result has yet to settle.  Immediate
// outcomes, including ones derived from a settled computation, report false.
func (o Outcome[T]) IsDeferred() bool {
	return o.def != nil
}

// Await returns o's result, blocking until the underlying computation
// settles when o is deferred.  Immediate outcomes return synchronously
// without consulting ctx.  The error return is structural: it reports a
// bounded wait (ctx) or an upstream handle that rejected outright, never a
// modeled failure - those arrive inside the Result.
func (o Outcome[T]) Await(ctx context.Context) (results.Result[T], error) {
	if o.def == nil {
		return o.res, nil
	}
	return o.def.Await(ctx)
}

// continueWith registers fn to run against d's settled result and returns
// the continuation as a deferred Outcome.  Structural rejections of d pass
// through unconverted; a panic in fn rejects the continuation with a
// *results.PanicError since it cannot unwind into the original caller.
func continueWith[T any, U any](d Deferred[T], fn func(results.Result[T]) results.Result[U]) Outcome[U] {
	f := futures.New[results.Result[U]]()

	go func() {
		defer func() {
			if v := recover(); v != nil {
				f.Reject(&results.PanicError{Value: v})
			}
		}()

		r, err := d.Await(context.Background())
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(fn(r))
	}()

	return Defer[U](f)
}

// Tap invokes fn with the success value once o's result is available, if it
// is a success, and returns an outcome carrying the result unchanged.  On
// the immediate path a panic in fn unwinds to the caller; on the deferred
// path it rejects the returned outcome.
func (o Outcome[T]) Tap(fn func(T)) Outcome[T] {
	if o.def == nil {
		return Of(o.res.Tap(fn))
	}
	return continueWith[T, T](o.def, func(r results.Result[T]) results.Result[T] {
		return r.Tap(fn)
	})
}

// TapErr is the failure-side counterpart of Tap.
func (o Outcome[T]) TapErr(fn func(error)) Outcome[T] {
	if o.def == nil {
		return Of(o.res.TapErr(fn))
	}
	return continueWith[T, T](o.def, func(r results.Result[T]) results.Result[T] {
		return r.TapErr(fn)
	})
}

// Map transforms the success value with fn once o's result is available.  A
// failure passes through untouched.  fn is guarded: a panic becomes the
// failure payload of the produced result, on both paths.
func Map[T any, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if o.def == nil {
		return Of(results.Map(o.res, fn))
	}
	return continueWith[T, U](o.def, func(r results.Result[T]) results.Result[U] {
		return results.Map(r, fn)
	})
}

// MapErr transforms the failure error with fn once o's result is available.
// A success passes through untouched.  fn is guarded: a panic becomes the
// new failure payload.
func MapErr[T any](o Outcome[T], fn func(error) error) Outcome[T] {
	if o.def == nil {
		return Of(results.MapErr(o.res, fn))
	}
	return continueWith[T, T](o.def, func(r results.Result[T]) results.Result[T] {
		return results.MapErr(r, fn)
	})
}

// MapAwait is Map for a transform whose computation is itself deferred.  The
// returned outcome is always deferred and settles once fn's awaitable does.
// Because map is guarded, a panic in fn and a rejection of its awaitable
// both become the failure payload of the produced result.
func MapAwait[T any, U any](o Outcome[T], fn func(T) futures.Awaitable[U]) Outcome[U] {
	f := futures.New[results.Result[U]]()

	go func() {
		defer func() {
			if v := recover(); v != nil {
				f.Resolve(results.Err[U](&results.PanicError{Value: v}))
			}
		}()

		r, err := o.Await(context.Background())
		if err != nil {
			f.Reject(err)
			return
		}
		if r.IsErr() {
			f.Resolve(results.Err[U](r.UnwrapErr()))
			return
		}

		v, err := fn(r.Unwrap()).Await(context.Background())
		f.Resolve(results.New(v, err))
	}()

	return Defer[U](f)
}

// FlatMap chains o into fn, which returns an Outcome of its own; the result
// is fn's outcome exactly, flattened but never re-wrapped.  A failure passes
// through untouched and fn never runs.  Unlike Map, fn is not guarded: on
// the immediate path a panic unwinds to the caller, on the deferred path it
// rejects the returned outcome.
func FlatMap[T any, U any](o Outcome[T], fn func(T) Outcome[U]) Outcome[U] {
	if o.def == nil {
		if o.res.IsErr() {
			return Err[U](o.res.UnwrapErr())
		}
		return fn(o.res.Unwrap())
	}

	f := futures.New[results.Result[U]]()

	go func() {
		defer func() {
			if v := recover(); v != nil {
				f.Reject(&results.PanicError{Value: v})
			}
		}()

		r, err := o.def.Await(context.Background())
		if err != nil {
			f.Reject(err)
			return
		}
		if r.IsErr() {
			f.Resolve(results.Err[U](r.UnwrapErr()))
			return
		}

		inner, err := fn(r.Unwrap()).Await(context.Background())
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(inner)
	}()

	return Defer[U](f)
}
