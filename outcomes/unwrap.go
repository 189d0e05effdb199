package outcomes

import "context"

// Terminal accessors for the dual surface.  Each settles the outcome first
// when it is deferred - the calling goroutine suspends until the underlying
// computation delivers its result - and then applies the corresponding
// results accessor.  Immediate outcomes return synchronously and never
// consult the context.

// Unwrap settles o and returns the success value without checking the
// variant.  The narrowing contract of results.Result.Unwrap applies: on a
// failure, or if the wait is cut short, the zero value comes back.
func (o Outcome[T]) Unwrap(ctx context.Context) T {
	r, _ := o.Await(ctx)
	return r.Unwrap()
}

// UnwrapErr settles o and returns the failure error without checking the
// variant.  A structural rejection of the underlying handle is returned
// as-is.
func (o Outcome[T]) UnwrapErr(ctx context.Context) error {
	r, err := o.Await(ctx)
	if err != nil {
		return err
	}
	return r.UnwrapErr()
}

// Value settles o and returns the success value and true, or the zero value
// and false for a failure.  It never fails: a cut-short wait reports absent.
func (o Outcome[T]) Value(ctx context.Context) (T, bool) {
	r, err := o.Await(ctx)
	if err != nil {
		var zero T
		return zero, false
	}
	return r.Value()
}

// Either settles o and collapses the variant distinction, returning the
// success value or the failure error as an untyped value.
func (o Outcome[T]) Either(ctx context.Context) any {
	r, err := o.Await(ctx)
	if err != nil {
		return err
	}
	return r.Either()
}

// UnwrapOr settles o and returns the success value, or fallback for a
// failure.  It never fails: a cut-short wait yields the fallback.
func (o Outcome[T]) UnwrapOr(ctx context.Context, fallback T) T {
	r, err := o.Await(ctx)
	if err != nil {
		return fallback
	}
	return r.UnwrapOr(fallback)
}
