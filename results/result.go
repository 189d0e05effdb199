// Package results provides a Result type that represents the outcome of an
// operation as a tagged union: a success carrying a value, or a failure
// carrying an error.  Unlike a plain (value, error) pair the two slots cannot
// disagree - a Result is always exactly one of the two variants.
//
// Results are immutable values.  Combinators never modify a Result in place;
// transformations return a new Result and inspection returns the original.
package results

// Result is either a success holding a value of type T or a failure holding
// an error.  The zero Result is a failure with a nil error; prefer the Ok,
// Err and New constructors.
type Result[T any] struct {
	val T
	err error
	ok  bool
}

// Ok returns a success Result wrapping val.
func Ok[T any](val T) Result[T] {
	return Result[T]{val: val, ok: true}
}

// Err returns a failure Result wrapping err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// New converts a conventional (value, error) pair into a Result.  A non-nil
// error produces a failure; otherwise val is wrapped as a success.
func New[T any](val T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(val)
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value without checking the variant.  It is the
// fast path for callers that have already narrowed with IsOk; called on a
// failure it returns T's zero value.  Use Value or UnwrapOr when the variant
// is not known.
func (r Result[T]) Unwrap() T {
	return r.val
}

// UnwrapErr returns the failure error without checking the variant.  Called
// on a success it returns nil.  The same narrowing contract as Unwrap
// applies, inverted.
func (r Result[T]) UnwrapErr() error {
	return r.err
}

// Value returns the success value and true, or T's zero value and false when
// r is a failure.
func (r Result[T]) Value() (T, bool) {
	return r.val, r.ok
}

// Either collapses the variant distinction, returning the success value or
// the failure error as an untyped value.
func (r Result[T]) Either() any {
	if r.ok {
		return r.val
	}
	return r.err
}

// UnwrapOr returns the success value, or fallback when r is a failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.val
	}
	return fallback
}

// Tap invokes fn with the success value if r is a success and returns r
// unchanged.  A panic in fn is not recovered.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if r.ok {
		fn(r.val)
	}
	return r
}

// TapErr invokes fn with the error if r is a failure and returns r
// unchanged.  A panic in fn is not recovered.
func (r Result[T]) TapErr(fn func(error)) Result[T] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Map transforms the success value with fn, wrapping the result in a new
// success.  A failure passes through untouched and fn never runs.  The call
// to fn is guarded: if it panics the panic value becomes the failure payload
// of the returned Result instead of unwinding.
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return Try(func() (U, error) {
		return fn(r.val), nil
	})
}

// MapErr transforms the failure error with fn.  A success passes through
// untouched and fn never runs.  The call to fn is guarded the same way as
// Map: if fn panics, the panic value becomes the new failure payload.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.ok {
		return r
	}
	mapped := Try(func() (error, error) {
		return fn(r.err), nil
	})
	if mapped.IsErr() {
		return Err[T](mapped.UnwrapErr())
	}
	return Err[T](mapped.Unwrap())
}

// FlatMap chains r into fn, which itself returns a Result.  The returned
// Result is exactly what fn produced - no second wrapping.  A failure passes
// through untouched and fn never runs.  Unlike Map, fn is not guarded: a
// panic in fn unwinds to the caller.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if !r.ok {
		return Err[U](r.err)
	}
	return fn(r.val)
}

// Try runs fn and converts its outcome into a Result.  A returned error
// becomes a failure, a panic becomes a failure wrapping a *PanicError, and a
// normal return becomes a success.  fn runs in the caller's goroutine before
// Try returns.
func Try[T any](fn func() (T, error)) (r Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			r = Err[T](&PanicError{Value: v})
		}
	}()

	return New(fn())
}
