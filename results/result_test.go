package results

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	ErrTest = errors.New("test error")
)

func TestOk(t *testing.T) {
	require := require.New(t)

	r := Ok(42)
	require.True(r.IsOk())
	require.False(r.IsErr())
	require.Equal(42, r.Unwrap())
	require.NoError(r.UnwrapErr())
}

func TestErr(t *testing.T) {
	require := require.New(t)

	r := Err[int](ErrTest)
	require.True(r.IsErr())
	require.False(r.IsOk())
	require.ErrorIs(r.UnwrapErr(), ErrTest)
	// unchecked fast path on the wrong variant yields the zero value
	require.Equal(0, r.Unwrap())
}

func TestNew(t *testing.T) {
	require := require.New(t)

	r := New(1, nil)
	require.True(r.IsOk())
	require.Equal(1, r.Unwrap())

	r = New(1, ErrTest)
	require.True(r.IsErr())
	require.ErrorIs(r.UnwrapErr(), ErrTest)
	require.Equal(0, r.Unwrap())
}

func TestValue(t *testing.T) {
	require := require.New(t)

	v, ok := Ok("a").Value()
	require.True(ok)
	require.Equal("a", v)

	v, ok = Err[string](ErrTest).Value()
	require.False(ok)
	require.Equal("", v)
}

func TestEither(t *testing.T) {
	require := require.New(t)

	require.Equal(any(7), Ok(7).Either())
	require.Equal(any(ErrTest), Err[int](ErrTest).Either())
}

func TestUnwrapOr(t *testing.T) {
	require := require.New(t)

	require.Equal(1, Ok(1).UnwrapOr(9))
	require.Equal(9, Err[int](ErrTest).UnwrapOr(9))
}

func TestTap(t *testing.T) {
	require := require.New(t)

	calls := 0
	r := Ok(3)
	out := r.Tap(func(v int) {
		calls++
		require.Equal(3, v)
	})
	require.Equal(1, calls)
	require.Equal(r, out)

	calls = 0
	e := Err[int](ErrTest)
	out = e.Tap(func(int) { calls++ })
	require.Equal(0, calls)
	require.Equal(e, out)
}

func TestTapErr(t *testing.T) {
	require := require.New(t)

	calls := 0
	e := Err[int](ErrTest)
	out := e.TapErr(func(err error) {
		calls++
		require.ErrorIs(err, ErrTest)
	})
	require.Equal(1, calls)
	require.Equal(e, out)

	calls = 0
	r := Ok(3)
	out = r.TapErr(func(error) { calls++ })
	require.Equal(0, calls)
	require.Equal(r, out)
}

func TestTapPanicPropagates(t *testing.T) {
	require := require.New(t)

	require.PanicsWithValue("boom", func() {
		Ok(1).Tap(func(int) { panic("boom") })
	})
	require.PanicsWithValue("boom", func() {
		Err[int](ErrTest).TapErr(func(error) { panic("boom") })
	})
}

func TestMap(t *testing.T) {
	require := require.New(t)

	r := Map(Ok(21), func(v int) string { return strconv.Itoa(v * 2) })
	require.True(r.IsOk())
	require.Equal("42", r.Unwrap())

	calls := 0
	r = Map(Err[int](ErrTest), func(v int) string {
		calls++
		return ""
	})
	require.Equal(0, calls)
	require.True(r.IsErr())
	require.ErrorIs(r.UnwrapErr(), ErrTest)
}

func TestMapCatchesPanic(t *testing.T) {
	require := require.New(t)

	r := Map(Ok(1), func(int) int { panic("mapper blew up") })
	require.True(r.IsErr())

	var pe *PanicError
	require.ErrorAs(r.UnwrapErr(), &pe)
	require.Equal("mapper blew up", pe.Value)
}

func TestMapErr(t *testing.T) {
	require := require.New(t)

	wrapped := errors.New("wrapped")
	r := MapErr(Err[int](ErrTest), func(err error) error {
		require.ErrorIs(err, ErrTest)
		return wrapped
	})
	require.True(r.IsErr())
	require.ErrorIs(r.UnwrapErr(), wrapped)

	calls := 0
	r = MapErr(Ok(5), func(error) error {
		calls++
		return nil
	})
	require.Equal(0, calls)
	require.True(r.IsOk())
	require.Equal(5, r.Unwrap())
}

func TestMapErrPanicBecomesPayload(t *testing.T) {
	require := require.New(t)

	r := MapErr(Err[int](ErrTest), func(error) error { panic("handler blew up") })
	require.True(r.IsErr())

	var pe *PanicError
	require.ErrorAs(r.UnwrapErr(), &pe)
	require.Equal("handler blew up", pe.Value)
	// the original error is replaced, not kept
	require.NotErrorIs(r.UnwrapErr(), ErrTest)
}

func TestFlatMap(t *testing.T) {
	require := require.New(t)

	r := FlatMap(Ok(2), func(v int) Result[string] {
		return Ok(strconv.Itoa(v))
	})
	require.True(r.IsOk())
	require.Equal("2", r.Unwrap())

	// the chained function's failure comes back exactly, no re-wrapping
	r = FlatMap(Ok(2), func(int) Result[string] {
		return Err[string](ErrTest)
	})
	require.True(r.IsErr())
	require.ErrorIs(r.UnwrapErr(), ErrTest)

	calls := 0
	r = FlatMap(Err[int](ErrTest), func(int) Result[string] {
		calls++
		return Ok("")
	})
	require.Equal(0, calls)
	require.ErrorIs(r.UnwrapErr(), ErrTest)
}

func TestFlatMapPanicPropagates(t *testing.T) {
	require := require.New(t)

	require.PanicsWithValue("boom", func() {
		FlatMap(Ok(1), func(int) Result[int] { panic("boom") })
	})
}

func TestTry(t *testing.T) {
	require := require.New(t)

	r := Try(func() (int, error) { return 7, nil })
	require.True(r.IsOk())
	require.Equal(7, r.Unwrap())

	r = Try(func() (int, error) { return 0, ErrTest })
	require.True(r.IsErr())
	require.ErrorIs(r.UnwrapErr(), ErrTest)
}

func TestTryCatchesPanic(t *testing.T) {
	require := require.New(t)

	r := Try(func() (int, error) { panic(ErrTest) })
	require.True(r.IsErr())
	require.ErrorIs(r.UnwrapErr(), ErrTest)

	var pe *PanicError
	require.ErrorAs(r.UnwrapErr(), &pe)
	require.Equal(any(ErrTest), pe.Value)
}

func TestResultsAreImmutable(t *testing.T) {
	require := require.New(t)

	r := Ok(10)
	_ = Map(r, func(v int) int { return v + 1 })
	_ = r.Tap(func(int) {})
	require.Equal(10, r.Unwrap())
	require.True(r.IsOk())
}
