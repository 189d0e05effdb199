package futures

import (
	"context"

	"github.com/allynet/ishod/results"
)

// AwaitAll waits for every provided Awaitable to settle and returns a
// results.Result for each at the corresponding index.  A rejection does not
// stop the wait; it becomes a failure Result for that slot.  If the provided
// context is canceled AwaitAll returns the context error.
func AwaitAll[T any](ctx context.Context, aws []Awaitable[T]) ([]results.Result[T], error) {
	res := make([]results.Result[T], 0, len(aws))

	for _, aw := range aws {
		v, err := aw.Await(ctx)
		res = append(res, results.New(v, err))
		// check for the context error at the end of the loop to avoid the race
		// of canceling while awaiting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}
