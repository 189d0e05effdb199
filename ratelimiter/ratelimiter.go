// Package ratelimiter runs submitted tasks through a token-bucket rate limit
// and delivers each task's outcome as a result: the run function executes
// under guarded execution, so a task that panics settles as a failure result
// instead of killing the worker.
package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/allynet/ishod/internal/pending"
	"github.com/allynet/ishod/internal/shutdown"
	"github.com/allynet/ishod/outcomes"
	"github.com/allynet/ishod/results"
)

// RunFunction executes a single task and produces its result.  It may panic;
// the panic is converted into a failure result for that task only.
type RunFunction[T any, R any] func(ctx context.Context, task T) (R, error)

type RateLimiter[T any, R any] struct {
	limiter  *rate.Limiter
	taskChan chan (pending.Task[T, R])
	gate     *shutdown.Gate

	submit pending.SubmitFunction[T, R]
	run    RunFunction[T, R]
}

func New[T any, R any](opts Opts, run RunFunction[T, R]) *RateLimiter[T, R] {
	opts.validate()

	rl := &RateLimiter[T, R]{
		limiter:  rate.NewLimiter(opts.Limit, opts.Burst),
		taskChan: make(chan pending.Task[T, R], opts.MaxQueueDepth),
		gate:     shutdown.NewGate(),
		submit:   pending.GetSubmitFunction[T, R](pending.FullQueueStrategy(opts.FullQueueStrategy)),
		run:      run,
	}

	rl.startWorker()

	return rl
}

func (rl *RateLimiter[T, R]) startWorker() {
	go func() {
		for {
			pt, ok := <-rl.taskChan
			if !ok {
				return
			}

			if err := rl.limiter.Wait(pt.Ctx); err != nil {
				pt.Future.Reject(err)
				continue
			}

			rl.runTask(pt)
		}
	}()
}

func (rl *RateLimiter[T, R]) runTask(pt pending.Task[T, R]) {
	go func() {
		pt.Future.Resolve(results.Try(func() (R, error) {
			return rl.run(pt.Ctx, pt.Task)
		}))
	}()
}

// Submit runs the task through the rate limiter and blocks until its result
// is available or ctx is canceled.  Queue-level failures (full queue, closed
// limiter, canceled wait) come back as failure results here, since this is
// the caller-facing terminal.
func (rl *RateLimiter[T, R]) Submit(ctx context.Context, task T) results.Result[R] {
	r, err := rl.SubmitO(ctx, task).Await(ctx)
	if err != nil {
		return results.Err[R](err)
	}
	return r
}

// SubmitO enqueues the task and returns a deferred outcome that settles once
// the task has run.  Queue-level failures reject the outcome structurally;
// task-level failures, including panics in the run function, settle it with
// a failure result.
func (rl *RateLimiter[T, R]) SubmitO(ctx context.Context, task T) outcomes.Outcome[R] {
	pt := pending.NewTask[T, R](ctx, task)

	var submitErr error
	if err := rl.gate.Enter(func() {
		submitErr = rl.submit(rl.taskChan, pt)
	}); err != nil {
		pt.Future.Reject(ErrClosed)
		return outcomes.Defer[R](pt.Future)
	}

	if submitErr != nil {
		pt.Future.Reject(submitErr)
	}

	return outcomes.Defer[R](pt.Future)
}

// Close stops the rate limiter after draining in-flight submissions.  It is
// safe to call from multiple goroutines and more than once; submissions
// racing with or following Close reject with ErrClosed.
func (rl *RateLimiter[T, R]) Close() {
	rl.gate.Close(func() {
		close(rl.taskChan)
	})
}
