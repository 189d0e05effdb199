package ratelimiter

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/allynet/ishod/internal/pending"
	"github.com/allynet/ishod/internal/shutdown"
)

var (
	ErrQueueFull = pending.ErrQueueFull
	ErrClosed    = shutdown.ErrClosed
)

// FullQueueStrategy is the behavior that occurs when too many tasks are
// submitted to the rate limiter.
type FullQueueStrategy pending.FullQueueStrategy

const (
	// BlockWhenFull exerts back pressure by blocking the caller when too many tasks have been submitted.
	BlockWhenFull FullQueueStrategy = FullQueueStrategy(pending.BlockWhenFull)
	// ErrorWhenFull immediately rejects the task when too many tasks have been submitted.
	ErrorWhenFull FullQueueStrategy = FullQueueStrategy(pending.ErrorWhenFull)
)

// A rate limit expressed as N tasks per second
type Limit = rate.Limit

// Every converts the provided duration into a number of tasks per second,
// for instance Every(100 * time.Millisecond) will yield 10 tasks per second.
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts is used to configure a RateLimiter via the New function.
type Opts struct {
	// Limit is the rate limit expressed in tasks per second.
	Limit Limit
	// Burst is the size of the token bucket.
	Burst int
	// MaxQueueDepth controls the number of outstanding tasks that can be submitted to the rate limiter.
	MaxQueueDepth int
	// FullQueueStrategy determines the rate limiter's behavior when MaxQueueDepth is exceeded.
	// By default the rate limiter will block the caller.
	FullQueueStrategy FullQueueStrategy
}

func (o Opts) validate() {
	if o.Limit < 0 {
		panic("rate limiter limit must be 0 or greater")
	}

	if o.Burst < 1 {
		panic("rate limiter burst must be 1 or greater")
	}

	if o.MaxQueueDepth < 0 {
		panic("rate limiter max queue depth must be 0 or greater")
	}
}
