// Package pending carries submitted work between a frontend and its worker:
// each task travels with the context it was submitted under and the future
// its result will settle.
package pending

import (
	"context"
	"errors"
	"log"

	"github.com/allynet/ishod/futures"
	"github.com/allynet/ishod/results"
)

var (
	ErrQueueFull = errors.New("task queue is full")
)

// Task pairs a unit of work with the future that will settle its result.
// The future always settles with a results.Result; outright rejection is
// reserved for queue-level failures (full queue, canceled submit, closed
// frontend) that prevent the task from producing a result at all.
type Task[T any, R any] struct {
	Ctx    context.Context
	Task   T
	Future *futures.Future[results.Result[R]]
}

func NewTask[T any, R any](ctx context.Context, task T) Task[T, R] {
	return Task[T, R]{
		Ctx:    ctx,
		Task:   task,
		Future: futures.New[results.Result[R]](),
	}
}

type FullQueueStrategy int

const (
	BlockWhenFull FullQueueStrategy = iota
	ErrorWhenFull
)

// SubmitFunction places a task on the queue according to a full-queue
// strategy.
type SubmitFunction[T any, R any] func(taskChan chan<- Task[T, R], t Task[T, R]) error

func GetSubmitFunction[T any, R any](s FullQueueStrategy) SubmitFunction[T, R] {
	switch s {
	case BlockWhenFull:
		return blockWhenFullStrategy[T, R]
	case ErrorWhenFull:
		return errorWhenFullStrategy[T, R]
	default:
		log.Panicf("invalid submit strategy value %d", s)
	}
	return blockWhenFullStrategy[T, R]
}

func blockWhenFullStrategy[T any, R any](taskChan chan<- Task[T, R], t Task[T, R]) error {
	select {
	case taskChan <- t:
		return nil
	case <-t.Ctx.Done():
		return context.Canceled
	}
}

func errorWhenFullStrategy[T any, R any](taskChan chan<- Task[T, R], t Task[T, R]) error {
	select {
	case taskChan <- t:
		return nil
	default:
		return ErrQueueFull
	}
}
