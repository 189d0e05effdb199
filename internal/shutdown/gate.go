// Package shutdown provides a Gate that lets concurrent operations race
// safely against a one-time close.
package shutdown

import (
	"errors"
	"runtime"
	"sync/atomic"
)

const (
	open     = 0
	closed   = 1
	minusOne = ^uint32(0)
)

var (
	ErrClosed = errors.New("closed")
)

// Gate admits operations through Enter until Close is called.  Close waits
// for every admitted operation to finish before running its shutdown
// function, exactly once, no matter how many goroutines call it.
type Gate struct {
	isClosed  uint32
	activeCnt uint32

	closed chan struct{}
}

func NewGate() *Gate {
	return &Gate{
		closed: make(chan struct{}),
	}
}

// Enter runs f if the gate is still open, or returns ErrClosed without
// running it.  f must not block indefinitely; Close waits for it.
func (g *Gate) Enter(f func()) error {
	atomic.AddUint32(&g.activeCnt, 1)
	defer atomic.AddUint32(&g.activeCnt, minusOne)

	if atomic.LoadUint32(&g.isClosed) == closed {
		return ErrClosed
	}

	f()
	return nil
}

// Close shuts the gate and runs f once all in-flight Enter calls have
// drained.  Every caller of Close blocks until f has run; later calls are
// no-ops that still wait.
func (g *Gate) Close(f func()) {
	if atomic.CompareAndSwapUint32(&g.isClosed, open, closed) {
		go func() {
			for atomic.LoadUint32(&g.activeCnt) != 0 {
				// busy wait while yielding until all calls to Enter have exited
				runtime.Gosched()
			}

			f()

			close(g.closed)
		}()
	}

	<-g.closed
}
