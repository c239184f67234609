package worker

import (
	"context"
	"sync"
)

// Group runs jobs concurrently and cancels its context when the first
// job fails. Wait returns the first error encountered.
type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	pool      Pool

	onceCloser *sync.Once
}

func NewGroup(ctx context.Context) (context.Context, Group) {
	ctx, ctxCancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:        ctx,
		ctxCancel:  ctxCancel,
		errChan:    make(chan error, 1),
		errResult:  nil,
		pool:       NewPool(MaxWorkersCountUnlimited),
		onceCloser: &sync.Once{},
	}
}

func (g *group) Do(job ErrorJob) {
	g.pool.Do(func() {
		err := job()
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			g.ctxCancel()
		default:
		}
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
