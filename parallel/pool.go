// Package parallel runs jobs on a fixed number of goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

type (
	// WorkerFunc queues a job. It returns false when the pool was
	// cancelled and the job was dropped. A queued job may still be
	// dropped unrun if the pool is cancelled before a worker takes it.
	WorkerFunc func(func()) bool
	// WaitFunc blocks until queued jobs are done. With done set no more
	// jobs may be queued afterwards.
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start creates a pool of numWorkers goroutines, GOMAXPROCS when below 1.
// A single worker runs jobs inline on the caller. Jobs not yet started are
// dropped once ctx is done.
func Start(ctx context.Context, numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do: func(f func()) bool {
			if ctx.Err() != nil {
				return false
			}
			f()
			return true
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					if ctx.Err() == nil {
						f()
					}
				}
			})
		}

		pool.Do = func(f func()) bool {
			// select picks at random when both cases are ready
			if ctx.Err() != nil {
				return false
			}
			select {
			case <-ctx.Done():
				return false
			case workChan <- f:
				return true
			}
		}

		pool.Wait = func(done bool) {
			if done {
				pool.Cancel()
			}
			pool.wg.Wait()
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}
