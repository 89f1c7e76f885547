package parallel

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestPoolRunsEveryJob(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		pool := Start(context.Background(), n)
		var count atomic.Int64
		for range 100 {
			if !pool.Do(func() { count.Add(1) }) {
				t.Fatalf("%d workers: job rejected", n)
			}
		}
		pool.Wait(true)
		if got := count.Load(); got != 100 {
			t.Errorf("%d workers: ran %d jobs, want 100", n, got)
		}
	}
}

func TestPoolSingleWorkerInline(t *testing.T) {
	pool := Start(context.Background(), 1)
	ran := false
	pool.Do(func() { ran = true })
	if !ran {
		t.Error("job did not run before Do returned")
	}
	pool.Wait(true)
}

func TestPoolCancelledContext(t *testing.T) {
	for _, n := range []int{1, 3} {
		ctx, cancel := context.WithCancel(context.Background())
		pool := Start(ctx, n)
		cancel()

		var count atomic.Int64
		for range 10 {
			pool.Do(func() { count.Add(1) })
		}
		pool.Wait(true)
		if got := count.Load(); got != 0 {
			t.Errorf("%d workers: ran %d jobs after cancel", n, got)
		}
	}
}

func TestPoolRejectsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := Start(ctx, 2)
	cancel()

	for i := range 200 {
		if pool.Do(func() {}) {
			t.Fatalf("job %d accepted after cancel", i)
		}
	}
	pool.Wait(true)
}
