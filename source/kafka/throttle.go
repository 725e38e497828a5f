package kafka

import (
	"context"
	"sync"
	"time"
)

// Throttle is a byte-budget token bucket. Acquire blocks until the budget
// covers the requested size, so a slow downstream translates into slower
// consumption instead of unbounded buffering.
type Throttle struct {
	burst  int64
	refill int64

	mu     sync.Mutex
	budget int64
	cond   *sync.Cond
	closed bool
}

func NewThrottle(burst, refill int64, tick time.Duration) *Throttle {
	t := &Throttle{
		burst:  burst,
		refill: refill,
		budget: burst,
	}
	t.cond = sync.NewCond(&t.mu)

	go func() {
		tk := time.NewTicker(tick)
		for range tk.C {
			t.mu.Lock()
			if t.closed {
				t.mu.Unlock()
				tk.Stop()
				return
			}
			t.budget += t.refill
			if t.budget > t.burst {
				t.budget = t.burst
			}
			t.mu.Unlock()
			t.cond.Broadcast()
		}
	}()
	return t
}

// Acquire consumes n bytes of budget, waiting for refills as needed. Requests
// larger than the burst are clamped so they can ever be satisfied.
func (t *Throttle) Acquire(ctx context.Context, n int64) error {
	if n > t.burst {
		n = t.burst
	}
	t.mu.Lock()
	for t.budget < n && ctx.Err() == nil && !t.closed {
		t.cond.Wait()
	}
	if err := ctx.Err(); err != nil {
		t.mu.Unlock()
		return err
	}
	t.budget -= n
	t.mu.Unlock()
	return nil
}

func (t *Throttle) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.cond.Broadcast()
}
