package kafka

import (
	"context"
	"testing"
	"time"
)

func TestApplyDefaults(t *testing.T) {
	c := Config{Throttle: ThrottleCfg{RateBytes: 1024}}
	applyDefaults(&c)
	if c.Throttle.Burst != 1024 {
		t.Fatalf("burst default: got %d", c.Throttle.Burst)
	}
	if c.Throttle.Tick == 0 {
		t.Fatal("tick default not applied")
	}
	if c.Commit.Interval != 5*time.Second {
		t.Fatalf("commit interval default: got %v", c.Commit.Interval)
	}
	if c.StartFrom != "newest" {
		t.Fatalf("start_from default: got %q", c.StartFrom)
	}
}

func TestThrottleAcquireWithinBurst(t *testing.T) {
	th := NewThrottle(1000, 100, 10*time.Millisecond)
	defer th.Close()

	if err := th.Acquire(context.Background(), 600); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	// larger than burst is clamped, so it cannot deadlock
	if err := th.Acquire(context.Background(), 5000); err != nil {
		t.Fatalf("clamped acquire: %v", err)
	}
}

func TestThrottleAcquireCancel(t *testing.T) {
	th := NewThrottle(10, 0, time.Hour) // never refills
	defer th.Close()

	if err := th.Acquire(context.Background(), 10); err != nil {
		t.Fatalf("drain: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- th.Acquire(ctx, 5) }()
	cancel()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case err := <-done:
			if err == nil {
				t.Fatal("expected context error")
			}
			return
		case <-time.After(10 * time.Millisecond):
			// cancellation is observed on a wakeup
			th.cond.Broadcast()
		case <-deadline:
			t.Fatal("Acquire did not observe cancellation")
		}
	}
}

func TestCommitPolicySpacing(t *testing.T) {
	p := newCommitPolicy(time.Hour)
	if !p.due() {
		t.Fatal("first check should be due")
	}
	if p.due() {
		t.Fatal("second check within the interval should not be due")
	}
	if newCommitPolicy(0).due() {
		t.Fatal("zero interval never commits on cadence")
	}
}
