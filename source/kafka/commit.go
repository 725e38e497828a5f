package kafka

import (
	"sync/atomic"
	"time"
)

// commitPolicy decides when a consumer session should flush marked offsets,
// spacing commits by a fixed interval.
type commitPolicy struct {
	everyNS int64
	lastNS  int64
}

func newCommitPolicy(every time.Duration) *commitPolicy {
	return &commitPolicy{everyNS: every.Nanoseconds()}
}

// due reports whether a commit should happen now, at most once per interval.
func (p *commitPolicy) due() bool {
	if p.everyNS <= 0 {
		return false
	}
	now := time.Now().UnixNano()
	last := atomic.LoadInt64(&p.lastNS)
	if last+p.everyNS > now {
		return false
	}
	return atomic.CompareAndSwapInt64(&p.lastNS, last, now)
}
