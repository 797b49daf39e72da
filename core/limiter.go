package core

import (
	"errors"
	"fmt"
	"sync"
)

// ErrCallLimitExceeded is returned by CallLimiter once the budget is spent.
var ErrCallLimitExceeded = errors.New("call limit exceeded")

// CallLimiter enforces a maximum number of external calls (e.g. judge model
// requests) across a run. It is safe for concurrent use.
type CallLimiter struct {
	max   int
	count int
	mu    sync.Mutex
}

// NewCallLimiter creates a new limiter with a max number of calls.
// If max == 0, unlimited calls are allowed.
func NewCallLimiter(max int) *CallLimiter {
	return &CallLimiter{max: max}
}

// Acquire reserves one call. It fails with ErrCallLimitExceeded when the
// budget is exhausted; the failed attempt is not counted.
func (l *CallLimiter) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.count >= l.max {
		return fmt.Errorf("%w: max %d", ErrCallLimitExceeded, l.max)
	}

	l.count++

	return nil
}

// Count returns the current number of calls made.
func (l *CallLimiter) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.count
}

// Remaining returns how many calls are left before hitting the limit.
func (l *CallLimiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max == 0 {
		return -1 // unlimited
	}

	return l.max - l.count
}
