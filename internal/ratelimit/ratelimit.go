// Package ratelimit bounds how many language-model requests one digest
// cycle may issue. Exhausting the budget is reported as an error by the
// model client, so every caller degrades along its normal fallback path.
package ratelimit

import (
	"fmt"
	"sync"
)

// Limiter counts requests against a per-cycle budget. A max of 0 means
// unlimited. Safe for concurrent use by classifier workers.
type Limiter struct {
	mu    sync.Mutex
	max   int
	count int
}

func NewLimiter(max int) *Limiter {
	return &Limiter{max: max}
}

// Allow consumes one slot of the budget.
func (l *Limiter) Allow() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.count >= l.max {
		return fmt.Errorf("model request budget exhausted (%d/%d)", l.count, l.max)
	}
	l.count++
	return nil
}

// Reset clears the counter at the start of a new digest cycle.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count = 0
}

// Used returns how many requests the current cycle has consumed.
func (l *Limiter) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
