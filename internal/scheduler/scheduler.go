// Package scheduler drives recurring digest cycles: one immediate run
// at startup, then a fixed-interval ticker. Stopping halts future ticks
// without interrupting an in-flight cycle.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Scheduler struct {
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

func New(interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{interval: interval, logger: logger}
}

// Start launches the loop. The job receives the passed ctx, which is
// deliberately not tied to Stop: Stop only prevents future ticks.
func (s *Scheduler) Start(ctx context.Context, job func(context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	// The loop must select on a local copy: Stop nils the field under
	// the mutex and a nil channel would block the select forever.
	stop := s.stop

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// Run once at startup before the first tick.
		job(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				job(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	s.logger.Info("scheduler started", "interval", s.interval)
}

// Stop cancels future ticks and waits for the loop goroutine to exit.
// A cycle that is already running completes normally.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stop == nil {
		s.mu.Unlock()
		return
	}
	close(s.stop)
	s.stop = nil
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}
