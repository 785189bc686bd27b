package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bal2005/news-summarizer-agent/internal/logger"
)

func TestScheduler_RunsImmediatelyOnStart(t *testing.T) {
	logger.Init(false)
	s := New(time.Hour, logger.With("scheduler"))
	defer s.Stop()

	ran := make(chan struct{})
	s.Start(context.Background(), func(context.Context) { close(ran) })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run immediately on start")
	}
}

func TestScheduler_TicksAtInterval(t *testing.T) {
	logger.Init(false)
	s := New(20*time.Millisecond, logger.With("scheduler"))
	defer s.Stop()

	var runs atomic.Int64
	s.Start(context.Background(), func(context.Context) { runs.Add(1) })

	deadline := time.After(2 * time.Second)
	for runs.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 runs, got %d", runs.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestScheduler_StopHaltsFutureTicks(t *testing.T) {
	logger.Init(false)
	s := New(20*time.Millisecond, logger.With("scheduler"))

	var runs atomic.Int64
	s.Start(context.Background(), func(context.Context) { runs.Add(1) })

	// Let the immediate run happen, then stop.
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	settled := runs.Load()
	time.Sleep(80 * time.Millisecond)
	if got := runs.Load(); got != settled {
		t.Errorf("job ran after Stop: %d -> %d", settled, got)
	}
}

func TestScheduler_StopWaitsForInFlightCycle(t *testing.T) {
	logger.Init(false)
	s := New(time.Hour, logger.With("scheduler"))

	var done atomic.Bool
	started := make(chan struct{})
	s.Start(context.Background(), func(context.Context) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		done.Store(true)
	})

	<-started
	s.Stop()

	if !done.Load() {
		t.Error("Stop returned before the in-flight cycle finished")
	}
}

func TestScheduler_StopDuringRunningJobReturns(t *testing.T) {
	logger.Init(false)
	s := New(time.Hour, logger.With("scheduler"))

	started := make(chan struct{})
	s.Start(context.Background(), func(context.Context) {
		close(started)
		time.Sleep(100 * time.Millisecond)
	})

	<-started
	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return after the running job finished")
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	logger.Init(false)
	s := New(time.Hour, logger.With("scheduler"))
	s.Start(context.Background(), func(context.Context) {})

	s.Stop()
	s.Stop()
}
