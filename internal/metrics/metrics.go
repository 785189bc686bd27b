package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	CyclesRun          int64
	ArticlesFetched    int64
	ArticlesClassified int64
	DigestsBuilt       int64
	EmptyDomainRuns    int64
	EmailsSent         int64

	// Timings
	LastCycleDuration    time.Duration
	AverageCycleDuration time.Duration
	TotalCycleDuration   time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddArticlesFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesFetched += int64(n)
}

func (m *Metrics) AddArticlesClassified(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesClassified += int64(n)
}

func (m *Metrics) IncrementDigestsBuilt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestsBuilt++
}

func (m *Metrics) IncrementEmptyDomainRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmptyDomainRuns++
}

func (m *Metrics) IncrementEmailsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmailsSent++
}

func (m *Metrics) RecordCycle(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CyclesRun++
	m.LastCycleDuration = duration
	m.TotalCycleDuration += duration
	m.AverageCycleDuration = m.TotalCycleDuration / time.Duration(m.CyclesRun)
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"cycles_run":                m.CyclesRun,
		"articles_fetched":          m.ArticlesFetched,
		"articles_classified":       m.ArticlesClassified,
		"digests_built":             m.DigestsBuilt,
		"empty_domain_runs":         m.EmptyDomainRuns,
		"emails_sent":               m.EmailsSent,
		"last_cycle_duration_ms":    m.LastCycleDuration.Milliseconds(),
		"average_cycle_duration_ms": m.AverageCycleDuration.Milliseconds(),
		"last_run_time":             m.LastRunTime.Format(time.RFC3339),
		"last_error_time":           m.LastErrorTime.Format(time.RFC3339),
		"last_error":                m.LastError,
		"is_healthy":                m.IsHealthy,
	}
}
