// Package app wires configuration, collaborators, and the scheduler
// into a runnable digest service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bal2005/news-summarizer-agent/internal/config"
	"github.com/bal2005/news-summarizer-agent/internal/digest"
	"github.com/bal2005/news-summarizer-agent/internal/email"
	"github.com/bal2005/news-summarizer-agent/internal/gemini"
	"github.com/bal2005/news-summarizer-agent/internal/logger"
	"github.com/bal2005/news-summarizer-agent/internal/metrics"
	"github.com/bal2005/news-summarizer-agent/internal/newsapi"
	"github.com/bal2005/news-summarizer-agent/internal/pipeline"
	"github.com/bal2005/news-summarizer-agent/internal/rss"
	"github.com/bal2005/news-summarizer-agent/internal/scheduler"
	"github.com/bal2005/news-summarizer-agent/internal/stock"
	"github.com/bal2005/news-summarizer-agent/internal/storage"
)

type App struct {
	cfg       *config.Config
	domains   []pipeline.Domain
	model     *gemini.Client
	pipeline  *pipeline.Pipeline
	assembler *digest.Assembler
	sender    *email.Sender
	sentCache *storage.SentCache
	scheduler *scheduler.Scheduler
	logger    *slog.Logger
}

// New constructs the full application graph. Any error here is fatal:
// nothing should start half-wired.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.With("app")

	domains, err := pipeline.LoadDomains(cfg.DomainsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load domains: %w", err)
	}
	log.Info("domains configured", "count", len(domains))

	model, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxModelRequests)
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}

	sender, err := email.NewSender(
		cfg.EmailFrom, cfg.EmailPassword, cfg.EmailTo,
		cfg.SMTPHost, cfg.SMTPPort,
		cfg.RetryAttempts, cfg.RetryDelay,
		logger.With("email"),
	)
	if err != nil {
		return nil, fmt.Errorf("create email sender: %w", err)
	}

	sentCache := storage.NewSentCache(cfg.SentCachePath, cfg.SentCacheTTL)
	if err := sentCache.Load(); err != nil {
		// A corrupt cache only weakens duplicate filtering; keep going.
		log.Warn("sent cache load failed", "error", err)
	}

	deps := pipeline.Deps{
		Model:  model,
		Search: newsapi.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBase, cfg.RequestTimeout),
		Feeds:  rss.NewReader(logger.With("rss")),
		Stocks: stock.NewClient(cfg.StockAPIKey, cfg.StockAPIBase, cfg.RequestTimeout, logger.With("stock")),
		Logger: logger.With("pipeline"),
	}
	if cfg.SkipSentArticles {
		deps.Seen = sentCache
	}

	return &App{
		cfg:       cfg,
		domains:   domains,
		model:     model,
		pipeline:  pipeline.New(deps),
		assembler: digest.NewAssembler(cfg.SubjectPrefix),
		sender:    sender,
		sentCache: sentCache,
		scheduler: scheduler.New(cfg.DigestInterval, logger.With("scheduler")),
		logger:    log,
	}, nil
}

// Run starts the recurring digest cycles and blocks until ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.scheduler.Start(ctx, a.RunCycle)
	<-ctx.Done()
	a.scheduler.Stop()
	a.model.Close()
	return nil
}

// RunCycle executes one full digest cycle: every domain's pipeline runs
// independently, results merge into one email. A failed or empty domain
// never blocks the others.
func (a *App) RunCycle(ctx context.Context) {
	started := time.Now()
	a.logger.Info("digest cycle started")
	a.model.ResetBudget()

	results := make([]pipeline.Digest, len(a.domains))
	var wg sync.WaitGroup
	for i, d := range a.domains {
		wg.Add(1)
		go func(i int, d pipeline.Domain) {
			defer wg.Done()
			results[i] = a.pipeline.Run(ctx, d)
		}(i, d)
	}
	wg.Wait()

	now := time.Now()
	body, ok, err := a.assembler.Render(now, results)
	if err != nil {
		a.logger.Error("digest assembly failed", "error", err)
		metrics.Global.SetError(err.Error())
		return
	}
	if !ok {
		a.logger.Warn("no digests produced this cycle, skipping email")
		metrics.Global.RecordCycle(time.Since(started))
		return
	}

	if err := a.sender.Send(ctx, a.assembler.Subject(now), body); err != nil {
		a.logger.Error("digest delivery failed", "error", err)
		metrics.Global.SetError(err.Error())
		return
	}
	metrics.Global.IncrementEmailsSent()

	a.recordSent(results)

	metrics.Global.RecordCycle(time.Since(started))
	a.logger.Info("digest cycle finished",
		"duration", time.Since(started),
		"model_requests", a.model.RequestsUsed())
}

func (a *App) recordSent(results []pipeline.Digest) {
	for _, d := range results {
		if d.Empty() {
			continue
		}
		sent := make([]storage.SentArticle, 0, len(d.Articles))
		for _, art := range d.Articles {
			sent = append(sent, storage.SentArticle{URL: art.URL, Title: art.Title})
		}
		a.sentCache.Mark(d.Title, sent)
	}
	if err := a.sentCache.Save(); err != nil {
		a.logger.Warn("sent cache save failed", "error", err)
	}
}
