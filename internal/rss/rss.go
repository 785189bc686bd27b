package rss

import (
	"context"
	"log/slog"

	"github.com/mmcdole/gofeed"

	"github.com/bal2005/news-summarizer-agent/internal/article"
)

// Reader fetches and parses RSS feeds. Feed failures are logged and
// skipped, never propagated: a broken feed must not abort a pipeline run.
type Reader struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

func NewReader(logger *slog.Logger) *Reader {
	return &Reader{
		parser: gofeed.NewParser(),
		logger: logger,
	}
}

// Fetch downloads every feed independently and returns the raw entries.
// Each feed's entries are truncated to maxPerFeed before concatenation
// (the cap is per feed, unlike the search API's global cap).
func (r *Reader) Fetch(ctx context.Context, urls []string, maxPerFeed int) []article.Raw {
	var records []article.Raw
	successCount := 0

	for _, url := range urls {
		feed, err := r.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			r.logger.Warn("RSS feed failed", "url", url, "error", err)
			continue
		}

		items := feed.Items
		if maxPerFeed > 0 && len(items) > maxPerFeed {
			items = items[:maxPerFeed]
		}
		for _, item := range items {
			records = append(records, article.Raw{
				Title:     item.Title,
				Summary:   item.Description,
				Link:      item.Link,
				Published: item.Published,
			})
		}

		successCount++
		r.logger.Debug("RSS feed loaded", "url", url, "items", len(items))
	}

	r.logger.Info("RSS feeds processed", "ok", successCount, "total", len(urls), "records", len(records))
	return records
}
