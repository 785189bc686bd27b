// Package pipeline runs the per-domain aggregation-and-selection flow:
// query generation, multi-source fetch, deduplication, recency ranking,
// optional relevance classification, bounded selection, summarization.
package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bal2005/news-summarizer-agent/internal/article"
	"github.com/bal2005/news-summarizer-agent/internal/metrics"
)

// LanguageModel is the black-box text generation service: prompt in,
// free-text response out.
type LanguageModel interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

// Searcher issues one search-API call. May fail or return empty.
type Searcher interface {
	Search(ctx context.Context, query, language string, pageSize int) ([]article.Raw, error)
}

// FeedReader fetches RSS entries; it never fails, a broken feed just
// contributes nothing.
type FeedReader interface {
	Fetch(ctx context.Context, urls []string, maxPerFeed int) []article.Raw
}

// StockLookup resolves a price display string; never fails.
type StockLookup interface {
	Lookup(ctx context.Context, symbol string) string
}

// SeenFilter reports articles already delivered in a previous cycle.
// Optional: a nil filter keeps everything.
type SeenFilter interface {
	Seen(url string) bool
}

// Digest is the per-domain result. The zero value means "no digest for
// this domain this cycle".
type Digest struct {
	Title     string
	StockInfo string
	Summary   string
	Articles  []article.Article
}

func (d Digest) Empty() bool {
	return len(d.Articles) == 0
}

// Deps wires the collaborators into the pipeline. Model and Search are
// required; Feeds is required (the RSS fetch is mandatory); Stocks and
// Seen are optional.
type Deps struct {
	Model  LanguageModel
	Search Searcher
	Feeds  FeedReader
	Stocks StockLookup
	Seen   SeenFilter
	Logger *slog.Logger
}

type Pipeline struct {
	model  LanguageModel
	search Searcher
	feeds  FeedReader
	stocks StockLookup
	seen   SeenFilter
	logger *slog.Logger
}

func New(deps Deps) *Pipeline {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		model:  deps.Model,
		search: deps.Search,
		feeds:  deps.Feeds,
		stocks: deps.Stocks,
		seen:   deps.Seen,
		logger: logger,
	}
}

// Run executes one end-to-end pass for a domain. Every stage is
// fail-soft: the worst outcome of any collaborator failure is an empty
// digest, never an error.
func (p *Pipeline) Run(ctx context.Context, d Domain) Digest {
	log := p.logger.With("domain", d.Name)
	log.Info("domain pipeline started")

	queries := p.generateQueries(ctx, d)

	// The two fetches are independent; run them concurrently and join
	// before deduplication. RSS is mandatory and unconditional.
	var (
		wg         sync.WaitGroup
		fromSearch []article.Article
		fromFeeds  []article.Article
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		fromSearch = p.fetchSearch(ctx, d, queries)
	}()
	go func() {
		defer wg.Done()
		fromFeeds = p.fetchFeeds(ctx, d)
	}()
	wg.Wait()

	// Search results first: on URL collisions the later record wins, so
	// listing search before RSS lets RSS metadata survive.
	merged := p.merge(log, fromSearch, fromFeeds)
	deduped := article.Deduplicate(merged)
	ranked := article.SortByRecency(deduped)

	if d.ClassifyPrompt != "" {
		ranked = p.classify(ctx, d, ranked)
	}

	final := ranked
	if len(final) > d.FinalCount {
		final = final[:d.FinalCount]
	}
	log.Info("final articles selected", "count", len(final))

	if len(final) == 0 {
		log.Warn("no articles for domain this cycle")
		metrics.Global.IncrementEmptyDomainRuns()
		return Digest{}
	}
	metrics.Global.IncrementDigestsBuilt()

	digest := Digest{
		Title:    d.Title,
		Summary:  p.summarize(ctx, d, final),
		Articles: final,
	}
	if d.StockSymbol != "" && p.stocks != nil {
		digest.StockInfo = p.stocks.Lookup(ctx, d.StockSymbol)
	}
	return digest
}

// fetchSearch issues one call per query and concatenates the normalized
// results, then applies the domain's global cap. Per-query failures are
// logged and treated as empty.
func (p *Pipeline) fetchSearch(ctx context.Context, d Domain, queries []string) []article.Article {
	log := p.logger.With("domain", d.Name)

	var records []article.Article
	for _, q := range queries {
		raw, err := p.search.Search(ctx, q, d.Language, d.MaxPerQuery)
		if err != nil {
			log.Warn("search API query failed", "query", q, "error", err)
			continue
		}
		for _, r := range raw {
			records = append(records, article.Normalize(r, article.SourceSearchAPI))
		}
	}

	// Cap the concatenation, not each query.
	if len(records) > d.MaxSearchTotal {
		records = records[:d.MaxSearchTotal]
	}
	log.Info("search API articles fetched", "count", len(records))
	metrics.Global.AddArticlesFetched(len(records))
	return records
}

func (p *Pipeline) fetchFeeds(ctx context.Context, d Domain) []article.Article {
	raw := p.feeds.Fetch(ctx, d.FeedURLs, d.MaxPerFeed)

	records := make([]article.Article, 0, len(raw))
	for _, r := range raw {
		records = append(records, article.Normalize(r, article.SourceRSS))
	}
	metrics.Global.AddArticlesFetched(len(records))
	return records
}

// merge concatenates the sources in collision-priority order, dropping
// unusable records and (when a seen-filter is configured) articles
// already delivered in a previous cycle.
func (p *Pipeline) merge(log *slog.Logger, lists ...[]article.Article) []article.Article {
	var merged []article.Article
	skipped := 0
	for _, list := range lists {
		for _, a := range list {
			if !a.Usable() {
				continue
			}
			if p.seen != nil && a.URL != "" && p.seen.Seen(a.URL) {
				skipped++
				continue
			}
			merged = append(merged, a)
		}
	}
	if skipped > 0 {
		log.Info("already-sent articles skipped", "count", skipped)
	}
	return merged
}
