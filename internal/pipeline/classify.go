package pipeline

import (
	"context"
	"strings"
	"sync"

	"github.com/bal2005/news-summarizer-agent/internal/article"
	"github.com/bal2005/news-summarizer-agent/internal/metrics"
)

// classify runs the relevance predicate over the full ranked list with a
// bounded worker pool and keeps only positives, preserving rank order.
// Verdicts land in a slice indexed by rank position, so completion order
// can never reorder the result. All candidates are classified; there is
// no early exit once enough positives exist.
func (p *Pipeline) classify(ctx context.Context, d Domain, ranked []article.Article) []article.Article {
	log := p.logger.With("domain", d.Name)
	if len(ranked) == 0 {
		return ranked
	}

	verdicts := make([]bool, len(ranked))
	sem := make(chan struct{}, d.MaxWorkers)
	var wg sync.WaitGroup

	for i := range ranked {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			verdicts[i] = p.classifyOne(ctx, d, ranked[i])
		}(i)
	}
	wg.Wait()

	relevant := make([]article.Article, 0, len(ranked))
	for i, keep := range verdicts {
		if keep {
			relevant = append(relevant, ranked[i])
		}
	}
	log.Info("classification finished", "candidates", len(ranked), "relevant", len(relevant))
	metrics.Global.AddArticlesClassified(len(ranked))
	return relevant
}

// classifyOne is fail-closed: a call failure or anything other than a
// response starting with YES counts as not relevant.
func (p *Pipeline) classifyOne(ctx context.Context, d Domain, a article.Article) bool {
	prompt := d.renderPrompt(d.ClassifyPrompt, map[string]string{
		"title":   a.Title,
		"content": a.Summary,
	})

	response, err := p.model.Invoke(ctx, prompt)
	if err != nil {
		p.logger.Warn("classification call failed", "domain", d.Name, "title", a.Title, "error", err)
		return false
	}

	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(response)), "YES")
}
