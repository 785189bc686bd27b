package pipeline

import (
	"context"

	"github.com/bal2005/news-summarizer-agent/internal/textutil"
)

// generateQueries builds the query prompt, issues one model call, and
// extracts the first JSON string array from the response. Any failure
// (call error, no array, malformed array) silently degrades to the
// domain's deterministic fallback query.
func (p *Pipeline) generateQueries(ctx context.Context, d Domain) []string {
	log := p.logger.With("domain", d.Name)

	response, err := p.model.Invoke(ctx, d.renderPrompt(d.QueryPrompt, nil))
	if err != nil {
		log.Warn("query generation failed, using fallback", "error", err)
		return []string{d.fallbackQuery()}
	}

	queries, err := textutil.ExtractStringArray(response)
	if err != nil {
		log.Warn("query response unparseable, using fallback", "error", err)
		return []string{d.fallbackQuery()}
	}

	log.Debug("queries generated", "count", len(queries))
	return queries
}
