package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/bal2005/news-summarizer-agent/internal/article"
)

// summarize turns the final selection into the domain's bullet digest
// via one model call. On failure it returns the domain's configured
// fallback text instead of propagating an error.
func (p *Pipeline) summarize(ctx context.Context, d Domain, final []article.Article) string {
	var b strings.Builder
	for i, a := range final {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a.Title)
	}

	prompt := d.renderPrompt(d.SummaryPrompt, map[string]string{
		"articles": b.String(),
	})

	response, err := p.model.Invoke(ctx, prompt)
	if err != nil {
		p.logger.Error("summarization failed", "domain", d.Name, "error", err)
		return d.SummaryFallback
	}
	return strings.TrimSpace(response)
}
