package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/bal2005/news-summarizer-agent/internal/article"
	"github.com/bal2005/news-summarizer-agent/internal/pipeline"
)

func TestRender_SkipsEmptyDigests(t *testing.T) {
	a := NewAssembler("📰 Daily News Digest")

	body, ok, err := a.Render(time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC), []pipeline.Digest{
		{Title: "💰 Finance News"}, // empty, no articles
		{
			Title:   "🏏 Sports News",
			Summary: "1. Australia won.",
			Articles: []article.Article{
				{Title: "Australia won the Ashes", URL: "https://e.com/ashes"},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a renderable body")
	}
	if strings.Contains(body, "💰 Finance News") {
		t.Error("empty digest leaked into the body")
	}
	if !strings.Contains(body, "🏏 Sports News") {
		t.Error("populated digest missing from the body")
	}
	if !strings.Contains(body, `href="https://e.com/ashes"`) {
		t.Error("article link missing from the body")
	}
}

func TestRender_AllEmptyMeansNoEmail(t *testing.T) {
	a := NewAssembler("📰 Daily News Digest")

	body, ok, err := a.Render(time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC), []pipeline.Digest{
		{Title: "💰 Finance News"},
		{Title: "💻 Technology"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || body != "" {
		t.Errorf("all-empty cycle must not produce a body, got ok=%v body=%q", ok, body)
	}
}

func TestRender_IncludesStockInfoWhenPresent(t *testing.T) {
	a := NewAssembler("📰 Daily News Digest")

	body, ok, err := a.Render(time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC), []pipeline.Digest{
		{
			Title:     "💰 Finance News",
			StockInfo: "INFY.NS: 1520.50",
			Summary:   "1. Markets rallied.",
			Articles:  []article.Article{{Title: "Markets", URL: "https://e.com/m"}},
		},
	})
	if err != nil || !ok {
		t.Fatalf("render failed: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(body, "INFY.NS: 1520.50") {
		t.Error("stock line missing from the body")
	}
}

func TestRender_DatesBodyAtGivenTime(t *testing.T) {
	a := NewAssembler("📰 Daily News Digest")

	body, ok, err := a.Render(time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC), []pipeline.Digest{
		{
			Title:    "💻 Technology",
			Summary:  "1. Chips.",
			Articles: []article.Article{{Title: "Chips", URL: "https://e.com/c"}},
		},
	})
	if err != nil || !ok {
		t.Fatalf("render failed: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(body, "Thursday, 07 March 2024") {
		t.Error("body date must come from the injected time")
	}
}

func TestSubject(t *testing.T) {
	a := NewAssembler("📰 Daily News Digest")

	got := a.Subject(time.Date(2024, time.March, 7, 9, 0, 0, 0, time.UTC))

	if got != "📰 Daily News Digest — 07 Mar 2024" {
		t.Errorf("unexpected subject: %q", got)
	}
}
