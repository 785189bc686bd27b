package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDomains_MissingFileUsesDefaults(t *testing.T) {
	domains, err := LoadDomains(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(domains) != 3 {
		t.Fatalf("expected 3 default domains, got %d", len(domains))
	}

	names := map[string]bool{}
	for _, d := range domains {
		names[d.Name] = true
		if d.FinalCount != 5 {
			t.Errorf("domain %s: expected default final count 5, got %d", d.Name, d.FinalCount)
		}
		if d.MaxWorkers != 5 {
			t.Errorf("domain %s: expected default worker pool 5, got %d", d.Name, d.MaxWorkers)
		}
	}
	for _, want := range []string{"finance", "sports", "technology"} {
		if !names[want] {
			t.Errorf("missing default domain %q", want)
		}
	}
}

func TestLoadDomains_OnlyFinanceHasStockSymbol(t *testing.T) {
	for _, d := range DefaultDomains() {
		hasSymbol := d.StockSymbol != ""
		if (d.Name == "finance") != hasSymbol {
			t.Errorf("domain %s: unexpected stock symbol %q", d.Name, d.StockSymbol)
		}
	}
}

func TestLoadDomains_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domains.yaml")
	content := `domains:
  - name: movies
    title: "🎬 Movies"
    params:
      genre: horror
    primary: "horror movies"
    feeds:
      - https://example.com/movies.xml
    query_prompt: "Generate search queries about {genre}. Return ONLY a JSON array."
    summary_prompt: "Summarize: {articles}"
    final_count: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	domains, err := LoadDomains(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(domains) != 1 {
		t.Fatalf("expected 1 domain, got %d", len(domains))
	}

	d := domains[0]
	if d.Name != "movies" || d.FinalCount != 3 {
		t.Errorf("unexpected domain: %+v", d)
	}
	// Unset bounds get defaults.
	if d.MaxPerQuery != 10 || d.MaxWorkers != 5 {
		t.Errorf("defaults not applied: %+v", d)
	}
	if d.SummaryFallback != "Summary unavailable" {
		t.Errorf("expected default summary fallback, got %q", d.SummaryFallback)
	}
}

func TestRenderPrompt(t *testing.T) {
	d := Domain{Params: map[string]string{"team": "Australia", "sport": "Cricket"}}

	got := d.renderPrompt("About {team} playing {sport}: {title}", map[string]string{"title": "Ashes"})

	if got != "About Australia playing Cricket: Ashes" {
		t.Errorf("unexpected render: %q", got)
	}
}

func TestFallbackQuery(t *testing.T) {
	d := Domain{Primary: "Infosys stock"}
	if got := d.fallbackQuery(); got != "Infosys stock news" {
		t.Errorf("unexpected fallback query: %q", got)
	}
}
