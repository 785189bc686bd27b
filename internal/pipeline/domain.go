package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Domain describes one topic vertical (finance, sports, technology).
// Values are created at startup and never mutated; the pipeline treats
// them as read-only.
type Domain struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"` // display title with emoji

	// Params fill {placeholder} slots in the prompt templates,
	// e.g. {"sector": "Technology", "stock": "Infosys"}.
	Params map[string]string `yaml:"params"`

	// Primary keyword(s) used for the deterministic fallback query.
	Primary string `yaml:"primary"`

	QueryPrompt     string `yaml:"query_prompt"`
	ClassifyPrompt  string `yaml:"classify_prompt"` // empty = no classification stage
	SummaryPrompt   string `yaml:"summary_prompt"`
	SummaryFallback string `yaml:"summary_fallback"`

	FeedURLs []string `yaml:"feeds"`
	Language string   `yaml:"language"`

	MaxPerQuery    int `yaml:"max_per_query"`    // search API page size per call
	MaxSearchTotal int `yaml:"max_search_total"` // global cap after concatenating all queries
	MaxPerFeed     int `yaml:"max_per_feed"`     // cap applied to each feed before concatenation
	MaxWorkers     int `yaml:"max_workers"`      // classification worker pool size
	FinalCount     int `yaml:"final_count"`

	// StockSymbol triggers the finance-only price lookup side value.
	StockSymbol string `yaml:"stock_symbol"`
}

type domainsFile struct {
	Domains []Domain `yaml:"domains"`
}

// LoadDomains reads domain definitions from a YAML file. When the file
// does not exist the compiled-in defaults are used, so the binary runs
// without any config on disk.
func LoadDomains(path string) ([]Domain, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDomains(), nil
		}
		return nil, fmt.Errorf("read domains config: %w", err)
	}

	var parsed domainsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse domains config: %w", err)
	}
	if len(parsed.Domains) == 0 {
		return DefaultDomains(), nil
	}

	for i := range parsed.Domains {
		parsed.Domains[i].applyDefaults()
	}
	return parsed.Domains, nil
}

func (d *Domain) applyDefaults() {
	if d.Language == "" {
		d.Language = "en"
	}
	if d.MaxPerQuery <= 0 {
		d.MaxPerQuery = 10
	}
	if d.MaxSearchTotal <= 0 {
		d.MaxSearchTotal = 10
	}
	if d.MaxPerFeed <= 0 {
		d.MaxPerFeed = 10
	}
	if d.MaxWorkers <= 0 {
		d.MaxWorkers = 5
	}
	if d.FinalCount <= 0 {
		d.FinalCount = 5
	}
	if d.SummaryFallback == "" {
		d.SummaryFallback = "Summary unavailable"
	}
}

// renderPrompt substitutes {key} placeholders from the domain params
// plus call-site extras (title, content, articles).
func (d Domain) renderPrompt(template string, extra map[string]string) string {
	pairs := make([]string, 0, 2*(len(d.Params)+len(extra)))
	for key, value := range d.Params {
		pairs = append(pairs, "{"+key+"}", value)
	}
	for key, value := range extra {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// fallbackQuery is the deterministic query used when the model produces
// nothing usable: primary keyword(s) plus a fixed suffix.
func (d Domain) fallbackQuery() string {
	return d.Primary + " news"
}
