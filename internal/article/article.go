// Package article holds the canonical article record shared by every
// fetch source, plus the merge helpers (deduplication, recency ranking)
// the digest pipeline runs between fetching and summarization.
package article

import "strings"

// Source tags where a record came from.
type Source string

const (
	SourceSearchAPI Source = "search_api"
	SourceRSS       Source = "rss"
)

// Raw is a not-yet-normalized record as delivered by a source. Search-API
// responses populate Description/URL/PublishedAt, RSS entries populate
// Summary/Link/Published; Normalize resolves the preference order.
type Raw struct {
	Title       string
	Summary     string
	Description string
	URL         string
	Link        string
	PublishedAt string
	Published   string
}

// Article is the canonical record. Published stays a raw string until
// ranking; URL is the deduplication identity.
type Article struct {
	Title     string
	Summary   string
	URL       string
	Published string
	Source    Source
}

// Normalize maps a raw source record into the canonical shape:
// summary prefers "summary" over "description", url prefers "url" over
// "link", published prefers "publishedAt" over "published".
func Normalize(raw Raw, source Source) Article {
	summary := raw.Summary
	if summary == "" {
		summary = raw.Description
	}
	url := raw.URL
	if url == "" {
		url = raw.Link
	}
	published := raw.PublishedAt
	if published == "" {
		published = raw.Published
	}

	return Article{
		Title:     strings.TrimSpace(raw.Title),
		Summary:   summary,
		URL:       url,
		Published: published,
		Source:    source,
	}
}

// Usable reports whether the record carries enough identity to keep.
// A record with neither title nor URL is excluded before deduplication.
func (a Article) Usable() bool {
	return a.Title != "" || a.URL != ""
}
