package article

import "testing"

func TestNormalize_FieldPreferences(t *testing.T) {
	raw := Raw{
		Title:       "  Market rallies  ",
		Summary:     "short summary",
		Description: "longer description",
		URL:         "https://example.com/a",
		Link:        "https://example.com/b",
		PublishedAt: "2024-01-02T10:00:00Z",
		Published:   "Tue, 02 Jan 2024 10:00:00 GMT",
	}

	a := Normalize(raw, SourceSearchAPI)

	if a.Title != "Market rallies" {
		t.Errorf("title not trimmed: %q", a.Title)
	}
	if a.Summary != "short summary" {
		t.Errorf("summary should prefer the summary field, got %q", a.Summary)
	}
	if a.URL != "https://example.com/a" {
		t.Errorf("url should prefer the url field, got %q", a.URL)
	}
	if a.Published != "2024-01-02T10:00:00Z" {
		t.Errorf("published should prefer publishedAt, got %q", a.Published)
	}
	if a.Source != SourceSearchAPI {
		t.Errorf("unexpected source tag: %q", a.Source)
	}
}

func TestNormalize_Fallbacks(t *testing.T) {
	raw := Raw{
		Title:       "RSS entry",
		Description: "description only",
		Link:        "https://example.com/rss",
		Published:   "Mon, 01 Jan 2024 08:00:00 GMT",
	}

	a := Normalize(raw, SourceRSS)

	if a.Summary != "description only" {
		t.Errorf("summary should fall back to description, got %q", a.Summary)
	}
	if a.URL != "https://example.com/rss" {
		t.Errorf("url should fall back to link, got %q", a.URL)
	}
	if a.Published != "Mon, 01 Jan 2024 08:00:00 GMT" {
		t.Errorf("published should fall back to published, got %q", a.Published)
	}
}

func TestUsable(t *testing.T) {
	if (Article{}).Usable() {
		t.Error("record with neither title nor url must be unusable")
	}
	if !(Article{Title: "t"}).Usable() {
		t.Error("record with title must be usable")
	}
	if !(Article{URL: "u"}).Usable() {
		t.Error("record with url must be usable")
	}
}
