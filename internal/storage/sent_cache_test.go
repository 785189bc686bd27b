package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSentCache_MarkAndSeen(t *testing.T) {
	cache := NewSentCache(filepath.Join(t.TempDir(), "sent.json"), 24*time.Hour)

	cache.Mark("💰 Finance News", []SentArticle{
		{URL: "https://e.com/a", Title: "a"},
		{URL: "", Title: "no url"},
	})

	if !cache.Seen("https://e.com/a") {
		t.Error("marked url should be seen")
	}
	if cache.Seen("https://e.com/other") {
		t.Error("unmarked url should not be seen")
	}
}

func TestSentCache_SaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sent.json")

	first := NewSentCache(path, 24*time.Hour)
	first.Mark("🏏 Sports News", []SentArticle{{URL: "https://e.com/x", Title: "x"}})
	if err := first.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	second := NewSentCache(path, 24*time.Hour)
	if err := second.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !second.Seen("https://e.com/x") {
		t.Error("url should survive a save/load roundtrip")
	}
}

func TestSentCache_LoadDropsExpiredEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sent.json")

	first := NewSentCache(path, 24*time.Hour)
	first.Mark("💻 Technology", []SentArticle{{URL: "https://e.com/old", Title: "old"}})
	if err := first.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Reload with a zero-length window: everything is expired.
	second := NewSentCache(path, 0)
	if err := second.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if second.Seen("https://e.com/old") {
		t.Error("expired entry should not be seen after load")
	}
}

func TestSentCache_MissingFileIsNotAnError(t *testing.T) {
	cache := NewSentCache(filepath.Join(t.TempDir(), "absent.json"), time.Hour)
	if err := cache.Load(); err != nil {
		t.Errorf("missing cache file must not error: %v", err)
	}
}
